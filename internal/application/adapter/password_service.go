package adapter

// PasswordService hashes and verifies account passwords.
type PasswordService interface {
	// HashPassword hashes a plain text password for storage.
	HashPassword(password string) (string, error)

	// VerifyPassword compares a plain text password against its stored
	// hash, returning an error on mismatch.
	VerifyPassword(hashedPassword, password string) error

	// ValidatePasswordStrength rejects passwords below the minimum
	// strength rules enforced at registration and reset.
	ValidatePasswordStrength(password string) error
}
