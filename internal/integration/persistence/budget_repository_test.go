package persistence

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "pgx unique violation",
			err:  &pgconn.PgError{Code: "23505", ConstraintName: "idx_budgets_user_name"},
			want: true,
		},
		{
			name: "wrapped pgx unique violation",
			err:  fmt.Errorf("create budget: %w", &pgconn.PgError{Code: "23505"}),
			want: true,
		},
		{
			name: "translated duplicate key",
			err:  gorm.ErrDuplicatedKey,
			want: true,
		},
		{
			name: "other postgres error",
			err:  &pgconn.PgError{Code: "23503"},
			want: false,
		},
		{
			name: "plain error",
			err:  errors.New("connection refused"),
			want: false,
		},
		{
			name: "nil",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isUniqueViolation(tt.err); got != tt.want {
				t.Errorf("isUniqueViolation(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
