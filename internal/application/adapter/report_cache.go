package adapter

import (
	"context"
	"fmt"
	"time"
)

// Cache TTLs for the derived read models.
const (
	MonthlyReportTTL = time.Hour
	YearlyReportTTL  = 6 * time.Hour
	DashboardTTL     = 15 * time.Minute
)

// ReportCache defines the interface for caching derived report payloads.
type ReportCache interface {
	// Get loads the value stored under key into dest. Returns false when
	// the key is absent. Corrupt entries are treated as absent.
	Get(ctx context.Context, key string, dest any) (bool, error)

	// Set stores value under key with the given TTL, JSON encoded.
	Set(ctx context.Context, key string, value any, ttl time.Duration) error

	// Delete removes the given keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error
}

// MonthlyReportKey builds the cache key for a user's monthly report.
func MonthlyReportKey(userID string, year int, month time.Month) string {
	return fmt.Sprintf("user:%s:monthly-report:%04d-%02d", userID, year, month)
}

// YearlyReportKey builds the cache key for a user's yearly report.
func YearlyReportKey(userID string, year int) string {
	return fmt.Sprintf("user:%s:yearly-report:%d", userID, year)
}

// DashboardKey builds the cache key for a user's dashboard payload.
func DashboardKey(userID string) string {
	return fmt.Sprintf("dashboard:%s", userID)
}

// InvalidateUserCaches drops the user's cached dashboard plus the current
// month and current year reports. Past-period reports are left to expire
// on their own TTL since closed periods no longer change.
func InvalidateUserCaches(ctx context.Context, cache ReportCache, userID string, now time.Time) error {
	return cache.Delete(ctx,
		MonthlyReportKey(userID, now.Year(), now.Month()),
		YearlyReportKey(userID, now.Year()),
		DashboardKey(userID),
	)
}
