package repositories

import (
	"context"
	"time"

	"KinderShelf/screentime"
)

// UsageDelta is an additive change to one day's usage record.
type UsageDelta struct {
	VideoMinutes int
	BookMinutes  int
	TotalMinutes int
	Category     string
	At           time.Time
}

// ScreenTimeRepository stores per-child settings and per-day usage.
type ScreenTimeRepository interface {
	// GetSettings returns the stored fields as they are; found is false when
	// the child has no settings document.
	GetSettings(ctx context.Context, childID string) (screentime.PartialSettings, bool, error)
	SaveSettings(ctx context.Context, childID string, settings screentime.Settings) error
	DeleteSettings(ctx context.Context, childID string) error

	// GetUsage returns nil when no usage exists for the date.
	GetUsage(ctx context.Context, childID, date string) (*screentime.Usage, error)
	// GetUsageRange returns the days in [from, to] inclusive, oldest first.
	GetUsageRange(ctx context.Context, childID, from, to string) ([]screentime.Usage, error)
	// ListUsage returns every recorded day, newest first.
	ListUsage(ctx context.Context, childID string) ([]screentime.Usage, error)
	AddUsage(ctx context.Context, childID, date string, delta UsageDelta) (screentime.Usage, error)
	DeleteUsage(ctx context.Context, childID string) error
}
