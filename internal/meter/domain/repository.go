package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	// ListUnread returns every Active meter with no reading dated inside
	// [periodStart, periodEnd), joined with customer and utility identity.
	ListUnread(ctx context.Context, db *gorm.DB, periodStart, periodEnd time.Time) ([]RouteStop, error)

	// FindContext resolves one meter's customer context by exact meter id.
	// Returns (nil, nil) when no row matches.
	FindContext(ctx context.Context, db *gorm.DB, meterID string) (*MeterContext, error)

	InsertReading(ctx context.Context, db *gorm.DB, reading *MeterReading) error
}
