package domain

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

type Service interface {
	ListEligibleRoutes(ctx context.Context) ([]RouteStop, error)
	GetMeterContext(ctx context.Context, meterID string) (*MeterContext, error)
	SubmitReading(ctx context.Context, req SubmitReadingRequest) (*ReadingReceipt, error)
}

// SubmitReadingRequest carries the officer-entered form fields. Value and
// date arrive as strings and are validated before any store access.
type SubmitReadingRequest struct {
	MeterID      string `json:"meter-id"`
	ReadingValue string `json:"reading-value"`
	ReadingDate  string `json:"reading-date"`
	Notes        string `json:"notes"`

	// SubmittedBy must be supplied by the caller. There is no session
	// binding yet; the HTTP layer fills in the configured officer id.
	SubmittedBy string `json:"-"`
}

type ReadingReceipt struct {
	ID           string          `json:"id"`
	MeterID      string          `json:"meter_id"`
	ReadingValue decimal.Decimal `json:"reading_value"`
	ReadingDate  string          `json:"reading_date"`
}

var (
	ErrMissingFields       = errors.New("missing_required_fields")
	ErrInvalidReadingValue = errors.New("invalid_reading_value")
	ErrInvalidReadingDate  = errors.New("invalid_reading_date")
	ErrMeterNotFound       = errors.New("meter_not_found")
	ErrUnknownMeter        = errors.New("unknown_meter")
)
