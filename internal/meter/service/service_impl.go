package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/fieldgridlabs/fieldgrid/internal/clock"
	meterdomain "github.com/fieldgridlabs/fieldgrid/internal/meter/domain"
	"github.com/fieldgridlabs/fieldgrid/internal/observability"
	"github.com/fieldgridlabs/fieldgrid/pkg/db"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const readingDateLayout = "2006-01-02"

type Params struct {
	fx.In

	DB      *db.Handle
	Log     *zap.Logger
	GenID   *snowflake.Node
	Clock   clock.Clock
	Metrics *observability.Metrics
	Repo    meterdomain.Repository
}

type Service struct {
	db      *db.Handle
	log     *zap.Logger
	genID   *snowflake.Node
	clock   clock.Clock
	metrics *observability.Metrics
	repo    meterdomain.Repository
}

func New(p Params) meterdomain.Service {
	return &Service{
		db:      p.DB,
		log:     p.Log.Named("meter.service"),
		genID:   p.GenID,
		clock:   p.Clock,
		metrics: p.Metrics,
		repo:    p.Repo,
	}
}

// ListEligibleRoutes returns every Active meter still unread in the current
// calendar month. The period is recomputed on each call; nothing is cached.
func (s *Service) ListEligibleRoutes(ctx context.Context) ([]meterdomain.RouteStop, error) {
	conn, err := s.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	periodStart, periodEnd := clock.PeriodBounds(s.clock.Now(ctx))

	started := time.Now()
	stops, err := s.repo.ListUnread(ctx, conn, periodStart, periodEnd)
	s.metrics.StoreDuration.WithLabelValues("list_unread").Observe(time.Since(started).Seconds())
	if err != nil {
		s.log.Error("list unread meters failed", zap.Error(err))
		return nil, err
	}

	s.metrics.RouteListRequests.Inc()
	return stops, nil
}

func (s *Service) GetMeterContext(ctx context.Context, meterID string) (*meterdomain.MeterContext, error) {
	meterID = strings.TrimSpace(meterID)
	if meterID == "" {
		return nil, meterdomain.ErrMeterNotFound
	}

	conn, err := s.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	mc, err := s.repo.FindContext(ctx, conn, meterID)
	s.metrics.StoreDuration.WithLabelValues("find_context").Observe(time.Since(started).Seconds())
	if err != nil {
		s.log.Error("meter context lookup failed", zap.String("meter_id", meterID), zap.Error(err))
		return nil, err
	}
	if mc == nil {
		return nil, meterdomain.ErrMeterNotFound
	}
	return mc, nil
}

// SubmitReading validates the officer-entered payload and persists exactly
// one meter_readings row. Validation failures never touch the store.
func (s *Service) SubmitReading(ctx context.Context, req meterdomain.SubmitReadingRequest) (*meterdomain.ReadingReceipt, error) {
	meterID := strings.TrimSpace(req.MeterID)
	rawValue := strings.TrimSpace(req.ReadingValue)
	rawDate := strings.TrimSpace(req.ReadingDate)
	if meterID == "" || rawValue == "" || rawDate == "" {
		return nil, meterdomain.ErrMissingFields
	}

	value, err := decimal.NewFromString(rawValue)
	if err != nil {
		return nil, meterdomain.ErrInvalidReadingValue
	}
	value = value.Round(2)

	readingDate, err := time.ParseInLocation(readingDateLayout, rawDate, time.UTC)
	if err != nil {
		return nil, meterdomain.ErrInvalidReadingDate
	}

	var notes *string
	if trimmed := strings.TrimSpace(req.Notes); trimmed != "" {
		notes = &trimmed
	}

	conn, err := s.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	reading := &meterdomain.MeterReading{
		ID:           s.genID.Generate().Int64(),
		MeterID:      meterID,
		UserID:       req.SubmittedBy,
		ReadingValue: value,
		ReadingDate:  readingDate,
		Notes:        notes,
		CreatedAt:    s.clock.Now(ctx),
	}

	started := time.Now()
	err = s.repo.InsertReading(ctx, conn, reading)
	s.metrics.StoreDuration.WithLabelValues("insert_reading").Observe(time.Since(started).Seconds())
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, meterdomain.ErrUnknownMeter
		}
		s.log.Error("insert reading failed", zap.String("meter_id", meterID), zap.Error(err))
		return nil, err
	}

	s.metrics.ReadingsSubmitted.Inc()
	s.log.Info("reading submitted",
		zap.String("meter_id", meterID),
		zap.String("submitted_by", req.SubmittedBy),
		zap.String("value", value.StringFixed(2)),
	)

	return &meterdomain.ReadingReceipt{
		ID:           snowflake.ID(reading.ID).String(),
		MeterID:      meterID,
		ReadingValue: value,
		ReadingDate:  readingDate.Format(readingDateLayout),
	}, nil
}

func isForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	// The sqlite driver used in tests reports constraint failures as plain
	// strings rather than translated gorm errors.
	return strings.Contains(err.Error(), "FOREIGN KEY constraint")
}
