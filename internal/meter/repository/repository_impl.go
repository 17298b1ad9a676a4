package repository

import (
	"context"
	"time"

	meterdomain "github.com/fieldgridlabs/fieldgrid/internal/meter/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() meterdomain.Repository {
	return &repo{}
}

func (r *repo) ListUnread(ctx context.Context, db *gorm.DB, periodStart, periodEnd time.Time) ([]meterdomain.RouteStop, error) {
	var stops []meterdomain.RouteStop
	err := db.WithContext(ctx).Raw(
		`SELECT m.meter_id, c.customer_name, c.service_address, u.utility_name
		 FROM meters m
		 JOIN customers c ON m.customer_id = c.customer_id
		 JOIN utility_types u ON m.utility_id = u.utility_id
		 WHERE m.status = ?
		   AND NOT EXISTS (
		     SELECT 1 FROM meter_readings r
		     WHERE r.meter_id = m.meter_id
		       AND r.reading_date >= ?
		       AND r.reading_date < ?
		   )`,
		meterdomain.MeterStatusActive,
		periodStart,
		periodEnd,
	).Scan(&stops).Error
	if err != nil {
		return nil, err
	}
	return stops, nil
}

func (r *repo) FindContext(ctx context.Context, db *gorm.DB, meterID string) (*meterdomain.MeterContext, error) {
	var mc meterdomain.MeterContext
	err := db.WithContext(ctx).Raw(
		`SELECT m.meter_id, c.customer_name, c.service_address
		 FROM meters m
		 JOIN customers c ON m.customer_id = c.customer_id
		 WHERE m.meter_id = ?`,
		meterID,
	).Scan(&mc).Error
	if err != nil {
		return nil, err
	}
	if mc.MeterID == "" {
		return nil, nil
	}
	return &mc, nil
}

func (r *repo) InsertReading(ctx context.Context, db *gorm.DB, m *meterdomain.MeterReading) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO meter_readings (id, meter_id, user_id, reading_value, reading_date, notes, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.ID,
		m.MeterID,
		m.UserID,
		m.ReadingValue,
		m.ReadingDate,
		m.Notes,
		m.CreatedAt,
	).Error
}
