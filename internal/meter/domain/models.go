package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const MeterStatusActive = "Active"

// Meter, Customer and UtilityType are provisioned outside this service;
// here they are read-only reference rows.
type Meter struct {
	MeterID    string `gorm:"column:meter_id;primaryKey"`
	CustomerID string `gorm:"column:customer_id"`
	UtilityID  string `gorm:"column:utility_id"`
	Status     string `gorm:"column:status"`
}

func (Meter) TableName() string { return "meters" }

type Customer struct {
	CustomerID     string `gorm:"column:customer_id;primaryKey"`
	CustomerName   string `gorm:"column:customer_name"`
	ServiceAddress string `gorm:"column:service_address"`
}

func (Customer) TableName() string { return "customers" }

type UtilityType struct {
	UtilityID   string `gorm:"column:utility_id;primaryKey"`
	UtilityName string `gorm:"column:utility_name"`
}

func (UtilityType) TableName() string { return "utility_types" }

// MeterReading rows are only ever inserted, never updated or deleted.
type MeterReading struct {
	ID           int64           `gorm:"column:id;primaryKey"`
	MeterID      string          `gorm:"column:meter_id"`
	UserID       string          `gorm:"column:user_id"`
	ReadingValue decimal.Decimal `gorm:"column:reading_value;type:numeric(10,2)"`
	ReadingDate  time.Time       `gorm:"column:reading_date;type:date"`
	Notes        *string         `gorm:"column:notes"`
	CreatedAt    time.Time       `gorm:"column:created_at"`
}

func (MeterReading) TableName() string { return "meter_readings" }

// RouteStop is one unread meter on the officer's route. JSON keys match the
// wire contract consumed by the field client.
type RouteStop struct {
	MeterID        string `gorm:"column:meter_id" json:"MeterID"`
	CustomerName   string `gorm:"column:customer_name" json:"CustomerName"`
	ServiceAddress string `gorm:"column:service_address" json:"ServiceAddress"`
	UtilityName    string `gorm:"column:utility_name" json:"UtilityName"`
}

// MeterContext is the customer context pre-filling the reading form.
type MeterContext struct {
	MeterID        string `gorm:"column:meter_id" json:"MeterID"`
	CustomerName   string `gorm:"column:customer_name" json:"CustomerName"`
	ServiceAddress string `gorm:"column:service_address" json:"ServiceAddress"`
}
