package seed

import (
	"context"
	"errors"

	authdomain "github.com/fieldgridlabs/fieldgrid/internal/auth/domain"
	meterdomain "github.com/fieldgridlabs/fieldgrid/internal/meter/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	defaultOfficerID       = "U-002"
	defaultOfficerUsername = "fieldofficer"
	defaultOfficerPassword = "field"
	defaultOfficerDisplay  = "Demo Field Officer"
	defaultOfficerRole     = "FieldOfficer"
)

// EnsureDemoData inserts a small local-development fixture set: two utility
// types, two customers, three active meters and one field officer. Existing
// rows are left untouched, so it is safe to run on every startup.
func EnsureDemoData(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		utilities := []meterdomain.UtilityType{
			{UtilityID: "UT-E", UtilityName: "Electricity"},
			{UtilityID: "UT-W", UtilityName: "Water"},
		}
		if err := insertIgnoring(tx, utilities); err != nil {
			return err
		}

		customers := []meterdomain.Customer{
			{CustomerID: "C-001", CustomerName: "Amina Yusuf", ServiceAddress: "12 Harbor Lane"},
			{CustomerID: "C-002", CustomerName: "Derek Mensah", ServiceAddress: "48 Mill Road"},
		}
		if err := insertIgnoring(tx, customers); err != nil {
			return err
		}

		meters := []meterdomain.Meter{
			{MeterID: "MTR-E-001", CustomerID: "C-001", UtilityID: "UT-E", Status: meterdomain.MeterStatusActive},
			{MeterID: "MTR-E-002", CustomerID: "C-002", UtilityID: "UT-E", Status: meterdomain.MeterStatusActive},
			{MeterID: "MTR-W-001", CustomerID: "C-001", UtilityID: "UT-W", Status: meterdomain.MeterStatusActive},
		}
		if err := insertIgnoring(tx, meters); err != nil {
			return err
		}

		officer := authdomain.StaffUser{
			UserID:       defaultOfficerID,
			Username:     defaultOfficerUsername,
			FullName:     defaultOfficerDisplay,
			Role:         defaultOfficerRole,
			PasswordHash: authdomain.HashPassword(defaultOfficerPassword),
		}
		return insertIgnoring(tx, []authdomain.StaffUser{officer})
	})
}

func insertIgnoring[T any](tx *gorm.DB, rows []T) error {
	return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
}
