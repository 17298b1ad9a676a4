package domain

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"gorm.io/gorm"
)

type StaffUser struct {
	UserID       string `gorm:"column:user_id;primaryKey"`
	Username     string `gorm:"column:username"`
	FullName     string `gorm:"column:full_name"`
	Role         string `gorm:"column:role"`
	PasswordHash string `gorm:"column:password_hash"`
}

func (StaffUser) TableName() string { return "user_staff" }

// StaffIdentity is the post-login identity returned to the client.
type StaffIdentity struct {
	UserID   string `json:"UserID"`
	FullName string `json:"FullName"`
	Role     string `json:"Role"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type Service interface {
	Login(ctx context.Context, req LoginRequest) (*StaffIdentity, error)
}

type Repository interface {
	// FindByUsername returns (nil, nil) when no staff row matches.
	FindByUsername(ctx context.Context, db *gorm.DB, username string) (*StaffUser, error)
}

var (
	ErrMissingCredentials = errors.New("missing_credentials")
	ErrInvalidCredentials = errors.New("invalid_credentials")
)

// HashPassword is the stored credential form. Also used by the seeder.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
