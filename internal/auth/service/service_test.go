package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	authdomain "github.com/fieldgridlabs/fieldgrid/internal/auth/domain"
	"github.com/fieldgridlabs/fieldgrid/internal/auth/repository"
	"github.com/fieldgridlabs/fieldgrid/pkg/db"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (authdomain.Service, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&authdomain.StaffUser{}))

	handle := db.NewHandleWithDialer(func(context.Context) (*gorm.DB, error) {
		return conn, nil
	}, zap.NewNop())

	svc := New(Params{
		DB:   handle,
		Log:  zap.NewNop(),
		Repo: repository.Provide(),
	})
	return svc, conn
}

func TestLogin(t *testing.T) {
	svc, conn := newTestService(t)

	require.NoError(t, conn.Create(&authdomain.StaffUser{
		UserID:       "U-002",
		Username:     "fieldofficer",
		FullName:     "Demo Field Officer",
		Role:         "FieldOfficer",
		PasswordHash: authdomain.HashPassword("field"),
	}).Error)

	t.Run("valid credentials", func(t *testing.T) {
		identity, err := svc.Login(context.Background(), authdomain.LoginRequest{
			Username: "fieldofficer",
			Password: "field",
			Role:     "FieldOfficer",
		})
		require.NoError(t, err)
		assert.Equal(t, "U-002", identity.UserID)
		assert.Equal(t, "Demo Field Officer", identity.FullName)
		assert.Equal(t, "FieldOfficer", identity.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), authdomain.LoginRequest{
			Username: "fieldofficer",
			Password: "wrong",
			Role:     "FieldOfficer",
		})
		assert.ErrorIs(t, err, authdomain.ErrInvalidCredentials)
	})

	t.Run("wrong role", func(t *testing.T) {
		_, err := svc.Login(context.Background(), authdomain.LoginRequest{
			Username: "fieldofficer",
			Password: "field",
			Role:     "Admin",
		})
		assert.ErrorIs(t, err, authdomain.ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Login(context.Background(), authdomain.LoginRequest{
			Username: "ghost",
			Password: "field",
			Role:     "FieldOfficer",
		})
		assert.ErrorIs(t, err, authdomain.ErrInvalidCredentials)
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := svc.Login(context.Background(), authdomain.LoginRequest{
			Username: "fieldofficer",
		})
		assert.ErrorIs(t, err, authdomain.ErrMissingCredentials)
	})
}
