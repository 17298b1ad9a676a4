package service

import (
	"context"
	"crypto/subtle"
	"strings"

	authdomain "github.com/fieldgridlabs/fieldgrid/internal/auth/domain"
	"github.com/fieldgridlabs/fieldgrid/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	DB   *db.Handle
	Log  *zap.Logger
	Repo authdomain.Repository
}

type Service struct {
	db   *db.Handle
	log  *zap.Logger
	repo authdomain.Repository
}

func New(p Params) authdomain.Service {
	return &Service{
		db:   p.DB,
		log:  p.Log.Named("auth.service"),
		repo: p.Repo,
	}
}

// Login checks username, password and role against user_staff. Wrong user,
// wrong password and wrong role are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, req authdomain.LoginRequest) (*authdomain.StaffIdentity, error) {
	username := strings.TrimSpace(req.Username)
	role := strings.TrimSpace(req.Role)
	if username == "" || req.Password == "" || role == "" {
		return nil, authdomain.ErrMissingCredentials
	}

	conn, err := s.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.FindByUsername(ctx, conn, username)
	if err != nil {
		s.log.Error("staff lookup failed", zap.String("username", username), zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, authdomain.ErrInvalidCredentials
	}

	hash := authdomain.HashPassword(req.Password)
	if subtle.ConstantTimeCompare([]byte(hash), []byte(user.PasswordHash)) != 1 {
		return nil, authdomain.ErrInvalidCredentials
	}
	if !strings.EqualFold(role, user.Role) {
		return nil, authdomain.ErrInvalidCredentials
	}

	return &authdomain.StaffIdentity{
		UserID:   user.UserID,
		FullName: user.FullName,
		Role:     user.Role,
	}, nil
}
