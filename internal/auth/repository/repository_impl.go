package repository

import (
	"context"

	authdomain "github.com/fieldgridlabs/fieldgrid/internal/auth/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() authdomain.Repository {
	return &repo{}
}

func (r *repo) FindByUsername(ctx context.Context, db *gorm.DB, username string) (*authdomain.StaffUser, error) {
	var user authdomain.StaffUser
	err := db.WithContext(ctx).Raw(
		`SELECT user_id, username, full_name, role, password_hash
		 FROM user_staff WHERE username = ? LIMIT 1`,
		username,
	).Scan(&user).Error
	if err != nil {
		return nil, err
	}
	if user.UserID == "" {
		return nil, nil
	}
	return &user, nil
}
