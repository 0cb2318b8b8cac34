package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-news-backend/internal/domain"
)

// ListUsers returns every user ordered by username.
func ListUsers(ctx context.Context, db *gorm.DB) ([]domain.User, error) {
	out := []domain.User{}
	err := db.WithContext(ctx).Order("username ASC").Find(&out).Error
	return out, err
}

// GetUser fetches a user by username, or ErrNotFound.
func GetUser(ctx context.Context, db *gorm.DB, username string) (*domain.User, error) {
	var u domain.User
	if err := db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
