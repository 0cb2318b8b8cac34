package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-news-backend/internal/domain"
)

// ListTopics returns every topic ordered by slug.
func ListTopics(ctx context.Context, db *gorm.DB) ([]domain.Topic, error) {
	out := []domain.Topic{}
	err := db.WithContext(ctx).Order("slug ASC").Find(&out).Error
	return out, err
}

// GetTopic fetches a topic by slug, or ErrNotFound.
func GetTopic(ctx context.Context, db *gorm.DB, slug string) (*domain.Topic, error) {
	var t domain.Topic
	if err := db.WithContext(ctx).Where("slug = ?", slug).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateTopic inserts a topic. A slug that already exists yields ErrDuplicate.
func CreateTopic(ctx context.Context, db *gorm.DB, slug, description, imgURL string) (*domain.Topic, error) {
	t := &domain.Topic{Slug: slug, Description: description, ImgURL: imgURL}
	if err := db.WithContext(ctx).Create(t).Error; err != nil {
		if IsUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return t, nil
}
