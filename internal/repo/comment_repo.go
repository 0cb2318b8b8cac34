// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Comment
// model.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tbourn/go-news-backend/internal/domain"
)

// ListCommentsByArticle returns the comments of an article, newest first
// (created_at DESC, comment_id DESC). An empty slice does not imply the
// article exists.
func ListCommentsByArticle(ctx context.Context, db *gorm.DB, articleID int) ([]domain.Comment, error) {
	out := []domain.Comment{}
	err := db.WithContext(ctx).
		Where("article_id = ?", articleID).
		Order("created_at DESC, comment_id DESC").
		Find(&out).Error
	return out, err
}

// GetComment fetches a comment by id, or ErrNotFound.
func GetComment(ctx context.Context, db *gorm.DB, id int) (*domain.Comment, error) {
	var c domain.Comment
	if err := db.WithContext(ctx).Where("comment_id = ?", id).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateComment inserts a comment with zero votes stamped with the current
// UTC time. Dangling article/author references surface as a foreign key
// violation from the store.
func CreateComment(ctx context.Context, db *gorm.DB, articleID int, author, body string) (*domain.Comment, error) {
	c := &domain.Comment{
		ArticleID: articleID,
		Author:    author,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Omit(clause.Associations).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

// IncrementCommentVotes adds inc to a comment's votes. ErrNotFound when no
// comment matches.
func IncrementCommentVotes(ctx context.Context, db *gorm.DB, id, inc int) error {
	res := db.WithContext(ctx).
		Model(&domain.Comment{}).
		Where("comment_id = ?", id).
		UpdateColumn("votes", gorm.Expr("votes + ?", inc))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteComment removes a comment. ErrNotFound when no comment matches.
func DeleteComment(ctx context.Context, db *gorm.DB, id int) error {
	res := db.WithContext(ctx).Where("comment_id = ?", id).Delete(&domain.Comment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
