// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Article
// model.
//
// All functions are context-aware and accept a *gorm.DB handle, so they can
// run inside a transaction as well as on the pool. They follow the "thin
// repository" approach: no business rules, only persistence and query
// composition.
//
// Error semantics:
//   - A missing article yields ErrNotFound, both for lookups and for
//     updates/deletes that affect zero rows.
//   - Any other DB error (constraint violations, connectivity, ...) is
//     returned as-is; use Classify to inspect it.
package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tbourn/go-news-backend/internal/domain"
)

// GetArticle fetches a single article by id, or ErrNotFound.
func GetArticle(ctx context.Context, db *gorm.DB, id int) (*domain.Article, error) {
	var a domain.Article
	if err := db.WithContext(ctx).Where("article_id = ?", id).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// GetArticleWithCount fetches an article together with its live comment
// count, or ErrNotFound.
func GetArticleWithCount(ctx context.Context, db *gorm.DB, id int) (*domain.ArticleWithCount, error) {
	var out domain.ArticleWithCount
	res := db.WithContext(ctx).Raw(`SELECT articles.*, COUNT(comments.comment_id) AS comment_count
FROM articles
LEFT JOIN comments ON comments.article_id = articles.article_id
WHERE articles.article_id = ?
GROUP BY articles.article_id`, id).Scan(&out)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &out, nil
}

// ListArticles runs a validated listing query. It returns an empty slice,
// never nil, when nothing matches.
func ListArticles(ctx context.Context, db *gorm.DB, q ArticleListQuery) ([]domain.ArticleSummary, error) {
	stmt, args := q.SQL()
	out := []domain.ArticleSummary{}
	if err := db.WithContext(ctx).Raw(stmt, args...).Scan(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// CreateArticle inserts a. ArticleID and CreatedAt are filled in by the
// store; associations are never upserted.
func CreateArticle(ctx context.Context, db *gorm.DB, a *domain.Article) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(a).Error
}

// IncrementArticleVotes adds inc (which may be negative or zero) to the
// stored vote count in a single statement. If no article matches it returns
// ErrNotFound.
func IncrementArticleVotes(ctx context.Context, db *gorm.DB, id, inc int) error {
	res := db.WithContext(ctx).
		Model(&domain.Article{}).
		Where("article_id = ?", id).
		UpdateColumn("votes", gorm.Expr("votes + ?", inc))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteArticle removes an article; its comments go with it through the
// ON DELETE CASCADE foreign key. If no article matches it returns ErrNotFound.
func DeleteArticle(ctx context.Context, db *gorm.DB, id int) error {
	res := db.WithContext(ctx).Where("article_id = ?", id).Delete(&domain.Article{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
