// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file rebuilds the schema and loads a fixtures dataset.
package repo

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tbourn/go-news-backend/internal/domain"
	"github.com/tbourn/go-news-backend/internal/fixtures"
)

// Seed drops every table, migrates the schema afresh and inserts ds.
// Rows are inserted parents first; comment parents are resolved from their
// position in ds.Articles to the ids the store assigned.
func Seed(ctx context.Context, db *gorm.DB, ds *fixtures.Dataset) error {
	if err := DropAll(db.WithContext(ctx)); err != nil {
		return fmt.Errorf("seed drop: %w", err)
	}
	if err := AutoMigrate(db.WithContext(ctx)); err != nil {
		return fmt.Errorf("seed migrate: %w", err)
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, t := range ds.Topics {
			row := domain.Topic{Slug: t.Slug, Description: t.Description, ImgURL: t.ImgURL}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("seed topic %q: %w", t.Slug, err)
			}
		}
		for _, u := range ds.Users {
			row := domain.User{Username: u.Username, Name: u.Name, AvatarURL: u.AvatarURL}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("seed user %q: %w", u.Username, err)
			}
		}

		ids := make([]int, len(ds.Articles))
		for i, a := range ds.Articles {
			row := domain.Article{
				Title:         a.Title,
				Topic:         a.Topic,
				Author:        a.Author,
				Body:          a.Body,
				CreatedAt:     a.CreatedAt.UTC(),
				Votes:         a.Votes,
				ArticleImgURL: a.ArticleImgURL,
			}
			if err := tx.Omit(clause.Associations).Create(&row).Error; err != nil {
				return fmt.Errorf("seed article %q: %w", a.Title, err)
			}
			ids[i] = row.ArticleID
		}

		for i, c := range ds.Comments {
			if c.Article < 1 || c.Article > len(ids) {
				return fmt.Errorf("seed comment %d: article %d out of range", i, c.Article)
			}
			row := domain.Comment{
				ArticleID: ids[c.Article-1],
				Body:      c.Body,
				Votes:     c.Votes,
				Author:    c.Author,
				CreatedAt: c.CreatedAt.UTC(),
			}
			if err := tx.Omit(clause.Associations).Create(&row).Error; err != nil {
				return fmt.Errorf("seed comment %d: %w", i, err)
			}
		}
		return nil
	})
}
