// Package services – ArticleService
//
// This file implements ArticleService, which owns the article use-cases:
// filtered/sorted listing, single fetch with comment count, creation behind
// author and topic existence checks, vote increments and deletion.
//
// Observability: all public methods are OpenTelemetry-instrumented.
package services

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tbourn/go-news-backend/internal/domain"
	"github.com/tbourn/go-news-backend/internal/repo"
)

// DefaultArticleImgURL is used when an article is created without an image.
const DefaultArticleImgURL = "https://images.pexels.com/photos/97050/pexels-photo-97050.jpeg?w=700&h=700"

// ArticleService coordinates article reads and writes.
type ArticleService struct {
	DB     *gorm.DB
	Exists *ExistenceValidator

	// DefaultImgURL replaces an empty article_img_url on create.
	DefaultImgURL string
}

// NewArticleService constructs an ArticleService. An empty defaultImg falls
// back to DefaultArticleImgURL.
func NewArticleService(db *gorm.DB, exists *ExistenceValidator, defaultImg string) *ArticleService {
	if defaultImg == "" {
		defaultImg = DefaultArticleImgURL
	}
	return &ArticleService{DB: db, Exists: exists, DefaultImgURL: defaultImg}
}

// List returns article summaries sorted by sortBy/order and optionally
// filtered by topic. Parameters are validated before the topic is looked up,
// and an unknown topic fails with ErrTopicNotFound rather than an empty list.
func (s *ArticleService) List(ctx context.Context, sortBy, order, topic string) ([]domain.ArticleSummary, error) {
	ctx, span := otel.Tracer("services/ArticleService").Start(ctx, "List",
		trace.WithAttributes(
			attribute.String("sort_by", sortBy),
			attribute.String("order", order),
			attribute.String("topic", topic),
		),
	)
	defer span.End()

	q, err := repo.NewArticleListQuery(sortBy, order, topic)
	if err != nil {
		return nil, err
	}
	if err := s.Exists.TopicExists(ctx, q.Topic()); err != nil {
		return nil, err
	}
	return repo.ListArticles(ctx, s.DB, q)
}

// Get returns one article with its body and live comment count.
func (s *ArticleService) Get(ctx context.Context, id int) (*domain.ArticleWithCount, error) {
	ctx, span := otel.Tracer("services/ArticleService").Start(ctx, "Get",
		trace.WithAttributes(attribute.Int("article.id", id)),
	)
	defer span.End()

	a, err := repo.GetArticleWithCount(ctx, s.DB, id)
	if err != nil {
		return nil, notFoundAs(err, ErrArticleNotFound)
	}
	return a, nil
}

// Create validates in, checks the author and then the topic, and inserts the
// article with zero votes. A foreign key violation at insert time means a
// reference vanished after the checks; it is reported as the matching
// not-found error.
func (s *ArticleService) Create(ctx context.Context, in NewArticleInput) (*domain.ArticleWithCount, error) {
	ctx, span := otel.Tracer("services/ArticleService").Start(ctx, "Create",
		trace.WithAttributes(
			attribute.String("article.author", in.Author),
			attribute.String("article.topic", in.Topic),
		),
	)
	defer span.End()

	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.Exists.UserExists(ctx, in.Author); err != nil {
		return nil, err
	}
	if err := s.Exists.TopicExists(ctx, in.Topic); err != nil {
		return nil, err
	}

	img := in.ArticleImgURL
	if img == "" {
		img = s.DefaultImgURL
	}
	a := &domain.Article{
		Title:         in.Title,
		Topic:         in.Topic,
		Author:        in.Author,
		Body:          in.Body,
		CreatedAt:     time.Now().UTC(),
		ArticleImgURL: img,
	}
	if err := repo.CreateArticle(ctx, s.DB, a); err != nil {
		if repo.IsForeignKeyViolation(err) {
			return nil, s.danglingArticleRef(ctx, in.Author)
		}
		return nil, err
	}
	return &domain.ArticleWithCount{Article: *a}, nil
}

func (s *ArticleService) danglingArticleRef(ctx context.Context, author string) error {
	if _, err := s.Exists.UserExists(ctx, author); err != nil {
		return err
	}
	return ErrTopicNotFound
}

// UpdateVotes adds inc to the article's votes and returns the updated row.
func (s *ArticleService) UpdateVotes(ctx context.Context, id, inc int) (*domain.Article, error) {
	ctx, span := otel.Tracer("services/ArticleService").Start(ctx, "UpdateVotes",
		trace.WithAttributes(attribute.Int("article.id", id), attribute.Int("inc_votes", inc)),
	)
	defer span.End()

	if err := repo.IncrementArticleVotes(ctx, s.DB, id, inc); err != nil {
		return nil, notFoundAs(err, ErrArticleNotFound)
	}
	a, err := repo.GetArticle(ctx, s.DB, id)
	if err != nil {
		return nil, notFoundAs(err, ErrArticleNotFound)
	}
	return a, nil
}

// Delete removes the article and, through the cascade, its comments.
func (s *ArticleService) Delete(ctx context.Context, id int) error {
	ctx, span := otel.Tracer("services/ArticleService").Start(ctx, "Delete",
		trace.WithAttributes(attribute.Int("article.id", id)),
	)
	defer span.End()

	if err := repo.DeleteArticle(ctx, s.DB, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrArticleNotFound
		}
		return err
	}
	return nil
}
