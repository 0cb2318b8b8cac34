// Package services – CommentService
//
// This file implements CommentService: listing an article's comments,
// creating a comment behind article and user existence checks, vote
// increments and deletion.
package services

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tbourn/go-news-backend/internal/domain"
	"github.com/tbourn/go-news-backend/internal/repo"
)

// CommentService coordinates comment reads and writes.
type CommentService struct {
	DB     *gorm.DB
	Exists *ExistenceValidator
}

// NewCommentService constructs a CommentService.
func NewCommentService(db *gorm.DB, exists *ExistenceValidator) *CommentService {
	return &CommentService{DB: db, Exists: exists}
}

// ListForArticle returns the article's comments, newest first. An empty
// result is disambiguated: it is returned as-is when the article exists and
// fails with ErrArticleNotFound otherwise.
func (s *CommentService) ListForArticle(ctx context.Context, articleID int) ([]domain.Comment, error) {
	ctx, span := otel.Tracer("services/CommentService").Start(ctx, "ListForArticle",
		trace.WithAttributes(attribute.Int("article.id", articleID)),
	)
	defer span.End()

	items, err := repo.ListCommentsByArticle(ctx, s.DB, articleID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		if _, err := s.Exists.ArticleExists(ctx, articleID); err != nil {
			return nil, err
		}
	}
	return items, nil
}

// Get returns a single comment or ErrCommentNotFound.
func (s *CommentService) Get(ctx context.Context, id int) (*domain.Comment, error) {
	return s.Exists.CommentExists(ctx, id)
}

// Create validates in, checks the article and then the user, and inserts the
// comment with zero votes. A foreign key violation at insert time is mapped
// back to ErrArticleNotFound or ErrUserNotFound.
func (s *CommentService) Create(ctx context.Context, articleID int, in NewCommentInput) (*domain.Comment, error) {
	ctx, span := otel.Tracer("services/CommentService").Start(ctx, "Create",
		trace.WithAttributes(
			attribute.Int("article.id", articleID),
			attribute.String("user.username", in.Username),
		),
	)
	defer span.End()

	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.Exists.ArticleExists(ctx, articleID); err != nil {
		return nil, err
	}
	if _, err := s.Exists.UserExists(ctx, in.Username); err != nil {
		return nil, err
	}

	c, err := repo.CreateComment(ctx, s.DB, articleID, in.Username, in.Body)
	if err != nil {
		if repo.IsForeignKeyViolation(err) {
			if _, aerr := s.Exists.ArticleExists(ctx, articleID); aerr != nil {
				return nil, aerr
			}
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return c, nil
}

// UpdateVotes adds inc to the comment's votes and returns the updated row.
func (s *CommentService) UpdateVotes(ctx context.Context, id, inc int) (*domain.Comment, error) {
	ctx, span := otel.Tracer("services/CommentService").Start(ctx, "UpdateVotes",
		trace.WithAttributes(attribute.Int("comment.id", id), attribute.Int("inc_votes", inc)),
	)
	defer span.End()

	if err := repo.IncrementCommentVotes(ctx, s.DB, id, inc); err != nil {
		return nil, notFoundAs(err, ErrCommentNotFound)
	}
	c, err := repo.GetComment(ctx, s.DB, id)
	if err != nil {
		return nil, notFoundAs(err, ErrCommentNotFound)
	}
	return c, nil
}

// Delete removes a single comment.
func (s *CommentService) Delete(ctx context.Context, id int) error {
	ctx, span := otel.Tracer("services/CommentService").Start(ctx, "Delete",
		trace.WithAttributes(attribute.Int("comment.id", id)),
	)
	defer span.End()

	return notFoundAs(repo.DeleteComment(ctx, s.DB, id), ErrCommentNotFound)
}
