package services

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tbourn/go-news-backend/internal/domain"
	"github.com/tbourn/go-news-backend/internal/repo"
)

// ExistenceValidator confirms that referenced rows exist before dependent
// writes. Every check is a read-only lookup by unique key.
type ExistenceValidator struct {
	DB *gorm.DB
}

// NewExistenceValidator returns a validator bound to db.
func NewExistenceValidator(db *gorm.DB) *ExistenceValidator {
	return &ExistenceValidator{DB: db}
}

// ArticleExists returns the article or ErrArticleNotFound.
func (v *ExistenceValidator) ArticleExists(ctx context.Context, id int) (*domain.Article, error) {
	ctx, span := v.start(ctx, "ArticleExists", attribute.Int("article.id", id))
	defer span.End()

	a, err := repo.GetArticle(ctx, v.DB, id)
	return a, notFoundAs(err, ErrArticleNotFound)
}

// UserExists returns the user or ErrUserNotFound.
func (v *ExistenceValidator) UserExists(ctx context.Context, username string) (*domain.User, error) {
	ctx, span := v.start(ctx, "UserExists", attribute.String("user.username", username))
	defer span.End()

	u, err := repo.GetUser(ctx, v.DB, username)
	return u, notFoundAs(err, ErrUserNotFound)
}

// TopicExists returns nil if the topic exists or ErrTopicNotFound. An empty
// slug means no topic was requested and always succeeds.
func (v *ExistenceValidator) TopicExists(ctx context.Context, slug string) error {
	if slug == "" {
		return nil
	}
	ctx, span := v.start(ctx, "TopicExists", attribute.String("topic.slug", slug))
	defer span.End()

	_, err := repo.GetTopic(ctx, v.DB, slug)
	return notFoundAs(err, ErrTopicNotFound)
}

// CommentExists returns the comment or ErrCommentNotFound.
func (v *ExistenceValidator) CommentExists(ctx context.Context, id int) (*domain.Comment, error) {
	ctx, span := v.start(ctx, "CommentExists", attribute.Int("comment.id", id))
	defer span.End()

	c, err := repo.GetComment(ctx, v.DB, id)
	return c, notFoundAs(err, ErrCommentNotFound)
}

func (v *ExistenceValidator) start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer("services/ExistenceValidator").Start(ctx, name, trace.WithAttributes(attrs...))
}

// notFoundAs replaces repo.ErrNotFound with target and passes any other
// error through unchanged.
func notFoundAs(err, target error) error {
	if errors.Is(err, repo.ErrNotFound) {
		return target
	}
	return err
}
