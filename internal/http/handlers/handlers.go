// Package handlers exposes the REST endpoints of the news API:
//
//   - GET    /api
//   - GET    /api/topics, POST /api/topics
//   - GET    /api/articles, POST /api/articles
//   - GET    /api/articles/{article_id}, PATCH, DELETE
//   - GET    /api/articles/{article_id}/comments, POST
//   - PATCH  /api/comments/{comment_id}, DELETE
//   - GET    /api/users, GET /api/users/{username}
//
// Handlers are transport-thin: they parse path and body input, call the
// application services, and translate results into HTTP responses through
// mapError.
package handlers

import (
	"context"

	"github.com/tbourn/go-news-backend/internal/domain"
	"github.com/tbourn/go-news-backend/internal/services"
)

//
// Service contracts (context-aware)
//

// TopicService lists and creates topics.
type TopicService interface {
	List(ctx context.Context) ([]domain.Topic, error)
	Create(ctx context.Context, in services.NewTopicInput) (*domain.Topic, error)
}

// ArticleService covers the article use-cases.
type ArticleService interface {
	// List validates the sort parameters and topic filter and returns summaries.
	List(ctx context.Context, sortBy, order, topic string) ([]domain.ArticleSummary, error)
	Get(ctx context.Context, id int) (*domain.ArticleWithCount, error)
	Create(ctx context.Context, in services.NewArticleInput) (*domain.ArticleWithCount, error)
	UpdateVotes(ctx context.Context, id, inc int) (*domain.Article, error)
	Delete(ctx context.Context, id int) error
}

// CommentService covers the comment use-cases.
type CommentService interface {
	// ListForArticle returns an empty slice only when the article exists.
	ListForArticle(ctx context.Context, articleID int) ([]domain.Comment, error)
	Get(ctx context.Context, id int) (*domain.Comment, error)
	Create(ctx context.Context, articleID int, in services.NewCommentInput) (*domain.Comment, error)
	UpdateVotes(ctx context.Context, id, inc int) (*domain.Comment, error)
	Delete(ctx context.Context, id int) error
}

// UserService is the read-only user directory.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, username string) (*domain.User, error)
}

// IdempotencyRecorder remembers which resource a keyed create produced.
type IdempotencyRecorder interface {
	Remember(ctx context.Context, scope, key string, resourceID int) error
}

// Handlers groups the HTTP endpoints. It depends on abstract service
// interfaces to keep transport concerns separate from business logic.
type Handlers struct {
	topics   TopicService
	articles ArticleService
	comments CommentService
	users    UserService
	idem     IdempotencyRecorder
}

// New constructs Handlers bound to the given services. idem may be nil, in
// which case Idempotency-Key headers are validated but never recorded.
func New(topics TopicService, articles ArticleService, comments CommentService, users UserService, idem IdempotencyRecorder) *Handlers {
	return &Handlers{topics: topics, articles: articles, comments: comments, users: users, idem: idem}
}
