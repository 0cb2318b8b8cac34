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

// UserService exposes the read-only user directory.
type UserService struct {
	DB *gorm.DB
}

// List returns all users.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	ctx, span := otel.Tracer("services/UserService").Start(ctx, "List")
	defer span.End()
	return repo.ListUsers(ctx, s.DB)
}

// Get returns the user or ErrUserNotFound.
func (s *UserService) Get(ctx context.Context, username string) (*domain.User, error) {
	ctx, span := otel.Tracer("services/UserService").Start(ctx, "Get",
		trace.WithAttributes(attribute.String("user.username", username)),
	)
	defer span.End()

	u, err := repo.GetUser(ctx, s.DB, username)
	if err != nil {
		return nil, notFoundAs(err, ErrUserNotFound)
	}
	return u, nil
}
