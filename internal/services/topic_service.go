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

// TopicService lists and creates topics.
type TopicService struct {
	DB *gorm.DB
}

// List returns all topics.
func (s *TopicService) List(ctx context.Context) ([]domain.Topic, error) {
	ctx, span := otel.Tracer("services/TopicService").Start(ctx, "List")
	defer span.End()
	return repo.ListTopics(ctx, s.DB)
}

// Create validates in and inserts the topic with its fields exactly as
// submitted. A slug that is already taken fails with ErrTopicAlreadyExists.
func (s *TopicService) Create(ctx context.Context, in NewTopicInput) (*domain.Topic, error) {
	ctx, span := otel.Tracer("services/TopicService").Start(ctx, "Create",
		trace.WithAttributes(attribute.String("topic.slug", in.Slug)),
	)
	defer span.End()

	if err := in.Validate(); err != nil {
		return nil, err
	}
	t, err := repo.CreateTopic(ctx, s.DB, in.Slug, in.Description, in.ImgURL)
	if errors.Is(err, repo.ErrDuplicate) {
		return nil, ErrTopicAlreadyExists
	}
	return t, err
}
