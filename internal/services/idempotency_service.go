package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-news-backend/internal/repo"
)

// DefaultIdempotencyTTL is how long a create can be replayed by key.
const DefaultIdempotencyTTL = 24 * time.Hour

// IdempotencyService remembers which resource a keyed create produced so a
// retry with the same Idempotency-Key can be answered without inserting again.
type IdempotencyService struct {
	DB  *gorm.DB
	TTL time.Duration
}

// NewIdempotencyService returns a service with ttl, or DefaultIdempotencyTTL
// when ttl <= 0.
func NewIdempotencyService(db *gorm.DB, ttl time.Duration) *IdempotencyService {
	if ttl <= 0 {
		ttl = DefaultIdempotencyTTL
	}
	return &IdempotencyService{DB: db, TTL: ttl}
}

// Lookup reports the resource id recorded for (scope, key), if the record is
// still within its window at now.
func (s *IdempotencyService) Lookup(ctx context.Context, scope, key string, now time.Time) (int, bool, error) {
	rec, err := repo.GetIdempotency(ctx, s.DB, scope, key, now)
	if errors.Is(err, repo.ErrNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return rec.ResourceID, true, nil
}

// Remember records that (scope, key) created resourceID. Losing a race to a
// concurrent request with the same key is not an error.
func (s *IdempotencyService) Remember(ctx context.Context, scope, key string, resourceID int) error {
	_, err := repo.CreateIdempotency(ctx, s.DB, scope, key, resourceID, 201, s.TTL)
	if errors.Is(err, repo.ErrDuplicate) {
		return nil
	}
	return err
}

// Purge deletes records whose window closed before now.
func (s *IdempotencyService) Purge(ctx context.Context, now time.Time) (int64, error) {
	return repo.PurgeExpiredIdempotency(ctx, s.DB, now)
}
