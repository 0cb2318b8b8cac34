package repo

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-news-backend/internal/domain"
)

func newIdemDB(t *testing.T) *gorm.DB {
	t.Helper()
	db := newRepoDB(t, false)
	if err := db.AutoMigrate(&domain.Idempotency{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func TestGetIdempotency_BlankScopeOrKey_ReturnsNotFound(t *testing.T) {
	db := newIdemDB(t)
	now := time.Now().UTC()

	if rec, err := GetIdempotency(context.Background(), db, "  ", "k1", now); rec != nil || err != ErrNotFound {
		t.Fatalf("expected (nil, ErrNotFound) for blank scope, got (%v, %v)", rec, err)
	}
	if rec, err := GetIdempotency(context.Background(), db, "POST /api/topics", "", now); rec != nil || err != ErrNotFound {
		t.Fatalf("expected (nil, ErrNotFound) for blank key, got (%v, %v)", rec, err)
	}
}

func TestIdempotency_CreateThenGet(t *testing.T) {
	db := newIdemDB(t)
	ctx := context.Background()
	scope := "POST /api/articles/1/comments"

	rec, err := CreateIdempotency(ctx, db, scope, "k1", 42, 201, time.Hour)
	if err != nil {
		t.Fatalf("CreateIdempotency: %v", err)
	}
	if rec.ID == "" || !rec.ExpiresAt.After(rec.CreatedAt) {
		t.Fatalf("unexpected record: %+v", rec)
	}

	got, err := GetIdempotency(ctx, db, scope, "k1", time.Now().UTC())
	if err != nil {
		t.Fatalf("GetIdempotency: %v", err)
	}
	if got.ResourceID != 42 || got.Status != 201 {
		t.Fatalf("unexpected record: %+v", got)
	}

	// Same key under another scope is independent.
	if _, err := GetIdempotency(ctx, db, "POST /api/articles/2/comments", "k1", time.Now().UTC()); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for other scope, got %v", err)
	}
}

func TestCreateIdempotency_DuplicateReturnsErrDuplicate(t *testing.T) {
	db := newIdemDB(t)
	ctx := context.Background()

	if _, err := CreateIdempotency(ctx, db, "POST /api/articles", "k1", 1, 201, time.Hour); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := CreateIdempotency(ctx, db, "POST /api/articles", "k1", 2, 201, time.Hour); err != ErrDuplicate {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestIdempotency_ExpiredIsInvisibleAndPurged(t *testing.T) {
	db := newIdemDB(t)
	ctx := context.Background()

	if _, err := CreateIdempotency(ctx, db, "POST /api/articles", "old", 1, 201, time.Minute); err != nil {
		t.Fatalf("create old: %v", err)
	}
	if _, err := CreateIdempotency(ctx, db, "POST /api/articles", "fresh", 2, 201, time.Hour); err != nil {
		t.Fatalf("create fresh: %v", err)
	}

	later := time.Now().UTC().Add(10 * time.Minute)
	if _, err := GetIdempotency(ctx, db, "POST /api/articles", "old", later); err != ErrNotFound {
		t.Fatalf("expected expired record to be invisible, got %v", err)
	}

	n, err := PurgeExpiredIdempotency(ctx, db, later)
	if err != nil {
		t.Fatalf("purge: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 purged, got %d", n)
	}
	if _, err := GetIdempotency(ctx, db, "POST /api/articles", "fresh", later); err != nil {
		t.Fatalf("fresh record should survive purge: %v", err)
	}
}
