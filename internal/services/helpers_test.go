package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tbourn/go-news-backend/internal/fixtures"
	"github.com/tbourn/go-news-backend/internal/repo"
)

// newSeededDB returns an isolated in-memory store loaded with the test
// dataset.
func newSeededDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := repo.OpenSQLite("file:svc_" + uuid.NewString() + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.Logger = logger.Default.LogMode(logger.Silent)
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := repo.Seed(context.Background(), db, fixtures.MustLoad(fixtures.Test)); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return db
}
