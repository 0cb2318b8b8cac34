package repo

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tbourn/go-news-backend/internal/fixtures"
)

// newRepoDB opens an isolated in-memory SQLite database. With seed=true the
// schema is created and the test dataset loaded.
func newRepoDB(t *testing.T, seed bool) *gorm.DB {
	t.Helper()

	db, err := OpenSQLite("file:repo_" + uuid.NewString() + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.Logger = logger.Default.LogMode(logger.Silent)

	// One connection keeps the shared in-memory database alive and serialized.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if seed {
		if err := Seed(context.Background(), db, fixtures.MustLoad(fixtures.Test)); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	return db
}
