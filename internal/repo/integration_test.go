//go:build integration

package repo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"

	"github.com/tbourn/go-news-backend/internal/fixtures"
)

// newPostgresDB starts a throwaway PostgreSQL container and returns a seeded
// store connected to it.
func newPostgresDB(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	pg, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("nc_news_test"),
		postgres.WithUsername("news"),
		postgres.WithPassword("news"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		t.Fatalf("start postgres: %v", err)
	}
	t.Cleanup(func() {
		if err := pg.Terminate(ctx); err != nil {
			t.Logf("terminate postgres: %v", err)
		}
	})

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("connection string: %v", err)
	}
	db, err := Open(Options{Driver: DriverPostgres, DSN: dsn})
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	if err := Seed(ctx, db, fixtures.MustLoad(fixtures.Test)); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return db
}

func TestPostgres_ListingAndCounts(t *testing.T) {
	db := newPostgresDB(t)
	ctx := context.Background()

	q, err := NewArticleListQuery("comment_count", "desc", "mitch")
	require.NoError(t, err)
	got, err := ListArticles(ctx, db, q)
	require.NoError(t, err)
	require.Len(t, got, 7)
	assert.Equal(t, 1, got[0].ArticleID)
	assert.Equal(t, int64(5), got[0].CommentCount)

	a, err := GetArticleWithCount(ctx, db, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(5), a.CommentCount)
}

func TestPostgres_FaultClassification(t *testing.T) {
	db := newPostgresDB(t)
	ctx := context.Background()

	_, err := CreateComment(ctx, db, 9999, "lurker", "x")
	assert.Equal(t, FaultForeignKey, Classify(err))

	_, err = CreateTopic(ctx, db, "cats", "dup", "")
	assert.ErrorIs(t, err, ErrDuplicate)

	err = db.WithContext(ctx).Exec("SELECT * FROM articles WHERE article_id = 'not-a-number'").Error
	assert.Equal(t, FaultInvalidInput, Classify(err))

	err = db.WithContext(ctx).Exec("INSERT INTO comments (article_id, author) VALUES (1, 'lurker')").Error
	assert.Equal(t, FaultNotNull, Classify(err))
}

func TestPostgres_DeleteCascades(t *testing.T) {
	db := newPostgresDB(t)
	ctx := context.Background()

	require.NoError(t, DeleteArticle(ctx, db, 1))
	comments, err := ListCommentsByArticle(ctx, db, 1)
	require.NoError(t, err)
	assert.Empty(t, comments)
}
