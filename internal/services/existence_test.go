package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExistenceValidator(t *testing.T) {
	v := NewExistenceValidator(newSeededDB(t))
	ctx := context.Background()

	a, err := v.ArticleExists(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, a.ArticleID)
	_, err = v.ArticleExists(ctx, 999)
	assert.ErrorIs(t, err, ErrArticleNotFound)

	u, err := v.UserExists(ctx, "butter_bridge")
	require.NoError(t, err)
	assert.Equal(t, "butter_bridge", u.Username)
	_, err = v.UserExists(ctx, "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)

	assert.NoError(t, v.TopicExists(ctx, "cats"))
	assert.NoError(t, v.TopicExists(ctx, ""), "empty slug means no filter")
	assert.ErrorIs(t, v.TopicExists(ctx, "dogs"), ErrTopicNotFound)

	c, err := v.CommentExists(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, c.CommentID)
	_, err = v.CommentExists(ctx, 999)
	assert.ErrorIs(t, err, ErrCommentNotFound)
}
