package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbourn/go-news-backend/internal/services"
)

func decode(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(body, &m))
	return m
}

func assertMsg(t *testing.T, body []byte, want string) {
	t.Helper()
	m := decode(t, body)
	assert.Len(t, m, 1, "error body must only carry msg: %v", m)
	assert.Equal(t, want, m["msg"])
}

func TestArticleScopedRoutes_RejectNonNumericIDsBeforeServices(t *testing.T) {
	s := newStub()
	r := newTestRouter(s, nil)

	for _, tc := range []struct{ method, path, body string }{
		{http.MethodGet, "/api/articles/banana", ""},
		{http.MethodPatch, "/api/articles/banana", `{"inc_votes":1}`},
		{http.MethodDelete, "/api/articles/banana", ""},
		{http.MethodGet, "/api/articles/1e3/comments", ""},
		{http.MethodPost, "/api/articles/-1/comments", `{"username":"a","body":"b"}`},
	} {
		w := do(t, r, tc.method, tc.path, tc.body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "%s %s", tc.method, tc.path)
		assertMsg(t, w.Body.Bytes(), "Invalid article ID format")
	}

	for _, method := range []string{http.MethodPatch, http.MethodDelete} {
		w := do(t, r, method, "/api/comments/x1", `{"inc_votes":1}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assertMsg(t, w.Body.Bytes(), "Invalid comment ID format")
	}
	assert.Zero(t, s.calls, "services must not be called on invalid ids")
}

func TestVotes_PayloadValidation(t *testing.T) {
	s := newStub()
	r := newTestRouter(s, nil)

	tests := []struct {
		body   string
		status int
		msg    string
	}{
		{``, http.StatusBadRequest, "Missing inc_votes"},
		{`{}`, http.StatusBadRequest, "Missing inc_votes"},
		{`{"inc_votes":null}`, http.StatusBadRequest, "Missing inc_votes"},
		{`{"inc_votes":"cat"}`, http.StatusBadRequest, "Invalid inc_votes value"},
		{`{"inc_votes":1.5}`, http.StatusBadRequest, "Invalid inc_votes value"},
		{`{"inc_votes":`, http.StatusBadRequest, "Bad request"},
	}
	for _, tc := range tests {
		w := do(t, r, http.MethodPatch, "/api/articles/1", tc.body)
		assert.Equal(t, tc.status, w.Code, "body %q", tc.body)
		assertMsg(t, w.Body.Bytes(), tc.msg)
	}
	assert.Zero(t, s.calls)

	w := do(t, r, http.MethodPatch, "/api/articles/1", `{"inc_votes":-5}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, -5, s.gotInc)
	art := decode(t, w.Body.Bytes())["article"].(map[string]any)
	assert.Equal(t, float64(95), art["votes"])

	w = do(t, r, http.MethodPatch, "/api/comments/3", `{"inc_votes":"7"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 7, s.gotInc)
	assert.Contains(t, decode(t, w.Body.Bytes()), "comment")
}

func TestListArticles_PassesQueryAndMapsErrors(t *testing.T) {
	s := newStub()
	r := newTestRouter(s, nil)

	w := do(t, r, http.MethodGet, "/api/articles?sort_by=votes&order=ASC&topic=cats", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "votes", s.gotSortBy)
	assert.Equal(t, "ASC", s.gotOrder)
	assert.Equal(t, "cats", s.gotTopic)
	items := decode(t, w.Body.Bytes())["articles"].([]any)
	require.Len(t, items, 1)
	assert.NotContains(t, items[0].(map[string]any), "body")

	for err, want := range map[error]struct {
		status int
		msg    string
	}{
		services.ErrInvalidSortBy: {http.StatusBadRequest, "Invalid sort_by query"},
		services.ErrInvalidOrder:  {http.StatusBadRequest, "Invalid order query"},
		services.ErrTopicNotFound: {http.StatusNotFound, "Topic not found"},
	} {
		s.err = err
		w := do(t, r, http.MethodGet, "/api/articles", "")
		assert.Equal(t, want.status, w.Code)
		assertMsg(t, w.Body.Bytes(), want.msg)
	}
}

func TestCreateComment(t *testing.T) {
	s := newStub()
	r := newTestRouter(s, nil)

	w := do(t, r, http.MethodPost, "/api/articles/3/comments", `{"username":"butter_bridge","body":"hello"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	cm := decode(t, w.Body.Bytes())["comment"].(map[string]any)
	assert.Equal(t, float64(3), cm["article_id"])
	assert.Equal(t, "butter_bridge", s.gotCommentInput.Username)

	// An empty body reaches the service, which reports the missing fields.
	s.err = services.ErrMissingFields
	w = do(t, r, http.MethodPost, "/api/articles/3/comments", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assertMsg(t, w.Body.Bytes(), "Missing required fields: username and body")

	s.err = services.ErrUserNotFound
	w = do(t, r, http.MethodPost, "/api/articles/3/comments", `{"username":"ghost","body":"x"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assertMsg(t, w.Body.Bytes(), "User not found")

	s.err = nil
	w = do(t, r, http.MethodPost, "/api/articles/3/comments", `{"username": 5}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assertMsg(t, w.Body.Bytes(), "Bad request")
}

func TestCreate_IdempotentReplayAndRecord(t *testing.T) {
	s := newStub()
	lookup := func(_ context.Context, scope, key string, _ time.Time) (int, bool, error) {
		id, found := s.remembered[scope+"|"+key]
		return id, found, nil
	}
	r := newTestRouter(s, lookup)

	body := `{"username":"butter_bridge","body":"hello"}`
	w := do(t, r, http.MethodPost, "/api/articles/3/comments", body, "Idempotency-Key", "abc-1")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 12, s.remembered["POST /api/articles/3/comments|abc-1"])

	s.gotCommentInput = services.NewCommentInput{}
	w = do(t, r, http.MethodPost, "/api/articles/3/comments", body, "Idempotency-Key", "abc-1")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Empty(t, s.gotCommentInput.Username, "replay must not create again")
	cm := decode(t, w.Body.Bytes())["comment"].(map[string]any)
	assert.Equal(t, float64(12), cm["comment_id"])

	w = do(t, r, http.MethodPost, "/api/articles",
		`{"author":"lurker","title":"t","body":"b","topic":"cats"}`, "Idempotency-Key", "art-1")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 9, s.remembered["POST /api/articles|art-1"])
	art := decode(t, w.Body.Bytes())["article"].(map[string]any)
	assert.Equal(t, float64(0), art["comment_count"])
}

func TestTopicsAndUsers(t *testing.T) {
	s := newStub()
	r := newTestRouter(s, nil)

	w := do(t, r, http.MethodGet, "/api/topics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w.Body.Bytes())["topics"], 1)

	w = do(t, r, http.MethodPost, "/api/topics", `{"slug":"dogs","description":"Not cats"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	tp := decode(t, w.Body.Bytes())["topic"].(map[string]any)
	assert.Equal(t, "dogs", tp["slug"])

	s.err = services.ErrTopicAlreadyExists
	w = do(t, r, http.MethodPost, "/api/topics", `{"slug":"dogs","description":"Not cats"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assertMsg(t, w.Body.Bytes(), "Conflict: Topic already exists")

	s.err = nil
	w = do(t, r, http.MethodGet, "/api/users/lurker", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "lurker", decode(t, w.Body.Bytes())["user"].(map[string]any)["username"])

	s.err = services.ErrUserNotFound
	w = do(t, r, http.MethodGet, "/api/users/ghost", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assertMsg(t, w.Body.Bytes(), "User not found")
}

func TestDeletes(t *testing.T) {
	s := newStub()
	r := newTestRouter(s, nil)

	w := do(t, r, http.MethodDelete, "/api/articles/1", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Zero(t, w.Body.Len())

	s.err = services.ErrCommentNotFound
	w = do(t, r, http.MethodDelete, "/api/comments/999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assertMsg(t, w.Body.Bytes(), "Comment not found")
}

func TestGetEndpointsAndFallbacks(t *testing.T) {
	r := newTestRouter(newStub(), nil)

	w := do(t, r, http.MethodGet, "/api", "")
	require.Equal(t, http.StatusOK, w.Code)
	eps := decode(t, w.Body.Bytes())["endpoints"].(map[string]any)
	assert.Contains(t, eps, "GET /api/articles")
	assert.Contains(t, eps, "PATCH /api/comments/:comment_id")

	w = do(t, r, http.MethodGet, "/api/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assertMsg(t, w.Body.Bytes(), "Route not found")

	w = do(t, r, http.MethodPut, "/api/topics", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assertMsg(t, w.Body.Bytes(), "Method not allowed")
}

func TestUnknownErrorIs500WithoutLeaking(t *testing.T) {
	s := newStub()
	s.err = errors.New("pq: password authentication failed for user news")
	r := newTestRouter(s, nil)

	w := do(t, r, http.MethodGet, "/api/topics", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assertMsg(t, w.Body.Bytes(), "Internal Server Error")
	assert.NotContains(t, w.Body.String(), "password")
}
