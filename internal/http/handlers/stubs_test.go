package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-news-backend/internal/domain"
	"github.com/tbourn/go-news-backend/internal/http/middleware"
	"github.com/tbourn/go-news-backend/internal/services"
)

// stubStore implements every handler service contract with canned results
// and counts calls so tests can assert that validation short-circuits.
type stubStore struct {
	calls int

	err error

	topic    *domain.Topic
	article  *domain.ArticleWithCount
	comment  *domain.Comment
	comments []domain.Comment

	gotSortBy, gotOrder, gotTopic string
	gotInc                        int
	gotArticleInput               services.NewArticleInput
	gotCommentInput               services.NewCommentInput

	remembered map[string]int
}

func (s *stubStore) List(ctx context.Context) ([]domain.Topic, error) {
	s.calls++
	return []domain.Topic{{Slug: "cats", Description: "Not dogs"}}, s.err
}

func (s *stubStore) Create(ctx context.Context, in services.NewTopicInput) (*domain.Topic, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Topic{Slug: in.Slug, Description: in.Description}, nil
}

type stubArticles struct{ *stubStore }

func (s stubArticles) List(ctx context.Context, sortBy, order, topic string) ([]domain.ArticleSummary, error) {
	s.calls++
	s.gotSortBy, s.gotOrder, s.gotTopic = sortBy, order, topic
	if s.err != nil {
		return nil, s.err
	}
	return []domain.ArticleSummary{{ArticleID: 1, Title: "t", CommentCount: 2}}, nil
}

func (s stubArticles) Get(ctx context.Context, id int) (*domain.ArticleWithCount, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	a := *s.article
	a.ArticleID = id
	return &a, nil
}

func (s stubArticles) Create(ctx context.Context, in services.NewArticleInput) (*domain.ArticleWithCount, error) {
	s.calls++
	s.gotArticleInput = in
	if s.err != nil {
		return nil, s.err
	}
	return s.article, nil
}

func (s stubArticles) UpdateVotes(ctx context.Context, id, inc int) (*domain.Article, error) {
	s.calls++
	s.gotInc = inc
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Article{ArticleID: id, Votes: 100 + inc}, nil
}

func (s stubArticles) Delete(ctx context.Context, id int) error {
	s.calls++
	return s.err
}

type stubComments struct{ *stubStore }

func (s stubComments) ListForArticle(ctx context.Context, articleID int) ([]domain.Comment, error) {
	s.calls++
	return s.comments, s.err
}

func (s stubComments) Get(ctx context.Context, id int) (*domain.Comment, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	c := *s.comment
	c.CommentID = id
	return &c, nil
}

func (s stubComments) Create(ctx context.Context, articleID int, in services.NewCommentInput) (*domain.Comment, error) {
	s.calls++
	s.gotCommentInput = in
	if s.err != nil {
		return nil, s.err
	}
	c := *s.comment
	c.ArticleID = articleID
	return &c, nil
}

func (s stubComments) UpdateVotes(ctx context.Context, id, inc int) (*domain.Comment, error) {
	s.calls++
	s.gotInc = inc
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Comment{CommentID: id, Votes: inc}, nil
}

func (s stubComments) Delete(ctx context.Context, id int) error {
	s.calls++
	return s.err
}

type stubUsers struct{ *stubStore }

func (s stubUsers) List(ctx context.Context) ([]domain.User, error) {
	s.calls++
	return []domain.User{{Username: "lurker"}}, s.err
}

func (s stubUsers) Get(ctx context.Context, username string) (*domain.User, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &domain.User{Username: username}, nil
}

func (s *stubStore) Remember(ctx context.Context, scope, key string, id int) error {
	if s.remembered == nil {
		s.remembered = map[string]int{}
	}
	s.remembered[scope+"|"+key] = id
	return nil
}

func newStub() *stubStore {
	return &stubStore{
		article: &domain.ArticleWithCount{Article: domain.Article{ArticleID: 9, Title: "t", Votes: 0}},
		comment: &domain.Comment{CommentID: 12, Author: "butter_bridge", Body: "hello", CreatedAt: time.Now()},
	}
}

// newTestRouter wires the handlers the same way the real router does, minus
// the store.
func newTestRouter(s *stubStore, lookup middleware.IdempotencyLookup) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(s, stubArticles{s}, stubComments{s}, stubUsers{s}, s)

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.NoRoute(NotFound)
	r.NoMethod(MethodNotAllowed)
	r.Use(middleware.IdempotencyValidator(middleware.IdempotencyOptions{}, lookup))

	api := r.Group("/api")
	api.GET("", h.GetEndpoints)
	api.GET("/topics", h.ListTopics)
	api.POST("/topics", h.CreateTopic)
	api.GET("/articles", h.ListArticles)
	api.POST("/articles", h.CreateArticle)
	api.GET("/articles/:article_id", h.GetArticle)
	api.PATCH("/articles/:article_id", h.UpdateArticleVotes)
	api.DELETE("/articles/:article_id", h.DeleteArticle)
	api.GET("/articles/:article_id/comments", h.ListArticleComments)
	api.POST("/articles/:article_id/comments", h.CreateComment)
	api.PATCH("/comments/:comment_id", h.UpdateCommentVotes)
	api.DELETE("/comments/:comment_id", h.DeleteComment)
	api.GET("/users", h.ListUsers)
	api.GET("/users/:username", h.GetUser)
	return r
}

func do(t *testing.T, r http.Handler, method, path, body string, hdr ...string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(hdr); i += 2 {
		req.Header.Set(hdr[i], hdr[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
