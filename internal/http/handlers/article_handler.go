package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-news-backend/internal/http/middleware"
	"github.com/tbourn/go-news-backend/internal/services"
)

// VotesRequest is the payload of the vote endpoints. inc_votes is kept raw
// so absence, null and non-integers can be told apart.
type VotesRequest struct {
	IncVotes json.RawMessage `json:"inc_votes" swaggertype:"integer" example:"-5"`
}

// ListArticles godoc
// @ID          listArticles
// @Summary     List articles
// @Description Articles without bodies, each with a live comment_count.
// @Tags        Articles
// @Produce     json
// @Param       sort_by  query     string  false  "Sort column"  Enums(article_id,title,topic,author,created_at,votes,comment_count)  default(created_at)
// @Param       order    query     string  false  "Direction"    Enums(asc,desc)  default(desc)
// @Param       topic    query     string  false  "Topic slug filter"
// @Success     200      {object}  handlers.ArticlesResponse
// @Failure     400      {object}  handlers.ErrorResponse  "Invalid sort_by query / Invalid order query"
// @Failure     404      {object}  handlers.ErrorResponse  "Topic not found"
// @Router      /articles [get]
func (h *Handlers) ListArticles(c *gin.Context) {
	items, err := h.articles.List(c.Request.Context(), c.Query("sort_by"), c.Query("order"), c.Query("topic"))
	if err != nil {
		mapError(c, err)
		return
	}
	ok(c, http.StatusOK, ArticlesResponse{Articles: items})
}

// GetArticle godoc
// @ID          getArticle
// @Summary     Get an article
// @Tags        Articles
// @Produce     json
// @Param       article_id  path      int  true  "Article ID"  example(1)
// @Success     200         {object}  handlers.ArticleResponse
// @Failure     400         {object}  handlers.ErrorResponse  "Invalid article ID format"
// @Failure     404         {object}  handlers.ErrorResponse  "Article not found"
// @Router      /articles/{article_id} [get]
func (h *Handlers) GetArticle(c *gin.Context) {
	id, err := services.ParseArticleID(c.Param("article_id"))
	if err != nil {
		mapError(c, err)
		return
	}
	a, err := h.articles.Get(c.Request.Context(), id)
	if err != nil {
		mapError(c, err)
		return
	}
	ok(c, http.StatusOK, ArticleResponse{Article: a})
}

// CreateArticle godoc
// @ID          createArticle
// @Summary     Create an article
// @Description Checks the author, then the topic. A repeated Idempotency-Key serves the article created first.
// @Tags        Articles
// @Accept      json
// @Produce     json
// @Param       Idempotency-Key  header    string                    false  "Retry key"
// @Param       body             body      services.NewArticleInput  true   "Article payload"
// @Success     201              {object}  handlers.ArticleResponse
// @Failure     400              {object}  handlers.ErrorResponse  "Missing required fields"
// @Failure     404              {object}  handlers.ErrorResponse  "User not found / Topic not found"
// @Router      /articles [post]
func (h *Handlers) CreateArticle(c *gin.Context) {
	ctx := c.Request.Context()
	if id, replay := middleware.ReplayResourceID(c); replay {
		a, err := h.articles.Get(ctx, id)
		if err == nil {
			ok(c, http.StatusCreated, ArticleResponse{Article: a})
			return
		}
		// The original article is gone; create it again.
	}

	var in services.NewArticleInput
	if err := bindJSON(c, &in); err != nil {
		mapError(c, err)
		return
	}
	a, err := h.articles.Create(ctx, in)
	if err != nil {
		mapError(c, err)
		return
	}
	h.remember(c, a.ArticleID)
	ok(c, http.StatusCreated, ArticleResponse{Article: a})
}

// UpdateArticleVotes godoc
// @ID          updateArticleVotes
// @Summary     Vote on an article
// @Tags        Articles
// @Accept      json
// @Produce     json
// @Param       article_id  path      int                    true  "Article ID"  example(1)
// @Param       body        body      handlers.VotesRequest  true  "Vote delta"
// @Success     200         {object}  handlers.ArticleVotesResponse
// @Failure     400         {object}  handlers.ErrorResponse  "Invalid article ID format / Missing inc_votes / Invalid inc_votes value"
// @Failure     404         {object}  handlers.ErrorResponse  "Article not found"
// @Router      /articles/{article_id} [patch]
func (h *Handlers) UpdateArticleVotes(c *gin.Context) {
	id, err := services.ParseArticleID(c.Param("article_id"))
	if err != nil {
		mapError(c, err)
		return
	}
	inc, err := incVotes(c)
	if err != nil {
		mapError(c, err)
		return
	}
	a, err := h.articles.UpdateVotes(c.Request.Context(), id, inc)
	if err != nil {
		mapError(c, err)
		return
	}
	ok(c, http.StatusOK, ArticleVotesResponse{Article: a})
}

// DeleteArticle godoc
// @ID          deleteArticle
// @Summary     Delete an article and its comments
// @Tags        Articles
// @Param       article_id  path  int  true  "Article ID"  example(1)
// @Success     204  {string}  string  "No Content"
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid article ID format"
// @Failure     404  {object}  handlers.ErrorResponse  "Article not found"
// @Router      /articles/{article_id} [delete]
func (h *Handlers) DeleteArticle(c *gin.Context) {
	id, err := services.ParseArticleID(c.Param("article_id"))
	if err != nil {
		mapError(c, err)
		return
	}
	if err := h.articles.Delete(c.Request.Context(), id); err != nil {
		mapError(c, err)
		return
	}
	noContent(c)
}

// incVotes decodes a VotesRequest body and parses its inc_votes.
func incVotes(c *gin.Context) (int, error) {
	var req VotesRequest
	if err := bindJSON(c, &req); err != nil {
		return 0, err
	}
	return services.ParseIncVotes(req.IncVotes)
}

// remember records a keyed create so retries can be replayed. Failures are
// logged and never fail the request that already succeeded.
func (h *Handlers) remember(c *gin.Context, resourceID int) {
	key, scope, has := middleware.GetIdempotencyKey(c)
	if !has || h.idem == nil {
		return
	}
	if err := h.idem.Remember(c.Request.Context(), scope, key, resourceID); err != nil {
		middleware.LoggerFrom(c).Warn().Err(err).Str("idempotency_key", key).Msg("idempotency record failed")
	}
}
