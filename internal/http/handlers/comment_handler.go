package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-news-backend/internal/http/middleware"
	"github.com/tbourn/go-news-backend/internal/services"
)

// ListArticleComments godoc
// @ID          listArticleComments
// @Summary     List an article's comments
// @Description Most recent first. An existing article without comments yields an empty list.
// @Tags        Comments
// @Produce     json
// @Param       article_id  path      int  true  "Article ID"  example(1)
// @Success     200         {object}  handlers.CommentsResponse
// @Failure     400         {object}  handlers.ErrorResponse  "Invalid article ID format"
// @Failure     404         {object}  handlers.ErrorResponse  "Article not found"
// @Router      /articles/{article_id}/comments [get]
func (h *Handlers) ListArticleComments(c *gin.Context) {
	id, err := services.ParseArticleID(c.Param("article_id"))
	if err != nil {
		mapError(c, err)
		return
	}
	items, err := h.comments.ListForArticle(c.Request.Context(), id)
	if err != nil {
		mapError(c, err)
		return
	}
	ok(c, http.StatusOK, CommentsResponse{Comments: items})
}

// CreateComment godoc
// @ID          createComment
// @Summary     Comment on an article
// @Description Checks the article, then the user. A repeated Idempotency-Key serves the comment created first.
// @Tags        Comments
// @Accept      json
// @Produce     json
// @Param       Idempotency-Key  header    string                    false  "Retry key"
// @Param       article_id       path      int                       true   "Article ID"  example(1)
// @Param       body             body      services.NewCommentInput  true   "Comment payload"
// @Success     201              {object}  handlers.CommentResponse
// @Failure     400              {object}  handlers.ErrorResponse  "Invalid article ID format / Missing required fields: username and body"
// @Failure     404              {object}  handlers.ErrorResponse  "Article not found / User not found"
// @Router      /articles/{article_id}/comments [post]
func (h *Handlers) CreateComment(c *gin.Context) {
	articleID, err := services.ParseArticleID(c.Param("article_id"))
	if err != nil {
		mapError(c, err)
		return
	}
	ctx := c.Request.Context()
	if id, replay := middleware.ReplayResourceID(c); replay {
		if cm, err := h.comments.Get(ctx, id); err == nil {
			ok(c, http.StatusCreated, CommentResponse{Comment: cm})
			return
		}
	}

	var in services.NewCommentInput
	if err := bindJSON(c, &in); err != nil {
		mapError(c, err)
		return
	}
	cm, err := h.comments.Create(ctx, articleID, in)
	if err != nil {
		mapError(c, err)
		return
	}
	h.remember(c, cm.CommentID)
	ok(c, http.StatusCreated, CommentResponse{Comment: cm})
}

// UpdateCommentVotes godoc
// @ID          updateCommentVotes
// @Summary     Vote on a comment
// @Tags        Comments
// @Accept      json
// @Produce     json
// @Param       comment_id  path      int                    true  "Comment ID"  example(1)
// @Param       body        body      handlers.VotesRequest  true  "Vote delta"
// @Success     200         {object}  handlers.CommentResponse
// @Failure     400         {object}  handlers.ErrorResponse  "Invalid comment ID format / Missing inc_votes / Invalid inc_votes value"
// @Failure     404         {object}  handlers.ErrorResponse  "Comment not found"
// @Router      /comments/{comment_id} [patch]
func (h *Handlers) UpdateCommentVotes(c *gin.Context) {
	id, err := services.ParseCommentID(c.Param("comment_id"))
	if err != nil {
		mapError(c, err)
		return
	}
	inc, err := incVotes(c)
	if err != nil {
		mapError(c, err)
		return
	}
	cm, err := h.comments.UpdateVotes(c.Request.Context(), id, inc)
	if err != nil {
		mapError(c, err)
		return
	}
	ok(c, http.StatusOK, CommentResponse{Comment: cm})
}

// DeleteComment godoc
// @ID          deleteComment
// @Summary     Delete a comment
// @Tags        Comments
// @Param       comment_id  path  int  true  "Comment ID"  example(1)
// @Success     204  {string}  string  "No Content"
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid comment ID format"
// @Failure     404  {object}  handlers.ErrorResponse  "Comment not found"
// @Router      /comments/{comment_id} [delete]
func (h *Handlers) DeleteComment(c *gin.Context) {
	id, err := services.ParseCommentID(c.Param("comment_id"))
	if err != nil {
		mapError(c, err)
		return
	}
	if err := h.comments.Delete(c.Request.Context(), id); err != nil {
		mapError(c, err)
		return
	}
	noContent(c)
}
