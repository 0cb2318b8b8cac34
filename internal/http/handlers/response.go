// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the response helpers shared by all endpoints. Every error
// body has exactly one field, msg; success bodies wrap their payload under a
// key named after the resource.
//
// Example error response:
//
//	HTTP/1.1 404 Not Found
//	{ "msg": "Article not found" }
//
// Example success response:
//
//	HTTP/1.1 200 OK
//	{ "topics": [ { "slug": "coding", "description": "Code is love" } ] }
package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-news-backend/internal/domain"
	"github.com/tbourn/go-news-backend/internal/http/middleware"
	"github.com/tbourn/go-news-backend/internal/services"
)

// ErrorResponse is the error envelope returned by all endpoints. The request
// id travels in the X-Request-ID response header.
type ErrorResponse struct {
	// Human-readable message, safe to show to users
	Msg string `json:"msg" example:"Article not found"`
}

// Success envelopes, named for the OpenAPI docs.
type (
	TopicsResponse struct {
		Topics []domain.Topic `json:"topics"`
	}
	TopicResponse struct {
		Topic *domain.Topic `json:"topic"`
	}
	ArticlesResponse struct {
		Articles []domain.ArticleSummary `json:"articles"`
	}
	ArticleResponse struct {
		Article *domain.ArticleWithCount `json:"article"`
	}
	ArticleVotesResponse struct {
		Article *domain.Article `json:"article"`
	}
	CommentsResponse struct {
		Comments []domain.Comment `json:"comments"`
	}
	CommentResponse struct {
		Comment *domain.Comment `json:"comment"`
	}
	UsersResponse struct {
		Users []domain.User `json:"users"`
	}
	UserResponse struct {
		User *domain.User `json:"user"`
	}
)

// fail aborts the request with {"msg": msg}. For 5xx the cause is attached to
// the gin context and logged with the request-scoped logger; it is never
// written to the client.
func fail(c *gin.Context, status int, msg string, cause error) {
	if status >= http.StatusInternalServerError {
		if cause != nil {
			_ = c.Error(cause)
		}
		middleware.LoggerFrom(c).Error().
			Err(cause).
			Int("status", status).
			Msg("api error")
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Msg: msg})
}

// Fail is the exported variant of fail for router-level handlers.
func Fail(c *gin.Context, status int, msg string) { fail(c, status, msg, nil) }

func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

func noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// bindJSON decodes the request body into dst. An empty body leaves dst at its
// zero value so the caller reports the missing fields; any other decoding
// problem is services.ErrMalformedBody.
func bindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return services.ErrMalformedBody
	}
	return nil
}
