package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-news-backend/internal/http/middleware"
	"github.com/tbourn/go-news-backend/internal/repo"
	"github.com/tbourn/go-news-backend/internal/services"
)

// Client-facing messages for router-level and store-level failures.
const (
	MsgRouteNotFound    = "Route not found"
	MsgMethodNotAllowed = "Method not allowed"
	MsgInvalidInput     = "Invalid input"
	MsgBadRequest       = "Bad request"
	MsgInternal         = "Internal Server Error"
)

// errorTable maps service errors to their HTTP status and message.
var errorTable = []struct {
	err    error
	status int
	msg    string
}{
	{services.ErrInvalidArticleID, http.StatusBadRequest, "Invalid article ID format"},
	{services.ErrInvalidCommentID, http.StatusBadRequest, "Invalid comment ID format"},
	{services.ErrMissingFields, http.StatusBadRequest, "Missing required fields: username and body"},
	{services.ErrMissingRequiredFields, http.StatusBadRequest, "Missing required fields"},
	{services.ErrMissingIncVotes, http.StatusBadRequest, "Missing inc_votes"},
	{services.ErrInvalidIncVotes, http.StatusBadRequest, "Invalid inc_votes value"},
	{services.ErrInvalidSortBy, http.StatusBadRequest, "Invalid sort_by query"},
	{services.ErrInvalidOrder, http.StatusBadRequest, "Invalid order query"},
	{services.ErrMalformedBody, http.StatusBadRequest, MsgBadRequest},
	{services.ErrArticleNotFound, http.StatusNotFound, "Article not found"},
	{services.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{services.ErrTopicNotFound, http.StatusNotFound, "Topic not found"},
	{services.ErrCommentNotFound, http.StatusNotFound, "Comment not found"},
	{services.ErrTopicAlreadyExists, http.StatusConflict, "Conflict: Topic already exists"},
}

// mapError writes the response for err. Known service errors use the fixed
// table; anything else is a raw store error classified by repo.Classify and
// counted in newsapi_store_faults_total.
func mapError(c *gin.Context, err error) {
	for _, e := range errorTable {
		if errors.Is(err, e.err) {
			fail(c, e.status, e.msg, nil)
			return
		}
	}

	fault := repo.Classify(err)
	middleware.ObserveStoreFault(fault.String())
	switch fault {
	case repo.FaultInvalidInput:
		fail(c, http.StatusBadRequest, MsgInvalidInput, nil)
	case repo.FaultNotNull, repo.FaultForeignKey:
		fail(c, http.StatusBadRequest, MsgBadRequest, nil)
	default:
		fail(c, http.StatusInternalServerError, MsgInternal, err)
	}
}

// NotFound answers requests that matched no route.
func NotFound(c *gin.Context) { Fail(c, http.StatusNotFound, MsgRouteNotFound) }

// MethodNotAllowed answers requests whose path exists under another method.
func MethodNotAllowed(c *gin.Context) { Fail(c, http.StatusMethodNotAllowed, MsgMethodNotAllowed) }
