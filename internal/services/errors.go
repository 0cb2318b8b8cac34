// Package services defines the business logic for topics, articles, users and
// comments. This file centralizes the service-level error values so that they
// can be consistently returned by service methods and checked by callers.
//
// Translation into user-facing messages and HTTP status codes is performed at
// the handler layer.
package services

import (
	"errors"

	"github.com/tbourn/go-news-backend/internal/repo"
)

// Request validation errors. These are raised before any store access.
var (
	// ErrInvalidArticleID is returned when an article id is not made of
	// decimal digits only.
	ErrInvalidArticleID = errors.New("invalid article id format")

	// ErrInvalidCommentID is returned when a comment id is not made of
	// decimal digits only.
	ErrInvalidCommentID = errors.New("invalid comment id format")

	// ErrMissingFields is returned when a comment payload lacks username or body.
	ErrMissingFields = errors.New("missing required fields: username and body")

	// ErrMissingRequiredFields is returned when an article or topic payload
	// lacks one of its required fields.
	ErrMissingRequiredFields = errors.New("missing required fields")

	// ErrMissingIncVotes is returned when a vote payload has no inc_votes.
	ErrMissingIncVotes = errors.New("missing inc_votes")

	// ErrInvalidIncVotes is returned when inc_votes is present but not an
	// integer.
	ErrInvalidIncVotes = errors.New("invalid inc_votes value")

	// ErrMalformedBody is returned when a request body is not valid JSON for
	// the expected shape.
	ErrMalformedBody = errors.New("malformed request body")
)

// Listing errors, shared with the query builder's allow-list.
var (
	ErrInvalidSortBy = repo.ErrInvalidSortColumn
	ErrInvalidOrder  = repo.ErrInvalidOrder
)

// Existence and conflict errors.
var (
	ErrArticleNotFound    = errors.New("article not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrTopicNotFound      = errors.New("topic not found")
	ErrCommentNotFound    = errors.New("comment not found")
	ErrTopicAlreadyExists = errors.New("topic already exists")
)
