// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements idempotency support for create endpoints (POST). It
// validates an Idempotency-Key request header, asks a lookup whether the same
// key already produced a resource in the same scope, and annotates the request
// context so downstream handlers can:
//   - read the key and its scope (GetIdempotencyKey)
//   - serve the previously created resource instead of inserting again
//     (ReplayResourceID)
//
// Persistence stays behind the narrow IdempotencyLookup function type.
package middleware

import (
	"context"
	"net/http"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
)

// HeaderIdempotencyKey is the request header carrying the client's key.
const HeaderIdempotencyKey = "Idempotency-Key"

const (
	ctxKeyIdemKey    = "idem.key"
	ctxKeyIdemScope  = "idem.scope"
	ctxKeyIdemReplay = "idem.replay" // int: resource id of the earlier create
)

// GetIdempotencyKey returns the validated key and the scope it applies to.
// The boolean reports whether a key was supplied.
func GetIdempotencyKey(c *gin.Context) (key, scope string, ok bool) {
	k, _ := c.Get(ctxKeyIdemKey)
	s, _ := c.Get(ctxKeyIdemScope)
	key, _ = k.(string)
	scope, _ = s.(string)
	return key, scope, key != ""
}

// ReplayResourceID returns the id of the resource an earlier request with the
// same key created, if any.
func ReplayResourceID(c *gin.Context) (int, bool) {
	v, ok := c.Get(ctxKeyIdemReplay)
	if !ok {
		return 0, false
	}
	id, ok := v.(int)
	return id, ok
}

// IdempotencyScope is the namespace a key is unique within: the method and
// the concrete request path, e.g. "POST /api/articles/3/comments".
func IdempotencyScope(c *gin.Context) string {
	return c.Request.Method + " " + c.Request.URL.Path
}

// IdempotencyOptions configures header validation.
type IdempotencyOptions struct {
	// MaxLen caps the accepted key length. Values <= 0 default to 200.
	MaxLen int
	// Pattern restricts allowed characters. Defaults to ^[A-Za-z0-9._~\-:]+$
	Pattern *regexp.Regexp
}

// IdempotencyLookup reports the resource id recorded for (scope, key) if it
// is still replayable at now. Lookup errors do not block the request.
type IdempotencyLookup func(ctx context.Context, scope, key string, now time.Time) (resourceID int, found bool, err error)

// IdempotencyValidator validates the Idempotency-Key header on POST requests,
// stashes it with its scope, and marks the request as a replay when lookup
// finds an earlier result.
//
// Behavior:
//   - Non-POST requests and requests without the header pass through.
//   - An invalid key aborts with 400 {"msg": "Invalid Idempotency-Key"}.
//   - The middleware never writes a cached payload itself; handlers decide how
//     to serve a replay.
func IdempotencyValidator(opts IdempotencyOptions, lookup IdempotencyLookup) gin.HandlerFunc {
	maxLen := opts.MaxLen
	if maxLen <= 0 {
		maxLen = 200
	}
	pat := opts.Pattern
	if pat == nil {
		pat = regexp.MustCompile(`^[A-Za-z0-9._~\-:]+$`)
	}

	return func(c *gin.Context) {
		key := c.GetHeader(HeaderIdempotencyKey)
		if key == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}
		if len(key) > maxLen || !pat.MatchString(key) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"msg": "Invalid Idempotency-Key"})
			return
		}

		scope := IdempotencyScope(c)
		c.Set(ctxKeyIdemKey, key)
		c.Set(ctxKeyIdemScope, scope)

		if lookup != nil {
			id, found, err := lookup(c.Request.Context(), scope, key, time.Now().UTC())
			if err != nil {
				LoggerFrom(c).Warn().Err(err).Str("idempotency_key", key).Msg("idempotency lookup failed")
			} else if found {
				c.Set(ctxKeyIdemReplay, id)
				idempotentReplays.WithLabelValues(routeLabel(c)).Inc()
			}
		}

		c.Next()
	}
}
