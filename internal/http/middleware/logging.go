// Package middleware contains the Gin middleware shared by the news API.
//
// This file covers correlation and logging. Install RequestID, Logger and
// Recovery in that order so panics are logged with the request id and the
// request-scoped logger that handlers fetch through LoggerFrom.
package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/trace"
)

const (
	HeaderRequestID = "X-Request-ID"

	ctxRequestID = "request_id"
	ctxLogger    = "logger"

	maxRequestIDLen = 128
	maxLoggedQuery  = 2048
)

// RequestID reuses a well-formed inbound X-Request-ID or mints a UUID, and
// echoes it on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(HeaderRequestID)
		if !validRequestID(rid) {
			rid = uuid.NewString()
		}
		c.Set(ctxRequestID, rid)
		c.Header(HeaderRequestID, rid)
		c.Next()
	}
}

// RequestIDFrom returns the correlation id set by RequestID, or "".
func RequestIDFrom(c *gin.Context) string {
	return c.GetString(ctxRequestID)
}

// validRequestID accepts short printable ASCII ids only, so client input
// cannot inject control characters into logs or headers.
func validRequestID(s string) bool {
	if s == "" || len(s) > maxRequestIDLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 0x21 || s[i] > 0x7e {
			return false
		}
	}
	return true
}

// Logger emits one access log line per request. The route pattern is logged
// (e.g. /api/articles/:article_id) with the concrete parameters alongside;
// unmatched requests fall back to the raw path.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		lc := log.With().
			Str("request_id", RequestIDFrom(c)).
			Str("method", c.Request.Method).
			Str("path", route).
			Str("remote_ip", c.ClientIP())
		if q := c.Request.URL.RawQuery; q != "" {
			lc = lc.Str("query", clip(q, maxLoggedQuery))
		}
		if len(c.Params) > 0 {
			params := zerolog.Dict()
			for _, p := range c.Params {
				params.Str(p.Key, p.Value)
			}
			lc = lc.Dict("params", params)
		}
		if sc := trace.SpanContextFromContext(c.Request.Context()); sc.HasTraceID() {
			lc = lc.Str("trace_id", sc.TraceID().String())
		}
		l := lc.Logger()
		WithLogger(c, &l)

		c.Next()

		status := c.Writer.Status()
		ev := l.WithLevel(levelFor(status, len(c.Errors) > 0)).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Int64("bytes_in", c.Request.ContentLength).
			Int("bytes_out", c.Writer.Size()).
			Str("user_agent", c.Request.UserAgent())
		if len(c.Errors) > 0 {
			ev = ev.Str("errors", c.Errors.String())
		}
		ev.Msg("request")
	}
}

// levelFor maps the outcome to a log level: errors and 5xx are errors,
// 4xx are warnings.
func levelFor(status int, hasErrors bool) zerolog.Level {
	switch {
	case hasErrors || status >= http.StatusInternalServerError:
		return zerolog.ErrorLevel
	case status >= http.StatusBadRequest:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

// Recovery turns a panic into {"msg":"Internal Server Error"} when nothing
// has been written yet, and logs the stack.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			LoggerFrom(c).Error().
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")

			if c.Writer.Written() {
				c.AbortWithStatus(http.StatusInternalServerError)
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"msg": http.StatusText(http.StatusInternalServerError),
			})
		}()
		c.Next()
	}
}

// WithLogger attaches l as the request-scoped logger.
func WithLogger(c *gin.Context, l *zerolog.Logger) {
	c.Set(ctxLogger, l)
}

// LoggerFrom returns the request-scoped logger, or the global logger tagged
// with the request id when Logger is not installed. Never nil.
func LoggerFrom(c *gin.Context) *zerolog.Logger {
	if v, ok := c.Get(ctxLogger); ok {
		if l, ok := v.(*zerolog.Logger); ok && l != nil {
			return l
		}
	}
	l := log.With().Str("request_id", RequestIDFrom(c)).Logger()
	return &l
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "…"
}
