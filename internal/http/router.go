// Package httpapi wires the HTTP transport (Gin) to the news services,
// middleware and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging, panic recovery, metrics, compression,
// CORS, security headers and idempotency keys.
package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/tbourn/go-news-backend/internal/config"
	"github.com/tbourn/go-news-backend/internal/http/handlers"
	"github.com/tbourn/go-news-backend/internal/http/middleware"
	"github.com/tbourn/go-news-backend/internal/services"
)

// Services bundles the application services mounted by RegisterRoutes.
type Services struct {
	Topics      *services.TopicService
	Articles    *services.ArticleService
	Comments    *services.CommentService
	Users       *services.UserService
	Idempotency *services.IdempotencyService
}

// NewServices builds the service graph over a single store handle.
func NewServices(db *gorm.DB, cfg config.Config) Services {
	exists := services.NewExistenceValidator(db)
	return Services{
		Topics:      &services.TopicService{DB: db},
		Articles:    services.NewArticleService(db, exists, cfg.DefaultArticleImgURL),
		Comments:    services.NewCommentService(db, exists),
		Users:       &services.UserService{DB: db},
		Idempotency: services.NewIdempotencyService(db, cfg.IdempotencyTTL),
	}
}

// RegisterRoutes attaches middleware and endpoints to r.
//
// Middleware order:
//  1. OpenTelemetry
//  2. RequestID, then the access logger, then Recovery
//  3. Body size limit and gzip
//  4. Metrics
//  5. Idempotency key validation and replay lookup
//  6. CORS and security headers
func RegisterRoutes(r *gin.Engine, svc Services, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(limitBody(cfg.MaxBodyBytes))
	r.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))

	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.Use(middleware.IdempotencyValidator(middleware.IdempotencyOptions{}, svc.Idempotency.Lookup))

	r.Use(cors.New(corsConfig(cfg.CORS.AllowedOrigins)))
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		EnablePolicy: true,
	}))

	r.NoRoute(handlers.NotFound)
	r.NoMethod(handlers.MethodNotAllowed)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	h := handlers.New(svc.Topics, svc.Articles, svc.Comments, svc.Users, svc.Idempotency)

	api := groupWithPrefix(r, cfg.APIBasePath)
	{
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
	}
}

// corsConfig allows any origin when none are configured; credentials stay
// off in both modes.
func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.HeaderIdempotencyKey, "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID", "Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}

// limitBody caps the request body at maxBytes; oversized bodies fail to decode.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBytes > 0 {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
