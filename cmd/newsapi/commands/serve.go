package commands

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	_ "github.com/tbourn/go-news-backend/docs"
	httpapi "github.com/tbourn/go-news-backend/internal/http"
	"github.com/tbourn/go-news-backend/internal/observability"
	"github.com/tbourn/go-news-backend/internal/repo"
	"github.com/tbourn/go-news-backend/internal/services"
)

const shutdownTimeout = 15 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(ctx context.Context) error {
	shutdownOTel, err := observability.Setup(ctx, cfg.OTEL, cfg.AppEnv, Version)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownOTel(sctx); err != nil {
			log.Warn().Err(err).Msg("otel shutdown")
		}
	}()

	db, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB(db)
	if err := repo.AutoMigrate(db.WithContext(ctx)); err != nil {
		return err
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	svc := httpapi.NewServices(db, cfg)
	httpapi.RegisterRoutes(r, svc, cfg)

	go purgeIdempotency(ctx, svc.Idempotency, cfg.IdempotencyPurgeInterval)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("base_path", cfg.APIBasePath).Str("db", cfg.DB.Driver).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return err
	}
	return <-errCh
}

// purgeIdempotency deletes expired Idempotency-Key records every interval
// until ctx ends.
func purgeIdempotency(ctx context.Context, svc *services.IdempotencyService, every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			n, err := svc.Purge(ctx, now.UTC())
			if err != nil {
				log.Warn().Err(err).Msg("idempotency purge")
				continue
			}
			if n > 0 {
				log.Debug().Int64("deleted", n).Msg("idempotency purge")
			}
		}
	}
}
