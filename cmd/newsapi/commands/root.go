package commands

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/tbourn/go-news-backend/internal/config"
	"github.com/tbourn/go-news-backend/internal/repo"
	"github.com/tbourn/go-news-backend/internal/sysutil"
)

// Version is stamped at build time with -ldflags "-X .../commands.Version=...".
var Version = "dev"

var (
	appEnv string
	cfg    config.Config
)

var rootCmd = &cobra.Command{
	Use:   "newsapi",
	Short: "News API server and database tooling",
	Long: `newsapi serves a REST API over topics, articles, users and comments.

Configuration comes from the environment; .env.<APP_ENV> and .env are read
first when present.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&appEnv, "env", "", "Environment name (overrides APP_ENV)")
}

// setup loads dotenv files, then the config, then installs the logger.
func setup() error {
	if appEnv != "" {
		if err := os.Setenv("APP_ENV", appEnv); err != nil {
			return err
		}
	}
	files, err := sysutil.LoadEnv(sysutil.Getenv("APP_ENV", "development"))
	if err != nil {
		return fmt.Errorf("load env files: %w", err)
	}

	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	sysutil.ConfigureLogger(os.Stderr, cfg.LogLevel, cfg.LogPretty)
	log.Debug().Strs("env_files", files).Str("app_env", cfg.AppEnv).Msg("configuration loaded")
	return nil
}

// openDB connects to the configured store.
func openDB() (*gorm.DB, error) {
	db, err := repo.Open(repo.Options{
		Driver:       cfg.DB.Driver,
		Path:         cfg.DB.Path,
		DSN:          cfg.DB.URL,
		MaxOpenConns: cfg.DB.MaxOpenConns,
		Tracing:      cfg.OTEL.Enabled,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.DB.Driver, err)
	}
	return db, nil
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
