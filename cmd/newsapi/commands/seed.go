package commands

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tbourn/go-news-backend/internal/fixtures"
	"github.com/tbourn/go-news-backend/internal/repo"
)

var dataset string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Drop all tables and load a bundled dataset",
	Long: `Drop every table, recreate the schema and insert a bundled dataset.

Examples:
  newsapi seed                    # development dataset
  newsapi seed --dataset test     # small dataset used by the test suites`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := fixtures.Load(dataset)
		if err != nil {
			return fmt.Errorf("dataset %q: %w", dataset, err)
		}
		db, err := openDB()
		if err != nil {
			return err
		}
		defer closeDB(db)

		if err := repo.Seed(cmd.Context(), db, ds); err != nil {
			return err
		}
		log.Info().
			Str("dataset", dataset).
			Int("topics", len(ds.Topics)).
			Int("users", len(ds.Users)).
			Int("articles", len(ds.Articles)).
			Int("comments", len(ds.Comments)).
			Msg("database seeded")
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVar(&dataset, "dataset", fixtures.Development, "Dataset to load (test|development)")
	rootCmd.AddCommand(seedCmd)
}
