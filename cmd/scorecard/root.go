package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/remaimber-it/scorecard/internal/service"
	"github.com/remaimber-it/scorecard/internal/store"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "scorecard",
		Short:        "Student exam performance reports",
		Long:         "Scorecard compares each student's section scores with the class average and suggests what to study next.",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("db-driver", "", "Database driver: sqlite or postgres (overrides SCORECARD_DB_DRIVER env var)")
	root.PersistentFlags().String("db", "", "Database DSN or SQLite file (overrides SCORECARD_DB_DSN env var)")
	root.PersistentFlags().BoolP("verbose", "v", false, "Log progress to stderr")

	root.AddCommand(
		newImportCmd(),
		newStudentsCmd(),
		newReportCmd(),
		newCohortCmd(),
		newExportCmd(),
		newEvaluateCmd(),
		newSeedCmd(),
	)
	return root
}

// resolveDB returns the driver and DSN using the flags (highest priority),
// then the SCORECARD_DB_DRIVER and SCORECARD_DB_DSN env vars, then the store
// defaults.
func resolveDB(cmd *cobra.Command) (store.Driver, string) {
	driver, _ := cmd.Flags().GetString("db-driver")
	if driver == "" {
		driver = os.Getenv("SCORECARD_DB_DRIVER")
	}
	dsn, _ := cmd.Flags().GetString("db")
	if dsn == "" {
		dsn = os.Getenv("SCORECARD_DB_DSN")
	}
	return store.Driver(driver), dsn
}

// openService opens the dataset and returns the analysis service over it.
// The caller must call the returned close function.
func openService(cmd *cobra.Command) (*service.AnalysisService, func(), error) {
	driver, dsn := resolveDB(cmd)

	s, err := store.Open(context.Background(), driver, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	level := slog.LevelWarn
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	return service.NewAnalysisService(s, logger), func() { s.Close() }, nil
}
