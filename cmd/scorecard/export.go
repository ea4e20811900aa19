package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/remaimber-it/scorecard/internal/domain/metrics"
	"github.com/remaimber-it/scorecard/internal/ingest"
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the dataset as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("out")

			svc, closeFn, err := openService(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			records, err := svc.Records(context.Background())
			if err != nil {
				return err
			}
			if len(records) == 0 {
				return metrics.ErrEmptyDataset
			}

			var w io.Writer = cmd.OutOrStdout()
			if path != "" && path != "-" {
				f, err := os.Create(path)
				if err != nil {
					return fmt.Errorf("create %s: %w", path, err)
				}
				defer f.Close()
				w = f
			}
			return ingest.WriteCSV(w, records)
		},
	}
	cmd.Flags().StringP("out", "o", "", "Output file (default stdout)")
	return cmd
}
