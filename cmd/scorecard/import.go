package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/remaimber-it/scorecard/internal/domain/record"
	"github.com/remaimber-it/scorecard/internal/ingest"
	"github.com/remaimber-it/scorecard/internal/worker"
)

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>...",
		Short: "Merge result files into the dataset",
		Long: "Each file is a CSV (student_id,section,is_correct) or a JSON array of the same fields.\n" +
			"Students in a file replace their previously stored answers.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")

			svc, closeFn, err := openService(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			ctx := context.Background()
			// files are parsed concurrently but applied in argument order,
			// so a later file wins over an earlier one
			parsed := worker.Map(ctx, runtime.NumCPU(), args, func(_ context.Context, path string) ([]record.Raw, error) {
				return parseFile(path, ingest.Format(format))
			})

			out := cmd.OutOrStdout()
			for _, p := range parsed {
				if p.Err != nil {
					return fmt.Errorf("%s: %w", p.JobID, p.Err)
				}
				sum, err := svc.Import(ctx, filepath.Base(p.JobID), p.Output)
				if err != nil {
					return fmt.Errorf("%s: %w", p.JobID, err)
				}
				fmt.Fprintf(out, "%s: %d records, %d students (%d added, %d replaced), %d students in dataset\n",
					p.JobID, sum.Records, sum.Students, len(sum.Added), len(sum.Replaced), sum.TotalStudents)
			}
			return nil
		},
	}
	cmd.Flags().String("format", "", "File format: csv or json (default: from extension or content)")
	return cmd
}

func parseFile(path string, format ingest.Format) ([]record.Raw, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if format == "" {
		format = ingest.FormatOf(path, "")
	}
	return ingest.Parse(f, format)
}
