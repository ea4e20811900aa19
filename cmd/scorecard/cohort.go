package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/remaimber-it/scorecard/internal/chart"
)

func newCohortCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cohort",
		Short: "Show class averages per section",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeFn, err := openService(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			sum, err := svc.Cohort(context.Background())
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(sum.Sections)+1)
			for _, s := range sum.Sections {
				rows = append(rows, []string{s.Section.Label(), pct(s.AvgScorePercentage)})
			}
			rows = append(rows, []string{"Overall", pct(sum.Overall)})

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, chart.Title.Render(fmt.Sprintf("Class of %d", sum.Students)))
			fmt.Fprint(out, chart.Table([]string{"Section", "Average"}, rows))
			return nil
		},
	}
}
