package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/remaimber-it/scorecard/internal/chart"
)

func newEvaluateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "evaluate",
		Short: "Show the performance prediction evaluation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeFn, err := openService(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			res, err := svc.Evaluate(context.Background())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, chart.Title.Render("Model evaluation"))
			fmt.Fprintf(out, "Accuracy:  %s\nPrecision: %s\n\n", pct(res.Accuracy), pct(res.Precision))

			rows := make([][]string, len(res.Predictions))
			for i, p := range res.Predictions {
				rows[i] = []string{p.StudentID, p.PredictedPerformance, p.ActualPerformance, strconv.FormatBool(p.CorrectPrediction)}
			}
			fmt.Fprint(out, chart.Table([]string{"Student", "Predicted", "Actual", "Correct"}, rows))
			return nil
		},
	}
}
