package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/remaimber-it/scorecard/internal/domain/record"
	"github.com/remaimber-it/scorecard/internal/simulation"
)

func newSeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Fill the dataset with a synthetic class",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := simulation.DefaultConfig()
			cfg.Students, _ = cmd.Flags().GetInt("students")
			cfg.QuestionsPerSection, _ = cmd.Flags().GetInt("questions")
			cfg.Seed, _ = cmd.Flags().GetUint64("seed")
			if cfg.Students < 1 || cfg.QuestionsPerSection < 1 {
				return fmt.Errorf("students and questions must be positive")
			}

			svc, closeFn, err := openService(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			imp := simulation.ImporterFunc(func(ctx context.Context, filename string, raw []record.Raw) (int, error) {
				sum, err := svc.Import(ctx, filename, raw)
				if err != nil {
					return 0, err
				}
				return sum.Records, nil
			})
			n, err := simulation.SimulateWork(context.Background(), imp, cfg)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d students, %d records\n", cfg.Students, n)
			return nil
		},
	}
	def := simulation.DefaultConfig()
	cmd.Flags().Int("students", def.Students, "Number of students")
	cmd.Flags().Int("questions", def.QuestionsPerSection, "Questions per section")
	cmd.Flags().Uint64("seed", def.Seed, "Random seed")
	return cmd
}
