package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newStudentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "students",
		Short: "List student ids in the dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeFn, err := openService(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			ids, err := svc.Students(context.Background())
			if err != nil {
				return err
			}
			if len(ids) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No student data available.")
				return nil
			}
			for _, id := range ids {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}
}
