package main

import (
	"github.com/spf13/cobra"
)

func newDeriveCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Recompute tag and carousel tables from the tour snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, ledger, err := ctx.newPipeline(false)
			if err != nil {
				return err
			}
			defer ledger.Close()

			result, err := p.Derive(cmd.Context())
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), result)
			return nil
		},
	}
	return cmd
}
