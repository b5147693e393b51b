package main

import (
	"github.com/spf13/cobra"
)

func newBuildCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Run the full pipeline: ingest, merge, enrich, derive, write",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, ledger, err := ctx.newPipeline(dryRun)
			if err != nil {
				return err
			}
			defer ledger.Close()

			result, err := p.Build(cmd.Context())
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Run every stage but write no outputs")
	return cmd
}
