package main

import (
	"github.com/spf13/cobra"
)

func newEnrichCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "enrich",
		Short: "Fetch missing metadata for the current tour snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, ledger, err := ctx.newPipeline(dryRun)
			if err != nil {
				return err
			}
			defer ledger.Close()

			result, err := p.Enrich(cmd.Context())
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Run the pass but write no outputs")
	return cmd
}
