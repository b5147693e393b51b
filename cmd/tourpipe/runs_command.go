package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"tourpipe/internal/runlog"
)

func newRunsCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var showOutcomes string

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recorded pipeline runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			ledger, err := runlog.Open(cfg.Paths.RunDB)
			if err != nil {
				return err
			}
			defer ledger.Close()

			out := cmd.OutOrStdout()
			if showOutcomes != "" {
				outcomes, err := ledger.Outcomes(cmd.Context(), showOutcomes)
				if err != nil {
					return err
				}
				if len(outcomes) == 0 {
					fmt.Fprintf(out, "No outcomes recorded for run %s\n", showOutcomes)
					return nil
				}
				for id, outcome := range outcomes {
					fmt.Fprintf(out, "%s\t%s\n", id, outcome)
				}
				return nil
			}

			runs, err := ledger.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs recorded yet")
				return nil
			}

			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				rows = append(rows, []string{
					run.ID,
					run.StartedAt.Local().Format(time.DateTime),
					run.FinishedAt.Sub(run.StartedAt).Round(time.Second).String(),
					strconv.Itoa(run.Tours),
					strconv.Itoa(run.Fetched),
					strconv.Itoa(run.Cached),
					strconv.Itoa(run.FetchFailed),
					strconv.Itoa(run.Removed),
					yesNo(run.DryRun),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Run", "Started", "Took", "Tours", "Fetched", "Cached", "Failed", "Removed", "Dry"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight, alignRight, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to list")
	cmd.Flags().StringVar(&showOutcomes, "outcomes", "", "Show per-id enrichment outcomes for the given run id")
	return cmd
}
