package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"gdsync/internal/models"
	"gdsync/internal/repository"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent transfer runs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := repository.New(cfg.GetDatabase().Path)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer repo.Close()

		runs, err := repo.GetRuns(models.RunFilter{
			Limit:     historyLimit,
			SortBy:    "created_at",
			SortOrder: "desc",
		})
		if err != nil {
			return fmt.Errorf("failed to get transfer runs: %w", err)
		}
		return printHistory(cmd.OutOrStdout(), runs)
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of runs to show")
}

func printHistory(out io.Writer, runs []*models.TransferRun) error {
	if len(runs) == 0 {
		fmt.Fprintln(out, "No transfer runs recorded.")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTARTED\tDIRECTION\tSCOPE\tSTATUS\tFILES")
	for _, run := range runs {
		started := "-"
		if run.StartedAt != nil {
			started = run.StartedAt.Local().Format(time.DateTime)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			run.ID, started, run.Direction, run.Scope, run.Status, fileCounts(run))
	}
	return tw.Flush()
}

func fileCounts(run *models.TransferRun) string {
	if run.Outcome == nil {
		if run.ErrorKind != "" {
			return run.ErrorKind
		}
		return "-"
	}
	o := run.Outcome
	return fmt.Sprintf("%d ok, %d failed, %d skipped", o.Succeeded, len(o.Failed), o.Skipped)
}
