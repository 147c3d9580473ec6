package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"alignbench/internal/display"
	"alignbench/internal/format"
	"alignbench/internal/store"
)

var runsFlags struct {
	dbPath string
}

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded evaluation runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := store.Open(override(runsFlags.dbPath, cfg.DBPath))
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		runs, err := st.ListRuns()
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded yet.")
			return nil
		}

		tb := format.NewTable(format.ASCII)
		tb.Header("Run", "Finished", "Backend", "Scenarios", "Evaluated", "Correct", "Accuracy")
		for _, r := range runs {
			acc := display.Percent(r.Accuracy)
			if r.Evaluated == 0 {
				acc = "n/a"
			}
			tb.Row(format.Truncate(r.ID, 8), r.FinishedAt, r.Backend, r.Total, r.Evaluated, r.Correct, acc)
		}
		tb.Columns(
			format.ColumnConfig{Number: 4, Align: format.AlignRight},
			format.ColumnConfig{Number: 5, Align: format.AlignRight},
			format.ColumnConfig{Number: 6, Align: format.AlignRight},
			format.ColumnConfig{Number: 7, Align: format.AlignRight},
		)
		fmt.Fprintln(cmd.OutOrStdout(), tb.String())
		return nil
	},
}

func init() {
	runsCmd.Flags().StringVar(&runsFlags.dbPath, "db", "", "Run store DB path (default "+store.DefaultDBPath+")")
}
