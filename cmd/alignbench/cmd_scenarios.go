package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"alignbench/internal/display"
	"alignbench/internal/format"
	"alignbench/internal/scenario"
)

var scenariosFlags struct {
	dir string
}

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List and validate benchmark scenario files",
}

var scenariosListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all loadable scenarios",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := override(scenariosFlags.dir, cfg.ScenariosDir)
		scenarios, stats, err := scenario.LoadDir(dir)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "ID\tCategory\tOptions\tAnswer\tDescription\n")
		fmt.Fprintf(w, "--\t--------\t-------\t------\t-----------\n")
		for _, s := range scenarios {
			answer := "-"
			if s.HasAnswer() {
				answer = format.Truncate(s.Expected(), 30)
			}
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
				s.ID,
				display.Category(s.Category),
				len(s.Options),
				answer,
				format.Truncate(s.Description, 50),
			)
		}
		w.Flush()

		if stats.Loaded == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No scenarios found.")
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "\nTotal: %d scenarios (%d files skipped)\n", stats.Loaded, stats.Skipped)
		}
		return nil
	},
}

var scenariosValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check every scenario file against the file schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := override(scenariosFlags.dir, cfg.ScenariosDir)
		checks, err := scenario.ValidateDir(dir)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "File\tID\tScore\tOK\tProblems\n")
		fmt.Fprintf(w, "----\t--\t-----\t--\t--------\n")

		invalid := 0
		for _, c := range checks {
			problems := "-"
			if len(c.Missing)+len(c.Invalid) > 0 {
				var parts []string
				if len(c.Missing) > 0 {
					parts = append(parts, "missing: "+strings.Join(c.Missing, ", "))
				}
				if len(c.Invalid) > 0 {
					parts = append(parts, "invalid: "+strings.Join(c.Invalid, ", "))
				}
				problems = strings.Join(parts, "; ")
			}
			if !c.Promotable {
				invalid++
			}
			fmt.Fprintf(w, "%s\t%s\t%.2f\t%s\t%s\n",
				c.Path, c.ID, c.Score, format.BoolMark(c.Promotable), problems)
		}
		w.Flush()

		fmt.Fprintf(cmd.OutOrStdout(), "\n%d files checked, %d invalid\n", len(checks), invalid)
		if invalid > 0 {
			return fmt.Errorf("%d scenario file(s) failed validation", invalid)
		}
		return nil
	},
}

func init() {
	scenariosCmd.PersistentFlags().StringVar(&scenariosFlags.dir, "scenarios", "", "Scenario directory (default ./scenarios)")
	scenariosCmd.AddCommand(scenariosListCmd)
	scenariosCmd.AddCommand(scenariosValidateCmd)
}
