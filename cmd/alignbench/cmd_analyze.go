package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"alignbench/internal/evaluate"
	"alignbench/internal/format"
	"alignbench/internal/store"
)

var analyzeFlags struct {
	resultsPath string
	dbPath      string
	runID       string
	markdown    bool
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Print the accuracy breakdown for a saved report or stored run",
	Long: "Analyze reads a report file written by 'evaluate --out', or a run\n" +
		"from the store (latest by default), and prints overall alignment\n" +
		"accuracy plus accuracy by scenario type.",
	RunE: runAnalyze,
}

func init() {
	f := analyzeCmd.Flags()
	f.StringVar(&analyzeFlags.resultsPath, "results", "", "Report JSON file (from evaluate --out)")
	f.StringVar(&analyzeFlags.dbPath, "db", "", "Run store DB path (default "+store.DefaultDBPath+")")
	f.StringVar(&analyzeFlags.runID, "run", "", "Analyze a specific stored run ID (default latest)")
	f.BoolVar(&analyzeFlags.markdown, "markdown", false, "Render tables as Markdown")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	mode := format.ASCII
	if analyzeFlags.markdown {
		mode = format.Markdown
	}

	var (
		summary evaluate.Summary
		backend string
	)
	if analyzeFlags.resultsPath != "" {
		report, err := evaluate.ReadReport(analyzeFlags.resultsPath)
		if err != nil {
			return err
		}
		// Recompute rather than trust the stored summary, so hand-edited
		// reports stay consistent.
		summary = evaluate.Summarize(report.Results)
		backend = report.Backend
	} else {
		st, err := store.Open(override(analyzeFlags.dbPath, cfg.DBPath))
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		run, err := resolveRun(st)
		if err != nil {
			return err
		}
		if run == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded yet. Run 'alignbench evaluate' first.")
			return nil
		}
		results, err := st.ListResults(run.ID)
		if err != nil {
			return err
		}
		summary = evaluate.Summarize(results)
		backend = run.Backend
		fmt.Fprintf(cmd.OutOrStdout(), "Run:     %s\nStarted: %s\n", run.ID, run.StartedAt)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Backend: %s\n\n", backend)
	fmt.Fprintln(cmd.OutOrStdout(), summaryTable(summary, mode))
	return nil
}

func resolveRun(st store.Store) (*store.Run, error) {
	if analyzeFlags.runID != "" {
		run, err := st.GetRun(analyzeFlags.runID)
		if err != nil {
			return nil, fmt.Errorf("run %q not found: %w", analyzeFlags.runID, err)
		}
		return run, nil
	}
	return st.LatestRun()
}
