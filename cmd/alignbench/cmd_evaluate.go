package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"alignbench/internal/classify"
	"alignbench/internal/config"
	"alignbench/internal/display"
	"alignbench/internal/evaluate"
	"alignbench/internal/format"
	"alignbench/internal/scenario"
	"alignbench/internal/store"
)

var evaluateFlags struct {
	scenariosDir string
	backend      string
	model        string
	baseURL      string
	apiKeyPath   string
	responses    string
	outPath      string
	dbPath       string
	noStore      bool
}

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Run the benchmark: classify every scenario and score alignment",
	Long: "Evaluate loads all scenarios, calls the classification backend once\n" +
		"per scenario, compares each predicted label to the aligned response\n" +
		"with exact string equality, and prints results and accuracy.",
	RunE: runEvaluate,
}

func init() {
	f := evaluateCmd.Flags()
	f.StringVar(&evaluateFlags.scenariosDir, "scenarios", "", "Scenario directory (default ./scenarios)")
	f.StringVar(&evaluateFlags.backend, "backend", "", "Classification backend: heuristic, openai, replay")
	f.StringVar(&evaluateFlags.model, "model", "", "Chat model for the openai backend")
	f.StringVar(&evaluateFlags.baseURL, "base-url", "", "OpenAI-compatible endpoint base URL")
	f.StringVar(&evaluateFlags.apiKeyPath, "api-key", "", "Path to API key file for the openai backend")
	f.StringVar(&evaluateFlags.responses, "responses", "", "Pre-recorded responses file for the replay backend")
	f.StringVar(&evaluateFlags.outPath, "out", "", "Write the full report JSON to this path")
	f.StringVar(&evaluateFlags.dbPath, "db", "", "Run store DB path (default "+store.DefaultDBPath+")")
	f.BoolVar(&evaluateFlags.noStore, "no-store", false, "Do not record the run in the store")
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	dir := override(evaluateFlags.scenariosDir, cfg.ScenariosDir)

	scenarios, stats, err := scenario.LoadDir(dir)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d scenarios from %s (%d skipped)\n\n",
		stats.Loaded, dir, stats.Skipped)

	clf, err := buildClassifier()
	if err != nil {
		return err
	}

	startedAt := store.NowUTC()
	results, err := evaluate.Run(cmd.Context(), scenarios, clf, func(r evaluate.Result) {
		printResult(cmd, r)
	})
	if err != nil {
		return err
	}
	finishedAt := store.NowUTC()

	summary := evaluate.Summarize(results)
	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprintln(cmd.OutOrStdout(), summaryTable(summary, format.ASCII))

	if evaluateFlags.outPath != "" {
		report := &evaluate.Report{Backend: clf.Name(), Summary: summary, Results: results}
		if err := evaluate.WriteReport(evaluateFlags.outPath, report); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report: %s\n", evaluateFlags.outPath)
	}

	if !evaluateFlags.noStore {
		if err := recordRun(dir, clf.Name(), startedAt, finishedAt, summary, results); err != nil {
			return err
		}
	}
	return nil
}

// printResult prints one result line as it is produced.
func printResult(cmd *cobra.Command, r evaluate.Result) {
	if r.Kind == evaluate.KindNoAnswer {
		fmt.Fprintf(cmd.OutOrStdout(), "%-12s %-22s %-10s predicted=%q (no aligned answer)\n",
			r.ScenarioID, display.Category(r.Category), "NO-ANSWER", r.Predicted)
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%-12s %-22s %-10s predicted=%q expected=%q\n",
		r.ScenarioID, display.Category(r.Category), display.Verdict(r.Match), r.Predicted, r.Expected)
}

// summaryTable renders the per-category accuracy breakdown with an
// overall footer.
func summaryTable(s evaluate.Summary, mode format.Mode) string {
	tb := format.NewTable(mode)
	tb.Header("Category", "Scenarios", "Evaluated", "Correct", "Accuracy")
	for _, code := range s.Categories() {
		cs := s.ByCategory[code]
		acc := display.Percent(cs.Accuracy)
		if cs.Evaluated == 0 {
			acc = "n/a"
		}
		tb.Row(display.Category(code), cs.Total, cs.Evaluated, cs.Correct, acc)
	}
	overall := display.Percent(s.Accuracy)
	if s.Evaluated == 0 {
		overall = "n/a"
	}
	tb.Footer("OVERALL", s.Total, s.Evaluated, s.Correct, overall)
	tb.Columns(
		format.ColumnConfig{Number: 2, Align: format.AlignRight},
		format.ColumnConfig{Number: 3, Align: format.AlignRight},
		format.ColumnConfig{Number: 4, Align: format.AlignRight},
		format.ColumnConfig{Number: 5, Align: format.AlignRight},
	)
	return tb.String()
}

// buildClassifier constructs the backend selected by flags/config.
func buildClassifier() (classify.Classifier, error) {
	backend := override(evaluateFlags.backend, cfg.Backend)
	switch backend {
	case "", "heuristic":
		return classify.Heuristic{}, nil
	case "replay":
		path := override(evaluateFlags.responses, cfg.ResponsesFile)
		if path == "" {
			return nil, fmt.Errorf("replay backend needs --responses (or responses_file in config)")
		}
		return classify.NewReplay(path)
	case "openai":
		keyPath := override(evaluateFlags.apiKeyPath, cfg.APIKeyFile)
		key, err := config.ReadAPIKey(keyPath)
		if err != nil {
			return nil, err
		}
		return classify.NewOpenAI(classify.OpenAIConfig{
			APIKey:  key,
			Model:   override(evaluateFlags.model, cfg.Model),
			BaseURL: override(evaluateFlags.baseURL, cfg.BaseURL),
		})
	default:
		return nil, fmt.Errorf("unknown backend %q (want heuristic, openai, or replay)", backend)
	}
}

func recordRun(dir, backend, startedAt, finishedAt string, summary evaluate.Summary, results []evaluate.Result) error {
	dbPath := override(evaluateFlags.dbPath, cfg.DBPath)
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	run := &store.Run{
		ID:           uuid.NewString(),
		StartedAt:    startedAt,
		FinishedAt:   finishedAt,
		ScenariosDir: dir,
		Backend:      backend,
		Total:        summary.Total,
		Evaluated:    summary.Evaluated,
		Correct:      summary.Correct,
		Accuracy:     summary.Accuracy,
	}
	if err := st.SaveRun(run, results); err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}
