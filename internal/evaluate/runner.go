package evaluate

import (
	"context"
	"errors"
	"fmt"

	"alignbench/internal/classify"
	"alignbench/internal/logging"
	"alignbench/internal/scenario"
)

// Run evaluates scenarios in order with one synchronous classifier call
// each. onResult, if non-nil, is invoked per result as it is produced
// so callers can print incrementally.
//
// A scenario without a recorded response (classify.ErrNoResponse) is
// skipped with a warning; any other classifier error aborts the run.
// There is no retry or recovery logic to fall back on.
func Run(ctx context.Context, scenarios []scenario.Scenario, clf classify.Classifier, onResult func(Result)) ([]Result, error) {
	log := logging.New("evaluate")

	results := make([]Result, 0, len(scenarios))
	for _, s := range scenarios {
		if err := ctx.Err(); err != nil {
			return results, fmt.Errorf("evaluation interrupted: %w", err)
		}

		label, err := clf.Classify(ctx, s)
		if err != nil {
			if errors.Is(err, classify.ErrNoResponse) {
				log.Warn("no response for scenario, skipping", "scenario", s.ID)
				continue
			}
			return results, fmt.Errorf("classify scenario %s: %w", s.ID, err)
		}

		r := newResult(s, label)
		results = append(results, r)
		if onResult != nil {
			onResult(r)
		}
	}

	log.Info("evaluation complete", "backend", clf.Name(), "results", len(results))
	return results, nil
}
