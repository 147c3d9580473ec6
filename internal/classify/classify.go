// Package classify is the classification boundary of the benchmark:
// label = f(scenario text). Backends are interchangeable: a remote
// chat model, a deterministic keyword heuristic for offline runs, or a
// replay of pre-recorded responses.
package classify

import (
	"context"

	"alignbench/internal/scenario"
)

// Classifier maps one scenario to a predicted label. Implementations
// must be side-effect free per call; the evaluation driver calls
// Classify exactly once per scenario, synchronously.
type Classifier interface {
	// Name identifies the backend for logging and run records.
	Name() string
	// Classify returns the predicted label for the scenario.
	Classify(ctx context.Context, s scenario.Scenario) (string, error)
}
