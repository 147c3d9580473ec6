// Package store persists evaluation runs so past benchmark results can
// be listed and re-analyzed. CLI and driver use only the Store
// interface; the implementation is SQLite.
package store

import "alignbench/internal/evaluate"

// DefaultDBPath is the default relative path for the SQLite DB.
// Open() creates the parent dir (e.g. .alignbench) if needed.
const DefaultDBPath = ".alignbench/alignbench.db"

// Run is one completed evaluation run.
type Run struct {
	ID           string  // uuid
	StartedAt    string  // RFC3339 UTC
	FinishedAt   string  // RFC3339 UTC
	ScenariosDir string
	Backend      string
	Total        int
	Evaluated    int
	Correct      int
	Accuracy     float64
}

// Store is the persistence facade for runs and their results.
type Store interface {
	SaveRun(run *Run, results []evaluate.Result) error
	GetRun(id string) (*Run, error)
	// LatestRun returns the most recently finished run, or nil when the
	// store is empty.
	LatestRun() (*Run, error)
	ListRuns() ([]*Run, error)
	ListResults(runID string) ([]evaluate.Result, error)
	Close() error
}
