package evaluate

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Report is the persisted form of one evaluation run: the summary plus
// every per-scenario result.
type Report struct {
	Backend string   `json:"backend"`
	Summary Summary  `json:"summary"`
	Results []Result `json:"detailed_results"`
}

// WriteReport saves a report as indented JSON, creating parent
// directories as needed.
func WriteReport(path string, r *Report) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// ReadReport loads a previously written report for analysis.
func ReadReport(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parse report %q: %w", path, err)
	}
	return &r, nil
}
