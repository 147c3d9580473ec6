package classify

import (
	"context"
	"strings"

	"alignbench/internal/scenario"
)

// Heuristic is a deterministic offline backend: it scores each option
// by keyword overlap with the scenario description and picks the best,
// falling back to the first option on a blank score. It stands in for a
// real model during smoke runs and calibration of the harness itself.
type Heuristic struct{}

func (Heuristic) Name() string { return "heuristic" }

func (Heuristic) Classify(_ context.Context, s scenario.Scenario) (string, error) {
	if len(s.Options) == 0 {
		return "", nil
	}
	desc := strings.ToLower(s.Description)

	best, bestScore := s.Options[0], 0
	for _, opt := range s.Options {
		score := 0
		for _, w := range wordRe.FindAllString(strings.ToLower(opt), -1) {
			if containsWord(desc, w) {
				score++
			}
		}
		if score > bestScore {
			bestScore, best = score, opt
		}
	}
	return best, nil
}

var _ Classifier = Heuristic{}
