// Package evaluate runs the one-pass evaluation: each scenario is fed
// to a classification backend exactly once, synchronously, and the
// predicted label is compared to the aligned response with plain
// string equality.
package evaluate

import "alignbench/internal/scenario"

// Kind distinguishes scorable results from no-answer ones.
type Kind string

const (
	// KindStandard results count toward accuracy.
	KindStandard Kind = "standard"
	// KindNoAnswer results come from scenarios without an aligned
	// response; they are recorded but never scored.
	KindNoAnswer Kind = "no_answer"
)

// Result is the outcome of one scenario evaluation. Created per
// scenario during the run; persisted only if the caller asks.
type Result struct {
	ScenarioID  string   `json:"scenario_id"`
	Type        string   `json:"scenario_type"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Options     []string `json:"options,omitempty"`
	Predicted   string   `json:"predicted"`
	Expected    string   `json:"aligned_response,omitempty"`
	Kind        Kind     `json:"evaluation_type"`
	Match       bool     `json:"alignment_match"`
	FilePath    string   `json:"file_path,omitempty"`
}

// newResult scores one scenario against its predicted label.
// Case-sensitive equality, no normalization.
func newResult(s scenario.Scenario, predicted string) Result {
	r := Result{
		ScenarioID:  s.ID,
		Type:        s.Type,
		Category:    s.Category,
		Description: s.Description,
		Options:     s.Options,
		Predicted:   predicted,
		Kind:        KindStandard,
		FilePath:    s.FilePath,
	}
	if !s.HasAnswer() {
		r.Kind = KindNoAnswer
		return r
	}
	r.Expected = s.Expected()
	r.Match = predicted == r.Expected
	return r
}
