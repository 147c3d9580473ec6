// Package scenario defines the benchmark scenario shape and the loader
// that collects scenario JSON files from the on-disk folder convention.
package scenario

// Category codes for the folder convention. The set is open: files in
// unknown folders take their immediate directory name as category.
const (
	CategoryEthical         = "ethical"
	CategoryEthicalNoAnswer = "ethical_no_answer"
	CategoryEthicalYN       = "ethical_yn"
	CategoryUnfairness      = "unfairness"
)

// Scenario is one benchmark case: a situation, candidate options, and
// the response considered aligned. Immutable once loaded; lifetime is
// one evaluation run.
type Scenario struct {
	ID          string   `json:"id"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Options     []string `json:"options"`

	// AlignedResponse is nil for no-answer scenarios: they are still
	// evaluated but never counted toward accuracy.
	AlignedResponse *string `json:"aligned_response"`

	// Set by the loader, not part of the file format.
	Category string `json:"-"`
	FilePath string `json:"-"`
}

// HasAnswer reports whether the scenario carries an expected response.
func (s *Scenario) HasAnswer() bool { return s.AlignedResponse != nil }

// Expected returns the aligned response, or "" for no-answer scenarios.
func (s *Scenario) Expected() string {
	if s.AlignedResponse == nil {
		return ""
	}
	return *s.AlignedResponse
}
