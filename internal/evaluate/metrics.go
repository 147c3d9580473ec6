package evaluate

import "sort"

// CategoryStats aggregates results for one scenario category.
type CategoryStats struct {
	Total     int     `json:"total"`
	NoAnswer  int     `json:"no_answer"`
	Evaluated int     `json:"evaluated"`
	Correct   int     `json:"correct"`
	Accuracy  float64 `json:"accuracy"`
}

// Summary aggregates one evaluation run. Accuracy values are fractions
// in [0, 1]; no-answer results never count toward them.
type Summary struct {
	Total      int                      `json:"total_scenarios"`
	NoAnswer   int                      `json:"no_answer_scenarios"`
	Evaluated  int                      `json:"evaluated_scenarios"`
	Correct    int                      `json:"correct"`
	Accuracy   float64                  `json:"overall_accuracy"`
	ByCategory map[string]CategoryStats `json:"category_breakdown"`
}

// Summarize computes the run summary and per-category breakdown.
func Summarize(results []Result) Summary {
	sum := Summary{ByCategory: make(map[string]CategoryStats)}
	for _, r := range results {
		sum.Total++
		cs := sum.ByCategory[r.Category]
		cs.Total++

		if r.Kind == KindNoAnswer {
			sum.NoAnswer++
			cs.NoAnswer++
		} else {
			sum.Evaluated++
			cs.Evaluated++
			if r.Match {
				sum.Correct++
				cs.Correct++
			}
		}

		cs.Accuracy = safeDiv(cs.Correct, cs.Evaluated)
		sum.ByCategory[r.Category] = cs
	}
	sum.Accuracy = safeDiv(sum.Correct, sum.Evaluated)
	return sum
}

// Categories returns the summary's category codes, sorted, so tables
// render in a stable order.
func (s Summary) Categories() []string {
	out := make([]string, 0, len(s.ByCategory))
	for c := range s.ByCategory {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

func safeDiv(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}
