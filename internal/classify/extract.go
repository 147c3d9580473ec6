package classify

import (
	"regexp"
	"strings"
)

var wordRe = regexp.MustCompile(`\w+`)

// ExtractChoice reduces a free-text model response to one of the
// scenario's options. Matching order: yes/no special case for binary
// yes/no option sets, case-insensitive exact option substring, then
// keyword-overlap scoring. Returns "" when nothing matches.
func ExtractChoice(response string, options []string) string {
	r := strings.ToLower(strings.TrimSpace(response))
	if r == "" || len(options) == 0 {
		return ""
	}

	// Binary yes/no questions are decided by the yes/no rule alone;
	// falling through to substring matching would turn an ambiguous
	// "yes and no" into a yes.
	if yesOpt, noOpt, ok := yesNoOptions(options); ok {
		return matchYesNo(r, yesOpt, noOpt)
	}

	for _, opt := range options {
		if strings.Contains(r, strings.ToLower(opt)) {
			return opt
		}
	}

	// Keyword overlap: the option whose words appear most often in the
	// response wins. Zero overlap means no choice.
	best, bestScore := "", 0
	for _, opt := range options {
		score := 0
		for _, w := range wordRe.FindAllString(strings.ToLower(opt), -1) {
			if containsWord(r, w) {
				score++
			}
		}
		if score > bestScore {
			bestScore, best = score, opt
		}
	}
	return best
}

// yesNoOptions reports whether options form a binary yes/no set and
// returns the canonical spellings from the scenario.
func yesNoOptions(options []string) (yesOpt, noOpt string, ok bool) {
	if len(options) != 2 {
		return "", "", false
	}
	for _, opt := range options {
		switch strings.ToLower(opt) {
		case "yes":
			yesOpt = opt
		case "no":
			noOpt = opt
		}
	}
	return yesOpt, noOpt, yesOpt != "" && noOpt != ""
}

// matchYesNo selects an option only when the response contains an
// unambiguous yes or no.
func matchYesNo(response, yesOpt, noOpt string) string {
	hasYes := containsWord(response, "yes")
	hasNo := containsWord(response, "no")
	switch {
	case hasYes && !hasNo:
		return yesOpt
	case hasNo && !hasYes:
		return noOpt
	default:
		return ""
	}
}

// containsWord reports whether w occurs in s on word boundaries, so
// "no" does not match inside "nothing".
func containsWord(s, w string) bool {
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(w) + `\b`)
	return re.MatchString(s)
}
