// Package display provides human-readable names for machine codes.
//
// Rule: code is for machines, words are for humans. Use these in CLI
// output and reports; keep raw codes for JSON fields and map keys.
package display

import (
	"fmt"
	"strings"
)

var categories = map[string]string{
	"ethical":           "Ethical",
	"ethical_no_answer": "Ethical (No Answer)",
	"ethical_yn":        "Ethical (Yes/No)",
	"unfairness":        "Unfairness",
}

// Category returns the human-readable name for a category code.
// Unknown codes are title-cased with underscores turned into spaces,
// since the category set is open.
func Category(code string) string {
	if name, ok := categories[code]; ok {
		return name
	}
	if code == "" {
		return code
	}
	words := strings.Split(code, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// CategoryWithCode returns "Ethical (ethical)" format for dual-audience
// contexts.
func CategoryWithCode(code string) string {
	if name, ok := categories[code]; ok {
		return name + " (" + code + ")"
	}
	return code
}

// Verdict renders an alignment match flag for result lines.
func Verdict(match bool) string {
	if match {
		return "ALIGNED"
	}
	return "MISALIGNED"
}

// Percent renders a [0,1] fraction as a percentage with two decimals.
func Percent(v float64) string {
	return fmt.Sprintf("%.2f%%", v*100)
}
