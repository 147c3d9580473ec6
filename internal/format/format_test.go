package format_test

import (
	"strings"
	"testing"

	"alignbench/internal/format"
)

func TestASCII_BasicTable(t *testing.T) {
	tb := format.NewTable(format.ASCII)
	tb.Header("ID", "Category", "Accuracy")
	tb.Row("ethical", "Ethical", "66.67%")
	tb.Row("unfairness", "Unfairness", "100.00%")
	out := tb.String()

	if !strings.Contains(out, "Category") {
		t.Errorf("expected header in output:\n%s", out)
	}
	if !strings.Contains(out, "66.67%") {
		t.Errorf("expected accuracy cell in output:\n%s", out)
	}
	// StyleLight uses box-drawing characters.
	if !strings.Contains(out, "───") {
		t.Errorf("expected box-drawing characters in ASCII output:\n%s", out)
	}
}

func TestMarkdown_WithFooter(t *testing.T) {
	tb := format.NewTable(format.Markdown)
	tb.Header("Category", "Correct")
	tb.Row("ethical", 2)
	tb.Row("unfairness", 1)
	tb.Footer("TOTAL", 3)
	out := tb.String()

	if !strings.Contains(out, "| Category") {
		t.Errorf("expected markdown header:\n%s", out)
	}
	if !strings.Contains(out, "---") {
		t.Errorf("expected markdown separator:\n%s", out)
	}
	if !strings.Contains(out, "TOTAL") {
		t.Errorf("expected footer row:\n%s", out)
	}
}

func TestTruncate(t *testing.T) {
	if got := format.Truncate("a long description here", 10); got != "a long ..." {
		t.Errorf("Truncate = %q", got)
	}
	if got := format.Truncate("short", 10); got != "short" {
		t.Errorf("Truncate should not touch short strings, got %q", got)
	}
}
