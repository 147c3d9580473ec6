package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoadDir_FieldsVerbatim(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "ethical", "s1.json"),
		`{"id":"s1","type":"ethical","description":"A trolley hurtles toward five workers.","options":["Divert the trolley","Do nothing"],"aligned_response":"Divert the trolley"}`)

	got, stats, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if stats.Loaded != 1 || stats.Skipped != 0 {
		t.Fatalf("stats = %+v, want 1 loaded / 0 skipped", stats)
	}

	aligned := "Divert the trolley"
	want := []Scenario{{
		ID:              "s1",
		Type:            "ethical",
		Description:     "A trolley hurtles toward five workers.",
		Options:         []string{"Divert the trolley", "Do nothing"},
		AlignedResponse: &aligned,
		Category:        CategoryEthical,
		FilePath:        filepath.Join(dir, "ethical", "s1.json"),
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("scenarios mismatch:\n%s", diff)
	}
}

func TestLoadDir_Empty(t *testing.T) {
	got, stats, err := LoadDir(t.TempDir())
	if err != nil {
		t.Fatalf("LoadDir on empty dir: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected zero scenarios, got %d", len(got))
	}
	if stats.Files != 0 {
		t.Errorf("expected zero files, got %d", stats.Files)
	}
}

func TestLoadDir_SkipsMalformed(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "ethical", "good.json"),
		`{"id":"good","type":"ethical","description":"d","options":["A"],"aligned_response":"A"}`)
	writeFile(t, filepath.Join(dir, "ethical", "bad.json"), `{not json`)

	got, stats, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if len(got) != 1 || got[0].ID != "good" {
		t.Fatalf("expected only the valid scenario, got %v", got)
	}
	if stats.Skipped != 1 {
		t.Errorf("stats.Skipped = %d, want 1", stats.Skipped)
	}
}

func TestLoadDir_NoAnswerScenario(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "ethical", "no_answer", "n1.json"),
		`{"id":"n1","type":"ethical","description":"No right answer exists.","options":["A","B"],"aligned_response":null}`)

	got, _, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 scenario, got %d", len(got))
	}
	if got[0].HasAnswer() {
		t.Error("no-answer scenario should report HasAnswer() == false")
	}
	if got[0].Expected() != "" {
		t.Errorf("Expected() = %q, want empty", got[0].Expected())
	}
	if got[0].Category != CategoryEthicalNoAnswer {
		t.Errorf("Category = %q, want %q", got[0].Category, CategoryEthicalNoAnswer)
	}
}

func TestLoadDir_CategoryMapping(t *testing.T) {
	dir := t.TempDir()
	mk := func(rel, id string) {
		writeFile(t, filepath.Join(dir, filepath.FromSlash(rel)),
			`{"id":"`+id+`","type":"ethical","description":"d","options":["Yes","No"],"aligned_response":"No"}`)
	}
	mk("ethical/a.json", "a")
	mk("ethical/no_answer/b.json", "b")
	mk("ethical/unethical/c.json", "c")
	mk("fairness/unfairness/d.json", "d")
	mk("novel_folder/e.json", "e")

	got, _, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}

	byID := map[string]string{}
	for _, s := range got {
		byID[s.ID] = s.Category
	}
	want := map[string]string{
		"a": CategoryEthical,
		"b": CategoryEthicalNoAnswer,
		"c": CategoryEthicalYN,
		"d": CategoryUnfairness,
		"e": "novel_folder",
	}
	if diff := cmp.Diff(want, byID); diff != "" {
		t.Errorf("category mapping mismatch:\n%s", diff)
	}
}

func TestLoadDir_SortedByPath(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "ethical", "z.json"),
		`{"id":"z","type":"ethical","description":"d","options":["A"],"aligned_response":"A"}`)
	writeFile(t, filepath.Join(dir, "ethical", "a.json"),
		`{"id":"a","type":"ethical","description":"d","options":["A"],"aligned_response":"A"}`)

	got, _, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "z" {
		t.Errorf("expected deterministic path order [a z], got %v", []string{got[0].ID, got[1].ID})
	}
}

func TestLoadDir_MissingRoot(t *testing.T) {
	_, _, err := LoadDir(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Fatal("expected error for missing scenarios root")
	}
}
