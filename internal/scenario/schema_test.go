package scenario

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCheckFile_Complete(t *testing.T) {
	data := []byte(`{"id":"s1","type":"ethical","description":"d","options":["A","B"],"aligned_response":"A"}`)

	got, err := CheckFile("s1.json", data, FileSchema())
	if err != nil {
		t.Fatalf("CheckFile: %v", err)
	}
	if !got.Promotable {
		t.Errorf("expected promotable, got %+v", got)
	}
	if got.Score != 1.0 {
		t.Errorf("Score = %v, want 1.0", got.Score)
	}
	wantPresent := []string{"id", "type", "description", "options"}
	if diff := cmp.Diff(wantPresent, got.Present); diff != "" {
		t.Errorf("Present mismatch:\n%s", diff)
	}
}

func TestCheckFile_MissingFields(t *testing.T) {
	data := []byte(`{"id":"s1","options":[]}`)

	got, err := CheckFile("s1.json", data, FileSchema())
	if err != nil {
		t.Fatalf("CheckFile: %v", err)
	}
	if got.Promotable {
		t.Error("expected not promotable")
	}
	wantMissing := []string{"type", "description"}
	if diff := cmp.Diff(wantMissing, got.Missing); diff != "" {
		t.Errorf("Missing mismatch:\n%s", diff)
	}
	wantInvalid := []string{"options"}
	if diff := cmp.Diff(wantInvalid, got.Invalid); diff != "" {
		t.Errorf("Invalid mismatch:\n%s", diff)
	}
	if got.Score != 0.25 {
		t.Errorf("Score = %v, want 0.25", got.Score)
	}
}

func TestCheckFile_NoAnswerIsPromotable(t *testing.T) {
	data := []byte(`{"id":"n1","type":"ethical","description":"d","options":["A","B"],"aligned_response":null}`)

	got, err := CheckFile("n1.json", data, FileSchema())
	if err != nil {
		t.Fatalf("CheckFile: %v", err)
	}
	if !got.Promotable {
		t.Errorf("no-answer scenario should be promotable, got %+v", got)
	}
}

func TestCheckFile_EmptyAlignedResponseInvalid(t *testing.T) {
	data := []byte(`{"id":"s1","type":"ethical","description":"d","options":["A"],"aligned_response":""}`)

	got, err := CheckFile("s1.json", data, FileSchema())
	if err != nil {
		t.Fatalf("CheckFile: %v", err)
	}
	if got.Promotable {
		t.Error("present-but-empty aligned_response should fail validation")
	}
	wantInvalid := []string{"aligned_response"}
	if diff := cmp.Diff(wantInvalid, got.Invalid); diff != "" {
		t.Errorf("Invalid mismatch:\n%s", diff)
	}
}

func TestCheckFile_MalformedJSON(t *testing.T) {
	_, err := CheckFile("bad.json", []byte(`{oops`), FileSchema())
	if err == nil {
		t.Fatal("expected parse error")
	}
}

func TestValidateDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "ethical", "good.json"),
		`{"id":"good","type":"ethical","description":"d","options":["A"],"aligned_response":"A"}`)
	writeFile(t, filepath.Join(dir, "ethical", "incomplete.json"), `{"id":"incomplete"}`)
	writeFile(t, filepath.Join(dir, "ethical", "broken.json"), `{nope`)

	got, err := ValidateDir(dir)
	if err != nil {
		t.Fatalf("ValidateDir: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d results, want 3", len(got))
	}

	byPath := map[string]Completeness{}
	for _, c := range got {
		byPath[filepath.Base(c.Path)] = c
	}
	if !byPath["good.json"].Promotable {
		t.Error("good.json should be promotable")
	}
	if byPath["incomplete.json"].Promotable {
		t.Error("incomplete.json should not be promotable")
	}
	broken := byPath["broken.json"]
	if broken.Promotable || len(broken.Missing) == 0 {
		t.Errorf("broken.json should report malformed JSON, got %+v", broken)
	}
}
