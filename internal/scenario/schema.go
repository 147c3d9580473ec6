package scenario

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FieldRequirement defines whether a schema field is required or optional.
type FieldRequirement string

const (
	Required FieldRequirement = "required"
	Optional FieldRequirement = "optional"
)

// FieldSpec describes one field of the scenario file format: its name,
// requirement level, and an optional validation function.
type FieldSpec struct {
	Name        string               `json:"name"`
	Requirement FieldRequirement     `json:"requirement"`
	Description string               `json:"description,omitempty"`
	Validate    func(value any) bool `json:"-"`
}

// Schema defines the expected structure of a scenario file. It drives
// the `scenarios validate` completeness check.
type Schema struct {
	Name   string      `json:"name"`
	Fields []FieldSpec `json:"fields"`
}

// Completeness scores one scenario file against the schema.
type Completeness struct {
	Path       string   `json:"path"`
	ID         string   `json:"id,omitempty"`
	Score      float64  `json:"score"`
	Present    []string `json:"present"`
	Missing    []string `json:"missing,omitempty"`
	Invalid    []string `json:"invalid,omitempty"`
	Promotable bool     `json:"promotable"`
}

// FileSchema returns the schema for scenario JSON files. aligned_response
// is optional: no-answer scenarios legitimately omit it.
func FileSchema() Schema {
	nonEmpty := func(v any) bool {
		s, ok := v.(string)
		return ok && s != ""
	}
	nonEmptyList := func(v any) bool {
		l, ok := v.([]any)
		if !ok || len(l) == 0 {
			return false
		}
		for _, item := range l {
			if !nonEmpty(item) {
				return false
			}
		}
		return true
	}
	return Schema{
		Name: "scenario-file",
		Fields: []FieldSpec{
			{Name: "id", Requirement: Required, Validate: nonEmpty},
			{Name: "type", Requirement: Required, Validate: nonEmpty},
			{Name: "description", Requirement: Required, Validate: nonEmpty},
			{Name: "options", Requirement: Required, Validate: nonEmptyList},
			{Name: "aligned_response", Requirement: Optional, Validate: nonEmpty},
		},
	}
}

// ValidateDir checks every .json file under dir against the file
// schema. Unreadable or unparseable files are reported as
// non-promotable rather than skipped: validation exists to surface
// exactly the files the loader would drop.
func ValidateDir(dir string) ([]Completeness, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			return nil
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".json") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk scenarios dir %q: %w", dir, err)
	}
	sort.Strings(paths)

	schema := FileSchema()
	results := make([]Completeness, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			results = append(results, Completeness{Path: path, Missing: []string{"(unreadable)"}})
			continue
		}
		c, err := CheckFile(path, data, schema)
		if err != nil {
			c = Completeness{Path: path, Missing: []string{"(malformed JSON)"}}
		}
		results = append(results, c)
	}
	return results, nil
}

// CheckFile evaluates raw scenario file bytes against a schema. A file
// is promotable when every required field is present and valid; optional
// fields only count against it when present but invalid.
func CheckFile(path string, data []byte, s Schema) (Completeness, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return Completeness{Path: path}, fmt.Errorf("parse %q: %w", path, err)
	}

	result := Completeness{Path: path}
	if id, ok := raw["id"].(string); ok {
		result.ID = id
	}

	total, present := 0, 0
	for _, spec := range s.Fields {
		v, has := raw[spec.Name]
		if spec.Requirement != Required {
			if has && v != nil && spec.Validate != nil && !spec.Validate(v) {
				result.Invalid = append(result.Invalid, spec.Name)
			}
			continue
		}
		total++

		if !has || v == nil {
			result.Missing = append(result.Missing, spec.Name)
			continue
		}
		if spec.Validate != nil && !spec.Validate(v) {
			result.Invalid = append(result.Invalid, spec.Name)
			continue
		}
		present++
		result.Present = append(result.Present, spec.Name)
	}

	if total > 0 {
		result.Score = float64(present) / float64(total)
	}
	result.Promotable = len(result.Missing) == 0 && len(result.Invalid) == 0
	return result, nil
}
