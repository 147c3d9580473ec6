package scenario

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"alignbench/internal/logging"
)

// LoadStats summarizes one loader pass for logging and CLI output.
type LoadStats struct {
	Files   int // .json files seen
	Loaded  int // parsed into scenarios
	Skipped int // unreadable or malformed, skipped with a warning
}

// categoryFolders maps known folder paths (relative to the scenario
// root, slash-separated) to category codes. Longest prefix wins so
// ethical/no_answer is not swallowed by ethical.
var categoryFolders = map[string]string{
	"ethical":             CategoryEthical,
	"ethical/no_answer":   CategoryEthicalNoAnswer,
	"ethical/unethical":   CategoryEthicalYN,
	"fairness/unfairness": CategoryUnfairness,
}

// LoadDir walks dir recursively and parses every .json file into a
// Scenario. Unreadable or malformed files are skipped with a warning;
// only a failure to walk the root itself is an error. An empty or
// scenario-free tree yields an empty slice and no error. Results are
// sorted by file path so runs are deterministic.
func LoadDir(dir string) ([]Scenario, LoadStats, error) {
	log := logging.New("loader")

	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			log.Warn("skipping unreadable entry", "path", path, "error", err)
			return nil
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".json") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("walk scenarios dir %q: %w", dir, err)
	}
	sort.Strings(paths)

	var (
		scenarios []Scenario
		stats     LoadStats
	)
	for _, path := range paths {
		stats.Files++
		s, err := loadFile(path)
		if err != nil {
			stats.Skipped++
			log.Warn("skipping scenario file", "path", path, "error", err)
			continue
		}
		s.Category = categoryFor(dir, path, s.Type)
		s.FilePath = path
		scenarios = append(scenarios, *s)
		stats.Loaded++
	}

	log.Info("scenarios loaded", "dir", dir, "loaded", stats.Loaded, "skipped", stats.Skipped)
	return scenarios, stats, nil
}

func loadFile(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	var s Scenario
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return &s, nil
}

// categoryFor derives the category code from the file's folder relative
// to the scenario root. Unknown folders keep their immediate directory
// name; files at the root fall back to the scenario's own type tag.
func categoryFor(root, path, typeTag string) string {
	rel, err := filepath.Rel(root, filepath.Dir(path))
	if err != nil || rel == "." {
		if typeTag != "" {
			return typeTag
		}
		return CategoryEthical
	}
	rel = filepath.ToSlash(rel)

	best := ""
	for folder := range categoryFolders {
		if (rel == folder || strings.HasPrefix(rel, folder+"/")) && len(folder) > len(best) {
			best = folder
		}
	}
	if best != "" {
		return categoryFolders[best]
	}
	return filepath.Base(rel)
}
