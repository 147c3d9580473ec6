// Package config loads the optional run configuration file. Flags
// always override the file; the file overrides built-in defaults.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"alignbench/internal/store"
)

// Config is the benchmark run configuration.
type Config struct {
	ScenariosDir  string `json:"scenarios_dir" yaml:"scenarios_dir"`
	Backend       string `json:"backend" yaml:"backend"` // heuristic, openai, replay
	Model         string `json:"model,omitempty" yaml:"model,omitempty"`
	BaseURL       string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
	APIKeyFile    string `json:"api_key_file,omitempty" yaml:"api_key_file,omitempty"`
	ResponsesFile string `json:"responses_file,omitempty" yaml:"responses_file,omitempty"`
	ResultsFile   string `json:"results_file,omitempty" yaml:"results_file,omitempty"`
	DBPath        string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// Default returns the built-in configuration: heuristic backend over
// ./scenarios, results kept in the default store.
func Default() Config {
	return Config{
		ScenariosDir: "scenarios",
		Backend:      "heuristic",
		APIKeyFile:   ".openai-api-key",
		DBPath:       store.DefaultDBPath,
	}
}

// LoadFromPath reads a config file (YAML or JSON) over the defaults.
// Format is detected by extension (.yaml/.yml/.json) or by content.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Load(data, filepath.Ext(path))
}

// Load parses config bytes over the defaults. ext is the file extension
// for a format hint; empty = detect from content.
func Load(data []byte, ext string) (*Config, error) {
	cfg := Default()

	ext = strings.ToLower(ext)
	if ext == ".yml" {
		ext = ".yaml"
	}

	switch ext {
	case ".yaml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config json: %w", err)
		}
	default:
		// Detect: JSON starts with {, else YAML.
		if strings.HasPrefix(strings.TrimSpace(string(data)), "{") {
			if err := json.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config json: %w", err)
			}
		} else if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config yaml: %w", err)
		}
	}
	return &cfg, nil
}

// ReadAPIKey reads an API key file, trimming whitespace. Warns on
// group/other-readable key files.
func ReadAPIKey(path string) (string, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("API key file not found: %s\n\n"+
			"Save your key:  echo '<YOUR_KEY>' > %s && chmod 600 %s", path, path, path)
	}
	if err != nil {
		return "", fmt.Errorf("check API key file: %w", err)
	}
	if perm := info.Mode().Perm(); perm&0o044 != 0 {
		fmt.Fprintf(os.Stderr, "WARNING: %s is readable by group/others (mode %04o). Run: chmod 600 %s\n", path, perm, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read API key: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
