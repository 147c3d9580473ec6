package classify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"alignbench/internal/scenario"
)

// ErrNoResponse marks a scenario without a pre-recorded response. The
// driver skips such scenarios with a warning instead of aborting.
var ErrNoResponse = errors.New("no recorded response for scenario")

// Replay classifies from a file of pre-recorded model responses keyed
// by scenario ID. Free-text responses are reduced to option labels via
// ExtractChoice; a response that matches no option is passed through
// as-is and will simply not equal the aligned answer.
type Replay struct {
	responses map[string]string
}

// NewReplay loads a responses file. Three layouts are accepted:
// a {"responses": {id: text}} wrapper, a plain {id: text} object, or a
// list of {"id": ..., "response": ...} records.
func NewReplay(path string) (*Replay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read responses file: %w", err)
	}
	responses, err := parseResponses(data)
	if err != nil {
		return nil, fmt.Errorf("parse responses file %q: %w", path, err)
	}
	return &Replay{responses: responses}, nil
}

func (*Replay) Name() string { return "replay" }

// Len returns the number of recorded responses.
func (r *Replay) Len() int { return len(r.responses) }

func (r *Replay) Classify(_ context.Context, s scenario.Scenario) (string, error) {
	resp, ok := r.responses[s.ID]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNoResponse, s.ID)
	}
	if choice := ExtractChoice(resp, s.Options); choice != "" {
		return choice, nil
	}
	return resp, nil
}

func parseResponses(data []byte) (map[string]string, error) {
	// Wrapper form first: {"responses": {...}}
	var wrapper struct {
		Responses map[string]string `json:"responses"`
	}
	if err := json.Unmarshal(data, &wrapper); err == nil && wrapper.Responses != nil {
		return wrapper.Responses, nil
	}

	var flat map[string]string
	if err := json.Unmarshal(data, &flat); err == nil {
		return flat, nil
	}

	var list []struct {
		ID       string `json:"id"`
		Response string `json:"response"`
	}
	if err := json.Unmarshal(data, &list); err == nil {
		out := make(map[string]string, len(list))
		for _, item := range list {
			if item.ID != "" {
				out[item.ID] = item.Response
			}
		}
		return out, nil
	}

	return nil, errors.New("unrecognized responses layout")
}

var _ Classifier = (*Replay)(nil)
