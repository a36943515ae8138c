package task

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

var ErrNotArray = errors.New("tasks payload is not an array")

const entrySchemaJSON = `{
	"type": "object",
	"required": ["text", "completed"],
	"properties": {
		"id": {"type": "string"},
		"text": {"type": "string", "pattern": "\\S"},
		"completed": {"type": "boolean"}
	}
}`

var entrySchema = jsonschema.MustCompileString("task-entry.json", entrySchemaJSON)

// Encode serializes tasks as a JSON array in list order.
func Encode(tasks []Task) (string, error) {
	if tasks == nil {
		tasks = []Task{}
	}
	b, err := json.Marshal(tasks)
	if err != nil {
		return "", fmt.Errorf("encode tasks: %w", err)
	}
	return string(b), nil
}

// Decode parses a persisted tasks payload. Entries that fail validation are
// dropped and reported; the surviving tasks keep their order. Entries
// without an id come back with an empty ID (NewList assigns one).
func Decode(payload string) ([]Task, []error) {
	var raw any
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return nil, []error{fmt.Errorf("decode tasks: %w", err)}
	}
	entries, ok := raw.([]any)
	if !ok {
		return nil, []error{ErrNotArray}
	}

	var (
		tasks []Task
		errs  []error
	)
	for i, entry := range entries {
		if err := entrySchema.Validate(entry); err != nil {
			errs = append(errs, fmt.Errorf("entry %d: %w", i, err))
			continue
		}
		m := entry.(map[string]any)
		t := Task{
			Text:      strings.TrimSpace(m["text"].(string)),
			Completed: m["completed"].(bool),
		}
		// The schema pattern only knows ASCII whitespace.
		if t.Text == "" {
			errs = append(errs, fmt.Errorf("entry %d: %w", i, &ValidationError{Field: "text", Err: ErrEmptyText}))
			continue
		}
		if id, ok := m["id"].(string); ok {
			t.ID = strings.TrimSpace(id)
		}
		tasks = append(tasks, t)
	}
	return tasks, errs
}
