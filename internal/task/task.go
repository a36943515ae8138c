// Package task holds the ordered task list and its persisted form.
package task

import (
	"errors"
	"strings"
)

var (
	ErrEmptyText = errors.New("text cannot be empty")
	ErrNotFound  = errors.New("task not found")
	ErrAmbiguous = errors.New("task reference is ambiguous")
)

// ShortIDLen is how many trailing id characters the CLI displays and accepts.
const ShortIDLen = 6

// ValidationError reports user input that was refused.
// errors.Is(err, ErrEmptyText) holds for empty text.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Err.Error()
	}
	return e.Field + ": " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

type Task struct {
	ID        string `json:"id" yaml:"id"`
	Text      string `json:"text" yaml:"text"`
	Completed bool   `json:"completed" yaml:"completed"`
}

func (t Task) ShortID() string {
	if len(t.ID) <= ShortIDLen {
		return strings.ToLower(t.ID)
	}
	return strings.ToLower(t.ID[len(t.ID)-ShortIDLen:])
}

type Counts struct {
	Total     int
	Active    int
	Completed int
}

// List is the ordered task sequence, newest first.
type List struct {
	tasks []Task
	ids   *IDGenerator
}

// NewList copies tasks into a list. Tasks with a missing or repeated id
// get a fresh one.
func NewList(tasks []Task) *List {
	l := &List{ids: NewIDGenerator()}
	seen := make(map[string]struct{}, len(tasks))
	for _, t := range tasks {
		if _, dup := seen[t.ID]; t.ID == "" || dup {
			t.ID = l.ids.New()
		}
		seen[t.ID] = struct{}{}
		l.tasks = append(l.tasks, t)
	}
	return l
}

func (l *List) Len() int {
	return len(l.tasks)
}

// Tasks returns a copy of the list in display order.
func (l *List) Tasks() []Task {
	out := make([]Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

func (l *List) IndexOf(id string) int {
	for i, t := range l.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (l *List) Get(id string) (Task, bool) {
	i := l.IndexOf(id)
	if i < 0 {
		return Task{}, false
	}
	return l.tasks[i], true
}

func (l *List) Add(raw string) (Task, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return Task{}, &ValidationError{Field: "text", Err: ErrEmptyText}
	}
	t := Task{ID: l.ids.New(), Text: text}
	l.tasks = append([]Task{t}, l.tasks...)
	return t, nil
}

func (l *List) Toggle(id string) (Task, error) {
	i := l.IndexOf(id)
	if i < 0 {
		return Task{}, ErrNotFound
	}
	l.tasks[i].Completed = !l.tasks[i].Completed
	return l.tasks[i], nil
}

func (l *List) Edit(id, raw string) (Task, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return Task{}, &ValidationError{Field: "text", Err: ErrEmptyText}
	}
	i := l.IndexOf(id)
	if i < 0 {
		return Task{}, ErrNotFound
	}
	l.tasks[i].Text = text
	return l.tasks[i], nil
}

func (l *List) Delete(id string) (Task, error) {
	i := l.IndexOf(id)
	if i < 0 {
		return Task{}, ErrNotFound
	}
	t := l.tasks[i]
	l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
	return t, nil
}

func (l *List) CompletedCount() int {
	n := 0
	for _, t := range l.tasks {
		if t.Completed {
			n++
		}
	}
	return n
}

// ClearCompleted removes every completed task and returns how many went.
func (l *List) ClearCompleted() int {
	kept := l.tasks[:0]
	removed := 0
	for _, t := range l.tasks {
		if t.Completed {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	l.tasks = kept
	return removed
}

func (l *List) Counts() Counts {
	done := l.CompletedCount()
	return Counts{Total: len(l.tasks), Active: len(l.tasks) - done, Completed: done}
}

// Resolve finds a task by full id or by a unique short-id suffix.
// Matching is case-insensitive.
func (l *List) Resolve(ref string) (Task, error) {
	ref = strings.ToLower(strings.TrimSpace(ref))
	if ref == "" {
		return Task{}, ErrNotFound
	}
	var matches []Task
	for _, t := range l.tasks {
		id := strings.ToLower(t.ID)
		if id == ref {
			return t, nil
		}
		if strings.HasSuffix(id, ref) {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 0:
		return Task{}, ErrNotFound
	case 1:
		return matches[0], nil
	default:
		return Task{}, ErrAmbiguous
	}
}
