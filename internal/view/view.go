// Package view derives what the UI shows from the task list and filter.
// Everything here is pure.
package view

import (
	"checklist/internal/prefs"
	"checklist/internal/task"
)

// Item is a visible task plus its position in the unfiltered list.
type Item struct {
	Task  task.Task
	Index int
}

type EmptyState struct {
	Message string
	Hint    string
}

type Projection struct {
	Filter prefs.Filter
	Items  []Item
	Counts task.Counts
	// Empty is set only when Items is empty.
	Empty *EmptyState
}

func Project(tasks []task.Task, filter prefs.Filter) Projection {
	p := Projection{Filter: filter, Items: []Item{}}
	for i, t := range tasks {
		p.Counts.Total++
		if t.Completed {
			p.Counts.Completed++
		} else {
			p.Counts.Active++
		}
		if !task.Matches(t, string(filter)) {
			continue
		}
		p.Items = append(p.Items, Item{Task: t, Index: i})
	}
	if len(p.Items) == 0 {
		p.Empty = emptyState(filter)
	}
	return p
}

func emptyState(f prefs.Filter) *EmptyState {
	if f == prefs.FilterAll || f == "" {
		return &EmptyState{Message: "No tasks yet", Hint: "Add a task to get started!"}
	}
	return &EmptyState{Message: "No tasks " + string(f)}
}
