package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"checklist/internal/prefs"
	"checklist/internal/task"
)

var sample = []task.Task{
	{ID: "A", Text: "Write spec"},
	{ID: "B", Text: "Buy milk", Completed: true},
	{ID: "C", Text: "Walk dog"},
}

func TestProjectAll(t *testing.T) {
	p := Project(sample, prefs.FilterAll)
	assert.Equal(t, prefs.FilterAll, p.Filter)
	assert.Nil(t, p.Empty)
	require.Len(t, p.Items, 3)
	for i, it := range p.Items {
		assert.Equal(t, i, it.Index)
		assert.Equal(t, sample[i], it.Task)
	}
	assert.Equal(t, task.Counts{Total: 3, Active: 2, Completed: 1}, p.Counts)
}

func TestProjectKeepsOriginalIndices(t *testing.T) {
	p := Project(sample, prefs.FilterCompleted)
	assert.Equal(t, []Item{{Task: sample[1], Index: 1}}, p.Items)

	p = Project(sample, prefs.FilterActive)
	assert.Equal(t, []Item{{Task: sample[0], Index: 0}, {Task: sample[2], Index: 2}}, p.Items)
	assert.Equal(t, task.Counts{Total: 3, Active: 2, Completed: 1}, p.Counts)
}

func TestProjectEmptyStates(t *testing.T) {
	p := Project(nil, prefs.FilterAll)
	require.NotNil(t, p.Empty)
	assert.Equal(t, EmptyState{Message: "No tasks yet", Hint: "Add a task to get started!"}, *p.Empty)
	assert.Empty(t, p.Items)

	p = Project(nil, prefs.FilterActive)
	require.NotNil(t, p.Empty)
	assert.Equal(t, EmptyState{Message: "No tasks active"}, *p.Empty)

	allActive := []task.Task{{ID: "A", Text: "x"}}
	p = Project(allActive, prefs.FilterCompleted)
	require.NotNil(t, p.Empty)
	assert.Equal(t, EmptyState{Message: "No tasks completed"}, *p.Empty)
	assert.Equal(t, 1, p.Counts.Total)
}

func TestProjectIsDeterministic(t *testing.T) {
	assert.Equal(t, Project(sample, prefs.FilterActive), Project(sample, prefs.FilterActive))
}
