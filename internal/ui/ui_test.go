package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"checklist/internal/app"
	"checklist/internal/config"
	"checklist/internal/logging"
	"checklist/internal/prefs"
	"checklist/internal/storage"
)

func newTestModel(t *testing.T) (Model, *app.Controller) {
	t.Helper()
	ctrl := app.Open(storage.NewMemory(), nil, logging.Discard())
	return NewModel(ctrl, defaultKeysConfig()), ctrl
}

func defaultKeysConfig() config.Config {
	return config.Config{Keys: config.Keymap{
		Quit: "q", Add: "a", Up: "k", Down: "j", Toggle: " ", Delete: "d", Edit: "e",
		Confirm: "enter", Cancel: "esc", ClearCompleted: "c",
		FilterAll: "1", FilterActive: "2", FilterCompleted: "3", CycleFilter: "f", Theme: "t",
	}}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
)

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func addTask(t *testing.T, m Model, text string) Model {
	t.Helper()
	return send(t, m, runes("a"), runes(text), enter)
}

func TestAddTask(t *testing.T) {
	m, ctrl := newTestModel(t)
	assert.Contains(t, m.View(), "No tasks yet")
	assert.Contains(t, m.View(), "Add a task to get started!")

	m = addTask(t, m, "Buy milk")
	assert.Equal(t, modeList, m.mode)
	require.Equal(t, 1, ctrl.Tasks().Len())
	assert.Equal(t, "Buy milk", ctrl.Tasks().Tasks()[0].Text)
	assert.Contains(t, m.View(), "[ ] Buy milk")
	assert.Contains(t, m.View(), "1 total • 1 active • 0 completed")
}

func TestAddKeepsLongText(t *testing.T) {
	m, ctrl := newTestModel(t)
	long := strings.Repeat("abcdefghij", 40)
	addTask(t, m, long)
	require.Equal(t, 1, ctrl.Tasks().Len())
	assert.Equal(t, long, ctrl.Tasks().Tasks()[0].Text)
}

func TestAddEmptyStaysInAddMode(t *testing.T) {
	m, ctrl := newTestModel(t)
	m = send(t, m, runes("a"), runes("   "), enter)
	assert.Equal(t, modeAdd, m.mode)
	assert.Equal(t, "Title cannot be empty", m.status)
	assert.Equal(t, 0, ctrl.Tasks().Len())

	m = send(t, m, esc)
	assert.Equal(t, modeList, m.mode)
}

func TestToggleSelectedTask(t *testing.T) {
	m, ctrl := newTestModel(t)
	m = addTask(t, m, "Buy milk")
	m = addTask(t, m, "Write spec")

	m = send(t, m, runes("j"), space)
	tasks := ctrl.Tasks().Tasks()
	assert.False(t, tasks[0].Completed)
	assert.True(t, tasks[1].Completed)
	assert.Contains(t, m.View(), "[x] Buy milk")
}

func TestDeleteAsksFirst(t *testing.T) {
	m, ctrl := newTestModel(t)
	m = addTask(t, m, "Buy milk")

	m = send(t, m, runes("d"))
	assert.Equal(t, modeConfirm, m.mode)
	assert.Contains(t, m.View(), "Delete this task?")

	m = send(t, m, runes("n"))
	assert.Equal(t, modeList, m.mode)
	assert.Equal(t, 1, ctrl.Tasks().Len())

	m = send(t, m, runes("d"), runes("x"))
	assert.Equal(t, modeConfirm, m.mode, "other keys are ignored while confirming")

	m = send(t, m, runes("y"))
	assert.Equal(t, modeList, m.mode)
	assert.Equal(t, 0, ctrl.Tasks().Len())
	assert.Equal(t, "Deleted task", m.status)
}

func TestClearCompleted(t *testing.T) {
	m, ctrl := newTestModel(t)
	m = addTask(t, m, "a")
	m = send(t, m, runes("c"))
	assert.Equal(t, modeList, m.mode)
	assert.Equal(t, "No completed tasks!", m.status)

	m = addTask(t, m, "b")
	m = send(t, m, space, runes("j"), space, runes("c"))
	assert.Equal(t, modeConfirm, m.mode)
	assert.Contains(t, m.View(), "Clear 2 completed tasks?")

	m = send(t, m, esc)
	assert.Equal(t, 2, ctrl.Tasks().Len())

	m = send(t, m, runes("c"), runes("y"))
	assert.Equal(t, 0, ctrl.Tasks().Len())
	assert.Equal(t, "Cleared 2 completed tasks", m.status)
}

func TestEditFlow(t *testing.T) {
	m, ctrl := newTestModel(t)
	m = addTask(t, m, "draft")

	m = send(t, m, runes("e"))
	require.Equal(t, modeEdit, m.mode)
	assert.Equal(t, "draft", m.input.Value())
	_, open := ctrl.EditSession()
	assert.True(t, open)

	m.input.SetValue("")
	m = send(t, m, enter)
	assert.Equal(t, modeEdit, m.mode)
	assert.Equal(t, "draft", ctrl.Tasks().Tasks()[0].Text)

	m.input.SetValue("final")
	m = send(t, m, enter)
	assert.Equal(t, modeList, m.mode)
	assert.Equal(t, "final", ctrl.Tasks().Tasks()[0].Text)

	m = send(t, m, runes("e"), esc)
	assert.Equal(t, modeList, m.mode)
	_, open = ctrl.EditSession()
	assert.False(t, open)
}

func TestFilterKeys(t *testing.T) {
	m, ctrl := newTestModel(t)
	m = addTask(t, m, "open")
	m = addTask(t, m, "finished")
	m = send(t, m, space)

	m = send(t, m, runes("3"))
	assert.Equal(t, prefs.FilterCompleted, ctrl.Filter())
	view := m.View()
	assert.Contains(t, view, "finished")
	assert.NotContains(t, view, "open")

	m = send(t, m, runes("2"))
	assert.Contains(t, m.View(), "open")
	assert.NotContains(t, m.View(), "finished")

	m = send(t, m, space)
	assert.Contains(t, m.View(), "No tasks active")

	m = send(t, m, runes("f"))
	assert.Equal(t, prefs.FilterCompleted, ctrl.Filter())
	m = send(t, m, runes("1"))
	assert.Equal(t, prefs.FilterAll, ctrl.Filter())
}

func TestThemeToggle(t *testing.T) {
	m, ctrl := newTestModel(t)
	m = send(t, m, runes("t"))
	assert.Equal(t, prefs.ThemeDark, ctrl.Theme())
	assert.Equal(t, prefs.ThemeDark, m.frame.theme)
	assert.Equal(t, "Switched to dark mode", m.status)
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestClampCursor(t *testing.T) {
	assert.Equal(t, 0, clampCursor(5, 0))
	assert.Equal(t, 0, clampCursor(-1, 3))
	assert.Equal(t, 2, clampCursor(9, 3))
	assert.Equal(t, 1, clampCursor(1, 3))
}
