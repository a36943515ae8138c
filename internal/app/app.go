// Package app dispatches user actions against the task list and
// preferences, persisting and re-rendering after every change.
package app

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"checklist/internal/prefs"
	"checklist/internal/prompt"
	"checklist/internal/storage"
	"checklist/internal/task"
	"checklist/internal/view"
)

// Renderer receives a fresh projection after every change and the theme
// whenever it is set.
type Renderer interface {
	Render(view.Projection)
	ApplyTheme(prefs.Theme)
}

type nopRenderer struct{}

func (nopRenderer) Render(view.Projection) {}
func (nopRenderer) ApplyTheme(prefs.Theme) {}

// State is everything the controller owns.
type State struct {
	Tasks *task.List
	Prefs prefs.Preferences
}

func LoadState(s storage.Store, logger *log.Logger) State {
	return State{
		Tasks: task.Load(s, logger),
		Prefs: prefs.Load(s, logger),
	}
}

// EditSession is the task currently being edited, if any.
type EditSession struct {
	TaskID string
	Buffer string
}

type Controller struct {
	store    storage.Store
	state    State
	renderer Renderer
	logger   *log.Logger
	edit     *EditSession
}

func New(s storage.Store, state State, r Renderer, logger *log.Logger) *Controller {
	if r == nil {
		r = nopRenderer{}
	}
	if state.Tasks == nil {
		state.Tasks = task.NewList(nil)
	}
	return &Controller{store: s, state: state, renderer: r, logger: logger}
}

// Open loads persisted state, applies the theme and renders once.
func Open(s storage.Store, r Renderer, logger *log.Logger) *Controller {
	c := New(s, LoadState(s, logger), r, logger)
	c.renderer.ApplyTheme(c.state.Prefs.Theme)
	c.render()
	return c
}

// SetRenderer swaps the renderer and immediately renders to it.
func (c *Controller) SetRenderer(r Renderer) {
	if r == nil {
		r = nopRenderer{}
	}
	c.renderer = r
	c.renderer.ApplyTheme(c.state.Prefs.Theme)
	c.render()
}

func (c *Controller) Projection() view.Projection {
	return view.Project(c.state.Tasks.Tasks(), c.state.Prefs.Filter)
}

func (c *Controller) Theme() prefs.Theme   { return c.state.Prefs.Theme }
func (c *Controller) Filter() prefs.Filter { return c.state.Prefs.Filter }
func (c *Controller) Tasks() *task.List    { return c.state.Tasks }

func (c *Controller) EditSession() (EditSession, bool) {
	if c.edit == nil {
		return EditSession{}, false
	}
	return *c.edit, true
}

func (c *Controller) Add(text string) (task.Task, error) {
	t, err := c.state.Tasks.Add(text)
	if err != nil {
		return task.Task{}, err
	}
	c.logger.Debug("task added", "id", t.ID)
	c.commitTasks()
	return t, nil
}

func (c *Controller) Toggle(id string) (task.Task, error) {
	t, err := c.state.Tasks.Toggle(id)
	if err != nil {
		return task.Task{}, err
	}
	c.commitTasks()
	return t, nil
}

// Delete asks for confirmation and removes the task. It reports whether
// the task was removed.
func (c *Controller) Delete(id string, p prompt.Prompter) (bool, error) {
	if _, ok := c.state.Tasks.Get(id); !ok {
		return false, task.ErrNotFound
	}
	if !p.Confirm("Delete this task?") {
		return false, nil
	}
	if _, err := c.state.Tasks.Delete(id); err != nil {
		return false, err
	}
	if c.edit != nil && c.edit.TaskID == id {
		c.edit = nil
	}
	c.commitTasks()
	return true, nil
}

// ClearCompleted removes every completed task after confirmation and
// returns how many were removed.
func (c *Controller) ClearCompleted(p prompt.Prompter) int {
	n := c.state.Tasks.CompletedCount()
	if n == 0 {
		p.Notify("No completed tasks!")
		return 0
	}
	if !p.Confirm(ClearQuestion(n)) {
		return 0
	}
	if c.edit != nil {
		if t, ok := c.state.Tasks.Get(c.edit.TaskID); ok && t.Completed {
			c.edit = nil
		}
	}
	removed := c.state.Tasks.ClearCompleted()
	c.commitTasks()
	return removed
}

func ClearQuestion(n int) string {
	if n == 1 {
		return "Clear 1 completed task?"
	}
	return fmt.Sprintf("Clear %d completed tasks?", n)
}

// OpenEdit starts editing id, replacing any open session. Unknown ids are
// ignored.
func (c *Controller) OpenEdit(id string) bool {
	t, ok := c.state.Tasks.Get(id)
	if !ok {
		return false
	}
	c.edit = &EditSession{TaskID: t.ID, Buffer: t.Text}
	return true
}

// SaveEdit applies text to the task being edited. Empty text keeps the
// session open and returns the validation error.
func (c *Controller) SaveEdit(text string) (task.Task, error) {
	if c.edit == nil {
		return task.Task{}, nil
	}
	c.edit.Buffer = text
	t, err := c.state.Tasks.Edit(c.edit.TaskID, text)
	switch {
	case errors.Is(err, task.ErrEmptyText):
		return task.Task{}, err
	case err != nil:
		c.edit = nil
		return task.Task{}, err
	}
	c.edit = nil
	c.commitTasks()
	return t, nil
}

func (c *Controller) CancelEdit() {
	c.edit = nil
}

// SetFilter ignores values outside the closed set.
func (c *Controller) SetFilter(raw string) bool {
	f, ok := prefs.ParseFilter(raw)
	if !ok {
		return false
	}
	c.state.Prefs.Filter = f
	if err := prefs.SaveFilter(c.store, f); err != nil {
		c.logger.Warn("could not save filter", "err", err)
	}
	c.render()
	return true
}

func (c *Controller) CycleFilter() prefs.Filter {
	next := c.state.Prefs.Filter.Next()
	c.SetFilter(string(next))
	return next
}

// SetTheme ignores values outside the closed set.
func (c *Controller) SetTheme(raw string) bool {
	t, ok := prefs.ParseTheme(raw)
	if !ok {
		return false
	}
	c.state.Prefs.Theme = t
	if err := prefs.SaveTheme(c.store, t); err != nil {
		c.logger.Warn("could not save theme", "err", err)
	}
	c.renderer.ApplyTheme(t)
	return true
}

func (c *Controller) ToggleTheme() prefs.Theme {
	next := c.state.Prefs.Theme.Toggle()
	c.SetTheme(string(next))
	return next
}

// commitTasks persists the list and re-renders. A failed write is logged;
// the in-memory list stays authoritative.
func (c *Controller) commitTasks() {
	if err := task.Save(c.store, c.state.Tasks); err != nil {
		c.logger.Warn("could not save tasks", "err", err)
	}
	c.render()
}

func (c *Controller) render() {
	c.renderer.Render(c.Projection())
}
