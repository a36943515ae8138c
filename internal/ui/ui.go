package ui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"checklist/internal/app"
	"checklist/internal/config"
	"checklist/internal/prefs"
	"checklist/internal/prompt"
	"checklist/internal/task"
	"checklist/internal/view"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeEdit
	modeConfirm
)

// frame is the controller's renderer. The controller writes into it and
// View reads from it.
type frame struct {
	proj  view.Projection
	theme prefs.Theme
}

func (f *frame) Render(p view.Projection) { f.proj = p }
func (f *frame) ApplyTheme(t prefs.Theme) { f.theme = t }

// pendingConfirm replays a deferred action once the user answers.
type pendingConfirm struct {
	question string
	run      func(prompt.Prompter) string
}

type Model struct {
	ctrl    *app.Controller
	frame   *frame
	keys    keyMap
	help    help.Model
	cursor  int
	mode    mode
	input   textinput.Model
	status  string
	confirm *pendingConfirm
	width   int
}

func NewModel(ctrl *app.Controller, cfg config.Config) Model {
	ti := textinput.New()
	ti.Placeholder = "What needs to be done?"
	ti.CharLimit = 0
	ti.Width = 40

	f := &frame{}
	ctrl.SetRenderer(f)

	return Model{
		ctrl:   ctrl,
		frame:  f,
		keys:   newKeyMap(cfg.Keys),
		help:   help.New(),
		input:  ti,
		mode:   modeList,
		status: fmt.Sprintf("Press '%s' to add, %s to toggle, '%s' to delete.", cfg.Keys.Add, keyLabel(cfg.Keys.Toggle), cfg.Keys.Delete),
	}
}

func Run(ctrl *app.Controller, cfg config.Config) error {
	program := tea.NewProgram(NewModel(ctrl, cfg))
	_, err := program.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case modeConfirm:
			return m.updateConfirm(msg)
		case modeAdd:
			return m.updateAddMode(msg)
		case modeEdit:
			return m.updateEditMode(msg)
		}
		return m.updateListMode(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(msg.Width-10, 10)
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m Model) updateAddMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeList
		m.input.SetValue("")
		m.input.Blur()
		m.status = "Cancelled"
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		if _, err := m.ctrl.Add(m.input.Value()); err != nil {
			m.status = "Title cannot be empty"
			return m, m.input.Focus()
		}
		m.input.SetValue("")
		m.input.Blur()
		m.mode = modeList
		m.cursor = 0
		m.status = "Added task"
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) updateEditMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.ctrl.CancelEdit()
		m.mode = modeList
		m.input.SetValue("")
		m.input.Blur()
		m.status = "Edit cancelled"
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		_, err := m.ctrl.SaveEdit(m.input.Value())
		switch {
		case errors.Is(err, task.ErrEmptyText):
			m.status = "Title cannot be empty"
			return m, m.input.Focus()
		case errors.Is(err, task.ErrNotFound):
			m.status = "Task no longer exists"
		default:
			m.status = "Saved task"
		}
		m.mode = modeList
		m.input.SetValue("")
		m.input.Blur()
		m.clampCursor()
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) updateListMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Down):
		if n := len(m.frame.proj.Items); m.cursor < n-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Add):
		m.mode = modeAdd
		m.input.SetValue("")
		m.status = "Add mode: type a title and press Enter"
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Toggle):
		it, ok := m.selected()
		if !ok {
			return m, nil
		}
		if t, err := m.ctrl.Toggle(it.Task.ID); err == nil {
			m.status = "Marked " + humanDone(t.Completed)
		}
		m.clampCursor()
	case key.Matches(msg, m.keys.Edit):
		it, ok := m.selected()
		if !ok || !m.ctrl.OpenEdit(it.Task.ID) {
			m.status = "No tasks to edit"
			return m, nil
		}
		sess, _ := m.ctrl.EditSession()
		m.mode = modeEdit
		m.input.SetValue(sess.Buffer)
		m.input.CursorEnd()
		m.status = "Editing: Enter to save, Esc to cancel"
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Delete):
		it, ok := m.selected()
		if !ok {
			return m, nil
		}
		id := it.Task.ID
		return m.ask(func(p prompt.Prompter) string {
			removed, err := m.ctrl.Delete(id, p)
			if err != nil || !removed {
				return "Nothing deleted"
			}
			return "Deleted task"
		}), nil
	case key.Matches(msg, m.keys.ClearCompleted):
		return m.ask(func(p prompt.Prompter) string {
			n := m.ctrl.ClearCompleted(p)
			return fmt.Sprintf("Cleared %d completed %s", n, plural(n, "task", "tasks"))
		}), nil
	case key.Matches(msg, m.keys.FilterAll):
		m.setFilter(prefs.FilterAll)
	case key.Matches(msg, m.keys.FilterActive):
		m.setFilter(prefs.FilterActive)
	case key.Matches(msg, m.keys.FilterCompleted):
		m.setFilter(prefs.FilterCompleted)
	case key.Matches(msg, m.keys.CycleFilter):
		m.setFilter(m.ctrl.Filter().Next())
	case key.Matches(msg, m.keys.Theme):
		t := m.ctrl.ToggleTheme()
		m.status = fmt.Sprintf("Switched to %s mode", t)
	}
	return m, nil
}

// ask runs action against a deferred prompter. When the action wants
// confirmation, the model switches to the confirm dialog and replays the
// action with the user's answer.
func (m Model) ask(action func(prompt.Prompter) string) Model {
	d := &prompt.Deferred{}
	status := action(d)
	switch {
	case d.Notice != "":
		m.status = d.Notice
	case d.Question != "":
		m.mode = modeConfirm
		m.confirm = &pendingConfirm{question: d.Question, run: action}
		m.status = d.Question + " y/n"
	default:
		m.status = status
	}
	return m
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if m.confirm != nil {
			m.status = m.confirm.run(prompt.Answer(true))
		}
	case "n", "N":
		m.status = "Cancelled"
	default:
		if !key.Matches(msg, m.keys.Cancel) {
			return m, nil
		}
		m.status = "Cancelled"
	}
	m.confirm = nil
	m.mode = modeList
	m.clampCursor()
	return m, nil
}

func (m *Model) setFilter(f prefs.Filter) {
	if m.ctrl.SetFilter(string(f)) {
		m.status = "Showing " + string(f)
	}
	m.cursor = 0
}

func (m Model) selected() (view.Item, bool) {
	items := m.frame.proj.Items
	if len(items) == 0 {
		return view.Item{}, false
	}
	return items[clampCursor(m.cursor, len(items))], true
}

func (m *Model) clampCursor() {
	m.cursor = clampCursor(m.cursor, len(m.frame.proj.Items))
}

func clampCursor(cur, n int) int {
	if n <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}

func humanDone(done bool) string {
	if done {
		return "done"
	}
	return "pending"
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
