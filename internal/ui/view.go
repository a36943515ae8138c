package ui

import (
	"fmt"
	"strings"

	"checklist/internal/prefs"
)

func (m Model) View() string {
	st := newStyles(m.frame.theme)
	proj := m.frame.proj
	var b strings.Builder

	b.WriteString(st.title.Render("Todo"))
	b.WriteString("\n\n")
	b.WriteString(m.renderFilterBar(st))
	b.WriteString("\n\n")

	if proj.Empty != nil {
		b.WriteString(st.muted.Render(proj.Empty.Message))
		if proj.Empty.Hint != "" {
			b.WriteString("\n")
			b.WriteString(st.muted.Render(proj.Empty.Hint))
		}
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderTaskList(st))
	}

	b.WriteString("\n")
	b.WriteString(st.muted.Render(fmt.Sprintf("%d total • %d active • %d completed",
		proj.Counts.Total, proj.Counts.Active, proj.Counts.Completed)))
	b.WriteString("\n")

	switch m.mode {
	case modeAdd:
		b.WriteString("\nAdd Task: ")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	case modeEdit:
		b.WriteString("\nEdit Task: ")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	case modeConfirm:
		if m.confirm != nil {
			b.WriteString("\n")
			b.WriteString(st.confirmBox.Render(m.confirm.question + "\n\ny: yes   n/esc: no"))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(st.status.Render(m.status))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m Model) renderFilterBar(st styles) string {
	parts := make([]string, 0, len(prefs.Filters))
	for _, f := range prefs.Filters {
		label := strings.ToUpper(string(f[:1])) + string(f[1:])
		if f == m.frame.proj.Filter {
			parts = append(parts, st.filterOn.Render(label))
			continue
		}
		parts = append(parts, st.filter.Render(label))
	}
	return strings.Join(parts, " ")
}

func (m Model) renderTaskList(st styles) string {
	var b strings.Builder
	for i, it := range m.frame.proj.Items {
		cursor := " "
		if m.cursor == i && m.mode == modeList {
			cursor = ">"
		}

		checkbox := "[ ]"
		text := st.item.Render(it.Task.Text)
		if it.Task.Completed {
			checkbox = "[x]"
			text = st.done.Render(it.Task.Text)
		}

		line := fmt.Sprintf("%s %s %s", cursor, checkbox, text)
		if m.cursor == i && m.mode == modeList {
			line = st.selected.Render(cursor+" "+checkbox) + " " + text
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
