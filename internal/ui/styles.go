package ui

import (
	"github.com/charmbracelet/lipgloss"

	"checklist/internal/prefs"
)

type palette struct {
	fg, muted, accent, accentFg, done, warn lipgloss.Color
}

var palettes = map[prefs.Theme]palette{
	prefs.ThemeLight: {fg: "235", muted: "244", accent: "27", accentFg: "255", done: "28", warn: "160"},
	prefs.ThemeDark:  {fg: "252", muted: "243", accent: "62", accentFg: "235", done: "78", warn: "203"},
}

type styles struct {
	title      lipgloss.Style
	item       lipgloss.Style
	selected   lipgloss.Style
	done       lipgloss.Style
	muted      lipgloss.Style
	filter     lipgloss.Style
	filterOn   lipgloss.Style
	status     lipgloss.Style
	confirmBox lipgloss.Style
}

func newStyles(t prefs.Theme) styles {
	p, ok := palettes[t]
	if !ok {
		p = palettes[prefs.ThemeLight]
	}
	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		item:     lipgloss.NewStyle().Foreground(p.fg),
		selected: lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		done:     lipgloss.NewStyle().Strikethrough(true).Foreground(p.done),
		muted:    lipgloss.NewStyle().Foreground(p.muted),
		filter:   lipgloss.NewStyle().Padding(0, 1).Foreground(p.muted),
		filterOn: lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(p.accentFg).Background(p.accent),
		status:   lipgloss.NewStyle().Foreground(p.muted).Italic(true),
		confirmBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.warn).
			Padding(0, 1),
	}
}
