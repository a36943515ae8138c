package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"checklist/internal/config"
)

type keyMap struct {
	Quit            key.Binding
	Add             key.Binding
	Up              key.Binding
	Down            key.Binding
	Toggle          key.Binding
	Delete          key.Binding
	Edit            key.Binding
	Confirm         key.Binding
	Cancel          key.Binding
	ClearCompleted  key.Binding
	FilterAll       key.Binding
	FilterActive    key.Binding
	FilterCompleted key.Binding
	CycleFilter     key.Binding
	Theme           key.Binding
}

func newKeyMap(k config.Keymap) keyMap {
	return keyMap{
		Quit:            key.NewBinding(key.WithKeys(k.Quit, "ctrl+c"), key.WithHelp(k.Quit, "quit")),
		Add:             key.NewBinding(key.WithKeys(k.Add), key.WithHelp(k.Add, "add")),
		Up:              key.NewBinding(key.WithKeys(k.Up, "up"), key.WithHelp(k.Up+"/↑", "up")),
		Down:            key.NewBinding(key.WithKeys(k.Down, "down"), key.WithHelp(k.Down+"/↓", "down")),
		Toggle:          key.NewBinding(key.WithKeys(k.Toggle), key.WithHelp(keyLabel(k.Toggle), "toggle")),
		Delete:          key.NewBinding(key.WithKeys(k.Delete), key.WithHelp(k.Delete, "delete")),
		Edit:            key.NewBinding(key.WithKeys(k.Edit), key.WithHelp(k.Edit, "edit")),
		Confirm:         key.NewBinding(key.WithKeys(k.Confirm), key.WithHelp(k.Confirm, "save")),
		Cancel:          key.NewBinding(key.WithKeys(k.Cancel), key.WithHelp(k.Cancel, "cancel")),
		ClearCompleted:  key.NewBinding(key.WithKeys(k.ClearCompleted), key.WithHelp(k.ClearCompleted, "clear done")),
		FilterAll:       key.NewBinding(key.WithKeys(k.FilterAll), key.WithHelp(k.FilterAll, "all")),
		FilterActive:    key.NewBinding(key.WithKeys(k.FilterActive), key.WithHelp(k.FilterActive, "active")),
		FilterCompleted: key.NewBinding(key.WithKeys(k.FilterCompleted), key.WithHelp(k.FilterCompleted, "completed")),
		CycleFilter:     key.NewBinding(key.WithKeys(k.CycleFilter), key.WithHelp(k.CycleFilter, "next filter")),
		Theme:           key.NewBinding(key.WithKeys(k.Theme), key.WithHelp(k.Theme, "theme")),
	}
}

func keyLabel(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.Edit, k.Delete, k.CycleFilter, k.ClearCompleted, k.Theme, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle},
		{k.Add, k.Edit, k.Delete, k.ClearCompleted},
		{k.FilterAll, k.FilterActive, k.FilterCompleted, k.CycleFilter},
		{k.Theme, k.Quit},
	}
}
