// Package prefs holds the persisted display preferences: theme and filter.
package prefs

import (
	"strings"

	"github.com/charmbracelet/log"

	"checklist/internal/storage"
	"checklist/internal/task"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

func ParseTheme(s string) (Theme, bool) {
	switch Theme(strings.TrimSpace(s)) {
	case ThemeLight:
		return ThemeLight, true
	case ThemeDark:
		return ThemeDark, true
	}
	return "", false
}

type Filter string

const (
	FilterAll       Filter = task.FilterAll
	FilterActive    Filter = task.FilterActive
	FilterCompleted Filter = task.FilterCompleted
)

// Filters lists every filter in display order.
var Filters = []Filter{FilterAll, FilterActive, FilterCompleted}

func ParseFilter(s string) (Filter, bool) {
	for _, f := range Filters {
		if string(f) == strings.TrimSpace(s) {
			return f, true
		}
	}
	return "", false
}

// Next returns the filter after f in display order, wrapping around.
func (f Filter) Next() Filter {
	for i, c := range Filters {
		if c == f {
			return Filters[(i+1)%len(Filters)]
		}
	}
	return FilterAll
}

type Preferences struct {
	Theme  Theme
	Filter Filter
}

func Default() Preferences {
	return Preferences{Theme: ThemeLight, Filter: FilterAll}
}

// Load reads both preferences. Each falls back to its default on its own
// when missing, invalid, or unreadable.
func Load(s storage.Store, logger *log.Logger) Preferences {
	p := Default()
	if v, ok := read(s, storage.KeyTheme, logger); ok {
		if t, valid := ParseTheme(v); valid {
			p.Theme = t
		} else {
			logger.Debug("ignoring persisted theme", "value", v)
		}
	}
	if v, ok := read(s, storage.KeyFilter, logger); ok {
		if f, valid := ParseFilter(v); valid {
			p.Filter = f
		} else {
			logger.Debug("ignoring persisted filter", "value", v)
		}
	}
	return p
}

func read(s storage.Store, key string, logger *log.Logger) (string, bool) {
	v, ok, err := s.Get(key)
	if err != nil {
		logger.Warn("could not load preference", "key", key, "err", err)
		return "", false
	}
	return v, ok
}

func SaveTheme(s storage.Store, t Theme) error {
	return s.Set(storage.KeyTheme, string(t))
}

func SaveFilter(s storage.Store, f Filter) error {
	return s.Set(storage.KeyFilter, string(f))
}
