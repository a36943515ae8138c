package task

import (
	"github.com/charmbracelet/log"

	"checklist/internal/storage"
)

// Load reads the persisted list. Store failures and malformed payloads are
// logged and yield whatever could be recovered, possibly an empty list.
func Load(s storage.Store, logger *log.Logger) *List {
	payload, ok, err := s.Get(storage.KeyTasks)
	if err != nil {
		logger.Warn("could not load tasks", "err", err)
		return NewList(nil)
	}
	if !ok {
		return NewList(nil)
	}
	tasks, errs := Decode(payload)
	for _, e := range errs {
		logger.Warn("dropped persisted task", "err", e)
	}
	return NewList(tasks)
}

// Save overwrites the persisted list with l.
func Save(s storage.Store, l *List) error {
	payload, err := Encode(l.tasks)
	if err != nil {
		return err
	}
	return s.Set(storage.KeyTasks, payload)
}
