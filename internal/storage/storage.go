package storage

import (
	"errors"
	"fmt"
)

// Keys persisted by the task manager.
const (
	KeyTasks  = "tasks"
	KeyTheme  = "theme"
	KeyFilter = "filter"
)

var (
	ErrQuotaExceeded = errors.New("quota exceeded")
	ErrClosed        = errors.New("store closed")
)

// Store is a string key-value store. Values are always overwritten whole.
// Get reports ok=false when the key has never been written.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// StoreError wraps any failure reading from or writing to a Store.
type StoreError struct {
	Op  string
	Key string
	Err error
}

func (e *StoreError) Error() string {
	if e == nil {
		return "store error"
	}
	return fmt.Sprintf("store %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func wrap(op, key string, err error) error {
	if err == nil {
		return nil
	}
	var se *StoreError
	if errors.As(err, &se) {
		return err
	}
	return &StoreError{Op: op, Key: key, Err: err}
}

func checkQuota(limit int, key, value string) error {
	if limit <= 0 {
		return nil
	}
	if len(key)+len(value) > limit {
		return &StoreError{Op: "set", Key: key, Err: ErrQuotaExceeded}
	}
	return nil
}
