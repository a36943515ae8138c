// Package prompt provides the blocking yes/no confirmations and notices
// used before destructive actions.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

type Prompter interface {
	// Confirm asks a yes/no question and blocks until answered.
	Confirm(question string) bool
	// Notify shows a message the user must acknowledge.
	Notify(message string)
}

// Answer is a Prompter that always gives the same answer.
type Answer bool

func (a Answer) Confirm(string) bool { return bool(a) }
func (a Answer) Notify(string)       {}

// Assume answers every question with Yes without asking and still
// prints notices to Out.
type Assume struct {
	Yes bool
	Out io.Writer
}

func (a Assume) Confirm(string) bool { return a.Yes }

func (a Assume) Notify(message string) {
	if a.Out != nil {
		fmt.Fprintln(a.Out, message)
	}
}

// Deferred declines every question and remembers the last one asked, so a
// UI that cannot block can show its own dialog and replay the action with
// the user's answer.
type Deferred struct {
	Question string
	Notice   string
}

func (d *Deferred) Confirm(question string) bool {
	d.Question = question
	return false
}

func (d *Deferred) Notify(message string) {
	d.Notice = message
}

// Terminal prompts on out and reads answers line by line from in.
// EOF or anything other than y/yes counts as no.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

func (t *Terminal) Confirm(question string) bool {
	fmt.Fprintf(t.out, "%s [y/N] ", question)
	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(t.out)
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

func (t *Terminal) Notify(message string) {
	fmt.Fprintln(t.out, message)
}
