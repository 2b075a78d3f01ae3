package autocomplete

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// debounceMsg is delivered when a debounce window elapses.
type debounceMsg struct {
	owner *Debouncer
	seq   uint64
	query string
}

// Debouncer collapses bursts of input changes into one trailing evaluation
// per window. Each call supersedes the pending one; only the message carrying
// the latest sequence number is accepted, so the latest query wins.
type Debouncer struct {
	delay time.Duration
	seq   uint64
}

// NewDebouncer creates a debouncer with the given window.
func NewDebouncer(delay time.Duration) *Debouncer {
	if delay < 0 {
		delay = 0
	}
	return &Debouncer{delay: delay}
}

// Delay returns the window length.
func (d *Debouncer) Delay() time.Duration { return d.delay }

// Call schedules fire(query) after the window. With a zero window fire runs
// synchronously and its command is returned directly.
func (d *Debouncer) Call(query string, fire func(string) tea.Cmd) tea.Cmd {
	d.seq++
	if d.delay == 0 {
		return fire(query)
	}
	seq := d.seq
	return tea.Tick(d.delay, func(time.Time) tea.Msg {
		return debounceMsg{owner: d, seq: seq, query: query}
	})
}

// Accept reports whether msg is the live window's message and returns its query.
func (d *Debouncer) Accept(msg debounceMsg) (string, bool) {
	if msg.owner != d || msg.seq != d.seq {
		return "", false
	}
	return msg.query, true
}

// Cancel invalidates any pending window.
func (d *Debouncer) Cancel() {
	d.seq++
}
