package session

import "sync"

// OutputLog is the ordered list of lines shown in the log pane.
//
// The download runner appends tool output while the UI renders, so every
// read and write takes the same lock. Readers always get a copy.
type OutputLog struct {
	mu    sync.Mutex
	lines []string
}

// NewOutputLog creates an empty OutputLog.
func NewOutputLog() *OutputLog {
	return &OutputLog{}
}

// Append adds lines to the end of the log.
func (l *OutputLog) Append(lines ...string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, lines...)
}

// Snapshot returns a copy of every line in append order.
func (l *OutputLog) Snapshot() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Tail returns a copy of the last n lines, or all lines if there are fewer.
func (l *OutputLog) Tail(n int) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if n <= 0 {
		return nil
	}
	start := 0
	if len(l.lines) > n {
		start = len(l.lines) - n
	}
	out := make([]string, len(l.lines)-start)
	copy(out, l.lines[start:])
	return out
}

// Len returns the number of lines.
func (l *OutputLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.lines)
}

// Clear drops every line.
func (l *OutputLog) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = nil
}

// Replace clears the log and appends lines under a single lock, so the
// renderer never sees the log empty in between.
func (l *OutputLog) Replace(lines ...string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append([]string(nil), lines...)
}
