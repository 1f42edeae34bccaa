package session

import "sync/atomic"

// State represents the current session state.
type State int32

const (
	StateIdle State = iota
	StateDownloading
	StateOrganizing
	StateCreatingFolder
)

// String returns a short label for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDownloading:
		return "downloading"
	case StateOrganizing:
		return "organizing"
	case StateCreatingFolder:
		return "creating folder"
	}
	return "unknown"
}

// StateFlag holds a State shared between the UI loop and the download runner.
type StateFlag struct {
	v atomic.Int32
}

// Load returns the current state.
func (f *StateFlag) Load() State {
	return State(f.v.Load())
}

// Store sets the current state.
func (f *StateFlag) Store(s State) {
	f.v.Store(int32(s))
}

// CompareAndSwap moves from old to next only if the flag still holds old.
func (f *StateFlag) CompareAndSwap(old, next State) bool {
	return f.v.CompareAndSwap(int32(old), int32(next))
}
