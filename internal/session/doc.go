// Package session implements the song download session: the state machine
// that decides what a line of user input means, the runner that drives the
// external downloader, and the shared output log the UI renders.
//
// # State Machine
//
// A session moves through four states:
//
//	Idle -> Downloading -> Organizing -> (CreatingFolder) -> Idle
//
// The transition logic lives in Decide, a pure function of the current
// state, the submitted line and the folder candidates. Session applies the
// returned Decision: it appends log lines, moves the file through the
// library placer, or hands back a download Task for the caller to run on
// its own goroutine.
//
// # Basic Usage
//
//	sess := session.New(settings, streamer, placer, logger)
//	out := sess.Submit("never gonna give you up")
//	if out.Task != nil {
//	    go out.Task(ctx)
//	}
//	lines := sess.Log().Tail(20)
//
// # Concurrency
//
// Only the output log and the state flag are touched from both the UI
// goroutine and the download goroutine. The log is guarded by a mutex and
// the state by an atomic. Artifact and folder candidates are written by the
// runner before it publishes Organizing, and read by the UI only once that
// state is visible.
//
// A download cannot be stopped from the UI. Cancelling while Downloading
// only returns the UI to Idle; the tool keeps running and its output and
// final transition still land in the session.
package session
