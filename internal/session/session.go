package session

import (
	"context"
	"sync"

	"github.com/handiism/songdrop/internal/config"
	"github.com/handiism/songdrop/internal/download"
	"github.com/handiism/songdrop/internal/library"
	"github.com/rs/zerolog"
)

// MsgNothingToMove is logged when a placement is requested without a file.
const MsgNothingToMove = "No downloaded file to move."

// Outcome tells the caller what to do after Submit.
type Outcome struct {
	// Quit is set when the user asked to leave the program.
	Quit bool

	// Task is the download to run. It must be run off the UI goroutine and
	// returns once the downloader has exited and the session has moved on.
	Task func(ctx context.Context)
}

// Session owns the state machine and everything it shares with the
// download runner.
type Session struct {
	log    *OutputLog
	state  StateFlag
	runner *Runner
	placer *library.Placer
	logger zerolog.Logger

	mu         sync.Mutex
	artifact   string
	candidates []string
}

// New creates a Session in StateIdle with the welcome lines logged.
func New(settings *config.Settings, streamer download.Streamer, logger zerolog.Logger) *Session {
	log := NewOutputLog()
	log.Append(MsgWelcome, MsgQuitHint)

	return &Session{
		log:    log,
		runner: NewRunner(settings.ToCommand(), settings.CompletionMarker, streamer, log, logger),
		placer: library.NewPlacer(settings.LibraryRoot, settings.ToCoverArt(), logger),
		logger: logger,
	}
}

// Log returns the shared output log.
func (s *Session) Log() *OutputLog {
	return s.log
}

// State returns the current state.
func (s *Session) State() State {
	return s.state.Load()
}

// Artifact returns the file found by the last download, or "".
func (s *Session) Artifact() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.artifact
}

// Candidates returns a copy of the folders offered by the organize menu.
// It is empty outside StateOrganizing.
func (s *Session) Candidates() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.candidates...)
}

// Submit feeds one completed input line to the state machine.
//
// Placement runs inline. A download is not started here: the state moves
// to StateDownloading and the work is returned as Outcome.Task.
func (s *Session) Submit(input string) Outcome {
	state := s.state.Load()
	d := Decide(state, input, s.Candidates())

	switch d.Action {
	case ActionQuit:
		return Outcome{Quit: true}
	case ActionDownload:
		if !s.state.CompareAndSwap(StateIdle, StateDownloading) {
			return Outcome{}
		}
		query := d.Arg
		s.logger.Info().Str("op", "session/submit").Str("query", query).Msg("download requested")
		return Outcome{Task: func(ctx context.Context) {
			s.download(ctx, query)
		}}
	}

	if d.Next == state && len(d.Before) == 0 && d.Action == ActionNone {
		return Outcome{}
	}
	// The runner may have finished in between; a decision for a state we
	// are no longer in is dropped.
	if d.Next != state && !s.state.CompareAndSwap(state, d.Next) {
		return Outcome{}
	}

	s.log.Append(d.Before...)
	if d.Action == ActionPlace {
		s.place(d.Arg)
	}
	s.log.Append(d.After...)

	if state == StateOrganizing && d.Next != StateOrganizing {
		s.mu.Lock()
		s.candidates = nil
		s.mu.Unlock()
	}
	return Outcome{}
}

// download runs the downloader and publishes its result. The state is
// stored last so the UI never sees StateOrganizing before the candidates.
func (s *Session) download(ctx context.Context, query string) {
	s.state.Store(StateDownloading)
	s.mu.Lock()
	s.artifact = ""
	s.mu.Unlock()

	res := s.runner.Run(ctx, query)

	s.mu.Lock()
	s.artifact = res.Artifact
	if res.Next == StateOrganizing {
		s.candidates = res.Candidates
	} else {
		s.candidates = nil
	}
	s.mu.Unlock()
	s.state.Store(res.Next)
}

func (s *Session) place(folder string) {
	artifact := s.Artifact()
	if artifact == "" {
		s.log.Append(MsgNothingToMove)
		return
	}
	// Place reports success and failure to the log itself.
	_ = s.placer.Place(artifact, folder, func(line string) { s.log.Append(line) })
}
