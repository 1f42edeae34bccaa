package download

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// maxLineSize bounds a single line of tool output.
const maxLineSize = 1024 * 1024

// Streamer runs a command line and reports its combined output line by line.
type Streamer interface {
	// Stream blocks until the command has exited and its output is drained.
	// onLine is called from a single goroutine, in output order, without the
	// trailing newline.
	Stream(ctx context.Context, commandLine string, onLine func(string)) error
}

// LaunchError reports that the command could not be started at all.
type LaunchError struct {
	Command string
	Err     error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("could not run %q: %v", e.Command, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }

// IsLaunchError reports whether err came from a failed process start.
func IsLaunchError(err error) bool {
	var le *LaunchError
	return errors.As(err, &le)
}

// ShellStreamer runs command lines through a POSIX shell.
//
// stdout and stderr of the child share one pipe, so lines interleave the
// way they would in a terminal.
type ShellStreamer struct {
	shell  string
	logger zerolog.Logger
}

// NewShellStreamer creates a ShellStreamer. An empty shell uses /bin/sh.
func NewShellStreamer(shell string, logger zerolog.Logger) *ShellStreamer {
	if shell == "" {
		shell = "/bin/sh"
	}
	return &ShellStreamer{shell: shell, logger: logger}
}

// Stream implements Streamer.
func (s *ShellStreamer) Stream(ctx context.Context, commandLine string, onLine func(string)) error {
	log := s.logger.With().Str("op", "download/stream").Logger()

	r, w, err := os.Pipe()
	if err != nil {
		return &LaunchError{Command: commandLine, Err: err}
	}
	defer r.Close()

	cmd := exec.CommandContext(ctx, s.shell, "-c", commandLine)
	cmd.Stdout = w
	cmd.Stderr = w

	log.Debug().Str("command", commandLine).Msg("starting downloader")
	if err := cmd.Start(); err != nil {
		w.Close()
		log.Error().Err(err).Msg("error starting downloader")
		return &LaunchError{Command: commandLine, Err: err}
	}
	// The child holds its own copy of the write end; closing ours lets the
	// reader see EOF once the child exits.
	w.Close()

	var g errgroup.Group
	g.Go(func() error {
		return scanLines(r, onLine)
	})

	waitErr := cmd.Wait()
	readErr := g.Wait()

	if readErr != nil {
		log.Warn().Err(readErr).Msg("error reading downloader output")
		return fmt.Errorf("reading output: %w", readErr)
	}
	if waitErr != nil {
		log.Warn().Err(waitErr).Msg("downloader exited with error")
		return fmt.Errorf("downloader exited: %w", waitErr)
	}
	log.Debug().Msg("downloader finished")
	return nil
}

func scanLines(f *os.File, onLine func(string)) error {
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		onLine(strings.TrimRight(sc.Text(), "\r"))
	}
	return sc.Err()
}
