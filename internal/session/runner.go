package session

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/handiism/songdrop/internal/audio"
	"github.com/handiism/songdrop/internal/download"
	"github.com/handiism/songdrop/internal/library"
	"github.com/rs/zerolog"
)

// RunResult is what a finished download hands back to the session.
type RunResult struct {
	// Next is StateOrganizing when a file was found, StateIdle otherwise.
	Next State

	// Artifact is the path of the downloaded file, if one was found.
	Artifact string

	// Candidates are the library folders offered in the organize menu.
	Candidates []string

	// Err is the streamer error, if any. A non-nil Err does not by itself
	// mean failure: the tool may exit non-zero after writing the file.
	Err error
}

// Runner drives one run of the external downloader.
type Runner struct {
	command  download.Command
	marker   string
	root     string
	streamer download.Streamer
	log      *OutputLog
	logger   zerolog.Logger
}

// NewRunner creates a Runner that writes tool output to log.
func NewRunner(command download.Command, marker string, streamer download.Streamer, log *OutputLog, logger zerolog.Logger) *Runner {
	return &Runner{
		command:  command,
		marker:   marker,
		root:     command.Root,
		streamer: streamer,
		log:      log,
		logger:   logger,
	}
}

// Run downloads query and blocks until the tool has exited.
//
// Every output line goes to the log. When the tool announced a file that
// exists on disk, the log is replaced by the organize menu and the result
// asks for StateOrganizing; in every other case a failure line is logged
// and the result asks for StateIdle. Run never panics on tool failure.
func (r *Runner) Run(ctx context.Context, query string) RunResult {
	log := r.logger.With().Str("op", "session/run").Str("query", query).Logger()
	locator := NewLocator(r.marker)

	line := r.command.Build(query)
	r.log.Append("Running: " + line)

	err := r.streamer.Stream(ctx, line, func(out string) {
		r.log.Append(out)
		if locator.Feed(out) {
			log.Debug().Str("artifact", locator.Artifact()).Msg("artifact announced")
		}
	})
	if download.IsLaunchError(err) {
		r.log.Append("Error: could not run the downloader: " + err.Error())
		log.Error().Err(err).Msg("error launching downloader")
		return RunResult{Next: StateIdle, Err: err}
	}
	if err != nil {
		log.Warn().Err(err).Msg("downloader finished with error")
	}

	artifact := locator.Artifact()
	if artifact == "" || !fileExists(artifact) {
		r.log.Append(MsgNoArtifact)
		log.Warn().Str("artifact", artifact).Msg("no downloaded file")
		return RunResult{Next: StateIdle, Err: err}
	}

	folders, lerr := library.ListFolders(r.root)
	if lerr != nil {
		r.log.Append("Error reading music folders: " + lerr.Error())
		log.Error().Err(lerr).Msg("error listing folders")
		return RunResult{Next: StateIdle, Artifact: artifact, Err: lerr}
	}

	r.log.Replace(r.organizeMenu(artifact, folders)...)
	log.Info().Str("artifact", artifact).Int("folders", len(folders)).Msg("download finished")
	return RunResult{Next: StateOrganizing, Artifact: artifact, Candidates: folders, Err: err}
}

// organizeMenu builds the lines shown once a file has been downloaded.
func (r *Runner) organizeMenu(artifact string, folders []string) []string {
	file := "File: " + filepath.Base(artifact)
	if fi, err := os.Stat(artifact); err == nil {
		file += fmt.Sprintf(" (%s)", humanize.Bytes(uint64(fi.Size())))
	}

	lines := []string{MsgMenuHeader, file}
	if info, err := audio.ReadInfo(artifact); err == nil && info.Summary() != "" {
		lines = append(lines, "Track: "+info.Summary())
	}
	lines = append(lines, MsgMenuQuestion)
	for i, name := range folders {
		lines = append(lines, strconv.Itoa(i+1)+". "+name)
	}
	return append(lines,
		MsgSeparator,
		MsgMenuNewFolder,
		MsgMenuLeave+r.root,
		MsgMenuPrompt,
	)
}

func fileExists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && !fi.IsDir()
}
