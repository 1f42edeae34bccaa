package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/handiism/songdrop/internal/download"
	"github.com/handiism/songdrop/internal/library"
)

// Settings holds all configuration options.
type Settings struct {
	// Library settings
	LibraryRoot string `arg:"-l,--library,env:MUSIC_DIR" help:"music library root; downloads land here and its subfolders are the filing targets"`

	// Downloader settings
	CommandTemplate  string `arg:"-c,--command,env:SONGDROP_COMMAND" help:"downloader command template; placeholders: {search} {query} {output} {root} {format}"`
	CompletionMarker string `arg:"-m,--marker,env:SONGDROP_MARKER" help:"output line prefix that announces the downloaded file"`
	AudioFormat      string `arg:"-f,--audio-format,env:SONGDROP_AUDIO_FORMAT" help:"audio format requested from the downloader"`
	Shell            string `arg:"--shell,env:SONGDROP_SHELL" help:"shell used to run the downloader command"`

	// Cover art settings
	SaveCoverArtInFolder bool `arg:"--cover-art,env:SONGDROP_COVER_ART" help:"save embedded cover art as cover.jpg in the destination folder"`
	CoverArtMaxSize      int  `arg:"--cover-size,env:SONGDROP_COVER_SIZE" help:"maximum width and height of cover.jpg in pixels"`

	// Diagnostics
	LogFile string `arg:"--log-file,env:SONGDROP_LOG_FILE" help:"write diagnostics to this file"`
	Verbose bool   `arg:"-v,--verbose" help:"include debug entries in the diagnostics log"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	homeDir, _ := os.UserHomeDir()
	return &Settings{
		LibraryRoot: filepath.Join(homeDir, "Music"),

		CommandTemplate:  download.DefaultTemplate,
		CompletionMarker: download.DefaultMarker,
		AudioFormat:      "mp3",
		Shell:            "/bin/sh",

		SaveCoverArtInFolder: false,
		CoverArtMaxSize:      1000,
	}
}

// Description is shown at the top of --help.
func (s *Settings) Description() string {
	return "songdrop downloads a song with yt-dlp and files it into your music library."
}

// Normalize expands a leading ~ and makes the library root absolute.
func (s *Settings) Normalize() error {
	root := s.LibraryRoot
	if root == "~" || strings.HasPrefix(root, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("expanding library path: %w", err)
		}
		root = filepath.Join(home, strings.TrimPrefix(root, "~"))
	}
	if root != "" {
		abs, err := filepath.Abs(root)
		if err != nil {
			return fmt.Errorf("resolving library path: %w", err)
		}
		root = abs
	}
	s.LibraryRoot = root
	return nil
}

// Validate checks that the settings can drive a session.
func (s *Settings) Validate() error {
	var errs []error

	if s.LibraryRoot == "" {
		errs = append(errs, errors.New("library root is not set"))
	} else if !filepath.IsAbs(s.LibraryRoot) {
		errs = append(errs, fmt.Errorf("library root %q is not an absolute path", s.LibraryRoot))
	} else if info, err := os.Stat(s.LibraryRoot); err != nil {
		errs = append(errs, fmt.Errorf("library root: %w", err))
	} else if !info.IsDir() {
		errs = append(errs, fmt.Errorf("library root %q is not a directory", s.LibraryRoot))
	}

	if strings.TrimSpace(s.CommandTemplate) == "" {
		errs = append(errs, errors.New("downloader command is empty"))
	} else if !strings.Contains(s.CommandTemplate, "{search}") && !strings.Contains(s.CommandTemplate, "{query}") {
		errs = append(errs, errors.New("downloader command must contain {search} or {query}"))
	}

	if s.CompletionMarker == "" {
		errs = append(errs, errors.New("completion marker is empty"))
	}

	if s.SaveCoverArtInFolder && s.CoverArtMaxSize < 0 {
		errs = append(errs, fmt.Errorf("cover size %d must not be negative", s.CoverArtMaxSize))
	}

	return errors.Join(errs...)
}

// ToCommand converts settings to a downloader Command.
func (s *Settings) ToCommand() download.Command {
	return download.Command{
		Template: s.CommandTemplate,
		Root:     s.LibraryRoot,
		Format:   s.AudioFormat,
	}
}

// ToCoverArt returns the cover art writer, or nil when disabled.
func (s *Settings) ToCoverArt() *library.CoverArt {
	if !s.SaveCoverArtInFolder {
		return nil
	}
	return library.NewCoverArt(s.CoverArtMaxSize)
}
