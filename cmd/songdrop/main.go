package main

import (
	"fmt"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/handiism/songdrop/internal/config"
	"github.com/handiism/songdrop/internal/download"
	"github.com/handiism/songdrop/internal/logging"
	"github.com/handiism/songdrop/internal/session"
	"github.com/handiism/songdrop/internal/tui"
)

func main() {
	settings := config.DefaultSettings()
	arg.MustParse(settings)

	if err := settings.Normalize(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := settings.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid settings:\n%v\n", err)
		os.Exit(1)
	}

	logger, closer, err := logging.New(settings.LogFile, settings.Verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	logger.Info().
		Str("op", "main").
		Str("library", settings.LibraryRoot).
		Str("command", settings.CommandTemplate).
		Msg("starting")

	streamer := download.NewShellStreamer(settings.Shell, logger)
	sess := session.New(settings, streamer, logger)

	if err := tui.Run(sess); err != nil {
		closer.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
