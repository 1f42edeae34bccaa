// Package config provides configuration management for songdrop.
//
// Settings come from command line flags and environment variables, parsed
// with go-arg on top of DefaultSettings. There is no configuration file.
//
// # Default Settings
//
//	settings := config.DefaultSettings()
//	// Library at ~/Music
//	// yt-dlp, audio only, mp3, first search result
//	// Cover sidecars disabled
//
// # Parsing
//
//	settings := config.DefaultSettings()
//	arg.MustParse(settings)
//	if err := settings.Normalize(); err != nil {
//	    // ...
//	}
//	if err := settings.Validate(); err != nil {
//	    // library root missing, empty template, ...
//	}
//
// # Environment
//
// Every flag has an environment variable: MUSIC_DIR for the library root
// and SONGDROP_* for the rest (SONGDROP_COMMAND, SONGDROP_MARKER,
// SONGDROP_AUDIO_FORMAT, SONGDROP_SHELL, SONGDROP_COVER_ART,
// SONGDROP_COVER_SIZE, SONGDROP_LOG_FILE).
package config
