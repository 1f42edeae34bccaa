// Package download runs the external audio downloader and streams its
// output.
//
// The downloader is an opaque command line tool (yt-dlp by default). This
// package only knows how to build its command line from a template and how
// to read the combined stdout/stderr of the running process line by line.
//
// # Command Templates
//
//	cmd := download.Command{
//	    Template: download.DefaultTemplate,
//	    Root:     "/music",
//	    Format:   "mp3",
//	}
//	line := cmd.Build("artist - song title")
//
// User input is always substituted as a single shell-quoted word.
//
// # Streaming
//
//	s := download.NewShellStreamer("/bin/sh", logger)
//	err := s.Stream(ctx, line, func(l string) {
//	    fmt.Println(l)
//	})
//	if download.IsLaunchError(err) {
//	    // the shell or tool could not be started
//	}
//
// Stream returns after the process has exited and its output is drained.
// A non-zero exit status is returned as an error but every line the tool
// printed has already been delivered.
//
// # Completion Marker
//
// DefaultMarker is the prefix yt-dlp prints in front of the path of the
// file it finally wrote. It is part of yt-dlp's human readable output, not
// a stable interface, and can be overridden in the settings.
package download
