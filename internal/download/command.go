package download

import (
	"path/filepath"
	"strings"

	"github.com/kballard/go-shellquote"
)

// DefaultTemplate asks yt-dlp for the first search result, extracts the
// audio and writes it to the library root named after the video title.
// --newline keeps progress updates on separate lines so they can be
// streamed. stderr is folded into stdout.
const DefaultTemplate = "yt-dlp --newline -x --audio-format {format} -o {output} {search} 2>&1"

// DefaultMarker is the line prefix yt-dlp prints once audio extraction has
// written the final file. The rest of that line is the file path.
const DefaultMarker = "[ExtractAudio] Destination: "

// OutputPattern is the yt-dlp output template appended to the library root.
const OutputPattern = "%(title)s.%(ext)s"

// SearchPrefix turns a free-text query into a yt-dlp "first result" search.
const SearchPrefix = "ytsearch:"

// Command builds shell command lines from a template.
//
// The template may reference these placeholders, each substituted as a
// single shell-quoted word:
//   - {query} - the text typed by the user
//   - {search} - SearchPrefix + query
//   - {root} - the library root
//   - {output} - root joined with OutputPattern
//   - {format} - the requested audio format
//
// Example:
//
//	cmd := Command{Template: DefaultTemplate, Root: "/music", Format: "mp3"}
//	line := cmd.Build("daft punk one more time")
//	// yt-dlp --newline -x --audio-format mp3 -o /music/%\(title\)s.%\(ext\)s 'ytsearch:daft punk one more time' 2>&1
type Command struct {
	Template string
	Root     string
	Format   string
}

// Build returns the command line for query.
func (c Command) Build(query string) string {
	tmpl := c.Template
	if tmpl == "" {
		tmpl = DefaultTemplate
	}
	format := c.Format
	if format == "" {
		format = "mp3"
	}

	r := strings.NewReplacer(
		"{query}", quote(query),
		"{search}", quote(SearchPrefix+query),
		"{root}", quote(c.Root),
		"{output}", quote(filepath.Join(c.Root, OutputPattern)),
		"{format}", quote(format),
	)
	return r.Replace(tmpl)
}

func quote(s string) string {
	return shellquote.Join(s)
}
