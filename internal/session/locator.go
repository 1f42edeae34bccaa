package session

import (
	"strings"

	"github.com/handiism/songdrop/internal/download"
)

// Locator watches downloader output for the completion marker and keeps the
// path that followed its last occurrence.
type Locator struct {
	marker   string
	artifact string
}

// NewLocator creates a Locator for marker. An empty marker uses
// download.DefaultMarker.
func NewLocator(marker string) *Locator {
	if marker == "" {
		marker = download.DefaultMarker
	}
	return &Locator{marker: marker}
}

// Feed inspects one line of output and reports whether it starts with the
// marker. Carriage returns left over from progress redraws are ignored.
func (l *Locator) Feed(line string) bool {
	rest, ok := strings.CutPrefix(strings.TrimLeft(line, "\r"), l.marker)
	if !ok {
		return false
	}
	l.artifact = strings.TrimRight(rest, "\r\n")
	return true
}

// Artifact returns the last matched path, or "" if none was seen.
func (l *Locator) Artifact() string {
	return l.artifact
}

// Reset forgets the current artifact.
func (l *Locator) Reset() {
	l.artifact = ""
}
