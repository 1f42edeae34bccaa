package library

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

var (
	// ErrInvalidFolder is returned for folder names that would not create a
	// single directory directly under the library root.
	ErrInvalidFolder = errors.New("invalid folder name")

	// ErrDestinationExists is returned when the destination folder already
	// holds a file with the artifact's name.
	ErrDestinationExists = errors.New("destination file already exists")
)

// Placer files downloaded tracks into folders under the library root.
//
// Every step is reported through the report callback as a user-facing
// line; the returned error is only for diagnostics. A nil CoverArt
// disables cover sidecars.
//
// Example:
//
//	p := NewPlacer("/music", nil, zerolog.Nop())
//	err := p.Place("/music/Song.mp3", "Rock", func(line string) {
//	    fmt.Println(line)
//	})
//	// Folder created: Rock
//	// File moved to: Rock
type Placer struct {
	root   string
	cover  *CoverArt
	logger zerolog.Logger
}

// NewPlacer creates a Placer rooted at root.
func NewPlacer(root string, cover *CoverArt, logger zerolog.Logger) *Placer {
	return &Placer{root: root, cover: cover, logger: logger}
}

// Root returns the library root.
func (p *Placer) Root() string {
	return p.root
}

// Place moves artifact into root/folder, creating the folder (one level
// only) if it does not exist yet. The file keeps its base name.
func (p *Placer) Place(artifact, folder string, report func(string)) error {
	log := p.logger.With().Str("op", "library/place").Str("folder", folder).Logger()

	if err := validateFolder(folder); err != nil {
		report(fmt.Sprintf("Invalid folder name: %q", folder))
		return err
	}

	dir := filepath.Join(p.root, folder)
	created, err := ensureFolder(dir)
	if err != nil {
		report("Filesystem error: " + err.Error())
		log.Error().Err(err).Msg("error creating folder")
		return err
	}
	if created {
		report("Folder created: " + folder)
		log.Info().Str("dir", dir).Msg("folder created")
	}

	dst := filepath.Join(dir, filepath.Base(artifact))
	if err := moveFile(artifact, dst); err != nil {
		report("Could not move file: " + err.Error())
		log.Error().Err(err).Str("src", artifact).Str("dst", dst).Msg("error moving file")
		return err
	}
	report("File moved to: " + folder)
	log.Info().Str("src", artifact).Str("dst", dst).Msg("file moved")

	if p.cover != nil {
		p.saveCover(dir, dst, report)
	}
	return nil
}

func (p *Placer) saveCover(dir, track string, report func(string)) {
	saved, err := p.cover.SaveFromTrack(dir, track)
	if err != nil {
		p.logger.Warn().Str("op", "library/cover").Err(err).Str("track", track).Msg("error saving cover art")
		report("Could not save cover art: " + err.Error())
		return
	}
	if saved {
		report("Cover art saved: " + p.cover.FileName)
	}
}

func validateFolder(folder string) error {
	if folder == "" || folder == "." || folder == ".." ||
		strings.ContainsRune(folder, '/') || strings.ContainsRune(folder, filepath.Separator) {
		return fmt.Errorf("%w: %q", ErrInvalidFolder, folder)
	}
	return nil
}

// ensureFolder creates dir unless it already exists and reports whether it
// had to create it.
func ensureFolder(dir string) (bool, error) {
	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return false, fmt.Errorf("%s exists and is not a directory", dir)
		}
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, err
	}
	if err := os.Mkdir(dir, 0755); err != nil {
		return false, err
	}
	return true, nil
}

// moveFile renames src to dst. rename(2) would silently replace an
// existing dst, so that case is refused first.
func moveFile(src, dst string) error {
	if _, err := os.Lstat(dst); err == nil {
		return fmt.Errorf("%w: %s", ErrDestinationExists, dst)
	}
	return os.Rename(src, dst)
}
