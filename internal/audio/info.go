package audio

import (
	"fmt"
	"strings"

	"github.com/bogem/id3v2"
)

// Info holds the ID3 metadata of a downloaded file.
//
// yt-dlp only writes tags when asked to (--embed-metadata,
// --embed-thumbnail), so every field may be empty.
type Info struct {
	Title  string
	Artist string
	Album  string

	// Picture is the front cover (or first attached picture), nil if absent.
	Picture     []byte
	PictureMIME string
}

// ReadInfo parses the ID3v2 tag of the file at path.
//
// A file without a tag yields an empty Info and no error. An error is
// returned only if the file cannot be opened or its tag is malformed.
//
// Example:
//
//	info, err := audio.ReadInfo("/music/Song.mp3")
//	if err == nil && info.Summary() != "" {
//	    fmt.Println(info.Summary()) // "Artist - Title (Album)"
//	}
func ReadInfo(path string) (*Info, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, fmt.Errorf("reading tags of %s: %w", path, err)
	}
	defer tag.Close()

	info := &Info{
		Title:  strings.TrimSpace(tag.Title()),
		Artist: strings.TrimSpace(tag.Artist()),
		Album:  strings.TrimSpace(tag.Album()),
	}

	pictures := tag.GetFrames(tag.CommonID("Attached picture"))
	for _, f := range pictures {
		pic, ok := f.(id3v2.PictureFrame)
		if !ok {
			continue
		}
		if info.Picture == nil || pic.PictureType == id3v2.PTFrontCover {
			info.Picture = pic.Picture
			info.PictureMIME = pic.MimeType
		}
		if pic.PictureType == id3v2.PTFrontCover {
			break
		}
	}

	return info, nil
}

// Summary formats the tag as "Artist - Title (Album)", dropping missing
// parts. It returns "" when there is no title and no artist.
func (i *Info) Summary() string {
	if i == nil {
		return ""
	}
	var s string
	switch {
	case i.Artist != "" && i.Title != "":
		s = i.Artist + " - " + i.Title
	case i.Title != "":
		s = i.Title
	case i.Artist != "":
		s = i.Artist
	default:
		return ""
	}
	if i.Album != "" {
		s += " (" + i.Album + ")"
	}
	return s
}

// HasPicture reports whether the tag carries cover art.
func (i *Info) HasPicture() bool {
	return i != nil && len(i.Picture) > 0
}
