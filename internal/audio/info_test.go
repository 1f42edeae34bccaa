package audio

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2"
)

// fakeFrames stands in for mp3 audio data after the tag.
var fakeFrames = bytes.Repeat([]byte{0xFF, 0xFB, 0x90, 0x00}, 16)

func writeTaggedFile(t *testing.T, configure func(tag *id3v2.Tag)) string {
	t.Helper()

	tag := id3v2.NewEmptyTag()
	configure(tag)

	var buf bytes.Buffer
	if _, err := tag.WriteTo(&buf); err != nil {
		t.Fatalf("writing tag: %v", err)
	}
	buf.Write(fakeFrames)

	path := filepath.Join(t.TempDir(), "song.mp3")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("writing file: %v", err)
	}
	return path
}

func TestReadInfo_TextFrames(t *testing.T) {
	path := writeTaggedFile(t, func(tag *id3v2.Tag) {
		tag.SetDefaultEncoding(id3v2.EncodingUTF8)
		tag.SetTitle("One More Time")
		tag.SetArtist("Daft Punk")
		tag.SetAlbum("Discovery")
	})

	info, err := ReadInfo(path)
	if err != nil {
		t.Fatalf("ReadInfo() error = %v", err)
	}
	if info.Title != "One More Time" {
		t.Errorf("Title = %q, want %q", info.Title, "One More Time")
	}
	if info.Artist != "Daft Punk" {
		t.Errorf("Artist = %q, want %q", info.Artist, "Daft Punk")
	}
	if got, want := info.Summary(), "Daft Punk - One More Time (Discovery)"; got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}
	if info.HasPicture() {
		t.Error("HasPicture() should be false without an APIC frame")
	}
}

func TestReadInfo_PrefersFrontCover(t *testing.T) {
	path := writeTaggedFile(t, func(tag *id3v2.Tag) {
		tag.AddAttachedPicture(id3v2.PictureFrame{
			Encoding:    id3v2.EncodingUTF8,
			MimeType:    "image/png",
			PictureType: id3v2.PTOther,
			Description: "Other",
			Picture:     []byte("other"),
		})
		tag.AddAttachedPicture(id3v2.PictureFrame{
			Encoding:    id3v2.EncodingUTF8,
			MimeType:    "image/jpeg",
			PictureType: id3v2.PTFrontCover,
			Description: "Cover",
			Picture:     []byte("front"),
		})
	})

	info, err := ReadInfo(path)
	if err != nil {
		t.Fatalf("ReadInfo() error = %v", err)
	}
	if string(info.Picture) != "front" {
		t.Errorf("Picture = %q, want %q", info.Picture, "front")
	}
	if info.PictureMIME != "image/jpeg" {
		t.Errorf("PictureMIME = %q, want image/jpeg", info.PictureMIME)
	}
}

func TestReadInfo_NoTag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.mp3")
	if err := os.WriteFile(path, fakeFrames, 0644); err != nil {
		t.Fatal(err)
	}

	info, err := ReadInfo(path)
	if err != nil {
		t.Fatalf("ReadInfo() error = %v", err)
	}
	if info.Summary() != "" {
		t.Errorf("Summary() = %q, want empty", info.Summary())
	}
}

func TestReadInfo_MissingFile(t *testing.T) {
	if _, err := ReadInfo(filepath.Join(t.TempDir(), "nope.mp3")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestInfo_Summary(t *testing.T) {
	tests := []struct {
		name string
		info *Info
		want string
	}{
		{"nil", nil, ""},
		{"empty", &Info{}, ""},
		{"title only", &Info{Title: "Song"}, "Song"},
		{"artist only", &Info{Artist: "Band"}, "Band"},
		{"album without title", &Info{Album: "LP"}, ""},
		{"all", &Info{Title: "Song", Artist: "Band", Album: "LP"}, "Band - Song (LP)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.Summary(); got != tt.want {
				t.Errorf("Summary() = %q, want %q", got, tt.want)
			}
		})
	}
}
