package library

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2"
	"github.com/rs/zerolog"
)

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func writeTrackWithCover(t *testing.T, path string, picture []byte) {
	t.Helper()
	tag := id3v2.NewEmptyTag()
	tag.SetTitle("Song")
	tag.AddAttachedPicture(id3v2.PictureFrame{
		Encoding:    id3v2.EncodingUTF8,
		MimeType:    "image/png",
		PictureType: id3v2.PTFrontCover,
		Description: "Cover",
		Picture:     picture,
	})
	var buf bytes.Buffer
	if _, err := tag.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	buf.Write(bytes.Repeat([]byte{0xFF, 0xFB, 0x90, 0x00}, 16))
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestResizeImage(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		maxW, maxH   int
		wantW, wantH int
	}{
		{"wide", 300, 200, 100, 100, 100, 66},
		{"tall", 200, 300, 100, 100, 66, 100},
		{"already fits", 80, 60, 100, 100, 80, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := ResizeImage(testPNG(t, tt.w, tt.h), tt.maxW, tt.maxH)
			if err != nil {
				t.Fatalf("ResizeImage() error = %v", err)
			}
			img, err := jpeg.Decode(bytes.NewReader(out))
			if err != nil {
				t.Fatalf("output is not JPEG: %v", err)
			}
			if got := img.Bounds().Dx(); got != tt.wantW {
				t.Errorf("width = %d, want %d", got, tt.wantW)
			}
			if got := img.Bounds().Dy(); got != tt.wantH {
				t.Errorf("height = %d, want %d", got, tt.wantH)
			}
		})
	}
}

func TestResizeImage_InvalidData(t *testing.T) {
	if _, err := ResizeImage([]byte("not an image"), 10, 10); err == nil {
		t.Error("expected error for invalid image data")
	}
}

func TestCoverArt_SaveFromTrack(t *testing.T) {
	dir := t.TempDir()
	track := filepath.Join(dir, "song.mp3")
	writeTrackWithCover(t, track, testPNG(t, 64, 32))

	c := NewCoverArt(16)
	saved, err := c.SaveFromTrack(dir, track)
	if err != nil {
		t.Fatalf("SaveFromTrack() error = %v", err)
	}
	if !saved {
		t.Fatal("SaveFromTrack() = false, want true")
	}

	data, err := os.ReadFile(filepath.Join(dir, DefaultCoverFileName))
	if err != nil {
		t.Fatalf("cover not written: %v", err)
	}
	img, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("cover is not JPEG: %v", err)
	}
	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 8 {
		t.Errorf("cover size = %v, want 16x8", img.Bounds().Size())
	}

	// Second call must keep the existing cover.
	saved, err = c.SaveFromTrack(dir, track)
	if err != nil || saved {
		t.Errorf("SaveFromTrack() second call = %v, %v; want false, nil", saved, err)
	}
}

func TestCoverArt_NoPicture(t *testing.T) {
	dir := t.TempDir()
	track := filepath.Join(dir, "song.mp3")
	if err := os.WriteFile(track, bytes.Repeat([]byte{0xFF, 0xFB, 0x90, 0x00}, 16), 0644); err != nil {
		t.Fatal(err)
	}

	saved, err := NewCoverArt(100).SaveFromTrack(dir, track)
	if err != nil || saved {
		t.Errorf("SaveFromTrack() = %v, %v; want false, nil", saved, err)
	}
}

func TestPlacer_WritesCoverSidecar(t *testing.T) {
	root := t.TempDir()
	track := filepath.Join(root, "song.mp3")
	writeTrackWithCover(t, track, testPNG(t, 40, 40))

	p := NewPlacer(root, NewCoverArt(20), zerolog.Nop())
	var r reporter
	if err := p.Place(track, "Electronic", r.report); err != nil {
		t.Fatalf("Place() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "Electronic", DefaultCoverFileName)); err != nil {
		t.Errorf("cover sidecar missing: %v", err)
	}
	if !r.contains("Cover art saved") {
		t.Errorf("missing cover line in %v", r.lines)
	}
}
