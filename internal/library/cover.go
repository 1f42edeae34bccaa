package library

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // PNG decoder registration
	"os"
	"path/filepath"

	"github.com/handiism/songdrop/internal/audio"
	"golang.org/x/image/draw"
)

// DefaultCoverFileName is the sidecar name most players look for.
const DefaultCoverFileName = "cover.jpg"

// CoverArt writes a folder cover image taken from a track's embedded art.
//
// When a track is placed into a folder that has no cover yet, the track's
// attached picture is scaled down to MaxSize and saved as a JPEG next to
// it. Folders that already have a cover are left alone.
type CoverArt struct {
	// FileName is the sidecar file name inside the folder.
	FileName string

	// MaxSize bounds both width and height of the saved image, in pixels.
	// Zero keeps the original size.
	MaxSize int
}

// NewCoverArt creates a CoverArt writing DefaultCoverFileName.
func NewCoverArt(maxSize int) *CoverArt {
	return &CoverArt{FileName: DefaultCoverFileName, MaxSize: maxSize}
}

// SaveFromTrack saves the cover embedded in track into dir. It reports
// false without error when dir already has a cover or the track has none.
func (c *CoverArt) SaveFromTrack(dir, track string) (bool, error) {
	dst := filepath.Join(dir, c.FileName)
	if _, err := os.Stat(dst); err == nil {
		return false, nil
	}

	info, err := audio.ReadInfo(track)
	if err != nil {
		return false, err
	}
	if !info.HasPicture() {
		return false, nil
	}

	data, err := c.prepare(info.Picture)
	if err != nil {
		return false, fmt.Errorf("converting cover art: %w", err)
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return false, err
	}
	return true, nil
}

func (c *CoverArt) prepare(data []byte) ([]byte, error) {
	if c.MaxSize > 0 {
		return ResizeImage(data, c.MaxSize, c.MaxSize)
	}
	return ConvertToJPEG(data)
}

// ResizeImage scales an image down to fit within maxWidth x maxHeight and
// returns it as JPEG. The aspect ratio is preserved and images that
// already fit are only re-encoded.
//
// Example:
//
//	resized, err := ResizeImage(data, 1000, 1000)
//	// A 1500x1000 image becomes 1000x666
//	// A 800x600 image remains 800x600 (but re-encoded)
func ResizeImage(data []byte, maxWidth, maxHeight int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width > maxWidth || height > maxHeight {
		ratio := float64(width) / float64(height)
		if float64(maxWidth)/float64(maxHeight) > ratio {
			width = int(float64(maxHeight) * ratio)
			height = maxHeight
		} else {
			height = int(float64(maxWidth) / ratio)
			width = maxWidth
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ConvertToJPEG re-encodes an image as JPEG at quality 90.
func ConvertToJPEG(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
