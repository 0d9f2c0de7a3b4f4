// Package encoder turns captured bitmaps into encoded image bytes,
// choosing the format from the output path's extension.
package encoder

import (
	"bytes"
	"image"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// Format is one of the five supported output encodings.
type Format int

const (
	PNG Format = iota
	JPEG
	GIF
	BMP
	TIFF
)

func (f Format) String() string {
	switch f {
	case JPEG:
		return "jpeg"
	case GIF:
		return "gif"
	case BMP:
		return "bmp"
	case TIFF:
		return "tiff"
	default:
		return "png"
	}
}

// FormatFromPath maps the path's extension, case-insensitively, to an
// output format. Unknown or missing extensions default to PNG.
func FormatFromPath(path string) Format {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "jpg", "jpeg":
		return JPEG
	case "gif":
		return GIF
	case "bmp":
		return BMP
	case "tiff", "tif":
		return TIFF
	default:
		return PNG
	}
}

func (f Format) imagingFormat() imaging.Format {
	switch f {
	case JPEG:
		return imaging.JPEG
	case GIF:
		return imaging.GIF
	case BMP:
		return imaging.BMP
	case TIFF:
		return imaging.TIFF
	default:
		return imaging.PNG
	}
}

// Encode renders img in the given format with default encoder options.
// The whole encoding happens in memory so a failure never touches disk.
func Encode(img image.Image, f Format) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(256 * 1024)
	if err := imaging.Encode(&buf, img, f.imagingFormat()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
