package decoder

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/screengrab/screengrab/internal/encoder"
)

func TestDecodeRoundTrip(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 5, 4))
	img.SetRGBA(2, 1, color.RGBA{R: 200, G: 10, B: 30, A: 255})

	for _, f := range []encoder.Format{encoder.PNG, encoder.GIF, encoder.BMP, encoder.TIFF} {
		data, err := encoder.Encode(img, f)
		require.NoError(t, err, "encode %s", f)

		got, err := Decode(data)
		require.NoError(t, err, "decode %s", f)
		assert.Equal(t, 5, got.Bounds().Dx(), "width after %s", f)
		assert.Equal(t, 4, got.Bounds().Dy(), "height after %s", f)
	}
}

func TestDecodeLossless(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 3))
	want := color.RGBA{R: 17, G: 34, B: 51, A: 255}
	img.SetRGBA(1, 2, want)

	data, err := encoder.Encode(img, encoder.PNG)
	require.NoError(t, err)

	got, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, want, got.RGBAAt(1, 2))
}

func TestDecodeGarbage(t *testing.T) {
	_, err := Decode([]byte("not an image"))
	assert.Error(t, err)
}

func TestDecodeFile(t *testing.T) {
	_, err := DecodeFile(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}
