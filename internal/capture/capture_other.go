//go:build !darwin && !windows

package capture

import (
	"fmt"
	"image"

	"github.com/kbinani/screenshot"
)

// portableBackend captures displays through kbinani/screenshot (X11 on
// Linux and the BSDs). There is no portable single-window rasterizer, so
// window operations report ErrWindowsUnsupported.
type portableBackend struct{}

func newPlatformBackend() Backend {
	return &portableBackend{}
}

func (b *portableBackend) Rasterize(r Rect, o Options) (*image.RGBA, error) {
	if o.Window != 0 {
		return nil, ErrWindowsUnsupported
	}
	if r.Empty() {
		return nil, fmt.Errorf("rasterize %dx%d: %w", r.Width, r.Height, ErrUnavailable)
	}
	img, err := screenshot.CaptureRect(r.Bounds())
	if err != nil {
		return nil, fmt.Errorf("rasterize: %w: %v", ErrUnavailable, err)
	}
	return img, nil
}

func (b *portableBackend) ListWindows() ([]Window, error) {
	return nil, ErrWindowsUnsupported
}

func (b *portableBackend) MainDisplayBounds() (Rect, error) {
	if screenshot.NumActiveDisplays() == 0 {
		return Rect{}, fmt.Errorf("main display: %w", ErrUnavailable)
	}
	bounds := screenshot.GetDisplayBounds(0)
	return Rect{X: bounds.Min.X, Y: bounds.Min.Y, Width: bounds.Dx(), Height: bounds.Dy()}, nil
}
