//go:build darwin && !cgo

package capture

import (
	"fmt"
	"image"
)

// Without cgo there is no CoreGraphics bridge; every call reports
// ErrUnavailable instead of failing the build.
type stubBackend struct{}

func newPlatformBackend() Backend {
	return &stubBackend{}
}

func (b *stubBackend) Rasterize(Rect, Options) (*image.RGBA, error) {
	return nil, fmt.Errorf("darwin capture requires cgo: %w", ErrUnavailable)
}

func (b *stubBackend) ListWindows() ([]Window, error) {
	return nil, fmt.Errorf("darwin capture requires cgo: %w", ErrUnavailable)
}

func (b *stubBackend) MainDisplayBounds() (Rect, error) {
	return Rect{}, fmt.Errorf("darwin capture requires cgo: %w", ErrUnavailable)
}
