// Package screengrab captures screen and window content for desktop
// automation: full-screen and region screenshots, single-window capture,
// window enumeration, pixel sampling, and saving captures to image files.
//
// All operations are synchronous one-shot calls. Every failure mode
// (missing display, denied permission, stale window id, bad output path)
// is reported as an error value; nothing panics across the API boundary.
package screengrab

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"

	"go.uber.org/zap"

	"github.com/screengrab/screengrab/internal/capture"
	"github.com/screengrab/screengrab/internal/decoder"
	"github.com/screengrab/screengrab/internal/encoder"
)

var (
	// ErrEmptyRegion reports a requested rect with zero or negative
	// width or height.
	ErrEmptyRegion = errors.New("region has no area")

	// ErrOffScreen reports a requested rect that does not intersect
	// the main display.
	ErrOffScreen = errors.New("region is entirely off screen")
)

// Service is the capture service. The zero value is not usable; construct
// with New.
type Service struct {
	backend capture.Backend
	log     *zap.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger attaches a logger. Without it the service logs nowhere.
func WithLogger(log *zap.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithBackend substitutes the platform capture backend, mainly for tests.
func WithBackend(b capture.Backend) Option {
	return func(s *Service) {
		if b != nil {
			s.backend = b
		}
	}
}

// New creates a capture service for the current platform.
func New(opts ...Option) *Service {
	s := &Service{
		backend: capture.NewBackend(),
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CaptureScreen captures the main display's entire frame. The returned
// bitmap's dimensions reflect the display's raster resolution, which on
// scaled displays exceeds the logical frame size.
func (s *Service) CaptureScreen() (*image.RGBA, error) {
	bounds, err := s.backend.MainDisplayBounds()
	if err != nil {
		return nil, fmt.Errorf("capture screen: %w", err)
	}
	img, err := s.backend.Rasterize(bounds, capture.Options{
		OnScreenOnly:   true,
		BestResolution: true,
	})
	if err != nil {
		return nil, fmt.Errorf("capture screen: %w", err)
	}
	s.log.Debug("captured screen",
		zap.Int("width", img.Bounds().Dx()),
		zap.Int("height", img.Bounds().Dy()))
	return img, nil
}

// CaptureRegion captures the given rect of the main display. The rect is
// clipped to the display frame; a rect with no area fails with
// ErrEmptyRegion and a rect entirely outside the display fails with
// ErrOffScreen.
func (s *Service) CaptureRegion(r capture.Rect) (*image.RGBA, error) {
	if r.Empty() {
		return nil, fmt.Errorf("capture region %dx%d: %w", r.Width, r.Height, ErrEmptyRegion)
	}
	bounds, err := s.backend.MainDisplayBounds()
	if err != nil {
		return nil, fmt.Errorf("capture region: %w", err)
	}
	clipped := r.Intersect(bounds)
	if clipped.IsZero() {
		return nil, fmt.Errorf("capture region at (%d,%d): %w", r.X, r.Y, ErrOffScreen)
	}
	img, err := s.backend.Rasterize(clipped, capture.Options{
		OnScreenOnly:   true,
		BestResolution: true,
	})
	if err != nil {
		return nil, fmt.Errorf("capture region: %w", err)
	}
	return img, nil
}

// ListWindows enumerates the on-screen windows owned by pid whose title
// equals title exactly. Windows that report no title are matched as
// "Unknown". Results follow the platform's front-to-back order, which is
// not stable across calls.
func (s *Service) ListWindows(pid int, title string) ([]capture.Window, error) {
	all, err := s.backend.ListWindows()
	if err != nil {
		return nil, fmt.Errorf("list windows: %w", err)
	}
	var matched []capture.Window
	for _, w := range all {
		if w.OwnerPID == pid && w.Title == title {
			matched = append(matched, w)
		}
	}
	s.log.Debug("enumerated windows",
		zap.Int("on_screen", len(all)),
		zap.Int("matched", len(matched)),
		zap.Int("pid", pid))
	return matched, nil
}

// CaptureWindow captures one window by its window-server id. The window
// need not be frontmost or unobscured; the output is sized to the
// window's own bounds at the best available resolution.
func (s *Service) CaptureWindow(id capture.WindowID) (*image.RGBA, error) {
	img, err := s.backend.Rasterize(capture.Rect{}, capture.Options{
		Window:         id,
		BestResolution: true,
	})
	if err != nil {
		return nil, fmt.Errorf("capture window %d: %w", id, err)
	}
	return img, nil
}

// CaptureWindowsByOwner captures every on-screen window owned by pid with
// the exact given title. Windows whose capture fails are dropped; the
// successes keep enumeration order. An empty result means no window
// matched or every capture failed, indistinguishably.
func (s *Service) CaptureWindowsByOwner(pid int, title string) []*image.RGBA {
	windows, err := s.ListWindows(pid, title)
	if err != nil {
		s.log.Warn("window enumeration failed", zap.Error(err))
		return nil
	}
	images := make([]*image.RGBA, 0, len(windows))
	for _, w := range windows {
		img, err := s.CaptureWindow(w.ID)
		if err != nil {
			s.log.Warn("window capture failed",
				zap.Uint32("window_id", uint32(w.ID)),
				zap.Error(err))
			continue
		}
		images = append(images, img)
	}
	return images
}

// PixelColor samples the color of the screen pixel at (x, y). Under
// display scaling the 1x1 logical region may rasterize to more than one
// pixel; the sample is taken at the bitmap's origin, channel-exact.
func (s *Service) PixelColor(x, y int) (color.RGBA, error) {
	img, err := s.CaptureRegion(capture.Rect{X: x, Y: y, Width: 1, Height: 1})
	if err != nil {
		return color.RGBA{}, fmt.Errorf("pixel at (%d,%d): %w", x, y, err)
	}
	if img.Bounds().Empty() {
		return color.RGBA{}, fmt.Errorf("pixel at (%d,%d): empty bitmap", x, y)
	}
	return img.RGBAAt(img.Bounds().Min.X, img.Bounds().Min.Y), nil
}

// SaveToFile encodes img in the format chosen by path's extension (png,
// jpg/jpeg, gif, bmp, tiff/tif; anything else encodes as PNG) and writes
// it to path, overwriting an existing file. Encoding happens entirely in
// memory, so a failed encode or an unwritable path never leaves a
// partial file.
func (s *Service) SaveToFile(img image.Image, path string) error {
	if img == nil {
		return fmt.Errorf("save %s: nil image", path)
	}
	format := encoder.FormatFromPath(path)
	data, err := encoder.Encode(img, format)
	if err != nil {
		return fmt.Errorf("save %s: encode %s: %w", path, format, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	s.log.Debug("saved capture",
		zap.String("path", path),
		zap.String("format", format.String()),
		zap.Int("bytes", len(data)))
	return nil
}

// ScreenshotToFile captures the full screen, or region when non-nil, and
// saves it to path. When the capture fails no file is created or touched.
func (s *Service) ScreenshotToFile(path string, region *capture.Rect) error {
	var (
		img *image.RGBA
		err error
	)
	if region != nil {
		img, err = s.CaptureRegion(*region)
	} else {
		img, err = s.CaptureScreen()
	}
	if err != nil {
		return fmt.Errorf("screenshot to %s: %w", path, err)
	}
	return s.SaveToFile(img, path)
}

// MainScreenSize returns the main display's logical frame size, or
// (0, 0) when no display is available. It never fails.
func (s *Service) MainScreenSize() (int, int) {
	bounds, err := s.backend.MainDisplayBounds()
	if err != nil {
		return 0, 0
	}
	return bounds.Width, bounds.Height
}

// LoadFile reads an image back from disk in any of the formats SaveToFile
// writes.
func (s *Service) LoadFile(path string) (*image.RGBA, error) {
	img, err := decoder.DecodeFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return img, nil
}
