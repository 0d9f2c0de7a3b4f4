// Package capture provides the platform capture primitive: rasterizing
// screen, region, or single-window content into an RGBA bitmap, plus
// window enumeration and display geometry queries.
//
// Platform-specific backends live in capture_darwin.go, capture_windows.go,
// and capture_other.go.
package capture

import (
	"errors"
	"image"
)

// UnknownTitle is substituted for windows that report no title, so the
// pid+title filter can still match them.
const UnknownTitle = "Unknown"

// WindowID identifies a window in the window server's numbering.
type WindowID uint32

// Rect is a rectangle in the platform's screen coordinate space.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// IsZero reports whether r is the zero rect (used as "size to the window").
func (r Rect) IsZero() bool {
	return r == Rect{}
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Bounds returns r as an image.Rectangle.
func (r Rect) Bounds() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// Intersect returns the intersection of r and other, or the zero Rect
// when they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	i := r.Bounds().Intersect(other.Bounds())
	if i.Empty() {
		return Rect{}
	}
	return Rect{X: i.Min.X, Y: i.Min.Y, Width: i.Dx(), Height: i.Dy()}
}

// Window is a point-in-time snapshot of one on-screen window's identity.
// It is not live-updating.
type Window struct {
	OwnerPID int
	ID       WindowID
	Title    string
}

// Options select the capture mode for Rasterize.
type Options struct {
	// OnScreenOnly restricts the capture to visible content. Window
	// captures clear it so an occluded window can still be imaged.
	OnScreenOnly bool
	// Window, when non-zero, captures that single window instead of
	// screen content.
	Window WindowID
	// BestResolution asks for the display's native raster resolution
	// rather than the nominal (logical) one.
	BestResolution bool
}

var (
	// ErrUnavailable reports that the compositor produced no image:
	// no display, permission denied, or a stale window id.
	ErrUnavailable = errors.New("capture unavailable")

	// ErrWindowsUnsupported reports that window enumeration and
	// window capture are not implemented on this platform.
	ErrWindowsUnsupported = errors.New("window capture not supported on this platform")
)

// Backend is the narrow boundary to the platform's window server. All
// public capture operations reduce to these three calls.
type Backend interface {
	// Rasterize captures r, or the window named in o. A zero r with
	// o.Window set sizes the output to the window's own bounds. The
	// returned bitmap's dimensions are the true raster dimensions,
	// which may exceed the logical request on scaled displays.
	Rasterize(r Rect, o Options) (*image.RGBA, error)

	// ListWindows returns the currently on-screen windows in the
	// platform's front-to-back order. Untitled windows carry
	// UnknownTitle.
	ListWindows() ([]Window, error)

	// MainDisplayBounds returns the main display's logical frame.
	MainDisplayBounds() (Rect, error)
}

// NewBackend returns the capture backend for the current platform.
func NewBackend() Backend {
	return newPlatformBackend()
}
