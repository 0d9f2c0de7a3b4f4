//go:build !darwin || !cgo

// Package permissions checks the host's capture entitlements. Only macOS
// gates screen capture behind a permission; elsewhere these are no-ops.
package permissions

// HasScreenRecording reports whether screen capture is permitted. Always
// true on platforms without a capture permission model.
func HasScreenRecording() bool {
	return true
}

// RequestScreenRecording is a no-op outside macOS.
func RequestScreenRecording() bool {
	return true
}
