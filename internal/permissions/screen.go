//go:build darwin && cgo

// Package permissions checks the host's capture entitlements. On macOS,
// screen capture silently produces empty or wallpaper-only frames until
// the user grants Screen Recording access, so callers preflight here
// before capturing.
package permissions

/*
#cgo LDFLAGS: -framework CoreGraphics
#include <CoreGraphics/CoreGraphics.h>

// CGPreflightScreenCaptureAccess and CGRequestScreenCaptureAccess
// are available since macOS 10.15.
int hasScreenRecordingPermission() {
    return CGPreflightScreenCaptureAccess();
}

int requestScreenRecordingPermission() {
    return CGRequestScreenCaptureAccess();
}
*/
import "C"

// HasScreenRecording returns true if the process has Screen Recording
// permission.
func HasScreenRecording() bool {
	return C.hasScreenRecordingPermission() != 0
}

// RequestScreenRecording prompts the user for Screen Recording permission.
// Returns true if already granted. If not granted, macOS shows a dialog
// and the user must restart the process after granting.
func RequestScreenRecording() bool {
	return C.requestScreenRecordingPermission() != 0
}
