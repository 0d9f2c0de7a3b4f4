// Package config parses the screengrab CLI's flags.
package config

import (
	"flag"
	"fmt"

	"github.com/screengrab/screengrab/internal/capture"
)

// Config holds all runtime configuration for the screengrab binary.
type Config struct {
	Out      string
	Region   string
	PID      int
	Title    string
	WindowID uint
	Pixel    string
	List     bool
	Size     bool
	Verbose  bool
}

// ParseFlags parses the command-line flags for the screengrab binary.
func ParseFlags() *Config {
	cfg := &Config{}
	flag.StringVar(&cfg.Out, "out", "screenshot.png", "Output file; the extension picks the format (png, jpg, gif, bmp, tiff)")
	flag.StringVar(&cfg.Region, "region", "", "Region to capture as x,y,WxH (default: whole screen)")
	flag.IntVar(&cfg.PID, "pid", 0, "Owning process id for window operations")
	flag.StringVar(&cfg.Title, "title", "", "Exact window title for window operations")
	flag.UintVar(&cfg.WindowID, "window", 0, "Window id to capture")
	flag.StringVar(&cfg.Pixel, "pixel", "", "Sample the pixel color at x,y instead of capturing")
	flag.BoolVar(&cfg.List, "list", false, "List on-screen windows matching -pid/-title and exit")
	flag.BoolVar(&cfg.Size, "size", false, "Print the main display size and exit")
	flag.BoolVar(&cfg.Verbose, "v", false, "Verbose (debug) logging")
	flag.Parse()
	return cfg
}

// ParseRegion parses "x,y,WxH" into a capture rect.
func ParseRegion(s string) (capture.Rect, error) {
	var r capture.Rect
	if _, err := fmt.Sscanf(s, "%d,%d,%dx%d", &r.X, &r.Y, &r.Width, &r.Height); err != nil {
		return capture.Rect{}, fmt.Errorf("region %q: want x,y,WxH", s)
	}
	return r, nil
}

// ParsePoint parses "x,y" into coordinates.
func ParsePoint(s string) (int, int, error) {
	var x, y int
	if _, err := fmt.Sscanf(s, "%d,%d", &x, &y); err != nil {
		return 0, 0, fmt.Errorf("point %q: want x,y", s)
	}
	return x, y, nil
}
