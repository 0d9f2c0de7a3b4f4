package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"go.uber.org/zap"

	"github.com/screengrab/screengrab"
	"github.com/screengrab/screengrab/internal/capture"
	"github.com/screengrab/screengrab/internal/config"
	"github.com/screengrab/screengrab/internal/permissions"
)

func main() {
	cfg := config.ParseFlags()

	logger := newLogger(cfg.Verbose)
	defer logger.Sync()

	if !permissions.HasScreenRecording() {
		logger.Warn("Screen Recording permission not granted, requesting")
		permissions.RequestScreenRecording()
		logger.Fatal("grant Screen Recording permission in System Settings and rerun")
	}

	svc := screengrab.New(screengrab.WithLogger(logger))

	switch {
	case cfg.Size:
		w, h := svc.MainScreenSize()
		fmt.Printf("%dx%d\n", w, h)

	case cfg.List:
		listWindows(svc, cfg, logger)

	case cfg.Pixel != "":
		x, y, err := config.ParsePoint(cfg.Pixel)
		if err != nil {
			logger.Fatal("bad -pixel", zap.Error(err))
		}
		c, err := svc.PixelColor(x, y)
		if err != nil {
			logger.Fatal("pixel sample failed", zap.Error(err))
		}
		fmt.Printf("rgba(%d, %d, %d, %d)\n", c.R, c.G, c.B, c.A)

	case cfg.WindowID != 0:
		img, err := svc.CaptureWindow(capture.WindowID(cfg.WindowID))
		if err != nil {
			logger.Fatal("window capture failed", zap.Error(err))
		}
		if err := svc.SaveToFile(img, cfg.Out); err != nil {
			logger.Fatal("save failed", zap.Error(err))
		}
		fmt.Println(cfg.Out)

	case cfg.PID != 0 || cfg.Title != "":
		images := svc.CaptureWindowsByOwner(cfg.PID, cfg.Title)
		if len(images) == 0 {
			logger.Fatal("no matching window captured",
				zap.Int("pid", cfg.PID), zap.String("title", cfg.Title))
		}
		for i, img := range images {
			path := numberedPath(cfg.Out, i)
			if err := svc.SaveToFile(img, path); err != nil {
				logger.Fatal("save failed", zap.String("path", path), zap.Error(err))
			}
			fmt.Println(path)
		}

	default:
		var region *capture.Rect
		if cfg.Region != "" {
			r, err := config.ParseRegion(cfg.Region)
			if err != nil {
				logger.Fatal("bad -region", zap.Error(err))
			}
			region = &r
		}
		if err := svc.ScreenshotToFile(cfg.Out, region); err != nil {
			logger.Fatal("screenshot failed", zap.Error(err))
		}
		fmt.Println(cfg.Out)
	}
}

func newLogger(verbose bool) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	return logger
}

func listWindows(svc *screengrab.Service, cfg *config.Config, logger *zap.Logger) {
	var (
		windows []capture.Window
		err     error
	)
	if cfg.PID != 0 && cfg.Title != "" {
		windows, err = svc.ListWindows(cfg.PID, cfg.Title)
	} else {
		// Unfiltered listing goes straight to the backend.
		windows, err = capture.NewBackend().ListWindows()
	}
	if err != nil {
		logger.Fatal("window enumeration failed", zap.Error(err))
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"ID", "PID", "Title"})
	for _, w := range windows {
		t.AppendRow(table.Row{w.ID, w.OwnerPID, w.Title})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}

// numberedPath inserts the capture index before the extension:
// shot.png -> shot-0.png.
func numberedPath(path string, i int) string {
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(path, ext), i, ext)
}
