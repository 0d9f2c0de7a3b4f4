//go:build windows

package capture

import (
	"fmt"
	"image"
	"syscall"
	"unsafe"

	"github.com/kbinani/screenshot"
	"golang.org/x/sys/windows"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")
	gdi32  = windows.NewLazySystemDLL("gdi32.dll")

	procEnumWindows              = user32.NewProc("EnumWindows")
	procIsWindowVisible          = user32.NewProc("IsWindowVisible")
	procGetWindowTextW           = user32.NewProc("GetWindowTextW")
	procGetWindowThreadProcessId = user32.NewProc("GetWindowThreadProcessId")
	procGetWindowRect            = user32.NewProc("GetWindowRect")
	procGetDC                    = user32.NewProc("GetDC")
	procReleaseDC                = user32.NewProc("ReleaseDC")
	procPrintWindow              = user32.NewProc("PrintWindow")
	procCreateCompatibleDC       = gdi32.NewProc("CreateCompatibleDC")
	procCreateDIBSection         = gdi32.NewProc("CreateDIBSection")
	procSelectObject             = gdi32.NewProc("SelectObject")
	procDeleteObject             = gdi32.NewProc("DeleteObject")
	procDeleteDC                 = gdi32.NewProc("DeleteDC")
)

const (
	pwRenderFullContent = 0x00000002
	dibRGBColors        = 0
)

type bitmapInfoHeader struct {
	BiSize          uint32
	BiWidth         int32
	BiHeight        int32
	BiPlanes        uint16
	BiBitCount      uint16
	BiCompression   uint32
	BiSizeImage     uint32
	BiXPelsPerMeter int32
	BiYPelsPerMeter int32
	BiClrUsed       uint32
	BiClrImportant  uint32
}

type winRect struct {
	Left, Top, Right, Bottom int32
}

// gdiBackend captures screen content through kbinani/screenshot and single
// windows through GDI PrintWindow, which renders a window even when it is
// occluded.
type gdiBackend struct{}

func newPlatformBackend() Backend {
	return &gdiBackend{}
}

func (b *gdiBackend) Rasterize(r Rect, o Options) (*image.RGBA, error) {
	if o.Window != 0 {
		return captureWindowGDI(uintptr(o.Window))
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

// enumCallback is created once; syscall.NewCallback slots are never
// released, so a per-call callback would leak them.
var enumCallback = syscall.NewCallback(func(hwnd uintptr, lparam uintptr) uintptr {
	result := (*[]Window)(unsafe.Pointer(lparam))

	visible, _, _ := procIsWindowVisible.Call(hwnd)
	if visible == 0 {
		return 1
	}

	var pid uint32
	procGetWindowThreadProcessId.Call(hwnd, uintptr(unsafe.Pointer(&pid)))

	var buf [256]uint16
	n, _, _ := procGetWindowTextW.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	title := syscall.UTF16ToString(buf[:n])
	if title == "" {
		title = UnknownTitle
	}

	*result = append(*result, Window{
		OwnerPID: int(pid),
		ID:       WindowID(hwnd),
		Title:    title,
	})
	return 1
})

func (b *gdiBackend) ListWindows() ([]Window, error) {
	var result []Window

	// EnumWindows walks top-level windows in Z order, topmost first.
	ret, _, _ := procEnumWindows.Call(enumCallback, uintptr(unsafe.Pointer(&result)))
	if ret == 0 {
		return nil, fmt.Errorf("list windows: %w", ErrUnavailable)
	}
	return result, nil
}

func (b *gdiBackend) MainDisplayBounds() (Rect, error) {
	if screenshot.NumActiveDisplays() == 0 {
		return Rect{}, fmt.Errorf("main display: %w", ErrUnavailable)
	}
	bounds := screenshot.GetDisplayBounds(0)
	return Rect{X: bounds.Min.X, Y: bounds.Min.Y, Width: bounds.Dx(), Height: bounds.Dy()}, nil
}

func captureWindowGDI(hwnd uintptr) (*image.RGBA, error) {
	var rect winRect
	ret, _, _ := procGetWindowRect.Call(hwnd, uintptr(unsafe.Pointer(&rect)))
	if ret == 0 {
		return nil, fmt.Errorf("window rect: %w", ErrUnavailable)
	}
	width := int(rect.Right - rect.Left)
	height := int(rect.Bottom - rect.Top)
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("window %dx%d: %w", width, height, ErrUnavailable)
	}

	hdc, _, _ := procGetDC.Call(0)
	if hdc == 0 {
		return nil, fmt.Errorf("device context: %w", ErrUnavailable)
	}
	defer procReleaseDC.Call(0, hdc)

	memDC, _, _ := procCreateCompatibleDC.Call(hdc)
	if memDC == 0 {
		return nil, fmt.Errorf("compatible DC: %w", ErrUnavailable)
	}
	defer procDeleteDC.Call(memDC)

	bmi := bitmapInfoHeader{
		BiSize:        uint32(unsafe.Sizeof(bitmapInfoHeader{})),
		BiWidth:       int32(width),
		BiHeight:      int32(-height), // top-down rows
		BiPlanes:      1,
		BiBitCount:    32,
		BiCompression: 0, // BI_RGB
	}

	var bits unsafe.Pointer
	bitmap, _, _ := procCreateDIBSection.Call(
		memDC,
		uintptr(unsafe.Pointer(&bmi)),
		dibRGBColors,
		uintptr(unsafe.Pointer(&bits)),
		0,
		0,
	)
	if bitmap == 0 || bits == nil {
		return nil, fmt.Errorf("DIB section: %w", ErrUnavailable)
	}
	defer procDeleteObject.Call(bitmap)

	oldBitmap, _, _ := procSelectObject.Call(memDC, bitmap)
	defer procSelectObject.Call(memDC, oldBitmap)

	ret, _, _ = procPrintWindow.Call(hwnd, memDC, pwRenderFullContent)
	if ret == 0 {
		return nil, fmt.Errorf("print window: %w", ErrUnavailable)
	}

	buffer := unsafe.Slice((*byte)(bits), width*height*4)
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < len(buffer); i += 4 {
		// BGRA to RGBA
		img.Pix[i+0] = buffer[i+2]
		img.Pix[i+1] = buffer[i+1]
		img.Pix[i+2] = buffer[i+0]
		img.Pix[i+3] = 255
	}
	return img, nil
}
