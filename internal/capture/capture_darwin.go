//go:build darwin && cgo

package capture

/*
#cgo LDFLAGS: -framework CoreGraphics -framework CoreFoundation
#include <CoreGraphics/CoreGraphics.h>
#include <dlfcn.h>
#include <stdlib.h>
#include <string.h>

typedef struct {
    void*  data;
    int    width;
    int    height;
} BitmapData;

typedef struct {
    int32_t  pid;
    uint32_t id;
    char     title[256];
} WindowInfo;

// CGWindowListCreateImage is unavailable in the macOS 15 SDK headers but still
// present in the CoreGraphics dylib. Load it dynamically.
typedef CGImageRef (*CGWindowListCreateImageFunc)(
    CGRect screenBounds,
    uint32_t listOption,
    uint32_t windowID,
    uint32_t imageOption
);

static CGWindowListCreateImageFunc getCGWindowListCreateImage(void) {
    static CGWindowListCreateImageFunc fn = NULL;
    if (!fn) {
        fn = (CGWindowListCreateImageFunc)dlsym(RTLD_DEFAULT, "CGWindowListCreateImage");
    }
    return fn;
}

static BitmapData renderImage(CGImageRef image) {
    BitmapData result = {0};
    if (!image) {
        return result;
    }

    result.width  = (int)CGImageGetWidth(image);
    result.height = (int)CGImageGetHeight(image);

    size_t bytesPerRow = (size_t)result.width * 4;
    result.data = malloc(bytesPerRow * result.height);
    if (!result.data) {
        CGImageRelease(image);
        result.width = 0;
        result.height = 0;
        return result;
    }

    CGColorSpaceRef cs = CGColorSpaceCreateDeviceRGB();
    CGContextRef ctx = CGBitmapContextCreate(
        result.data,
        result.width,
        result.height,
        8,
        bytesPerRow,
        cs,
        kCGImageAlphaPremultipliedLast
    );
    CGContextDrawImage(ctx, CGRectMake(0, 0, result.width, result.height), image);
    CGContextRelease(ctx);
    CGColorSpaceRelease(cs);
    CGImageRelease(image);

    return result;
}

// captureRect rasterizes on-screen content inside the given global rect.
// kCGWindowListOptionOnScreenOnly = 1, kCGNullWindowID = 0,
// kCGWindowImageDefault = 0, kCGWindowImageBestResolution = 8.
BitmapData captureRect(double x, double y, double w, double h, int best) {
    BitmapData result = {0};

    CGWindowListCreateImageFunc fn = getCGWindowListCreateImage();
    if (!fn) {
        return result;
    }

    uint32_t imageOption = best ? 8 : 0;
    CGImageRef image = fn(CGRectMake(x, y, w, h), 1, 0, imageOption);
    return renderImage(image);
}

// captureWindow rasterizes one window, occluded or not, sized to its own
// window-server bounds. kCGWindowListOptionIncludingWindow = 8,
// kCGWindowImageBoundsIgnoreFraming = 1, kCGWindowImageBestResolution = 8.
BitmapData captureWindow(uint32_t windowID, int best) {
    BitmapData result = {0};

    CGWindowListCreateImageFunc fn = getCGWindowListCreateImage();
    if (!fn) {
        return result;
    }

    uint32_t imageOption = 1 | (best ? 8 : 0);
    CGImageRef image = fn(CGRectNull, 8, windowID, imageOption);
    return renderImage(image);
}

void freeBitmapData(void* data) {
    free(data);
}

// listWindows snapshots the on-screen window list front-to-back.
// kCGWindowListExcludeDesktopElements = 16.
int listWindows(WindowInfo** out) {
    CFArrayRef list = CGWindowListCopyWindowInfo(1 | 16, 0);
    if (!list) {
        return -1;
    }

    CFIndex n = CFArrayGetCount(list);
    WindowInfo* infos = calloc(n > 0 ? n : 1, sizeof(WindowInfo));
    if (!infos) {
        CFRelease(list);
        return -1;
    }

    int count = 0;
    for (CFIndex i = 0; i < n; i++) {
        CFDictionaryRef dict = (CFDictionaryRef)CFArrayGetValueAtIndex(list, i);

        CFNumberRef pidRef = (CFNumberRef)CFDictionaryGetValue(dict, kCGWindowOwnerPID);
        CFNumberRef numRef = (CFNumberRef)CFDictionaryGetValue(dict, kCGWindowNumber);
        if (!pidRef || !numRef) {
            continue;
        }

        int32_t pid = 0;
        int64_t num = 0;
        CFNumberGetValue(pidRef, kCFNumberSInt32Type, &pid);
        CFNumberGetValue(numRef, kCFNumberSInt64Type, &num);
        infos[count].pid = pid;
        infos[count].id = (uint32_t)num;

        CFStringRef nameRef = (CFStringRef)CFDictionaryGetValue(dict, kCGWindowName);
        if (nameRef) {
            CFStringGetCString(nameRef, infos[count].title, sizeof(infos[count].title), kCFStringEncodingUTF8);
        }
        count++;
    }

    CFRelease(list);
    *out = infos;
    return count;
}

void freeWindowList(WindowInfo* infos) {
    free(infos);
}

// mainDisplayBounds writes the main display's logical frame. Returns 0 when
// no display is attached.
int mainDisplayBounds(double* x, double* y, double* w, double* h) {
    CGDirectDisplayID display = CGMainDisplayID();
    if (CGDisplayPixelsWide(display) == 0) {
        return 0;
    }
    CGRect bounds = CGDisplayBounds(display);
    *x = bounds.origin.x;
    *y = bounds.origin.y;
    *w = bounds.size.width;
    *h = bounds.size.height;
    return 1;
}
*/
import "C"

import (
	"fmt"
	"image"
	"unsafe"
)

// cgBackend captures through CoreGraphics.
type cgBackend struct{}

func newPlatformBackend() Backend {
	return &cgBackend{}
}

func (b *cgBackend) Rasterize(r Rect, o Options) (*image.RGBA, error) {
	best := C.int(0)
	if o.BestResolution {
		best = 1
	}

	var bd C.BitmapData
	if o.Window != 0 {
		bd = C.captureWindow(C.uint32_t(o.Window), best)
	} else {
		if r.Empty() {
			return nil, fmt.Errorf("rasterize %dx%d: %w", r.Width, r.Height, ErrUnavailable)
		}
		bd = C.captureRect(C.double(r.X), C.double(r.Y), C.double(r.Width), C.double(r.Height), best)
	}

	if bd.data == nil || bd.width == 0 || bd.height == 0 {
		if bd.data != nil {
			C.freeBitmapData(bd.data)
		}
		return nil, fmt.Errorf("rasterize: %w", ErrUnavailable)
	}
	defer C.freeBitmapData(bd.data)

	w := int(bd.width)
	h := int(bd.height)
	byteLen := w * 4 * h

	pix := make([]byte, byteLen)
	copy(pix, unsafe.Slice((*byte)(bd.data), byteLen))

	return &image.RGBA{
		Pix:    pix,
		Stride: w * 4,
		Rect:   image.Rect(0, 0, w, h),
	}, nil
}

func (b *cgBackend) ListWindows() ([]Window, error) {
	var infos *C.WindowInfo
	n := C.listWindows(&infos)
	if n < 0 {
		return nil, fmt.Errorf("list windows: %w", ErrUnavailable)
	}
	defer C.freeWindowList(infos)

	windows := make([]Window, 0, int(n))
	for _, info := range unsafe.Slice(infos, int(n)) {
		title := C.GoString(&info.title[0])
		if title == "" {
			title = UnknownTitle
		}
		windows = append(windows, Window{
			OwnerPID: int(info.pid),
			ID:       WindowID(info.id),
			Title:    title,
		})
	}
	return windows, nil
}

func (b *cgBackend) MainDisplayBounds() (Rect, error) {
	var x, y, w, h C.double
	if C.mainDisplayBounds(&x, &y, &w, &h) == 0 {
		return Rect{}, fmt.Errorf("main display: %w", ErrUnavailable)
	}
	return Rect{X: int(x), Y: int(y), Width: int(w), Height: int(h)}, nil
}
