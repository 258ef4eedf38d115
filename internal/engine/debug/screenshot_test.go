package debug

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Faultbox/hellocone/internal/engine/framebuffer"
	"github.com/Faultbox/hellocone/internal/engine/gles/glestest"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 1, 12, 30, 45, 123_000_000, time.UTC)
}

func TestGenerateFilename(t *testing.T) {
	sc := NewScreenshotCapture("shots", "hellocone")
	sc.now = fixedClock

	want := filepath.Join("shots", "hellocone_2024-03-01_12-30-45.123.png")
	if got := sc.GenerateFilename(); got != want {
		t.Errorf("GenerateFilename() = %q, want %q", got, want)
	}
}

func TestCaptureFromPixelsFlips(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	sc := NewScreenshotCapture(dir, "frame")
	sc.now = fixedClock

	// 1x2 image: bottom row red, top row blue (GL order)
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	path, err := sc.CaptureFromPixels(pixels, 1, 2)
	if err != nil {
		t.Fatalf("CaptureFromPixels: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	top := color.RGBAModel.Convert(img.At(0, 0)).(color.RGBA)
	bottom := color.RGBAModel.Convert(img.At(0, 1)).(color.RGBA)
	if top != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("top pixel = %v, want blue", top)
	}
	if bottom != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("bottom pixel = %v, want red", bottom)
	}
}

func TestCaptureFromPixelsSizeMismatch(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "frame")
	if _, err := sc.CaptureFromPixels(make([]byte, 10), 2, 2); err == nil {
		t.Error("expected size mismatch error")
	}
}

func TestCaptureFramebuffer(t *testing.T) {
	rec := glestest.New()
	rec.PixelFill = 0x80
	fb, err := framebuffer.New(rec, 4, 3, false)
	if err != nil {
		t.Fatalf("framebuffer.New: %v", err)
	}

	sc := NewScreenshotCapture(t.TempDir(), "frame")
	path, err := sc.CaptureFramebuffer(fb)
	if err != nil {
		t.Fatalf("CaptureFramebuffer: %v", err)
	}
	if rec.Count("ReadPixels") != 1 {
		t.Errorf("ReadPixels called %d times, want 1", rec.Count("ReadPixels"))
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode config: %v", err)
	}
	if cfg.Width != 4 || cfg.Height != 3 {
		t.Errorf("image is %dx%d, want 4x3", cfg.Width, cfg.Height)
	}
}
