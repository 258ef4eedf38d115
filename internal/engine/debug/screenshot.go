// Package debug provides frame capture for inspecting rendered output.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/hellocone/internal/engine/framebuffer"
	"github.com/Faultbox/hellocone/internal/logger"
)

// ScreenshotCapture writes rendered frames to PNG files.
type ScreenshotCapture struct {
	outputDir string
	prefix    string
	now       func() time.Time
}

// NewScreenshotCapture creates a new screenshot capture handler.
func NewScreenshotCapture(outputDir, prefix string) *ScreenshotCapture {
	return &ScreenshotCapture{
		outputDir: outputDir,
		prefix:    prefix,
		now:       time.Now,
	}
}

// CaptureFramebuffer reads the framebuffer's color attachment and saves it.
func (sc *ScreenshotCapture) CaptureFramebuffer(fb *framebuffer.Framebuffer) (string, error) {
	width, height := fb.Size()
	path, err := sc.CaptureFromPixels(fb.ReadPixels(), width, height)
	if err != nil {
		return "", err
	}
	logger.Info("frame captured", zap.String("path", path), zap.Int("width", width), zap.Int("height", height))
	return path, nil
}

// CaptureFromPixels captures a screenshot from raw pixel data.
// pixels should be in RGBA format with width*height*4 bytes, bottom row
// first as GL returns them. The image is flipped so the PNG is upright.
func (sc *ScreenshotCapture) CaptureFromPixels(pixels []byte, width, height int) (string, error) {
	if len(pixels) != width*height*4 {
		return "", fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))

	rowSize := width * 4
	for y := 0; y < height; y++ {
		srcOffset := (height - 1 - y) * rowSize
		dstOffset := y * img.Stride

		copy(img.Pix[dstOffset:dstOffset+rowSize], pixels[srcOffset:srcOffset+rowSize])
	}

	return sc.save(img)
}

func (sc *ScreenshotCapture) save(img image.Image) (string, error) {
	if sc.outputDir != "" {
		if err := os.MkdirAll(sc.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := sc.GenerateFilename()
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}

	return filename, nil
}

// GenerateFilename generates a screenshot filename without saving.
func (sc *ScreenshotCapture) GenerateFilename() string {
	timestamp := sc.now().Format("2006-01-02_15-04-05.000")
	filename := fmt.Sprintf("%s_%s.png", sc.prefix, timestamp)
	if sc.outputDir != "" {
		filename = filepath.Join(sc.outputDir, filename)
	}
	return filename
}
