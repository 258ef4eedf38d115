// Package mobile adapts golang.org/x/mobile app events to the renderer.
//
// The x/mobile event loop lives in cmd/hellocone-mobile; Host holds the
// state that loop needs so it can be exercised without a device.
package mobile

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"

	"github.com/Faultbox/hellocone/internal/config"
	"github.com/Faultbox/hellocone/internal/engine/animation"
	"github.com/Faultbox/hellocone/internal/engine/gles"
	"github.com/Faultbox/hellocone/internal/engine/renderer"
	"github.com/Faultbox/hellocone/internal/logger"
	"github.com/Faultbox/hellocone/pkg/math"
)

// Host drives one engine from x/mobile lifecycle, size, touch and paint events.
type Host struct {
	cfg    *config.Config
	ctx    gles.Context
	engine renderer.Engine

	width       int
	height      int
	orientation animation.DeviceOrientation

	// Only the first finger down is tracked
	activeTouch touch.Sequence
	touchDown   bool
	lastTouch   math.Vec2
}

// NewHost creates a host. The engine is created once a GL context is attached.
func NewHost(cfg *config.Config) *Host {
	return &Host{cfg: cfg, orientation: animation.Portrait}
}

// Attach hands the host a GL context when the app becomes visible.
func (h *Host) Attach(ctx gles.Context) error {
	h.Detach()

	eng, err := renderer.FromConfig(ctx, h.cfg)
	if err != nil {
		return fmt.Errorf("creating engine: %w", err)
	}
	h.ctx = ctx
	h.engine = eng
	return h.initialize()
}

// Detach releases GL resources when the app is no longer visible. The GL
// context is destroyed by x/mobile right after this, so the next Attach
// builds a fresh engine.
func (h *Host) Detach() {
	if h.engine != nil {
		h.engine.Close()
		h.engine = nil
	}
	h.ctx = nil
	h.touchDown = false
}

// Resize records the surface size and reported orientation. The engine is
// initialized on the first size event that arrives with a context attached.
func (h *Host) Resize(e size.Event) error {
	firstSize := h.width == 0
	h.width, h.height = e.WidthPx, e.HeightPx

	if o, ok := fromSize(e.Orientation); ok && o != h.orientation {
		h.orientation = o
		if h.Ready() {
			h.engine.OnRotate(o)
		}
	}

	if firstSize {
		return h.initialize()
	}
	return nil
}

func (h *Host) initialize() error {
	if h.ctx == nil || h.engine == nil || h.width <= 0 || h.height <= 0 {
		return nil
	}
	if err := h.engine.Initialize(h.width, h.height); err != nil {
		return err
	}
	if h.orientation != animation.Portrait {
		h.engine.OnRotate(h.orientation)
	}
	logger.Info("mobile host ready",
		zap.Int("width", h.width),
		zap.Int("height", h.height),
		zap.Stringer("orientation", h.orientation),
	)
	return nil
}

// Ready reports whether frames can be drawn.
func (h *Host) Ready() bool {
	return h.ctx != nil && h.engine != nil && h.engine.Framebuffer() != nil
}

// Touch forwards the tracked finger to the engine.
func (h *Host) Touch(e touch.Event) {
	if !h.Ready() {
		return
	}
	pos := math.Vec2{X: e.X, Y: e.Y}

	switch e.Type {
	case touch.TypeBegin:
		if h.touchDown {
			return
		}
		h.activeTouch = e.Sequence
		h.touchDown = true
		h.lastTouch = pos
		h.engine.OnFingerDown(pos)
	case touch.TypeMove:
		if h.touchDown && e.Sequence == h.activeTouch {
			h.engine.OnFingerMove(h.lastTouch, pos)
			h.lastTouch = pos
		}
	case touch.TypeEnd:
		if h.touchDown && e.Sequence == h.activeTouch {
			h.touchDown = false
			h.engine.OnFingerUp(pos)
		}
	}
}

// Paint advances the animation by dt seconds, renders, and blits the
// frame to the surface. It reports whether a frame was drawn.
func (h *Host) Paint(dt float32) bool {
	if !h.Ready() {
		return false
	}
	h.engine.UpdateAnimation(dt)
	h.engine.Render()
	h.engine.Framebuffer().BlitToDefault(h.width, h.height)
	return true
}

// Engine returns the engine, or nil before a context was attached.
func (h *Host) Engine() renderer.Engine {
	return h.engine
}

// fromSize maps the coarse x/mobile orientation. x/mobile does not say which
// way a landscape device is turned, so landscape is reported as LandscapeLeft.
func fromSize(o size.Orientation) (animation.DeviceOrientation, bool) {
	switch o {
	case size.OrientationPortrait:
		return animation.Portrait, true
	case size.OrientationLandscape:
		return animation.LandscapeLeft, true
	default:
		return animation.Unknown, false
	}
}
