// Package app implements the desktop host: an SDL2 window driving one engine.
package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/hellocone/internal/config"
	"github.com/Faultbox/hellocone/internal/engine/animation"
	"github.com/Faultbox/hellocone/internal/engine/debug"
	"github.com/Faultbox/hellocone/internal/engine/gles"
	"github.com/Faultbox/hellocone/internal/engine/input"
	"github.com/Faultbox/hellocone/internal/engine/renderer"
	"github.com/Faultbox/hellocone/internal/engine/window"
	"github.com/Faultbox/hellocone/internal/logger"
)

// App is the desktop host instance.
type App struct {
	cfg     *config.Config
	running bool
	window  *window.Window
	gl      *gles.Desktop
	engine  renderer.Engine
	input   *input.Input
	capture *debug.ScreenshotCapture

	captureRequested bool
}

// New opens the window, creates the engine and initializes it. Shader
// failures come back wrapping shader.ErrUnrecoverable.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing app",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.String("variant", cfg.Renderer.Variant),
	)

	a := &App{
		cfg:     cfg,
		capture: debug.NewScreenshotCapture(cfg.Capture.Dir, cfg.Capture.Prefix),
	}

	// Create window (this also creates OpenGL context)
	var err error
	a.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// GL entry points exist only once the context is current
	a.gl, err = gles.NewDesktop()
	if err != nil {
		a.Close()
		return nil, err
	}
	version, rendererName := a.gl.Version()
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	a.engine, err = renderer.FromConfig(a.gl, cfg)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	width, height := a.window.DrawableSize()
	if err := a.engine.Initialize(width, height); err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to initialize engine: %w", err)
	}

	// Validated by config.Load
	initial, _ := animation.ParseOrientation(cfg.Renderer.InitialOrientation)
	if initial != animation.Portrait {
		a.engine.OnRotate(initial)
	}

	winWidth, winHeight := a.window.GetSize()
	a.input = input.New(winWidth, winHeight)

	logger.Info("app initialized successfully")
	return a, nil
}

// Run starts the main loop and returns when the window is closed.
func (a *App) Run() error {
	a.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting main loop")

	for a.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		// 1. Process input
		if a.input.Update() {
			a.running = false
			break
		}
		for _, event := range a.input.Events() {
			a.handle(event)
			if event.Type == input.EventRotate {
				a.window.SetTitle(fmt.Sprintf("%s (%s)", a.cfg.Window.Title, event.Orientation))
			}
		}
		if !a.running {
			break
		}

		// 2. Update, render and present
		width, height := a.window.DrawableSize()
		a.frame(float32(dt), width, height)
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// handle applies one input event to the engine.
func (a *App) handle(event input.Event) {
	switch event.Type {
	case input.EventQuit:
		a.running = false
	case input.EventRotate:
		a.engine.OnRotate(event.Orientation)
	case input.EventFingerDown:
		a.engine.OnFingerDown(event.Pos)
	case input.EventFingerUp:
		a.engine.OnFingerUp(event.Pos)
	case input.EventFingerMove:
		a.engine.OnFingerMove(event.From, event.Pos)
	case input.EventCapture:
		a.captureRequested = true
	case input.EventWindowResize:
		// The offscreen target keeps its size; the blit stretches it
		logger.Debug("window resized", zap.Int("width", event.Width), zap.Int("height", event.Height))
	}
}

// frame advances the animation, draws, saves a pending capture and
// blits the result to a width x height default framebuffer.
func (a *App) frame(dt float32, width, height int) {
	a.engine.UpdateAnimation(dt)
	a.engine.Render()

	fb := a.engine.Framebuffer()
	if a.captureRequested {
		a.captureRequested = false
		if _, err := a.capture.CaptureFramebuffer(fb); err != nil {
			logger.Warn("frame capture failed", zap.Error(err))
		}
	}
	fb.BlitToDefault(width, height)
}

// Close releases the engine, GL state and window.
func (a *App) Close() {
	logger.Info("closing app")

	if a.engine != nil {
		a.engine.Close()
	}
	if a.gl != nil {
		a.gl.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
