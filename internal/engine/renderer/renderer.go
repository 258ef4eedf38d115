// Package renderer draws the demo scene into an offscreen framebuffer.
//
// A host creates an Engine with New once its GL context exists, calls
// Initialize with the surface size, then per frame calls UpdateAnimation
// followed by Render. All calls must come from the thread that owns the
// GL context.
package renderer

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/mobile/gl"

	"github.com/Faultbox/hellocone/internal/engine/animation"
	"github.com/Faultbox/hellocone/internal/engine/framebuffer"
	"github.com/Faultbox/hellocone/internal/engine/gles"
	"github.com/Faultbox/hellocone/internal/engine/shader"
	"github.com/Faultbox/hellocone/internal/logger"
	"github.com/Faultbox/hellocone/pkg/math"
)

// Variant selects which scene an Engine draws.
type Variant string

const (
	Cone     Variant = "cone"
	Triangle Variant = "triangle"
)

// Engine is the interface hosts drive.
type Engine interface {
	// Initialize allocates GL resources for a width x height surface.
	// Shader failures are returned as a wrapped *shader.InitError.
	Initialize(width, height int) error
	// Render draws the current frame. It does not change engine state.
	Render()
	// UpdateAnimation advances the orientation animation by dt seconds.
	UpdateAnimation(dt float32)
	OnRotate(o animation.DeviceOrientation)
	OnFingerDown(p math.Vec2)
	OnFingerUp(p math.Vec2)
	OnFingerMove(from, to math.Vec2)

	// ModelView returns the matrix the next Render uploads.
	ModelView() math.Mat4
	// Framebuffer returns the render target, or nil before Initialize.
	Framebuffer() *framebuffer.Framebuffer
	// Close releases GL resources. The engine can be initialized again.
	Close()
}

// Config holds renderer configuration.
type Config struct {
	Shaders shader.Sources

	AnimationDuration    time.Duration
	RevolutionsPerSecond float32

	PressedScale  float32
	ReleasedScale float32
}

// DefaultConfig returns the stock timing and touch feedback for the given shaders.
func DefaultConfig(shaders shader.Sources) Config {
	return Config{
		Shaders:              shaders,
		AnimationDuration:    250 * time.Millisecond,
		RevolutionsPerSecond: 1,
		PressedScale:         1.05,
		ReleasedScale:        1.0,
	}
}

// New creates an engine for the variant. No GL calls are made until Initialize.
func New(variant Variant, ctx gles.Context, cfg Config) (Engine, error) {
	switch variant {
	case Cone:
		return NewConeEngine(ctx, cfg), nil
	case Triangle:
		return NewTriangleEngine(ctx, cfg), nil
	default:
		return nil, fmt.Errorf("unknown renderer variant %q", variant)
	}
}

// resources are the GL objects both engines own.
type resources struct {
	ctx          gles.Context
	fb           *framebuffer.Framebuffer
	program      *shader.Program
	vertexBuffer gl.Buffer
	indexBuffer  gl.Buffer
}

// setup creates the framebuffer, uploads geometry, sets the viewport and
// builds the program. On error everything created so far is released.
func (r *resources) setup(width, height int, withDepth bool, sources shader.Sources, vertices, indices []byte) (err error) {
	defer func() {
		if err != nil {
			r.release()
		}
	}()

	r.fb, err = framebuffer.New(r.ctx, width, height, withDepth)
	if err != nil {
		return err
	}

	r.vertexBuffer = r.ctx.CreateBuffer()
	r.ctx.BindBuffer(gl.ARRAY_BUFFER, r.vertexBuffer)
	r.ctx.BufferData(gl.ARRAY_BUFFER, vertices, gl.STATIC_DRAW)

	r.indexBuffer = r.ctx.CreateBuffer()
	r.ctx.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.indexBuffer)
	r.ctx.BufferData(gl.ELEMENT_ARRAY_BUFFER, indices, gl.STATIC_DRAW)

	r.ctx.Viewport(0, 0, width, height)

	r.program, err = shader.NewManager(r.ctx, sources).Build()
	if err != nil {
		return err
	}
	r.program.Use()
	return nil
}

func (r *resources) ready() bool {
	return r.program != nil
}

// bindGeometry points the position and color attributes at the vertex buffer.
func (r *resources) bindGeometry(positionSize, stride, colorOffset int) {
	p := r.program
	r.ctx.BindBuffer(gl.ARRAY_BUFFER, r.vertexBuffer)
	r.ctx.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.indexBuffer)
	r.ctx.EnableVertexAttribArray(p.Position)
	r.ctx.EnableVertexAttribArray(p.Color)
	r.ctx.VertexAttribPointer(p.Position, positionSize, gl.FLOAT, false, stride, 0)
	r.ctx.VertexAttribPointer(p.Color, 4, gl.FLOAT, false, stride, colorOffset)
}

func (r *resources) unbindGeometry() {
	r.ctx.DisableVertexAttribArray(r.program.Position)
	r.ctx.DisableVertexAttribArray(r.program.Color)
}

func (r *resources) release() {
	if r.program != nil {
		r.program.Delete()
		r.program = nil
	}
	if r.vertexBuffer.Value != 0 {
		r.ctx.DeleteBuffer(r.vertexBuffer)
		r.vertexBuffer = gl.Buffer{}
	}
	if r.indexBuffer.Value != 0 {
		r.ctx.DeleteBuffer(r.indexBuffer)
		r.indexBuffer = gl.Buffer{}
	}
	if r.fb != nil {
		r.fb.Destroy()
		r.fb = nil
	}
}

func logInitialized(variant Variant, width, height int) {
	logger.Info("engine initialized",
		zap.String("variant", string(variant)),
		zap.Int("width", width),
		zap.Int("height", height),
	)
}
