package renderer

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/mobile/gl"

	"github.com/Faultbox/hellocone/internal/engine/animation"
	"github.com/Faultbox/hellocone/internal/engine/framebuffer"
	"github.com/Faultbox/hellocone/internal/engine/geometry"
	"github.com/Faultbox/hellocone/internal/engine/gles"
	"github.com/Faultbox/hellocone/internal/logger"
	"github.com/Faultbox/hellocone/pkg/math"
)

// TriangleEngine draws a flat colored triangle that spins in the screen plane.
type TriangleEngine struct {
	res      resources
	cfg      Config
	indices  []uint8
	vertices []geometry.Vertex2D
	animator *animation.AngleAnimator
	scale    float32
}

// NewTriangleEngine creates a triangle engine. Call Initialize before rendering.
func NewTriangleEngine(ctx gles.Context, cfg Config) *TriangleEngine {
	vertices, indices := geometry.Triangle()
	return &TriangleEngine{
		res:      resources{ctx: ctx},
		cfg:      cfg,
		vertices: vertices,
		indices:  indices,
		animator: animation.NewAngleAnimator(cfg.AnimationDuration, cfg.RevolutionsPerSecond),
		scale:    cfg.ReleasedScale,
	}
}

func (e *TriangleEngine) Initialize(width, height int) error {
	if e.res.ready() {
		e.Close()
	}

	err := e.res.setup(width, height, false, e.cfg.Shaders,
		geometry.PackVertices2D(e.vertices), e.indices)
	if err != nil {
		return fmt.Errorf("initializing triangle engine: %w", err)
	}

	projection := math.Ortho(-1, 1, -1, 1, -1, 1)
	e.res.ctx.UniformMatrix4fv(e.res.program.Projection, projection.Slice())

	e.animator.Reset(animation.Portrait)
	e.scale = e.cfg.ReleasedScale

	logInitialized(Triangle, width, height)
	return nil
}

func (e *TriangleEngine) Render() {
	if !e.res.ready() {
		return
	}
	ctx := e.res.ctx

	e.res.fb.Bind()
	e.res.fb.Clear(1, 149.0/255, 10.0/255, 1)

	e.res.program.Use()
	modelView := e.ModelView()
	ctx.UniformMatrix4fv(e.res.program.ModelView, modelView.Slice())

	e.res.bindGeometry(2, geometry.Stride2D, geometry.ColorOffset2D)
	ctx.DrawElements(gl.TRIANGLES, len(e.indices), gl.UNSIGNED_BYTE, 0)
	e.res.unbindGeometry()
}

func (e *TriangleEngine) UpdateAnimation(dt float32) {
	e.animator.Update(dt)
}

func (e *TriangleEngine) OnRotate(o animation.DeviceOrientation) {
	logger.Debug("orientation changed", zap.Stringer("orientation", o))
	e.animator.OnRotate(o)
}

func (e *TriangleEngine) OnFingerDown(math.Vec2) { e.scale = e.cfg.PressedScale }
func (e *TriangleEngine) OnFingerUp(math.Vec2)   { e.scale = e.cfg.ReleasedScale }
func (e *TriangleEngine) OnFingerMove(_, _ math.Vec2) {}

// ModelView rotates the triangle about Z by the current angle.
func (e *TriangleEngine) ModelView() math.Mat4 {
	return math.RotateZ(math.Radians(e.animator.Current())).
		Mul(math.UniformScale(e.scale))
}

// Angle returns the triangle's current rotation in degrees.
func (e *TriangleEngine) Angle() float32 { return e.animator.Current() }

func (e *TriangleEngine) Framebuffer() *framebuffer.Framebuffer { return e.res.fb }

func (e *TriangleEngine) Close() {
	if e.res.ready() {
		logger.Info("closing engine", zap.String("variant", string(Triangle)))
	}
	e.res.release()
}
