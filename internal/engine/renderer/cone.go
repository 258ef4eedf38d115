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

// Cone view volume.
const (
	coneDistance   = 7
	coneHalfHeight = 2.4
	coneNear       = 5
	coneFar        = 10
)

// ConeProjection returns the perspective projection for a width x height
// viewport. A 320x480 viewport gives frustum(-1.6, 1.6, -2.4, 2.4, 5, 10).
func ConeProjection(width, height int) math.Mat4 {
	width, height = max(width, 1), max(height, 1)
	halfWidth := coneHalfHeight * float32(width) / float32(height)
	return math.Frustum(-halfWidth, halfWidth, -coneHalfHeight, coneHalfHeight, coneNear, coneFar)
}

// ConeEngine draws a shaded cone that turns to keep pointing up.
type ConeEngine struct {
	res      resources
	cfg      Config
	mesh     geometry.ConeMesh
	animator *animation.QuatAnimator
	scale    float32
}

// NewConeEngine creates a cone engine. Call Initialize before rendering.
func NewConeEngine(ctx gles.Context, cfg Config) *ConeEngine {
	return &ConeEngine{
		res:      resources{ctx: ctx},
		cfg:      cfg,
		mesh:     geometry.Cone(geometry.ConeRadius, geometry.ConeHeight, geometry.ConeSlices),
		animator: animation.NewQuatAnimator(cfg.AnimationDuration),
		scale:    cfg.ReleasedScale,
	}
}

func (e *ConeEngine) Initialize(width, height int) error {
	if e.res.ready() {
		e.Close()
	}

	err := e.res.setup(width, height, true, e.cfg.Shaders,
		geometry.PackVertices3D(e.mesh.Vertices), e.mesh.Indices())
	if err != nil {
		return fmt.Errorf("initializing cone engine: %w", err)
	}

	ctx := e.res.ctx
	ctx.Enable(gl.DEPTH_TEST)

	projection := ConeProjection(width, height)
	ctx.UniformMatrix4fv(e.res.program.Projection, projection.Slice())

	e.animator.Reset(animation.Portrait)
	e.scale = e.cfg.ReleasedScale

	logInitialized(Cone, width, height)
	return nil
}

func (e *ConeEngine) Render() {
	if !e.res.ready() {
		return
	}
	ctx := e.res.ctx

	e.res.fb.Bind()
	e.res.fb.Clear(0.5, 0.5, 0.5, 1)

	e.res.program.Use()
	modelView := e.ModelView()
	ctx.UniformMatrix4fv(e.res.program.ModelView, modelView.Slice())

	e.res.bindGeometry(3, geometry.Stride3D, geometry.ColorOffset3D)
	ctx.DrawElements(gl.TRIANGLES, len(e.mesh.Body), gl.UNSIGNED_BYTE, 0)
	ctx.DrawElements(gl.TRIANGLES, len(e.mesh.Cap), gl.UNSIGNED_BYTE, len(e.mesh.Body))
	e.res.unbindGeometry()
}

func (e *ConeEngine) UpdateAnimation(dt float32) {
	e.animator.Update(dt)
}

func (e *ConeEngine) OnRotate(o animation.DeviceOrientation) {
	logger.Debug("orientation changed", zap.Stringer("orientation", o))
	e.animator.OnRotate(o)
}

func (e *ConeEngine) OnFingerDown(math.Vec2) { e.scale = e.cfg.PressedScale }
func (e *ConeEngine) OnFingerUp(math.Vec2)   { e.scale = e.cfg.ReleasedScale }
func (e *ConeEngine) OnFingerMove(_, _ math.Vec2) {}

// ModelView places the cone in front of the camera with the animator's
// rotation and the touch scale applied.
func (e *ConeEngine) ModelView() math.Mat4 {
	return math.Translate(0, 0, -coneDistance).
		Mul(e.animator.Current().ToMat4()).
		Mul(math.UniformScale(e.scale))
}

// Rotation returns the cone's current orientation.
func (e *ConeEngine) Rotation() math.Quat { return e.animator.Current() }

func (e *ConeEngine) Framebuffer() *framebuffer.Framebuffer { return e.res.fb }

func (e *ConeEngine) Close() {
	if e.res.ready() {
		logger.Info("closing engine", zap.String("variant", string(Cone)))
	}
	e.res.release()
}
