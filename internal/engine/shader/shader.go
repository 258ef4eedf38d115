// Package shader compiles and links GLSL programs through a gles.Context.
package shader

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/mobile/gl"

	"github.com/Faultbox/hellocone/internal/engine/gles"
	"github.com/Faultbox/hellocone/internal/logger"
)

// Slot names shared by every shader the renderer builds.
const (
	AttribPosition    = "position"
	AttribColor       = "color"
	UniformProjection = "projection"
	UniformModelView  = "modelView"
)

// ErrUnrecoverable marks initialization failures with no runtime fallback.
// Hosts typically log the error and abort.
var ErrUnrecoverable = errors.New("unrecoverable initialization error")

// InitError reports a failed compile or link together with the driver's log.
type InitError struct {
	// Stage is "vertex", "fragment" or "link".
	Stage string
	Log   string
}

func (e *InitError) Error() string {
	return fmt.Sprintf("%s shader: %s", e.Stage, strings.TrimSpace(e.Log))
}

// Unwrap makes errors.Is(err, ErrUnrecoverable) hold.
func (e *InitError) Unwrap() error {
	return ErrUnrecoverable
}

// Sources is a vertex/fragment source pair.
type Sources struct {
	Vertex   string
	Fragment string
}

// Manager builds programs from a fixed source pair.
type Manager struct {
	ctx     gles.Context
	sources Sources
}

// NewManager creates a manager for the given sources.
func NewManager(ctx gles.Context, sources Sources) *Manager {
	return &Manager{ctx: ctx, sources: sources}
}

// Build compiles and links the configured sources.
func (m *Manager) Build() (*Program, error) {
	return m.BuildProgram(m.sources.Vertex, m.sources.Fragment)
}

// BuildShader compiles a single stage (gl.VERTEX_SHADER or gl.FRAGMENT_SHADER).
// On failure the shader object is deleted and an *InitError is returned.
func (m *Manager) BuildShader(source string, stage gl.Enum) (gl.Shader, error) {
	s := m.ctx.CreateShader(stage)
	m.ctx.ShaderSource(s, source)
	m.ctx.CompileShader(s)

	if m.ctx.GetShaderi(s, gl.COMPILE_STATUS) == gl.FALSE {
		log := m.ctx.GetShaderInfoLog(s)
		m.ctx.DeleteShader(s)
		return gl.Shader{}, &InitError{Stage: stageName(stage), Log: log}
	}

	return s, nil
}

// BuildProgram compiles both stages and links them. The stage objects are
// released once the program is linked.
func (m *Manager) BuildProgram(vertexSrc, fragmentSrc string) (*Program, error) {
	vert, err := m.BuildShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return nil, err
	}
	defer m.ctx.DeleteShader(vert)

	frag, err := m.BuildShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return nil, err
	}
	defer m.ctx.DeleteShader(frag)

	handle := m.ctx.CreateProgram()
	m.ctx.AttachShader(handle, vert)
	m.ctx.AttachShader(handle, frag)
	m.ctx.LinkProgram(handle)

	if m.ctx.GetProgrami(handle, gl.LINK_STATUS) == gl.FALSE {
		log := m.ctx.GetProgramInfoLog(handle)
		m.ctx.DeleteProgram(handle)
		return nil, &InitError{Stage: "link", Log: log}
	}

	p := &Program{ctx: m.ctx, handle: handle}
	p.Position = p.Attrib(AttribPosition)
	p.Color = p.Attrib(AttribColor)
	p.Projection = p.Uniform(UniformProjection)
	p.ModelView = p.Uniform(UniformModelView)

	logger.Debug("shader program created", zap.Uint32("program", handle.Value))
	return p, nil
}

func stageName(stage gl.Enum) string {
	switch stage {
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	default:
		return fmt.Sprintf("stage 0x%x", uint32(stage))
	}
}

// Program is a linked program with its fixed slots resolved.
type Program struct {
	ctx    gles.Context
	handle gl.Program

	Position   gl.Attrib
	Color      gl.Attrib
	Projection gl.Uniform
	ModelView  gl.Uniform
}

// Handle returns the GL program object.
func (p *Program) Handle() gl.Program {
	return p.handle
}

// Use makes the program current.
func (p *Program) Use() {
	p.ctx.UseProgram(p.handle)
}

// Attrib looks up a vertex attribute slot by name.
func (p *Program) Attrib(name string) gl.Attrib {
	return p.ctx.GetAttribLocation(p.handle, name)
}

// Uniform looks up a uniform slot by name.
func (p *Program) Uniform(name string) gl.Uniform {
	return p.ctx.GetUniformLocation(p.handle, name)
}

// Delete releases the program object.
func (p *Program) Delete() {
	if p.handle.Init {
		p.ctx.DeleteProgram(p.handle)
		p.handle = gl.Program{}
	}
}
