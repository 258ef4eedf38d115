// Package glestest provides a recording gles.Context for tests that run
// without a GPU.
package glestest

import (
	"fmt"

	"golang.org/x/mobile/gl"

	"github.com/Faultbox/hellocone/internal/engine/gles"
)

// Call is one recorded GL command.
type Call struct {
	Name string
	Args []any
}

func (c Call) String() string {
	return fmt.Sprintf("%s%v", c.Name, c.Args)
}

// Draw is one recorded DrawElements call with the state it was issued under.
type Draw struct {
	Mode        gl.Enum
	Count       int
	Type        gl.Enum
	Offset      int
	Program     gl.Program
	ArrayBuffer gl.Buffer
	IndexBuffer gl.Buffer
	Framebuffer gl.Framebuffer
	// ModelView is the last matrix uploaded to "modelView" before the draw.
	ModelView []float32
}

// Recorder implements gles.Context by recording every command.
// Handles are allocated from a single counter starting at 1.
type Recorder struct {
	// CompileErrors maps a shader stage (gl.VERTEX_SHADER, gl.FRAGMENT_SHADER)
	// to the info log a failing compile reports.
	CompileErrors map[gl.Enum]string
	// LinkError, when set, makes LinkProgram fail with this log.
	LinkError string
	// FramebufferStatus is returned by CheckFramebufferStatus.
	// The zero value means gl.FRAMEBUFFER_COMPLETE.
	FramebufferStatus gl.Enum
	// PixelFill is written to every byte requested by ReadPixels.
	PixelFill byte

	calls   []Call
	draws   []Draw
	handles uint32

	shaderTypes map[uint32]gl.Enum
	sources     map[uint32]string
	attribs     map[string]uint
	uniforms    map[string]int32
	uniformData map[string][]float32
	buffers     map[uint32][]byte
	bound       map[gl.Enum]uint32
	enabled     map[gl.Enum]bool
	program     gl.Program
	framebuffer gl.Framebuffer
	clearColor  [4]float32
	viewport    [4]int
	deleted     int
}

// New returns an empty recorder.
func New() *Recorder {
	return &Recorder{
		shaderTypes: make(map[uint32]gl.Enum),
		sources:     make(map[uint32]string),
		attribs:     make(map[string]uint),
		uniforms:    make(map[string]int32),
		uniformData: make(map[string][]float32),
		buffers:     make(map[uint32][]byte),
		bound:       make(map[gl.Enum]uint32),
		enabled:     make(map[gl.Enum]bool),
	}
}

func (r *Recorder) record(name string, args ...any) {
	r.calls = append(r.calls, Call{Name: name, Args: args})
}

func (r *Recorder) next() uint32 {
	r.handles++
	return r.handles
}

// Calls returns every recorded command in order.
func (r *Recorder) Calls() []Call { return r.calls }

// Count returns how many times the named command was issued.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, c := range r.calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Draws returns every recorded DrawElements call.
func (r *Recorder) Draws() []Draw { return r.draws }

// Reset forgets recorded calls and draws but keeps GL objects and state.
func (r *Recorder) Reset() {
	r.calls = nil
	r.draws = nil
}

// UniformValue returns the last matrix uploaded to the named uniform.
func (r *Recorder) UniformValue(name string) []float32 { return r.uniformData[name] }

// BufferContents returns the bytes last uploaded to buffer b.
func (r *Recorder) BufferContents(b gl.Buffer) []byte { return r.buffers[b.Value] }

// Source returns the source attached to shader s.
func (r *Recorder) Source(s gl.Shader) string { return r.sources[s.Value] }

// ClearColorValue returns the last clear color.
func (r *Recorder) ClearColorValue() [4]float32 { return r.clearColor }

// ViewportValue returns the last viewport as x, y, width, height.
func (r *Recorder) ViewportValue() [4]int { return r.viewport }

// IsEnabled reports whether capability c is enabled.
func (r *Recorder) IsEnabled(c gl.Enum) bool { return r.enabled[c] }

// CurrentProgram returns the program in use.
func (r *Recorder) CurrentProgram() gl.Program { return r.program }

// Deleted returns how many objects were deleted.
func (r *Recorder) Deleted() int { return r.deleted }

func (r *Recorder) CreateBuffer() gl.Buffer {
	b := gl.Buffer{Value: r.next()}
	r.record("CreateBuffer", b)
	return b
}

func (r *Recorder) BindBuffer(target gl.Enum, b gl.Buffer) {
	r.bound[target] = b.Value
	r.record("BindBuffer", target, b)
}

func (r *Recorder) BufferData(target gl.Enum, src []byte, usage gl.Enum) {
	data := make([]byte, len(src))
	copy(data, src)
	r.buffers[r.bound[target]] = data
	r.record("BufferData", target, len(src), usage)
}

func (r *Recorder) DeleteBuffer(v gl.Buffer) {
	r.deleted++
	r.record("DeleteBuffer", v)
}

func (r *Recorder) CreateFramebuffer() gl.Framebuffer {
	fb := gl.Framebuffer{Value: r.next()}
	r.record("CreateFramebuffer", fb)
	return fb
}

func (r *Recorder) BindFramebuffer(target gl.Enum, fb gl.Framebuffer) {
	if target == gl.FRAMEBUFFER || target == gl.DRAW_FRAMEBUFFER {
		r.framebuffer = fb
	}
	r.record("BindFramebuffer", target, fb)
}

func (r *Recorder) DeleteFramebuffer(v gl.Framebuffer) {
	r.deleted++
	r.record("DeleteFramebuffer", v)
}

func (r *Recorder) CreateRenderbuffer() gl.Renderbuffer {
	rb := gl.Renderbuffer{Value: r.next()}
	r.record("CreateRenderbuffer", rb)
	return rb
}

func (r *Recorder) BindRenderbuffer(target gl.Enum, rb gl.Renderbuffer) {
	r.record("BindRenderbuffer", target, rb)
}

func (r *Recorder) RenderbufferStorage(target, internalFormat gl.Enum, width, height int) {
	r.record("RenderbufferStorage", target, internalFormat, width, height)
}

func (r *Recorder) DeleteRenderbuffer(v gl.Renderbuffer) {
	r.deleted++
	r.record("DeleteRenderbuffer", v)
}

func (r *Recorder) FramebufferRenderbuffer(target, attachment, rbTarget gl.Enum, rb gl.Renderbuffer) {
	r.record("FramebufferRenderbuffer", target, attachment, rbTarget, rb)
}

func (r *Recorder) CheckFramebufferStatus(target gl.Enum) gl.Enum {
	r.record("CheckFramebufferStatus", target)
	if r.FramebufferStatus == 0 {
		return gl.FRAMEBUFFER_COMPLETE
	}
	return r.FramebufferStatus
}

func (r *Recorder) BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int, mask uint, filter gl.Enum) {
	r.record("BlitFramebuffer", srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1, mask, filter)
}

func (r *Recorder) ReadPixels(dst []byte, x, y, width, height int, format, ty gl.Enum) {
	for i := range dst {
		dst[i] = r.PixelFill
	}
	r.record("ReadPixels", x, y, width, height, format, ty)
}

func (r *Recorder) CreateShader(ty gl.Enum) gl.Shader {
	s := gl.Shader{Value: r.next()}
	r.shaderTypes[s.Value] = ty
	r.record("CreateShader", ty)
	return s
}

func (r *Recorder) ShaderSource(s gl.Shader, src string) {
	r.sources[s.Value] = src
	r.record("ShaderSource", s)
}

func (r *Recorder) CompileShader(s gl.Shader) {
	r.record("CompileShader", s)
}

func (r *Recorder) GetShaderi(s gl.Shader, pname gl.Enum) int {
	if pname == gl.COMPILE_STATUS {
		if _, failed := r.CompileErrors[r.shaderTypes[s.Value]]; failed {
			return gl.FALSE
		}
		return gl.TRUE
	}
	return 0
}

func (r *Recorder) GetShaderInfoLog(s gl.Shader) string {
	return r.CompileErrors[r.shaderTypes[s.Value]]
}

func (r *Recorder) DeleteShader(s gl.Shader) {
	r.deleted++
	r.record("DeleteShader", s)
}

func (r *Recorder) CreateProgram() gl.Program {
	p := gl.Program{Init: true, Value: r.next()}
	r.record("CreateProgram", p)
	return p
}

func (r *Recorder) AttachShader(p gl.Program, s gl.Shader) {
	r.record("AttachShader", p, s)
}

func (r *Recorder) LinkProgram(p gl.Program) {
	r.record("LinkProgram", p)
}

func (r *Recorder) GetProgrami(p gl.Program, pname gl.Enum) int {
	if pname == gl.LINK_STATUS {
		if r.LinkError != "" {
			return gl.FALSE
		}
		return gl.TRUE
	}
	return 0
}

func (r *Recorder) GetProgramInfoLog(p gl.Program) string {
	return r.LinkError
}

func (r *Recorder) UseProgram(p gl.Program) {
	r.program = p
	r.record("UseProgram", p)
}

func (r *Recorder) DeleteProgram(p gl.Program) {
	r.deleted++
	r.record("DeleteProgram", p)
}

func (r *Recorder) GetAttribLocation(p gl.Program, name string) gl.Attrib {
	loc, ok := r.attribs[name]
	if !ok {
		loc = uint(len(r.attribs))
		r.attribs[name] = loc
	}
	r.record("GetAttribLocation", p, name)
	return gl.Attrib{Value: loc}
}

func (r *Recorder) GetUniformLocation(p gl.Program, name string) gl.Uniform {
	loc, ok := r.uniforms[name]
	if !ok {
		loc = int32(len(r.uniforms))
		r.uniforms[name] = loc
	}
	r.record("GetUniformLocation", p, name)
	return gl.Uniform{Value: loc}
}

func (r *Recorder) UniformMatrix4fv(dst gl.Uniform, src []float32) {
	data := make([]float32, len(src))
	copy(data, src)
	for name, loc := range r.uniforms {
		if loc == dst.Value {
			r.uniformData[name] = data
		}
	}
	r.record("UniformMatrix4fv", dst, len(src))
}

func (r *Recorder) EnableVertexAttribArray(a gl.Attrib) {
	r.record("EnableVertexAttribArray", a)
}

func (r *Recorder) DisableVertexAttribArray(a gl.Attrib) {
	r.record("DisableVertexAttribArray", a)
}

func (r *Recorder) VertexAttribPointer(dst gl.Attrib, size int, ty gl.Enum, normalized bool, stride, offset int) {
	r.record("VertexAttribPointer", dst, size, ty, normalized, stride, offset)
}

func (r *Recorder) DrawElements(mode gl.Enum, count int, ty gl.Enum, offset int) {
	var modelView []float32
	if mv := r.uniformData["modelView"]; mv != nil {
		modelView = append([]float32(nil), mv...)
	}
	r.draws = append(r.draws, Draw{
		Mode:        mode,
		Count:       count,
		Type:        ty,
		Offset:      offset,
		Program:     r.program,
		ArrayBuffer: gl.Buffer{Value: r.bound[gl.ARRAY_BUFFER]},
		IndexBuffer: gl.Buffer{Value: r.bound[gl.ELEMENT_ARRAY_BUFFER]},
		Framebuffer: r.framebuffer,
		ModelView:   modelView,
	})
	r.record("DrawElements", mode, count, ty, offset)
}

func (r *Recorder) Viewport(x, y, width, height int) {
	r.viewport = [4]int{x, y, width, height}
	r.record("Viewport", x, y, width, height)
}

func (r *Recorder) ClearColor(red, green, blue, alpha float32) {
	r.clearColor = [4]float32{red, green, blue, alpha}
	r.record("ClearColor", red, green, blue, alpha)
}

func (r *Recorder) Clear(mask gl.Enum) {
	r.record("Clear", mask)
}

func (r *Recorder) Enable(c gl.Enum) {
	r.enabled[c] = true
	r.record("Enable", c)
}

func (r *Recorder) Disable(c gl.Enum) {
	r.enabled[c] = false
	r.record("Disable", c)
}

var _ gles.Context = (*Recorder)(nil)
