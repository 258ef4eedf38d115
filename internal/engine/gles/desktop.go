package gles

import (
	"fmt"
	"strings"

	gogl "github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/mobile/gl"
)

// Desktop implements Context on top of a desktop OpenGL 4.1 core context.
// The core profile needs a bound vertex array object before any attribute
// call, so one VAO is created and kept bound for the context's lifetime.
type Desktop struct {
	vao uint32
}

// NewDesktop loads the GL entry points for the current context.
// IMPORTANT: Must be called AFTER the OpenGL context is made current!
func NewDesktop() (*Desktop, error) {
	if err := gogl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	d := &Desktop{}
	gogl.GenVertexArrays(1, &d.vao)
	gogl.BindVertexArray(d.vao)
	return d, nil
}

// Version returns the GL version and renderer strings.
func (d *Desktop) Version() (version, renderer string) {
	return gogl.GoStr(gogl.GetString(gogl.VERSION)), gogl.GoStr(gogl.GetString(gogl.RENDERER))
}

// Close deletes the shared vertex array object.
func (d *Desktop) Close() {
	if d.vao != 0 {
		gogl.DeleteVertexArrays(1, &d.vao)
		d.vao = 0
	}
}

func (d *Desktop) CreateBuffer() gl.Buffer {
	var b uint32
	gogl.GenBuffers(1, &b)
	return gl.Buffer{Value: b}
}

func (d *Desktop) BindBuffer(target gl.Enum, b gl.Buffer) {
	gogl.BindBuffer(uint32(target), b.Value)
}

func (d *Desktop) BufferData(target gl.Enum, src []byte, usage gl.Enum) {
	if len(src) == 0 {
		gogl.BufferData(uint32(target), 0, nil, uint32(usage))
		return
	}
	gogl.BufferData(uint32(target), len(src), gogl.Ptr(src), uint32(usage))
}

func (d *Desktop) DeleteBuffer(v gl.Buffer) {
	gogl.DeleteBuffers(1, &v.Value)
}

func (d *Desktop) CreateFramebuffer() gl.Framebuffer {
	var fb uint32
	gogl.GenFramebuffers(1, &fb)
	return gl.Framebuffer{Value: fb}
}

func (d *Desktop) BindFramebuffer(target gl.Enum, fb gl.Framebuffer) {
	gogl.BindFramebuffer(uint32(target), fb.Value)
}

func (d *Desktop) DeleteFramebuffer(v gl.Framebuffer) {
	gogl.DeleteFramebuffers(1, &v.Value)
}

func (d *Desktop) CreateRenderbuffer() gl.Renderbuffer {
	var rb uint32
	gogl.GenRenderbuffers(1, &rb)
	return gl.Renderbuffer{Value: rb}
}

func (d *Desktop) BindRenderbuffer(target gl.Enum, rb gl.Renderbuffer) {
	gogl.BindRenderbuffer(uint32(target), rb.Value)
}

func (d *Desktop) RenderbufferStorage(target, internalFormat gl.Enum, width, height int) {
	gogl.RenderbufferStorage(uint32(target), uint32(internalFormat), int32(width), int32(height))
}

func (d *Desktop) DeleteRenderbuffer(v gl.Renderbuffer) {
	gogl.DeleteRenderbuffers(1, &v.Value)
}

func (d *Desktop) FramebufferRenderbuffer(target, attachment, rbTarget gl.Enum, rb gl.Renderbuffer) {
	gogl.FramebufferRenderbuffer(uint32(target), uint32(attachment), uint32(rbTarget), rb.Value)
}

func (d *Desktop) CheckFramebufferStatus(target gl.Enum) gl.Enum {
	return gl.Enum(gogl.CheckFramebufferStatus(uint32(target)))
}

func (d *Desktop) BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int, mask uint, filter gl.Enum) {
	gogl.BlitFramebuffer(
		int32(srcX0), int32(srcY0), int32(srcX1), int32(srcY1),
		int32(dstX0), int32(dstY0), int32(dstX1), int32(dstY1),
		uint32(mask), uint32(filter),
	)
}

func (d *Desktop) ReadPixels(dst []byte, x, y, width, height int, format, ty gl.Enum) {
	gogl.ReadPixels(int32(x), int32(y), int32(width), int32(height), uint32(format), uint32(ty), gogl.Ptr(dst))
}

func (d *Desktop) CreateShader(ty gl.Enum) gl.Shader {
	return gl.Shader{Value: gogl.CreateShader(uint32(ty))}
}

func (d *Desktop) ShaderSource(s gl.Shader, src string) {
	csource, free := gogl.Strs(src + "\x00")
	gogl.ShaderSource(s.Value, 1, csource, nil)
	free()
}

func (d *Desktop) CompileShader(s gl.Shader) {
	gogl.CompileShader(s.Value)
}

func (d *Desktop) GetShaderi(s gl.Shader, pname gl.Enum) int {
	var v int32
	gogl.GetShaderiv(s.Value, uint32(pname), &v)
	return int(v)
}

func (d *Desktop) GetShaderInfoLog(s gl.Shader) string {
	var logLen int32
	gogl.GetShaderiv(s.Value, gogl.INFO_LOG_LENGTH, &logLen)
	if logLen == 0 {
		return ""
	}
	log := make([]byte, logLen)
	gogl.GetShaderInfoLog(s.Value, logLen, nil, &log[0])
	return strings.TrimRight(string(log), "\x00")
}

func (d *Desktop) DeleteShader(s gl.Shader) {
	gogl.DeleteShader(s.Value)
}

func (d *Desktop) CreateProgram() gl.Program {
	return gl.Program{Init: true, Value: gogl.CreateProgram()}
}

func (d *Desktop) AttachShader(p gl.Program, s gl.Shader) {
	gogl.AttachShader(p.Value, s.Value)
}

func (d *Desktop) LinkProgram(p gl.Program) {
	gogl.LinkProgram(p.Value)
}

func (d *Desktop) GetProgrami(p gl.Program, pname gl.Enum) int {
	var v int32
	gogl.GetProgramiv(p.Value, uint32(pname), &v)
	return int(v)
}

func (d *Desktop) GetProgramInfoLog(p gl.Program) string {
	var logLen int32
	gogl.GetProgramiv(p.Value, gogl.INFO_LOG_LENGTH, &logLen)
	if logLen == 0 {
		return ""
	}
	log := make([]byte, logLen)
	gogl.GetProgramInfoLog(p.Value, logLen, nil, &log[0])
	return strings.TrimRight(string(log), "\x00")
}

func (d *Desktop) UseProgram(p gl.Program) {
	gogl.UseProgram(p.Value)
}

func (d *Desktop) DeleteProgram(p gl.Program) {
	gogl.DeleteProgram(p.Value)
}

func (d *Desktop) GetAttribLocation(p gl.Program, name string) gl.Attrib {
	return gl.Attrib{Value: uint(gogl.GetAttribLocation(p.Value, gogl.Str(name+"\x00")))}
}

func (d *Desktop) GetUniformLocation(p gl.Program, name string) gl.Uniform {
	return gl.Uniform{Value: gogl.GetUniformLocation(p.Value, gogl.Str(name+"\x00"))}
}

func (d *Desktop) UniformMatrix4fv(dst gl.Uniform, src []float32) {
	gogl.UniformMatrix4fv(dst.Value, int32(len(src)/16), false, &src[0])
}

func (d *Desktop) EnableVertexAttribArray(a gl.Attrib) {
	gogl.EnableVertexAttribArray(uint32(a.Value))
}

func (d *Desktop) DisableVertexAttribArray(a gl.Attrib) {
	gogl.DisableVertexAttribArray(uint32(a.Value))
}

func (d *Desktop) VertexAttribPointer(dst gl.Attrib, size int, ty gl.Enum, normalized bool, stride, offset int) {
	gogl.VertexAttribPointer(uint32(dst.Value), int32(size), uint32(ty), normalized, int32(stride), gogl.PtrOffset(offset))
}

func (d *Desktop) DrawElements(mode gl.Enum, count int, ty gl.Enum, offset int) {
	gogl.DrawElements(uint32(mode), int32(count), uint32(ty), gogl.PtrOffset(offset))
}

func (d *Desktop) Viewport(x, y, width, height int) {
	gogl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (d *Desktop) ClearColor(red, green, blue, alpha float32) {
	gogl.ClearColor(red, green, blue, alpha)
}

func (d *Desktop) Clear(mask gl.Enum) {
	gogl.Clear(uint32(mask))
}

func (d *Desktop) Enable(c gl.Enum) {
	gogl.Enable(uint32(c))
}

func (d *Desktop) Disable(c gl.Enum) {
	gogl.Disable(uint32(c))
}

var _ Context = (*Desktop)(nil)
