// Package gles defines the OpenGL ES surface the renderer draws through.
//
// Context is the subset of golang.org/x/mobile/gl.Context3 used by the engine,
// so an x/mobile context satisfies it directly. Desktop hosts use the adapter
// in desktop.go, which forwards to github.com/go-gl/gl.
package gles

import "golang.org/x/mobile/gl"

// Context issues GL commands. All calls must happen on the thread that owns
// the GL context.
type Context interface {
	// Buffers
	CreateBuffer() gl.Buffer
	BindBuffer(target gl.Enum, b gl.Buffer)
	BufferData(target gl.Enum, src []byte, usage gl.Enum)
	DeleteBuffer(v gl.Buffer)

	// Framebuffers and renderbuffers
	CreateFramebuffer() gl.Framebuffer
	BindFramebuffer(target gl.Enum, fb gl.Framebuffer)
	DeleteFramebuffer(v gl.Framebuffer)
	CreateRenderbuffer() gl.Renderbuffer
	BindRenderbuffer(target gl.Enum, rb gl.Renderbuffer)
	RenderbufferStorage(target, internalFormat gl.Enum, width, height int)
	DeleteRenderbuffer(v gl.Renderbuffer)
	FramebufferRenderbuffer(target, attachment, rbTarget gl.Enum, rb gl.Renderbuffer)
	CheckFramebufferStatus(target gl.Enum) gl.Enum
	BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int, mask uint, filter gl.Enum)
	ReadPixels(dst []byte, x, y, width, height int, format, ty gl.Enum)

	// Shaders and programs
	CreateShader(ty gl.Enum) gl.Shader
	ShaderSource(s gl.Shader, src string)
	CompileShader(s gl.Shader)
	GetShaderi(s gl.Shader, pname gl.Enum) int
	GetShaderInfoLog(s gl.Shader) string
	DeleteShader(s gl.Shader)
	CreateProgram() gl.Program
	AttachShader(p gl.Program, s gl.Shader)
	LinkProgram(p gl.Program)
	GetProgrami(p gl.Program, pname gl.Enum) int
	GetProgramInfoLog(p gl.Program) string
	UseProgram(p gl.Program)
	DeleteProgram(p gl.Program)
	GetAttribLocation(p gl.Program, name string) gl.Attrib
	GetUniformLocation(p gl.Program, name string) gl.Uniform
	UniformMatrix4fv(dst gl.Uniform, src []float32)

	// Vertex attributes and drawing
	EnableVertexAttribArray(a gl.Attrib)
	DisableVertexAttribArray(a gl.Attrib)
	VertexAttribPointer(dst gl.Attrib, size int, ty gl.Enum, normalized bool, stride, offset int)
	DrawElements(mode gl.Enum, count int, ty gl.Enum, offset int)

	// State
	Viewport(x, y, width, height int)
	ClearColor(red, green, blue, alpha float32)
	Clear(mask gl.Enum)
	Enable(c gl.Enum)
	Disable(c gl.Enum)
}

// FromMobile adapts an x/mobile context. It fails when the context does not
// expose the GLES 3 entry points (BlitFramebuffer).
func FromMobile(ctx gl.Context) (Context, bool) {
	c, ok := ctx.(Context)
	return c, ok
}
