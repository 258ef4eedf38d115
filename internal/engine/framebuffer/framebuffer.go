// Package framebuffer provides the offscreen render target the engine draws into.
package framebuffer

import (
	"fmt"

	"golang.org/x/mobile/gl"

	"github.com/Faultbox/hellocone/internal/engine/gles"
)

// Framebuffer manages an offscreen render target backed by a color
// renderbuffer and an optional depth renderbuffer.
type Framebuffer struct {
	ctx    gles.Context
	fbo    gl.Framebuffer
	color  gl.Renderbuffer
	depth  gl.Renderbuffer
	width  int
	height int
}

// New creates a framebuffer of size width x height. The framebuffer is
// left bound on success.
func New(ctx gles.Context, width, height int, withDepth bool) (*Framebuffer, error) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	fb := &Framebuffer{
		ctx:    ctx,
		width:  width,
		height: height,
	}

	if err := fb.create(withDepth); err != nil {
		return nil, fmt.Errorf("creating framebuffer: %w", err)
	}

	return fb, nil
}

func (fb *Framebuffer) create(withDepth bool) error {
	ctx := fb.ctx

	fb.fbo = ctx.CreateFramebuffer()
	ctx.BindFramebuffer(gl.FRAMEBUFFER, fb.fbo)

	fb.color = ctx.CreateRenderbuffer()
	ctx.BindRenderbuffer(gl.RENDERBUFFER, fb.color)
	ctx.RenderbufferStorage(gl.RENDERBUFFER, gl.RGBA8, fb.width, fb.height)
	ctx.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.RENDERBUFFER, fb.color)

	if withDepth {
		fb.depth = ctx.CreateRenderbuffer()
		ctx.BindRenderbuffer(gl.RENDERBUFFER, fb.depth)
		ctx.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, fb.width, fb.height)
		ctx.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, fb.depth)
	}

	// Color renderbuffer stays bound for hosts that present it directly
	ctx.BindRenderbuffer(gl.RENDERBUFFER, fb.color)

	status := ctx.CheckFramebufferStatus(gl.FRAMEBUFFER)
	if status != gl.FRAMEBUFFER_COMPLETE {
		fb.Destroy()
		return fmt.Errorf("framebuffer incomplete: 0x%x", uint32(status))
	}

	return nil
}

// Bind makes this framebuffer the current render target.
func (fb *Framebuffer) Bind() {
	fb.ctx.BindFramebuffer(gl.FRAMEBUFFER, fb.fbo)
}

// HasDepth reports whether a depth attachment was created.
func (fb *Framebuffer) HasDepth() bool {
	return fb.depth.Value != 0
}

// Clear clears color (and depth, when attached) with the given color.
func (fb *Framebuffer) Clear(r, g, b, a float32) {
	fb.ctx.ClearColor(r, g, b, a)
	mask := gl.Enum(gl.COLOR_BUFFER_BIT)
	if fb.HasDepth() {
		mask |= gl.DEPTH_BUFFER_BIT
	}
	fb.ctx.Clear(mask)
}

// BlitToDefault copies the color attachment to the window's framebuffer,
// stretched to dstWidth x dstHeight, then rebinds this framebuffer.
func (fb *Framebuffer) BlitToDefault(dstWidth, dstHeight int) {
	ctx := fb.ctx
	ctx.BindFramebuffer(gl.READ_FRAMEBUFFER, fb.fbo)
	ctx.BindFramebuffer(gl.DRAW_FRAMEBUFFER, gl.Framebuffer{})
	ctx.BlitFramebuffer(
		0, 0, fb.width, fb.height,
		0, 0, dstWidth, dstHeight,
		gl.COLOR_BUFFER_BIT, gl.LINEAR,
	)
	ctx.BindFramebuffer(gl.FRAMEBUFFER, fb.fbo)
}

// ReadPixels reads the color attachment as RGBA, bottom row first.
func (fb *Framebuffer) ReadPixels() []byte {
	pixels := make([]byte, fb.width*fb.height*4)

	fb.ctx.BindFramebuffer(gl.FRAMEBUFFER, fb.fbo)
	fb.ctx.ReadPixels(pixels, 0, 0, fb.width, fb.height, gl.RGBA, gl.UNSIGNED_BYTE)

	return pixels
}

// Handle returns the underlying framebuffer object.
func (fb *Framebuffer) Handle() gl.Framebuffer {
	return fb.fbo
}

// Size returns the framebuffer dimensions.
func (fb *Framebuffer) Size() (width, height int) {
	return fb.width, fb.height
}

// Destroy releases all GL resources. It is safe to call more than once.
func (fb *Framebuffer) Destroy() {
	if fb.fbo.Value != 0 {
		fb.ctx.DeleteFramebuffer(fb.fbo)
		fb.fbo = gl.Framebuffer{}
	}
	if fb.color.Value != 0 {
		fb.ctx.DeleteRenderbuffer(fb.color)
		fb.color = gl.Renderbuffer{}
	}
	if fb.depth.Value != 0 {
		fb.ctx.DeleteRenderbuffer(fb.depth)
		fb.depth = gl.Renderbuffer{}
	}
}
