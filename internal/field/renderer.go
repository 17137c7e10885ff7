package field

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

type Renderer struct {
	lineProg uint32
	lineVAO  uint32
	lineVBO  uint32

	uProjection int32
	uLineColor  int32

	maxFloats int // streaming VBO capacity in float32s
}

// NewRenderer builds the line program and a streaming VBO sized for
// maxParticles segments. Any GL failure here is fatal to the caller.
func NewRenderer(maxParticles int) (*Renderer, error) {
	prog, err := linkProgram(lineVertSrc, lineFragSrc)
	if err != nil {
		return nil, fmt.Errorf("line program: %w", err)
	}

	r := &Renderer{
		lineProg:  prog,
		maxFloats: maxParticles * 6,
	}

	// Line VAO/VBO: streaming buffer, one vec3 per vertex, re-uploaded
	// in full every frame.
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, r.maxFloats*4, nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, glOffset(0))
	r.lineVAO = vao
	r.lineVBO = vbo

	gl.UseProgram(prog)
	r.uProjection = gl.GetUniformLocation(prog, gl.Str("uProjection\x00"))
	r.uLineColor = gl.GetUniformLocation(prog, gl.Str("uLineColor\x00"))
	gl.Uniform4f(r.uLineColor, 1, 1, 1, 1)

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	if r.lineVBO != 0 {
		gl.DeleteBuffers(1, &r.lineVBO)
	}
	if r.lineVAO != 0 {
		gl.DeleteVertexArrays(1, &r.lineVAO)
	}
	if r.lineProg != 0 {
		gl.DeleteProgram(r.lineProg)
	}
}

// BeginFrame clears, binds the line program and refreshes the
// projection for the current framebuffer size.
func (r *Renderer) BeginFrame(fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(r.lineProg)
	gl.BindVertexArray(r.lineVAO)

	proj := fieldProjection(fbW, fbH)
	gl.UniformMatrix4fv(r.uProjection, 1, false, &proj[0])
}

func (r *Renderer) SetLineColor(red, green, blue, alpha float32) {
	gl.Uniform4f(r.uLineColor, red, green, blue, alpha)
}

// DrawSegments uploads the segment buffer and draws it as one line
// batch. buf layout: [x0 y0 z0 x1 y1 z1] per particle.
func (r *Renderer) DrawSegments(buf []float32) {
	if len(buf) == 0 {
		return
	}
	n := len(buf)
	if n > r.maxFloats {
		n = r.maxFloats
	}
	n -= n % 6 // whole segments only
	if n == 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, r.lineVBO)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, n*4, gl.Ptr(&buf[0]))
	gl.DrawArrays(gl.LINES, 0, int32(n/3))
}

// fieldProjection maps the unit field square onto the framebuffer,
// preserving aspect by widening the shorter axis.
func fieldProjection(fbW, fbH int) mgl32.Mat4 {
	if fbW <= 0 || fbH <= 0 {
		return mgl32.Ident4()
	}
	aspect := float32(fbW) / float32(fbH)
	if aspect >= 1 {
		return mgl32.Ortho2D(-aspect, aspect, -1, 1)
	}
	return mgl32.Ortho2D(-1, 1, -1/aspect, 1/aspect)
}
