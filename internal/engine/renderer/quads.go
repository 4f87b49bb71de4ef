package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/wavebg/internal/engine/shader"
	"github.com/Faultbox/wavebg/internal/overlay"
	"github.com/Faultbox/wavebg/pkg/math"
)

// Quads batches solid colour rectangles in screen space, origin top-left.
// It implements overlay.Painter.
type Quads struct {
	width, height int

	program *shader.Program
	vao     uint32
	vbo     uint32

	vertices []float32
}

func newQuads() (*Quads, error) {
	q := &Quads{
		vertices: make([]float32, 0, 4096),
	}

	var err error
	q.program, err = shader.Compile("overlay", quadVertexShader, quadFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("quad shader: %w", err)
	}

	gl.GenVertexArrays(1, &q.vao)
	gl.GenBuffers(1, &q.vbo)

	gl.BindVertexArray(q.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, q.vbo)

	// Vertex format: x, y, r, g, b, a (6 floats)
	stride := int32(6 * 4)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 4, gl.FLOAT, false, stride, 2*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	return q, nil
}

func (q *Quads) close() {
	if q.vao != 0 {
		gl.DeleteVertexArrays(1, &q.vao)
	}
	if q.vbo != 0 {
		gl.DeleteBuffers(1, &q.vbo)
	}
	if q.program != nil {
		q.program.Delete()
	}
}

func (q *Quads) begin(width, height int) {
	q.width = width
	q.height = height
	q.vertices = q.vertices[:0]
}

// FillRect queues a filled rectangle.
func (q *Quads) FillRect(x, y, w, h float32, c overlay.Color) {
	q.vertices = appendQuad(q.vertices, x, y, w, h, c)
}

// appendQuad appends two triangles covering the rectangle.
func appendQuad(dst []float32, x, y, w, h float32, c overlay.Color) []float32 {
	return append(dst,
		x, y, c.R, c.G, c.B, c.A,
		x+w, y, c.R, c.G, c.B, c.A,
		x+w, y+h, c.R, c.G, c.B, c.A,

		x, y, c.R, c.G, c.B, c.A,
		x+w, y+h, c.R, c.G, c.B, c.A,
		x, y+h, c.R, c.G, c.B, c.A,
	)
}

func (q *Quads) end() {
	if len(q.vertices) == 0 {
		return
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	proj := math.Ortho(0, float32(q.width), float32(q.height), 0, -1, 1)

	q.program.Use()
	gl.UniformMatrix4fv(q.program.Uniform("uProjection"), 1, false, proj.Ptr())

	gl.BindVertexArray(q.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, q.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(q.vertices)*4, unsafe.Pointer(&q.vertices[0]), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(q.vertices)/6))

	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

const quadVertexShader = `
#version 410 core

layout (location = 0) in vec2 aPos;
layout (location = 1) in vec4 aColor;

uniform mat4 uProjection;

out vec4 vColor;

void main() {
	gl_Position = uProjection * vec4(aPos, 0.0, 1.0);
	vColor = aColor;
}
`

const quadFragmentShader = `
#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
	FragColor = vColor;
}
`
