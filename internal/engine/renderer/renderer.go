// Package renderer draws the wave mesh and the page overlay with OpenGL.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/wavebg/internal/engine/camera"
	"github.com/Faultbox/wavebg/internal/engine/shader"
	"github.com/Faultbox/wavebg/internal/logger"
	"github.com/Faultbox/wavebg/internal/scene"
	"github.com/Faultbox/wavebg/internal/wave"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	PixelRatio float64
	Background [4]float32
}

// Renderer handles all OpenGL rendering. It implements scene.Surface.
type Renderer struct {
	config Config

	meshShader *shader.Program

	// GPU copy of the grid
	meshVAO   uint32
	meshVBO   uint32
	meshEBO   uint32
	grid      *wave.Grid
	uploaded  uint64
	indexMode uint32
	indices   int32

	quads *Quads
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	if cfg.PixelRatio <= 0 {
		cfg.PixelRatio = 1
	}
	r := &Renderer{
		config: cfg,
	}

	// Initialize OpenGL
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	bg := cfg.Background
	gl.ClearColor(bg[0], bg[1], bg[2], bg[3])
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.MULTISAMPLE)

	var err error
	r.meshShader, err = shader.Compile("mesh", meshVertexShader, meshFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create mesh shader: %w", err)
	}

	gl.GenVertexArrays(1, &r.meshVAO)
	gl.GenBuffers(1, &r.meshVBO)
	gl.GenBuffers(1, &r.meshEBO)

	r.quads, err = newQuads()
	if err != nil {
		return nil, fmt.Errorf("failed to create overlay batch: %w", err)
	}

	r.applyViewport()
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.quads != nil {
		r.quads.close()
	}
	if r.meshVAO != 0 {
		gl.DeleteVertexArrays(1, &r.meshVAO)
	}
	if r.meshVBO != 0 {
		gl.DeleteBuffers(1, &r.meshVBO)
	}
	if r.meshEBO != 0 {
		gl.DeleteBuffers(1, &r.meshEBO)
	}
	if r.meshShader != nil {
		r.meshShader.Delete()
	}
}

// SetSize handles window resize. Width and height are logical pixels.
func (r *Renderer) SetSize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	r.applyViewport()
}

// SetPixelRatio sets the drawable to window size ratio.
func (r *Renderer) SetPixelRatio(ratio float64) {
	if ratio <= 0 {
		ratio = 1
	}
	r.config.PixelRatio = ratio
	r.applyViewport()
}

// Size returns the logical size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

func (r *Renderer) applyViewport() {
	w, h := DrawableSize(r.config.Width, r.config.Height, r.config.PixelRatio)
	gl.Viewport(0, 0, int32(w), int32(h))
	logger.Debug("renderer resized",
		zap.Int("width", r.config.Width),
		zap.Int("height", r.config.Height),
		zap.Int("drawable_width", w),
		zap.Int("drawable_height", h),
	)
}

// DrawableSize converts a logical size to framebuffer pixels.
func DrawableSize(width, height int, ratio float64) (int, int) {
	if ratio <= 0 {
		ratio = 1
	}
	return int(float64(width)*ratio + 0.5), int(float64(height)*ratio + 0.5)
}

// Render clears the frame and draws mesh as seen by cam.
func (r *Renderer) Render(mesh *scene.Mesh, cam *camera.PerspectiveCamera) error {
	if mesh == nil || mesh.Grid == nil {
		return fmt.Errorf("render: no mesh")
	}

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.upload(mesh)

	if mesh.Material.Transparent {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	} else {
		gl.Disable(gl.BLEND)
	}

	mvp := cam.ViewProjection().Mul(mesh.Model)
	c := mesh.Material.Color
	alpha := float32(1)
	if mesh.Material.Transparent {
		alpha = mesh.Material.Opacity
	}

	r.meshShader.Use()
	gl.UniformMatrix4fv(r.meshShader.Uniform("uMVP"), 1, false, mvp.Ptr())
	gl.Uniform4f(r.meshShader.Uniform("uColor"), c.R, c.G, c.B, alpha)

	gl.BindVertexArray(r.meshVAO)
	gl.DrawElements(r.indexMode, r.indices, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
	gl.UseProgram(0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("render: GL error 0x%x", code)
	}
	return nil
}

// upload sends the index buffer once per grid and the positions whenever the
// grid version changed since the last upload.
func (r *Renderer) upload(mesh *scene.Mesh) {
	g := mesh.Grid
	gl.BindVertexArray(r.meshVAO)

	if g != r.grid {
		mode, idx := Primitive(mesh.Material, g)
		r.indexMode = mode
		r.indices = int32(len(idx))

		gl.BindBuffer(gl.ARRAY_BUFFER, r.meshVBO)
		gl.BufferData(gl.ARRAY_BUFFER, len(g.Positions)*4, unsafe.Pointer(&g.Positions[0]), gl.DYNAMIC_DRAW)
		gl.EnableVertexAttribArray(0)
		gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)

		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.meshEBO)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(idx)*4, unsafe.Pointer(&idx[0]), gl.STATIC_DRAW)

		r.grid = g
		r.uploaded = g.Version()
		logger.Debug("mesh uploaded",
			zap.Int("vertices", g.Count()),
			zap.Int32("indices", r.indices),
		)
	} else if v := g.Version(); v != r.uploaded {
		gl.BindBuffer(gl.ARRAY_BUFFER, r.meshVBO)
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(g.Positions)*4, unsafe.Pointer(&g.Positions[0]))
		r.uploaded = v
	}

	gl.BindVertexArray(0)
}

// ReadPixels reads the back buffer as RGBA rows, bottom row first.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := DrawableSize(r.config.Width, r.config.Height, r.config.PixelRatio)
	if w <= 0 || h <= 0 {
		return nil, 0, 0
	}
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels, w, h
}

// Primitive returns the draw mode and index list for a material.
func Primitive(m scene.Material, g *wave.Grid) (uint32, []uint32) {
	if m.Wireframe {
		return gl.LINES, g.Edges
	}
	return gl.TRIANGLES, g.Triangles
}

// Overlay returns the 2D batch for this frame. Draw into it after Render and
// call Flush before swapping buffers.
func (r *Renderer) Overlay() *Quads {
	r.quads.begin(r.config.Width, r.config.Height)
	return r.quads
}

// Flush draws everything queued on the overlay batch.
func (r *Renderer) Flush() {
	r.quads.end()
}

const meshVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;

uniform mat4 uMVP;

void main() {
	gl_Position = uMVP * vec4(aPos, 1.0);
}
`

const meshFragmentShader = `
#version 410 core

uniform vec4 uColor;

out vec4 FragColor;

void main() {
	FragColor = uColor;
}
`
