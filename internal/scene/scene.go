// Package scene builds the wave background scene and drives its animation.
package scene

import (
	"errors"
	"fmt"
	gomath "math"

	"go.uber.org/zap"

	"github.com/Faultbox/wavebg/internal/config"
	"github.com/Faultbox/wavebg/internal/engine/camera"
	"github.com/Faultbox/wavebg/internal/logger"
	"github.com/Faultbox/wavebg/internal/wave"
	"github.com/Faultbox/wavebg/pkg/math"
)

// ErrNoSurface is returned by Init when there is nothing to render into.
var ErrNoSurface = errors.New("scene: no rendering surface")

// Surface is a rendering target sized to the viewport.
type Surface interface {
	SetSize(width, height int)
	Render(mesh *Mesh, cam *camera.PerspectiveCamera) error
}

// PixelRatioSetter is implemented by surfaces whose backing store can be denser
// than the logical viewport.
type PixelRatioSetter interface {
	SetPixelRatio(ratio float64)
}

// Viewport is the logical size of the host view.
type Viewport struct {
	Width      int
	Height     int
	PixelRatio float64
}

// Context owns everything the animation and resize handling touch.
type Context struct {
	Camera   *camera.PerspectiveCamera
	Surface  Surface
	Mesh     *Mesh
	Baseline wave.Baseline

	viewport Viewport
}

// Init builds the camera, sizes the surface, tessellates the plane and captures
// the baseline depth of every vertex.
func Init(cfg *config.Config, vp Viewport, surface Surface) (*Context, error) {
	if surface == nil {
		return nil, ErrNoSurface
	}
	if vp.Width <= 0 || vp.Height <= 0 {
		return nil, fmt.Errorf("scene: viewport %dx%d", vp.Width, vp.Height)
	}

	color, err := ParseHexColor(cfg.Plane.Color)
	if err != nil {
		return nil, fmt.Errorf("scene: plane material: %w", err)
	}

	cam := camera.NewPerspectiveCamera(
		cfg.Camera.FOV,
		float32(vp.Width)/float32(vp.Height),
		cfg.Camera.Near,
		cfg.Camera.Far,
	)
	cam.Position = math.Vec3{X: cfg.Camera.Position[0], Y: cfg.Camera.Position[1], Z: cfg.Camera.Position[2]}
	cam.Pitch = radians(cfg.Camera.Pitch)

	surface.SetSize(vp.Width, vp.Height)
	if vp.PixelRatio > 0 {
		if prs, ok := surface.(PixelRatioSetter); ok {
			prs.SetPixelRatio(vp.PixelRatio)
		}
	}

	grid := wave.NewPlane(cfg.Plane.Width, cfg.Plane.Height, cfg.Plane.Segments, cfg.Plane.Segments)
	mesh := &Mesh{
		Grid: grid,
		Material: Material{
			Color:       color,
			Opacity:     cfg.Plane.Opacity,
			Transparent: cfg.Plane.Opacity < 1,
			Wireframe:   cfg.Plane.Wireframe,
		},
		Model: math.RotateX(radians(cfg.Plane.Tilt)),
	}

	c := &Context{
		Camera:   cam,
		Surface:  surface,
		Mesh:     mesh,
		Baseline: wave.CaptureBaseline(grid),
		viewport: vp,
	}

	logger.Info("scene initialized",
		zap.Int("width", vp.Width),
		zap.Int("height", vp.Height),
		zap.Int("vertices", grid.Count()),
		zap.Int("edges", len(grid.Edges)/2),
	)
	return c, nil
}

// Resize updates the camera aspect and projection and resizes the surface.
func (c *Context) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		logger.Debug("ignoring degenerate resize", zap.Int("width", width), zap.Int("height", height))
		return
	}

	c.Camera.Aspect = float32(width) / float32(height)
	c.Camera.UpdateProjectionMatrix()
	c.Surface.SetSize(width, height)
	c.viewport.Width = width
	c.viewport.Height = height

	logger.Debug("scene resized", zap.Int("width", width), zap.Int("height", height))
}

// Viewport returns the current logical viewport.
func (c *Context) Viewport() Viewport {
	return c.viewport
}

func radians(deg float32) float32 {
	return deg * gomath.Pi / 180
}
