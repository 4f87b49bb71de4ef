// Package camera provides the perspective camera the scene is viewed through.
package camera

import (
	gomath "math"

	"github.com/Faultbox/wavebg/pkg/math"
)

// PerspectiveCamera is a camera placed at Position and pitched about X.
// The projection matrix is cached and only recomputed by UpdateProjectionMatrix.
type PerspectiveCamera struct {
	FOV    float32 // vertical field of view, degrees
	Aspect float32
	Near   float32
	Far    float32

	Position math.Vec3
	Pitch    float32 // rotation about X, radians; negative looks down

	projection math.Mat4
}

// NewPerspectiveCamera creates a camera and computes its projection.
func NewPerspectiveCamera(fov, aspect, near, far float32) *PerspectiveCamera {
	c := &PerspectiveCamera{
		FOV:    fov,
		Aspect: aspect,
		Near:   near,
		Far:    far,
	}
	c.UpdateProjectionMatrix()
	return c
}

// UpdateProjectionMatrix recomputes the projection from FOV, Aspect, Near and Far.
func (c *PerspectiveCamera) UpdateProjectionMatrix() {
	fovY := c.FOV * gomath.Pi / 180
	c.projection = math.Perspective(fovY, c.Aspect, c.Near, c.Far)
}

// ProjectionMatrix returns the projection computed by the last update.
func (c *PerspectiveCamera) ProjectionMatrix() math.Mat4 {
	return c.projection
}

// WorldMatrix returns the camera's placement in the world.
func (c *PerspectiveCamera) WorldMatrix() math.Mat4 {
	return math.Translate(c.Position.X, c.Position.Y, c.Position.Z).Mul(math.RotateX(c.Pitch))
}

// ViewMatrix returns the inverse of the camera's world matrix.
func (c *PerspectiveCamera) ViewMatrix() math.Mat4 {
	return c.WorldMatrix().Inverse()
}

// ViewProjection returns projection * view.
func (c *PerspectiveCamera) ViewProjection() math.Mat4 {
	return c.projection.Mul(c.ViewMatrix())
}
