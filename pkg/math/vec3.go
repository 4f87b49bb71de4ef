// Package math provides the small vector and matrix toolkit used by the scene camera
// and the CPU projection path.
package math

import "math"

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float32
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v * scalar.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product.
func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Length returns the magnitude.
func (v Vec3) Length() float32 {
	return float32(math.Sqrt(float64(v.Dot(v))))
}

// Vec4 is a homogeneous 4-component vector.
type Vec4 [4]float32

// Point returns the homogeneous form of p (w = 1).
func Point(p Vec3) Vec4 {
	return Vec4{p.X, p.Y, p.Z, 1}
}

// PerspectiveDivide converts clip coordinates to normalized device coordinates.
// ok is false when w is not positive, i.e. the point lies behind the eye.
func (v Vec4) PerspectiveDivide() (ndc Vec3, ok bool) {
	if v[3] <= 0 {
		return Vec3{}, false
	}
	return Vec3{v[0] / v[3], v[1] / v[3], v[2] / v[3]}, true
}
