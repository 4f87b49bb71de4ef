package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)

	// Translation lives in column 4 (indices 12, 13, 14)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestTransformPoint(t *testing.T) {
	m := Translate(10, 20, 30)
	got := m.TransformPoint(Vec3{1, 2, 3})

	want := Vec3{11, 22, 33}
	if got != want {
		t.Errorf("TransformPoint: got %v, want %v", got, want)
	}
}

func TestRotateXLaysPlaneFlat(t *testing.T) {
	// A point on the +Y axis of a plane rotated by -90 degrees about X ends up on -Z.
	m := RotateX(float32(-math.Pi / 2))
	got := m.TransformPoint(Vec3{0, 1, 0})

	if abs(got.X) > 0.001 || abs(got.Y) > 0.001 || abs(got.Z+1) > 0.001 {
		t.Errorf("RotateX(-90): got %v, want (0, 0, -1)", got)
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(float32(math.Pi/4), 1.0, 0.1, 100.0)

	if m[0] == 0 || m[5] == 0 {
		t.Error("Perspective should have non-zero elements")
	}
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
}

func TestPerspectiveAspect(t *testing.T) {
	narrow := Perspective(1, 1, 0.1, 100)
	wide := Perspective(1, 2, 0.1, 100)

	if abs(wide[0]*2-narrow[0]) > 1e-5 {
		t.Errorf("doubling aspect should halve x scale: %f vs %f", wide[0], narrow[0])
	}
	if wide[5] != narrow[5] {
		t.Errorf("aspect should not change y scale: %f vs %f", wide[5], narrow[5])
	}
}

func TestInverse(t *testing.T) {
	m := Translate(0, 10, 100).Mul(RotateX(float32(-math.Pi / 8)))
	product := m.Mul(m.Inverse())
	id := Identity()

	for i := 0; i < 16; i++ {
		if abs(product[i]-id[i]) > 1e-4 {
			t.Fatalf("M * M^-1 element %d = %f, want %f", i, product[i], id[i])
		}
	}
}

func TestInverseSingular(t *testing.T) {
	var zero Mat4
	if zero.Inverse() != Identity() {
		t.Error("inverse of singular matrix should fall back to identity")
	}
}

func TestPerspectiveDivide(t *testing.T) {
	ndc, ok := Vec4{2, 4, 6, 2}.PerspectiveDivide()
	if !ok {
		t.Fatal("expected point in front of eye")
	}
	if ndc != (Vec3{1, 2, 3}) {
		t.Errorf("PerspectiveDivide: got %v, want (1, 2, 3)", ndc)
	}

	if _, ok := (Vec4{1, 1, 1, -1}).PerspectiveDivide(); ok {
		t.Error("negative w should be rejected")
	}
}

func TestVec3Length(t *testing.T) {
	if got := (Vec3{3, 4, 0}).Length(); got != 5 {
		t.Errorf("Vec3.Length() = %v, want 5", got)
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
