package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	id := Identity()
	result := m.Mul(id)

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)

	// Translation should be in column 4 (indices 12, 13, 14)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestTransformPoint(t *testing.T) {
	// Translate by (10, 20, 30)
	m := Translate(10, 20, 30)
	p := [3]float32{1, 2, 3}
	result := m.TransformPoint(p)

	expected := [3]float32{11, 22, 33}
	if result != expected {
		t.Errorf("TransformPoint: got %v, want %v", result, expected)
	}
}

func TestRotateY90(t *testing.T) {
	m := RotateY(float32(math.Pi / 2)) // 90 degrees
	p := [3]float32{1, 0, 0}           // Point on X axis
	result := m.TransformPoint(p)

	// After 90 degree Y rotation, (1,0,0) should become approximately (0,0,-1)
	if abs(result[0]) > 0.001 || abs(result[1]) > 0.001 || abs(result[2]+1) > 0.001 {
		t.Errorf("RotateY 90: got %v, want (0, 0, -1)", result)
	}
}

func TestPerspective(t *testing.T) {
	fov := float32(math.Pi / 4) // 45 degrees
	aspect := float32(1.0)
	near := float32(0.1)
	far := float32(100.0)

	m := Perspective(fov, aspect, near, far)

	// Should be a valid projection matrix (not identity)
	if m[0] == 0 || m[5] == 0 {
		t.Error("Perspective should have non-zero elements")
	}
	// Element [15] should be 0 for perspective projection
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	// Element [11] should be -1 for perspective projection
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
}

func TestOrthoMapsVolumeToNDC(t *testing.T) {
	m := Ortho(-10, 10, -10, 10, 0.1, 100)

	// A point on the near plane at the volume corner maps to NDC corner.
	corner := m.MulVec4(Vec4{10, 10, -0.1, 1})
	if abs(corner[0]-1) > 0.001 || abs(corner[1]-1) > 0.001 || abs(corner[2]+1) > 0.001 {
		t.Errorf("Ortho corner: got %v, want (1, 1, -1, 1)", corner)
	}
	// Orthographic projection keeps w = 1
	if corner[3] != 1 {
		t.Errorf("Ortho w should stay 1, got %f", corner[3])
	}

	// Center of the volume maps to NDC x=y=0
	center := m.MulVec4(Vec4{0, 0, -50, 1})
	if abs(center[0]) > 0.001 || abs(center[1]) > 0.001 {
		t.Errorf("Ortho center: got (%f, %f), want (0, 0)", center[0], center[1])
	}
}

func TestLookAt(t *testing.T) {
	eye := Vec3{0, 0, 5}
	center := Vec3{0, 0, 0}
	up := Vec3{0, 1, 0}

	m := LookAt(eye, center, up)

	if m[15] != 1 {
		t.Errorf("LookAt [15] should be 1, got %f", m[15])
	}

	// The eye position must map to the view-space origin.
	p := m.TransformPoint([3]float32{eye.X, eye.Y, eye.Z})
	if abs(p[0]) > 0.001 || abs(p[1]) > 0.001 || abs(p[2]) > 0.001 {
		t.Errorf("LookAt should map eye to origin, got %v", p)
	}

	// The look target ends up on the negative Z axis in view space.
	q := m.TransformPoint([3]float32{0, 0, 0})
	if q[2] >= 0 {
		t.Errorf("LookAt target should have negative view-space Z, got %f", q[2])
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
