package shadow

import (
	gomath "math"
	"testing"

	mathx "github.com/gnomonlab/sundial/pkg/math"
)

func testBounds() AABB {
	return AABB{
		Min: [3]float32{-15, 0, -15},
		Max: [3]float32{15, 8, 15},
	}
}

func normalize(d [3]float32) [3]float32 {
	l := sqrt32(d[0]*d[0] + d[1]*d[1] + d[2]*d[2])
	return [3]float32{d[0] / l, d[1] / l, d[2] / l}
}

func corners(b AABB) [8][3]float32 {
	var out [8][3]float32
	i := 0
	for _, x := range []float32{b.Min[0], b.Max[0]} {
		for _, y := range []float32{b.Min[1], b.Max[1]} {
			for _, z := range []float32{b.Min[2], b.Max[2]} {
				out[i] = [3]float32{x, y, z}
				i++
			}
		}
	}
	return out
}

func assertContains(t *testing.T, m mathx.Mat4, b AABB) {
	t.Helper()
	for _, c := range corners(b) {
		clip := m.MulVec4(mathx.Vec4{c[0], c[1], c[2], 1})
		if clip[3] == 0 {
			t.Fatalf("corner %v: zero w", c)
		}
		for axis := 0; axis < 3; axis++ {
			ndc := clip[axis] / clip[3]
			if gomath.IsNaN(float64(ndc)) {
				t.Fatalf("corner %v axis %d: NaN", c, axis)
			}
			if ndc < -1.001 || ndc > 1.001 {
				t.Errorf("corner %v axis %d: ndc %f outside [-1, 1]", c, axis, ndc)
			}
		}
	}
}

func TestDirectionalLightMatrixContainsScene(t *testing.T) {
	bounds := testBounds()
	dirs := [][3]float32{
		{0.3, -0.7, 0.5},
		{-0.6, -0.4, 0.2},
		{0.0, -0.5, -0.8},
	}
	for _, d := range dirs {
		m := DirectionalLightMatrix(normalize(d), bounds)
		assertContains(t, m, bounds)
	}
}

func TestDirectionalLightMatrixZenith(t *testing.T) {
	// Sun directly overhead: light direction parallel to world up. The
	// fallback up vector must keep the view matrix finite.
	bounds := testBounds()
	m := DirectionalLightMatrix([3]float32{0, -1, 0}, bounds)
	for i, v := range m {
		if gomath.IsNaN(float64(v)) || gomath.IsInf(float64(v), 0) {
			t.Fatalf("zenith matrix element %d is %f", i, v)
		}
	}
	assertContains(t, m, bounds)
}

func TestLightPositionLift(t *testing.T) {
	// A nearly horizontal sun must still view the scene from above the
	// minimum height, or the ground plane degenerates to an edge-on view.
	bounds := testBounds()
	dir := normalize([3]float32{0.99, -0.05, 0})
	pos := lightPosition(dir, bounds)

	minHeight := bounds.Max[1] + bounds.Radius()*0.25
	if pos.Y < minHeight {
		t.Errorf("light position Y = %f, want >= %f", pos.Y, minHeight)
	}
}

func TestAABBExtend(t *testing.T) {
	a := AABB{Min: [3]float32{-1, 0, -1}, Max: [3]float32{1, 1, 1}}
	b := AABB{Min: [3]float32{0, -2, 0}, Max: [3]float32{3, 0.5, 0}}
	got := a.Extend(b)
	want := AABB{Min: [3]float32{-1, -2, -1}, Max: [3]float32{3, 1, 1}}
	if got != want {
		t.Errorf("Extend = %v, want %v", got, want)
	}
}
