package scene

import (
	"testing"

	"github.com/gnomonlab/sundial/internal/engine/mesh"
	mathx "github.com/gnomonlab/sundial/pkg/math"
)

func TestMeshWorldBoundsTranslated(t *testing.T) {
	m := &mesh.Mesh{
		Min:   [3]float32{-1, 0, -1},
		Max:   [3]float32{1, 2, 1},
		Model: mathx.Translate(10, 0, -5),
	}
	b := meshWorldBounds(m)
	want := [3]float32{9, 0, -6}
	if b.Min != want {
		t.Fatalf("Min = %v, want %v", b.Min, want)
	}
	want = [3]float32{11, 2, -4}
	if b.Max != want {
		t.Fatalf("Max = %v, want %v", b.Max, want)
	}
}

func TestMeshWorldBoundsRotated(t *testing.T) {
	// A quarter turn around Y swaps the box's X and Z extents.
	m := &mesh.Mesh{
		Min:   [3]float32{-2, 0, -1},
		Max:   [3]float32{2, 1, 1},
		Model: mathx.RotateY(3.14159265 / 2),
	}
	b := meshWorldBounds(m)
	if got := b.Max[2] - b.Min[2]; got < 3.9 || got > 4.1 {
		t.Fatalf("rotated Z extent = %v, want about 4", got)
	}
	if got := b.Max[0] - b.Min[0]; got < 1.9 || got > 2.1 {
		t.Fatalf("rotated X extent = %v, want about 2", got)
	}
}

func TestCasterBoundsSkipsNonCasters(t *testing.T) {
	s := &Scene{}
	s.Add(&mesh.Mesh{
		Min: [3]float32{-100, 0, -100}, Max: [3]float32{100, 0, 100},
		Model: mathx.Identity(), CastsShadow: false,
	})
	s.Add(&mesh.Mesh{
		Min: [3]float32{-1, 0, -3}, Max: [3]float32{1, 4, 0},
		Model: mathx.Identity(), CastsShadow: true,
	})
	b := s.CasterBounds()
	if b.Min != [3]float32{-1, 0, -3} || b.Max != [3]float32{1, 4, 0} {
		t.Fatalf("caster bounds include non-casters: %+v", b)
	}
}

func TestSkyColorFades(t *testing.T) {
	noon := skyColor(mathx.Vec3{Y: -1})
	dusk := skyColor(mathx.Vec3{Y: -0.01})
	night := skyColor(mathx.Vec3{Y: 0.2})
	for i := 0; i < 3; i++ {
		if noon[i] <= dusk[i] {
			t.Fatalf("noon sky not brighter than dusk: %v vs %v", noon, dusk)
		}
		if night[i] <= 0 {
			t.Fatalf("night sky went fully black: %v", night)
		}
	}
}
