package shadow

import (
	"math/rand"
	"testing"

	mathx "github.com/gnomonlab/sundial/pkg/math"
)

func allOccluded(u, v float32) float32 { return 0 }
func allClear(u, v float32) float32    { return 1 }

func TestFactorOutsideFrustumNeverDarkens(t *testing.T) {
	bounds := testBounds()
	m := DirectionalLightMatrix(normalize([3]float32{0.3, -0.8, 0.4}), bounds)

	// Even with a depth map that claims everything is occluded, points
	// outside the light volume must stay fully lit.
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		p := mathx.Vec3{
			X: 100 + rng.Float32()*1000,
			Y: rng.Float32()*400 - 200,
			Z: 100 + rng.Float32()*1000,
		}
		if f := Factor(m, p, allOccluded, 0.002, 0.35); f != 1 {
			t.Fatalf("point %v outside frustum: factor %f, want 1", p, f)
		}
	}
}

func TestFactorInsideFrustum(t *testing.T) {
	bounds := testBounds()
	m := DirectionalLightMatrix(normalize([3]float32{0.3, -0.8, 0.4}), bounds)
	center := bounds.Center()

	if f := Factor(m, center, allOccluded, 0.002, 0.35); f != 0.35 {
		t.Errorf("occluded center: factor %f, want the darkness constant 0.35", f)
	}
	if f := Factor(m, center, allClear, 0.002, 0.35); f != 1 {
		t.Errorf("unoccluded center: factor %f, want 1", f)
	}
}

func TestFactorBiasPreventsSelfShadowing(t *testing.T) {
	bounds := testBounds()
	m := DirectionalLightMatrix(normalize([3]float32{0, -0.9, 0.43}), bounds)
	center := bounds.Center()

	// A depth map storing exactly the fragment's own depth must not
	// shadow it once the bias is applied.
	self := func(u, v float32) float32 {
		clip := m.MulVec4(mathx.Vec4{center.X, center.Y, center.Z, 1})
		return clip[2]/clip[3]*0.5 + 0.5
	}
	if f := Factor(m, center, self, 0.002, 0.35); f != 1 {
		t.Errorf("self-depth sample: factor %f, want 1 (shadow acne)", f)
	}
}

func TestDepthGridClamps(t *testing.T) {
	g := &DepthGrid{Res: 2, Data: []float32{0.1, 0.2, 0.3, 0.4}}
	if got := g.At(-1, -1); got != 0.1 {
		t.Errorf("At(-1,-1) = %f, want 0.1", got)
	}
	if got := g.At(2, 2); got != 0.4 {
		t.Errorf("At(2,2) = %f, want 0.4", got)
	}
}

func TestDepthGridEmpty(t *testing.T) {
	g := &DepthGrid{}
	if got := g.At(0.5, 0.5); got != 1 {
		t.Errorf("empty grid should read as unoccluded, got %f", got)
	}
}
