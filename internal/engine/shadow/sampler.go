package shadow

import (
	mathx "github.com/gnomonlab/sundial/pkg/math"
)

// DepthGrid is a CPU copy of a depth image, addressed by normalized UV.
type DepthGrid struct {
	Res  int
	Data []float32
}

// At samples the nearest texel, clamping UV to the image.
func (g *DepthGrid) At(u, v float32) float32 {
	if g.Res == 0 || len(g.Data) == 0 {
		return 1
	}
	x := int(u * float32(g.Res))
	y := int(v * float32(g.Res))
	if x < 0 {
		x = 0
	}
	if x >= g.Res {
		x = g.Res - 1
	}
	if y < 0 {
		y = 0
	}
	if y >= g.Res {
		y = g.Res - 1
	}
	return g.Data[y*g.Res+x]
}

// Factor is the CPU reference of the fragment shader's shadow test: project
// the world point through the light-space transform, divide by w, remap to
// [0,1], and compare against the stored depth minus a bias.
//
// Points outside the light volume (any remapped coordinate outside [0,1])
// are never darkened and return 1 regardless of the depth contents. An
// occluded point returns darkness; a lit point returns 1.
func Factor(lightViewProj mathx.Mat4, world mathx.Vec3, depthAt func(u, v float32) float32, bias, darkness float32) float32 {
	clip := lightViewProj.MulVec4(mathx.Vec4{world.X, world.Y, world.Z, 1})
	if clip[3] == 0 {
		return 1
	}
	u := clip[0]/clip[3]*0.5 + 0.5
	v := clip[1]/clip[3]*0.5 + 0.5
	z := clip[2]/clip[3]*0.5 + 0.5

	if u < 0 || u > 1 || v < 0 || v > 1 || z < 0 || z > 1 {
		return 1
	}
	if depthAt(u, v) < z-bias {
		return darkness
	}
	return 1
}
