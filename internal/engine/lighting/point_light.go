package lighting

import (
	mathx "github.com/gnomonlab/sundial/pkg/math"
)

// PointLight is a point light source for GPU upload. The dial scene carries a
// single one, tracking the sun, to warm surfaces facing it.
type PointLight struct {
	Position  mathx.Vec3
	Color     [3]float32
	Intensity float32
}

// Sun builds the point light for the current sun geometry. Intensity fades
// with the sun's height so the warm tint dies out toward dusk.
func Sun(lightDir mathx.Vec3, standoff float32) PointLight {
	intensity := -lightDir.Y
	if intensity < 0 {
		intensity = 0
	}
	return PointLight{
		Position:  SunPosition(lightDir, standoff),
		Color:     [3]float32{1.0, 0.85, 0.6},
		Intensity: intensity,
	}
}

// Scaled returns the light color premultiplied by intensity, ready for a
// uniform upload.
func (p PointLight) Scaled() [3]float32 {
	return [3]float32{
		p.Color[0] * p.Intensity,
		p.Color[1] * p.Intensity,
		p.Color[2] * p.Intensity,
	}
}
