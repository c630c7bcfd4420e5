// Package lighting holds the light sources of the dial scene: the directional
// sun that casts shadows and the point light placed at the sun's position.
package lighting

import (
	mathx "github.com/gnomonlab/sundial/pkg/math"
)

// DefaultStandoff is the distance from the origin at which the sun point
// light is placed.
const DefaultStandoff = 60.0

// SunPosition returns the world-space point opposite the light direction at
// the given standoff distance. lightDir is the direction light travels, so
// the sun sits at -lightDir scaled out from the origin. Recomputed every
// frame; never cached.
func SunPosition(lightDir mathx.Vec3, standoff float32) mathx.Vec3 {
	return lightDir.Neg().Scale(standoff)
}
