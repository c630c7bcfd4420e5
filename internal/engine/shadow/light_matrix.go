package shadow

import (
	gomath "math"

	mathx "github.com/gnomonlab/sundial/pkg/math"
)

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min [3]float32
	Max [3]float32
}

// Center returns the center point of the AABB.
func (b AABB) Center() mathx.Vec3 {
	return mathx.Vec3{
		X: (b.Min[0] + b.Max[0]) / 2,
		Y: (b.Min[1] + b.Max[1]) / 2,
		Z: (b.Min[2] + b.Max[2]) / 2,
	}
}

// Radius returns the distance from center to corner (half-diagonal).
func (b AABB) Radius() float32 {
	dx := (b.Max[0] - b.Min[0]) / 2
	dy := (b.Max[1] - b.Min[1]) / 2
	dz := (b.Max[2] - b.Min[2]) / 2
	return sqrt32(dx*dx + dy*dy + dz*dz)
}

// Extend grows the box to include other.
func (b AABB) Extend(other AABB) AABB {
	for i := 0; i < 3; i++ {
		if other.Min[i] < b.Min[i] {
			b.Min[i] = other.Min[i]
		}
		if other.Max[i] > b.Max[i] {
			b.Max[i] = other.Max[i]
		}
	}
	return b
}

// DirectionalLightMatrix computes the light-space transform (orthographic
// projection times light view) for shadow mapping. lightDir is the normalized
// direction light travels, from the sun into the scene. sceneBounds must
// contain every shadow caster, or shadows clip at the volume boundary.
//
// The transform is a pure function of its inputs and is recomputed whenever
// the light moves; nothing here is cached across frames.
func DirectionalLightMatrix(lightDir [3]float32, sceneBounds AABB) mathx.Mat4 {
	center := sceneBounds.Center()
	radius := sceneBounds.Radius()

	lightPos := lightPosition(lightDir, sceneBounds)

	// If the sun is near zenith the world up vector is parallel to the
	// view direction and lookAt degenerates; fall back to +Z.
	up := mathx.Vec3{X: 0, Y: 1, Z: 0}
	if abs32(lightDir[1]) > 0.99 {
		up = mathx.Vec3{X: 0, Y: 0, Z: 1}
	}

	view := mathx.LookAt(lightPos, center, up)

	// Orthographic: the light is directional, perspective would foreshorten
	// shadows with distance. Pad to avoid edge artifacts.
	padding := radius * 0.1
	halfSize := radius + padding
	near := float32(0.1)
	far := lightPos.Distance(center) + radius + padding

	proj := mathx.Ortho(-halfSize, halfSize, -halfSize, halfSize, near, far)

	return proj.Mul(view)
}

// lightPosition backs the light away from the scene along the incoming ray,
// then lifts it to a clamped minimum height so a low sun never produces a
// near-horizontal, degenerate view of the ground plane.
func lightPosition(lightDir [3]float32, sceneBounds AABB) mathx.Vec3 {
	center := sceneBounds.Center()
	radius := sceneBounds.Radius()
	lightDistance := radius * 2.0

	pos := mathx.Vec3{
		X: center.X - lightDir[0]*lightDistance,
		Y: center.Y - lightDir[1]*lightDistance,
		Z: center.Z - lightDir[2]*lightDistance,
	}

	minHeight := sceneBounds.Max[1] + radius*0.25
	if pos.Y < minHeight {
		pos.Y = minHeight
	}
	return pos
}

// sqrt32 returns the square root of a float32.
func sqrt32(x float32) float32 {
	return float32(gomath.Sqrt(float64(x)))
}

// abs32 returns the absolute value of a float32.
func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
