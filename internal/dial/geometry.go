package dial

import (
	"math"
	"math/rand"

	"github.com/gnomonlab/sundial/internal/engine/mesh"
	"github.com/gnomonlab/sundial/internal/solar"
)

var (
	stoneColor   = [3]float32{0.62, 0.60, 0.55}
	brassColor   = [3]float32{0.71, 0.55, 0.24}
	engraveColor = [3]float32{0.16, 0.15, 0.14}
)

// Plate builds a flat disc of the given radius in the XZ plane, centered at
// the origin with its face pointing up. The plate receives shadows but does
// not cast them, so callers should leave CastsShadow unset on its mesh.
func Plate(radius float32, segments int) mesh.Geometry {
	if segments < 3 {
		segments = 3
	}
	var geo mesh.Geometry
	up := [3]float32{0, 1, 0}

	geo.Vertices = append(geo.Vertices, mesh.Vertex{
		Position: [3]float32{0, 0, 0},
		Normal:   up,
		Color:    stoneColor,
	})
	for i := 0; i <= segments; i++ {
		theta := float64(i) / float64(segments) * 2 * math.Pi
		geo.Vertices = append(geo.Vertices, mesh.Vertex{
			Position: [3]float32{radius * float32(math.Cos(theta)), 0, radius * float32(math.Sin(theta))},
			Normal:   up,
			Color:    stoneColor,
		})
	}
	for i := 0; i < segments; i++ {
		// Winding is counter-clockwise seen from above (+Y).
		geo.Indices = append(geo.Indices, 0, uint32(i+2), uint32(i+1))
	}
	return geo
}

// Gnomon builds the triangular blade whose upper edge (the style) is raked at
// the latitude angle, so that it points at the celestial pole. The blade sits
// on the plate with the style rising from the dial center toward north (-Z)
// and reaching the given height above the plate.
func Gnomon(height float32, latitudeDeg float64) mesh.Geometry {
	tanLat := math.Tan(latitudeDeg * deg2rad)
	if tanLat < 0.1 {
		tanLat = 0.1
	}
	run := height / float32(tanLat)
	const halfWidth = float32(0.05) // blade thickness is fixed, not scaled

	tipLo := [3]float32{0, 0, -run}
	tip := [3]float32{0, height, -run}
	foot := [3]float32{0, 0, 0}

	var geo mesh.Geometry
	// Side faces, one flat triangle each.
	appendTri(&geo, offsetX(foot, -halfWidth), offsetX(tip, -halfWidth), offsetX(tipLo, -halfWidth), brassColor)
	appendTri(&geo, offsetX(foot, halfWidth), offsetX(tipLo, halfWidth), offsetX(tip, halfWidth), brassColor)
	// Style face along the hypotenuse.
	appendQuad(&geo, offsetX(foot, -halfWidth), offsetX(foot, halfWidth), offsetX(tip, halfWidth), offsetX(tip, -halfWidth), brassColor)
	// Vertical north face.
	appendQuad(&geo, offsetX(tip, -halfWidth), offsetX(tip, halfWidth), offsetX(tipLo, halfWidth), offsetX(tipLo, -halfWidth), brassColor)
	// Bottom, closing the prism so front-face culling in the depth pass
	// still leaves the back faces to render.
	appendQuad(&geo, offsetX(foot, halfWidth), offsetX(foot, -halfWidth), offsetX(tipLo, -halfWidth), offsetX(tipLo, halfWidth), brassColor)
	return geo
}

// HourLines builds thin engraved strips along each table entry, radiating
// from the dial center between the inner and outer radii. The strips sit a
// hair above the plate to avoid z-fighting.
func HourLines(table []solar.HourLine, inner, outer, width float32) mesh.Geometry {
	const lift = 0.01
	var geo mesh.Geometry
	for _, line := range table {
		sin := float32(math.Sin(line.AngleRad))
		cos := float32(math.Cos(line.AngleRad))
		// Direction the shadow points at this hour; perpendicular in
		// the plate plane gives the strip its width.
		dir := [3]float32{sin, 0, -cos}
		perp := [3]float32{cos * width / 2, 0, sin * width / 2}

		a := [3]float32{dir[0]*inner - perp[0], lift, dir[2]*inner - perp[2]}
		b := [3]float32{dir[0]*inner + perp[0], lift, dir[2]*inner + perp[2]}
		c := [3]float32{dir[0]*outer + perp[0], lift, dir[2]*outer + perp[2]}
		d := [3]float32{dir[0]*outer - perp[0], lift, dir[2]*outer - perp[2]}
		appendQuad(&geo, a, b, c, d, engraveColor)
	}
	return geo
}

// GrassRing scatters tapered blades in an annulus around the plate. Each
// blade carries a sway weight of zero at the root rising toward one at the
// tip, which the vertex shader uses to bend it in the wind. The same seed
// always yields the same meadow.
func GrassRing(count int, inner, outer float32, seed int64) mesh.Geometry {
	rng := rand.New(rand.NewSource(seed))
	var geo mesh.Geometry
	for i := 0; i < count; i++ {
		theta := rng.Float64() * 2 * math.Pi
		radius := inner + rng.Float32()*(outer-inner)
		baseX := radius * float32(math.Cos(theta))
		baseZ := radius * float32(math.Sin(theta))

		h := 0.3 + rng.Float32()*0.5
		leanX := (rng.Float32() - 0.5) * 0.3
		leanZ := (rng.Float32() - 0.5) * 0.3
		facing := rng.Float64() * 2 * math.Pi
		half := [3]float32{0.04 * float32(math.Cos(facing)), 0, 0.04 * float32(math.Sin(facing))}

		shade := rng.Float32()
		color := [3]float32{0.18 + shade*0.1, 0.42 + shade*0.18, 0.12 + shade*0.06}
		up := [3]float32{0, 1, 0}

		base := uint32(len(geo.Vertices))
		geo.Vertices = append(geo.Vertices,
			mesh.Vertex{Position: [3]float32{baseX - half[0], 0, baseZ - half[2]}, Normal: up, Color: color},
			mesh.Vertex{Position: [3]float32{baseX + half[0], 0, baseZ + half[2]}, Normal: up, Color: color},
			mesh.Vertex{Position: [3]float32{baseX + leanX, h, baseZ + leanZ}, Normal: up, Color: color, Sway: 1},
		)
		// Both windings: blades are single triangles and must survive
		// the depth pass's front-face culling from any sun direction.
		geo.Indices = append(geo.Indices, base, base+1, base+2, base, base+2, base+1)
	}
	return geo
}

func offsetX(p [3]float32, dx float32) [3]float32 {
	return [3]float32{p[0] + dx, p[1], p[2]}
}

func appendTri(geo *mesh.Geometry, a, b, c [3]float32, color [3]float32) {
	n := faceNormal(a, b, c)
	base := uint32(len(geo.Vertices))
	geo.Vertices = append(geo.Vertices,
		mesh.Vertex{Position: a, Normal: n, Color: color},
		mesh.Vertex{Position: b, Normal: n, Color: color},
		mesh.Vertex{Position: c, Normal: n, Color: color},
	)
	geo.Indices = append(geo.Indices, base, base+1, base+2)
}

func appendQuad(geo *mesh.Geometry, a, b, c, d [3]float32, color [3]float32) {
	n := faceNormal(a, b, c)
	base := uint32(len(geo.Vertices))
	geo.Vertices = append(geo.Vertices,
		mesh.Vertex{Position: a, Normal: n, Color: color},
		mesh.Vertex{Position: b, Normal: n, Color: color},
		mesh.Vertex{Position: c, Normal: n, Color: color},
		mesh.Vertex{Position: d, Normal: n, Color: color},
	)
	geo.Indices = append(geo.Indices, base, base+1, base+2, base, base+2, base+3)
}

func faceNormal(a, b, c [3]float32) [3]float32 {
	u := [3]float32{b[0] - a[0], b[1] - a[1], b[2] - a[2]}
	v := [3]float32{c[0] - a[0], c[1] - a[1], c[2] - a[2]}
	n := [3]float32{
		u[1]*v[2] - u[2]*v[1],
		u[2]*v[0] - u[0]*v[2],
		u[0]*v[1] - u[1]*v[0],
	}
	length := float32(math.Sqrt(float64(n[0]*n[0] + n[1]*n[1] + n[2]*n[2])))
	if length == 0 {
		return [3]float32{0, 1, 0}
	}
	return [3]float32{n[0] / length, n[1] / length, n[2] / length}
}
