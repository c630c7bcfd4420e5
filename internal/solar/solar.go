// Package solar models the sun for a fixed-site horizontal sundial: the
// equation of time, solar declination, the direction sunlight travels for a
// given azimuth/elevation, and the conversion between sun geometry and civil
// clock time.
//
// All angles in the public API are degrees unless a name says otherwise;
// internal math is float64 and converted to float32 vectors at the render
// boundary. Functions are total: out-of-range day-of-year or azimuth inputs
// produce extrapolated, non-physical values rather than errors, so callers
// are expected to clamp upstream.
package solar

import (
	"math"

	mathx "github.com/gnomonlab/sundial/pkg/math"
)

// Angles is the per-frame sun parameterization supplied by the controller.
type Angles struct {
	AzimuthDeg   float64 // 90 = sunrise side, 180 = due south, 270 = sunset side
	ElevationDeg float64 // above the horizon, (-90, 90]
	DayOfYear    int     // 1..365
}

const (
	deg2rad = math.Pi / 180
	rad2deg = 180 / math.Pi
)

// EquationOfTime returns the difference between mean clock time and true
// solar time in minutes for the given day of year. The value stays within
// roughly ±16 minutes over a year.
func EquationOfTime(day int) float64 {
	b := 2 * math.Pi * float64(day-81) / 365
	return 9.87*math.Sin(2*b) - 7.53*math.Cos(b) - 1.5*math.Sin(b)
}

// Declination returns the solar declination in radians for the given day of
// year (+23.45 degrees at the June solstice, -23.45 at the December one).
func Declination(day int) float64 {
	return 23.45 * deg2rad * math.Sin(2*math.Pi*float64(284+day)/365)
}

// LightDirection returns the unit vector sunlight travels along for the given
// sun azimuth and elevation. The vector points from the sun into the scene:
// its Y component is negative whenever the sun is above the horizon. Azimuth
// 0 and 360 are equivalent.
func LightDirection(azimuthDeg, elevationDeg float64) mathx.Vec3 {
	az := azimuthDeg * deg2rad
	el := elevationDeg * deg2rad
	return mathx.Vec3{
		X: float32(math.Cos(el) * math.Sin(az)),
		Y: float32(-math.Sin(el)),
		Z: float32(math.Cos(el) * math.Cos(az)),
	}
}

// NoonElevation returns the sun's elevation at local solar noon in degrees
// for a site at the given latitude.
func NoonElevation(latitudeDeg float64, day int) float64 {
	el := 90 - latitudeDeg + Declination(day)*rad2deg
	if el > 90 {
		el = 180 - el
	}
	return el
}

// ArcElevation approximates the sun's elevation along its daily arc as a
// half-sine between sunrise (azimuth 90) and sunset (azimuth 270), peaking at
// the noon elevation. Used to drive the automatic day cycle, not for
// astronomical accuracy.
func ArcElevation(azimuthDeg, latitudeDeg float64, day int) float64 {
	return NoonElevation(latitudeDeg, day) * math.Sin((azimuthDeg-90)*deg2rad)
}
