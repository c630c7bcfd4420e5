// Package dial generates the sundial geometry: the stone plate, the gnomon
// blade, the engraved hour lines and the decorative grass ring. It owns the
// hour-angle table the solar package reads when inverting a shadow back into
// a time.
package dial

import (
	"math"

	"github.com/gnomonlab/sundial/internal/solar"
)

const deg2rad = math.Pi / 180

// HourLineTable computes the hour-line angles of a horizontal sundial at the
// given latitude, for the dial hours 6 through 18. The angle convention
// matches solar.ShadowAngle: noon is 0, morning positive, afternoon negative.
//
// The classic construction: tan(lineAngle) = sin(latitude) * tan(hourAngle),
// with 15 degrees of hour angle per hour from noon. The table only changes
// when the reference latitude does; it is read-only during rendering.
func HourLineTable(latitudeDeg float64) []solar.HourLine {
	sinLat := math.Sin(latitudeDeg * deg2rad)
	table := make([]solar.HourLine, 0, 13)
	for hour := 6; hour <= 18; hour++ {
		ha := float64(12-hour) * 15 * deg2rad
		// atan2 instead of atan(sinLat*tan(ha)): tan blows up at the
		// 6 and 18 o'clock lines, which sit exactly a quarter turn out.
		angle := math.Atan2(sinLat*math.Sin(ha), math.Cos(ha))
		table = append(table, solar.HourLine{Hour: hour, AngleRad: angle})
	}
	return table
}
