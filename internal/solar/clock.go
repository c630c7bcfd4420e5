package solar

import (
	"fmt"
	"math"

	mathx "github.com/gnomonlab/sundial/pkg/math"
)

// Kind classifies a clock reading. Night, NotVisible and OutOfRange are
// ordinary domain states the UI renders distinctly, not errors.
type Kind int

const (
	// Time means the reading carries a valid hour and minute.
	Time Kind = iota
	// Night means the sun is at or below the horizon.
	Night
	// NotVisible means the sun is behind the dial's face (azimuth outside
	// the (90, 270) half-plane a south-facing dial can read).
	NotVisible
	// OutOfRange means the computed hour falls outside the dial's 6..17
	// band of engraved hour lines.
	OutOfRange
)

// Reading is a tagged clock result derived from sun or shadow geometry.
type Reading struct {
	Kind   Kind
	Hour   int
	Minute int
}

// String renders the reading for display.
func (r Reading) String() string {
	switch r.Kind {
	case Night:
		return "night"
	case NotVisible:
		return "sun behind dial"
	case OutOfRange:
		return "off the dial"
	default:
		return fmt.Sprintf("%02d:%02d", r.Hour, r.Minute)
	}
}

// The dial reads 15 degrees of azimuth per hour, anchored so azimuth 90
// corresponds to 06:00 and azimuth 270 to 18:00. The anchor folds in the
// site longitude, so readings are only valid for that one longitude.
const (
	sunriseAzimuthDeg = 90
	sunsetAzimuthDeg  = 270
	degreesPerHour    = 15
	firstDialHour     = 6
	lastDialHour      = 17
)

// ClockFromSun converts the sun's azimuth and elevation into a civil-time
// reading, applying the equation-of-time correction for the given day.
func ClockFromSun(azimuthDeg, elevationDeg float64, day int) Reading {
	if elevationDeg <= 0 {
		return Reading{Kind: Night}
	}
	az := math.Mod(azimuthDeg, 360)
	if az < 0 {
		az += 360
	}
	if az <= sunriseAzimuthDeg || az >= sunsetAzimuthDeg {
		return Reading{Kind: NotVisible}
	}
	solarHour := (az-sunriseAzimuthDeg)/degreesPerHour + firstDialHour
	return civilReading(solarHour, day)
}

// ClockFromShadow converts the direction a shadow is thrown (the ray from the
// gnomon tip to its shadow point) into a civil-time reading. A non-negative Y
// component means the sun is at or below the horizon.
func ClockFromShadow(dir mathx.Vec3, day int) Reading {
	if dir.Y >= 0 {
		return Reading{Kind: Night}
	}
	angle := ShadowAngle(dir)
	if angle > math.Pi/2 || angle < -math.Pi/2 {
		return Reading{Kind: NotVisible}
	}
	// 6 hours of shadow sweep per quarter turn.
	exactHour := 12 - angle*12/math.Pi
	return civilReading(exactHour, day)
}

// ShadowAngle returns the angle of a shadow direction on the dial plane,
// measured so noon is 0, morning positive and afternoon negative.
func ShadowAngle(dir mathx.Vec3) float64 {
	return math.Atan2(float64(dir.X), float64(-dir.Z))
}

func civilReading(solarHour float64, day int) Reading {
	civil := solarHour - EquationOfTime(day)/60
	hour := int(math.Floor(civil))
	if hour < firstDialHour || hour > lastDialHour {
		return Reading{Kind: OutOfRange}
	}
	minute := int(math.Floor((civil - float64(hour)) * 60))
	return Reading{Kind: Time, Hour: hour, Minute: minute}
}

// HourLine is one engraved hour line: the dial hour it marks and its angle on
// the plate in the same convention as ShadowAngle. The table is owned by the
// dial geometry and precomputed per reference latitude.
type HourLine struct {
	Hour     int
	AngleRad float64
}

// NearestHourLine returns the table entry whose angle is closest to the given
// shadow angle. Ties keep the first entry in table order. Returns false for
// an empty table.
func NearestHourLine(angleRad float64, table []HourLine) (HourLine, bool) {
	if len(table) == 0 {
		return HourLine{}, false
	}
	best := table[0]
	bestDiff := math.Abs(angleRad - best.AngleRad)
	for _, hl := range table[1:] {
		if d := math.Abs(angleRad - hl.AngleRad); d < bestDiff {
			best, bestDiff = hl, d
		}
	}
	return best, true
}

// InterpolatedHour returns a fractional dial hour by interpolating linearly
// between the two hour lines bracketing the shadow angle. Returns false when
// the angle falls outside the table's span.
func InterpolatedHour(angleRad float64, table []HourLine) (float64, bool) {
	if len(table) < 2 {
		return 0, false
	}
	// Hour-line angles decrease as the hour advances.
	for i := 0; i < len(table)-1; i++ {
		hi, lo := table[i], table[i+1]
		if angleRad <= hi.AngleRad && angleRad >= lo.AngleRad {
			span := hi.AngleRad - lo.AngleRad
			if span == 0 {
				return float64(hi.Hour), true
			}
			t := (hi.AngleRad - angleRad) / span
			return float64(hi.Hour) + t*float64(lo.Hour-hi.Hour), true
		}
	}
	return 0, false
}
