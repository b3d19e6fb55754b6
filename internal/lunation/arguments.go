package lunation

import (
	"math"

	"github.com/thurmanmarka/lunarphase/internal/series"
	"github.com/thurmanmarka/lunarphase/internal/timeutil"
)

// Arguments are the orbital arguments of one phase of one lunation.
// Angles are in degrees, normalised to [0, 360).
type Arguments struct {
	K   float64 // lunation index, fractional for non-new phases
	T   float64 // Julian centuries since 2000, k/1236.85
	E   float64 // eccentricity correction factor
	M   float64 // Sun's mean anomaly
	MP  float64 // Moon's mean anomaly
	F   float64 // Moon's argument of latitude
	Ohm float64 // longitude of the ascending node
}

// Index returns the integer lunation index nearest to a decimal year,
// counted from the new moon of 6 January 2000. Halves round away from zero.
func Index(decimalYear float64) float64 {
	return math.Round((decimalYear - 2000) * 12.3685)
}

// NewArguments derives the orbital arguments for lunation index k.
func NewArguments(k float64) Arguments {
	t := k / 1236.85
	t2 := t * t
	t3 := t2 * t
	t4 := t3 * t

	return Arguments{
		K: k,
		T: t,
		E: 1 - 0.002516*t - 0.0000074*t2,
		M: timeutil.Normalize360(2.5534 + 29.10535669*k -
			0.00000218*t2 - 0.00000011*t3),
		MP: timeutil.Normalize360(201.5643 + 385.81693528*k +
			0.0107438*t2 + 0.00001239*t3 - 0.000000058*t4),
		F: timeutil.Normalize360(160.7108 + 390.67050274*k -
			0.0016341*t2 - 0.00000227*t3 + 0.000000011*t4),
		Ohm: timeutil.Normalize360(124.7746 - 1.56375580*k +
			0.0020691*t2 + 0.00000215*t3),
	}
}

// Series returns the subset of the arguments the correction tables use.
func (a Arguments) Series() series.Arguments {
	return series.Arguments{
		E:   a.E,
		M:   a.M,
		MP:  a.MP,
		F:   a.F,
		Ohm: a.Ohm,
	}
}
