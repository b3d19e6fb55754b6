// Package lunation computes the Julian Day of a lunar phase from its
// lunation index, following the periodic-term method of Meeus,
// Astronomical Algorithms, chapter 49.
package lunation

import (
	"github.com/thurmanmarka/lunarphase/internal/series"
)

// SynodicMonth is the mean interval between two new moons, in days.
const SynodicMonth = 29.53058886

// Quadrant identifies one of the four principal phases.
type Quadrant int

const (
	New Quadrant = iota
	First
	Full
	Last
)

// Offset is the fraction of a lunation added to the integer index for q.
func (q Quadrant) Offset() float64 {
	return float64(q) * 0.25
}

// JDE returns the mean phase time (Julian Ephemeris Day) for index k.
func JDE(k, t float64) float64 {
	t2 := t * t
	return 2451550.09765 + SynodicMonth*k +
		0.0001337*t2 - 0.000000150*t2*t + 0.00000000073*t2*t2
}

// JulianDay returns the corrected Julian Day of quadrant q in the lunation
// with integer index base. When eighth is set the result is shifted by one
// eighth of a synodic month, which is how the intermediate phases (waxing
// crescent, waxing gibbous, waning gibbous, waning crescent) are placed
// after their quadrant.
func JulianDay(base float64, q Quadrant, eighth bool) float64 {
	a := NewArguments(base + q.Offset())
	s := a.Series()

	jd := JDE(a.K, a.T) + series.SumPlanetary(a.K, a.T)

	switch q {
	case New:
		jd += series.Sum(series.NewMoon, s)
	case First:
		jd += series.Sum(series.Quarter, s) + series.W(s)
	case Full:
		jd += series.Sum(series.FullMoon, s)
	case Last:
		jd += series.Sum(series.Quarter, s) - series.W(s)
	}

	if eighth {
		jd += SynodicMonth / 8
	}
	return jd
}
