// Package series evaluates the periodic correction terms added to the mean
// phase time of a lunation (Meeus, Astronomical Algorithms, ch. 49).
//
// Each table is literal data: a term is a coefficient, a power of the
// eccentricity factor E and integer multipliers of the four argument
// angles. Evaluating a table is a plain sum with no clamping or rounding.
package series

import (
	"github.com/thurmanmarka/lunarphase/internal/timeutil"
)

// Trig selects the trigonometric function applied to a term's angle.
type Trig int

const (
	Sine Trig = iota
	Cosine
)

// Arguments are the angles (degrees) and eccentricity factor a table is
// evaluated against.
type Arguments struct {
	E   float64 // eccentricity correction factor
	M   float64 // Sun's mean anomaly
	MP  float64 // Moon's mean anomaly
	F   float64 // Moon's argument of latitude
	Ohm float64 // longitude of the ascending node
}

// Term is one periodic term: Coef * E^EPow * trig(MP*M' + M*M + F*F + Ohm*Ω).
type Term struct {
	Coef float64
	EPow int
	MP   int
	M    int
	F    int
	Ohm  int
	Trig Trig
}

// Angle returns the term's argument in degrees.
func (t Term) Angle(a Arguments) float64 {
	return float64(t.MP)*a.MP + float64(t.M)*a.M + float64(t.F)*a.F + float64(t.Ohm)*a.Ohm
}

// Value evaluates the term.
func (t Term) Value(a Arguments) float64 {
	v := t.Coef
	for i := 0; i < t.EPow; i++ {
		v *= a.E
	}

	angle := t.Angle(a)
	if t.Trig == Cosine {
		return v * timeutil.CosD(angle)
	}
	return v * timeutil.SinD(angle)
}

// Sum evaluates every term of table against a.
func Sum(table []Term, a Arguments) float64 {
	var s float64
	for _, t := range table {
		s += t.Value(a)
	}
	return s
}

// PlanetaryTerm is a planetary-perturbation term whose angle depends on the
// lunation index alone: Coef * sin(A0 + A1*k + A2*t^2).
type PlanetaryTerm struct {
	Coef float64
	A0   float64
	A1   float64
	A2   float64
}

// Angle returns the term's argument in degrees. It is not normalised; the
// sine is periodic.
func (p PlanetaryTerm) Angle(k, t float64) float64 {
	return p.A0 + p.A1*k + p.A2*t*t
}

// SumPlanetary evaluates the Planetary table for lunation index k and
// Julian centuries t.
func SumPlanetary(k, t float64) float64 {
	var s float64
	for _, p := range Planetary {
		s += p.Coef * timeutil.SinD(p.Angle(k, t))
	}
	return s
}

// W is the additional correction applied to quarter phases: added for the
// first quarter, subtracted for the last.
func W(a Arguments) float64 {
	return Sum(quarterW, a)
}
