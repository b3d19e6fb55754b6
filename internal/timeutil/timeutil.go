package timeutil

import (
	"math"
	"time"

	"github.com/soniakeys/unit"
)

// SecondsPerYear is the length of the Julian year in seconds. Decimal years
// use it as the year length regardless of the calendar year's actual length.
const SecondsPerYear = 31557600

const secondsPerDay = 86400

// DayOfYear returns the zero-based day of year for t in t's own location
// (1 January is day 0).
func DayOfYear(t time.Time) int {
	return t.YearDay() - 1
}

// DecimalYear expresses t as a fractional year: the calendar year plus the
// elapsed whole days converted with the Julian year length. The time of day
// is deliberately ignored.
func DecimalYear(t time.Time) float64 {
	return float64(t.Year()) + float64(DayOfYear(t)*secondsPerDay)/SecondsPerYear
}

// -----------------------------
// Julian Day split (noon-based)
// -----------------------------

// Clock is a Julian Day broken into its integer day number and an
// hour/minute/second offset measured from the midnight of the civil date
// that carries that day number. Hour is in [12, 36): Julian days start at
// noon, so the second half of a Julian day lands on the next civil date.
type Clock struct {
	Day    int
	Hour   int
	Minute int
	Second float64
}

// SplitJulianDay breaks jd into a day number and a noon-based clock.
// Seconds keep their fractional part; Elapsed floors them.
func SplitJulianDay(jd float64) Clock {
	d := math.Floor(jd)
	f := jd - d

	h := math.Floor(24*f) + 12
	m := math.Floor(1440 * (f - (h-12)/24))
	s := secondsPerDay * (f - (h-12)/24 - m/1440)

	return Clock{
		Day:    int(d),
		Hour:   int(h),
		Minute: int(m),
		Second: s,
	}
}

// Elapsed returns the whole seconds from midnight of the civil date of
// c.Day to the instant c describes. Seconds are floored, never rounded.
func (c Clock) Elapsed() int64 {
	return int64(c.Hour)*3600 + int64(c.Minute)*60 + int64(math.Floor(c.Second))
}

// JoinJulianDay is the inverse of SplitJulianDay: it takes a day number and
// the whole seconds elapsed since midnight of that civil date, expected in
// [12h, 36h) like Clock.Elapsed. The half second added places the result in
// the middle of the represented second so that SplitJulianDay floors back to
// the same second.
func JoinJulianDay(day int, elapsed int64) float64 {
	return float64(day) + (float64(elapsed)-secondsPerDay/2+0.5)/secondsPerDay
}

// -----------------------------
// Angle helpers
// -----------------------------

// Normalize360 maps an angle in degrees into [0, 360) using
// (a/360 - floor(a/360)) * 360.
func Normalize360(a float64) float64 {
	r := a / 360
	n := (r - math.Floor(r)) * 360
	// r - floor(r) can round up to exactly 1 for tiny negative inputs.
	if n >= 360 {
		return 0
	}
	return n
}

// SinD and CosD take degrees.
func SinD(deg float64) float64 {
	return unit.AngleFromDeg(deg).Sin()
}

func CosD(deg float64) float64 {
	return unit.AngleFromDeg(deg).Cos()
}
