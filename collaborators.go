package lunarphase

import (
	"fmt"
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// Calendar converts between civil dates and integer Julian Day Numbers.
// A Julian Day Number names the day whose noon it falls on.
type Calendar interface {
	JulianDayNumber(year int, month time.Month, day int) (int, error)
	Date(jdn int) (year int, month time.Month, day int, err error)
}

// DateMath performs elapsed-time arithmetic on instants.
type DateMath interface {
	// AddSeconds returns t moved by seconds of elapsed time.
	AddSeconds(t time.Time, seconds int64) time.Time
	// DiffSeconds returns b - a in whole seconds.
	DiffSeconds(a, b time.Time) int64
}

// Clock supplies the current instant.
type Clock interface {
	Now(loc *time.Location) time.Time
}

const (
	// gregorianStartJDN is 1582-10-15, the first day of the Gregorian calendar.
	gregorianStartJDN = 2299161
	// gregorianEndJDN is 9999-12-31.
	gregorianEndJDN = 5373484

	// Phase lookups reach up to about 45 days before a reference near the
	// start of the range and about 100 days after one near the end, so
	// references are held back from both ends of the calendar.
	firstReferenceJDN = gregorianStartJDN + 60 // 1582-12-14
	lastReferenceJDN  = gregorianEndJDN - 120  // 9999-09-02
)

// GregorianCalendar is the default Calendar. It supports Gregorian dates
// from 1582-10-15 through 9999-12-31 and reports ErrInvalidInstant outside
// that range.
type GregorianCalendar struct{}

func (GregorianCalendar) JulianDayNumber(year int, month time.Month, day int) (int, error) {
	jd := julian.CalendarGregorianToJD(year, int(month), float64(day))
	jdn := int(math.Floor(jd + 0.5))
	if jdn < gregorianStartJDN || jdn > gregorianEndJDN {
		return 0, fmt.Errorf("%w: %04d-%02d-%02d outside the Gregorian range 1582-10-15..9999-12-31",
			ErrInvalidInstant, year, int(month), day)
	}
	return jdn, nil
}

func (GregorianCalendar) Date(jdn int) (int, time.Month, int, error) {
	if jdn < gregorianStartJDN || jdn > gregorianEndJDN {
		return 0, 0, 0, fmt.Errorf("%w: Julian Day Number %d outside the Gregorian range", ErrInvalidInstant, jdn)
	}
	y, m, d := julian.JDToCalendar(float64(jdn))
	return y, time.Month(m), int(d), nil
}

// ElapsedDateMath is the default DateMath. Additions are absolute elapsed
// time, so adding 17 hours to a local midnight on a daylight saving change
// lands on 16:00 or 18:00 wall clock time.
type ElapsedDateMath struct{}

func (ElapsedDateMath) AddSeconds(t time.Time, seconds int64) time.Time {
	return t.Add(time.Duration(seconds) * time.Second)
}

// DiffSeconds floors to whole seconds, so a difference of -0.5s is -1.
func (ElapsedDateMath) DiffSeconds(a, b time.Time) int64 {
	d := b.Sub(a)
	s := int64(d / time.Second)
	if d%time.Second < 0 {
		s--
	}
	return s
}

// SystemClock is the default Clock, backed by time.Now.
type SystemClock struct{}

func (SystemClock) Now(loc *time.Location) time.Time {
	return time.Now().In(loc)
}
