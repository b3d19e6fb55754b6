// Package lunarphase computes the times of the eight named lunar phases
// around a reference instant and classifies which phase an instant falls
// in.
//
// Phase times follow the periodic-term method of Jean Meeus (Astronomical
// Algorithms, ch. 49): a mean phase time linear in the lunation index plus
// planetary and lunar correction series. The four intermediate phases are
// placed one eighth of a synodic month after the principal phase before
// them rather than solved for exactly.
//
// Accuracy is that of the low-order series, a few minutes at best.
package lunarphase

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/thurmanmarka/lunarphase/internal/lunation"
	"github.com/thurmanmarka/lunarphase/internal/timeutil"
)

var (
	// ErrInvalidInstant is returned for instants outside the supported
	// range, 1582-12-14 through 9999-09-02.
	ErrInvalidInstant = errors.New("instant outside the supported calendar range")

	// ErrIndeterminate is returned when the classifier finds no phase event
	// bracketing the instant.
	ErrIndeterminate = errors.New("phase could not be determined for this instant")

	// ErrUnknownPhase is returned for values or names that are not one of
	// the eight phases.
	ErrUnknownPhase = errors.New("unknown lunar phase")
)

// PhaseEvent is the computed occurrence of a phase.
type PhaseEvent struct {
	Phase     Phase     `json:"phase"`
	JulianDay float64   `json:"julian_day"`
	Time      time.Time `json:"time"` // in the calculator's location, to the second
}

// Events holds one event per phase of a lunation, indexed by Phase.
type Events [NumPhases]PhaseEvent

// Slice returns the events in phase order.
func (e Events) Slice() []PhaseEvent {
	out := make([]PhaseEvent, NumPhases)
	copy(out, e[:])
	return out
}

// Calculator computes phase events for the lunation nearest to a reference
// instant.
//
// The decimal year derived from the reference is cached and recomputed by
// SetReference. A Calculator must not be used concurrently with
// SetReference; otherwise all methods are safe for concurrent use.
type Calculator struct {
	ref         time.Time
	decimalYear float64
	loc         *time.Location

	cal    Calendar
	dm     DateMath
	clock  Clock
	logger *zap.Logger
}

// New returns a Calculator for the lunation nearest to ref. Event times are
// reported in ref's location unless WithLocation is given.
func New(ref time.Time, opts ...Option) (*Calculator, error) {
	c := &Calculator{
		cal:    GregorianCalendar{},
		dm:     ElapsedDateMath{},
		clock:  SystemClock{},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.loc == nil {
		c.loc = ref.Location()
	}

	if err := c.SetReference(ref); err != nil {
		return nil, err
	}
	return c, nil
}

// Reference returns the reference instant.
func (c *Calculator) Reference() time.Time {
	return c.ref
}

// SetReference replaces the reference instant and recomputes the decimal
// year derived from it.
func (c *Calculator) SetReference(ref time.Time) error {
	if err := c.validate(ref); err != nil {
		return err
	}
	c.ref = ref
	c.decimalYear = timeutil.DecimalYear(ref)
	return nil
}

// DecimalYear returns the reference instant as a fractional year.
func (c *Calculator) DecimalYear() float64 {
	return c.decimalYear
}

// Location returns the time zone event times are reported in.
func (c *Calculator) Location() *time.Location {
	return c.loc
}

// PhaseEvent computes the event of phase p in the reference lunation.
func (c *Calculator) PhaseEvent(p Phase) (PhaseEvent, error) {
	if !p.Valid() {
		return PhaseEvent{}, fmt.Errorf("%w: %d", ErrUnknownPhase, int(p))
	}
	return c.eventAt(lunation.Index(c.decimalYear), p)
}

// AllPhaseEvents computes the eight events of the reference lunation in
// phase order, new moon first.
func (c *Calculator) AllPhaseEvents() (Events, error) {
	return c.eventsFor(lunation.Index(c.decimalYear))
}

// JulianDay converts t to a Julian Day using the same noon-based scheme
// event times are derived with, so that converting the result back yields
// t truncated to the second.
func (c *Calculator) JulianDay(t time.Time) (float64, error) {
	local := t.In(c.loc)
	year, month, day := local.Date()

	jdn, err := c.cal.JulianDayNumber(year, month, day)
	if err != nil {
		return 0, err
	}
	elapsed := c.dm.DiffSeconds(time.Date(year, month, day, 0, 0, 0, 0, c.loc), local)

	// Before noon the Julian day began on the previous civil date. Measure
	// from that date's midnight: it need not be 24 hours back.
	if elapsed < 12*3600 {
		jdn--
		year, month, day, err = c.cal.Date(jdn)
		if err != nil {
			return 0, err
		}
		elapsed = c.dm.DiffSeconds(time.Date(year, month, day, 0, 0, 0, 0, c.loc), local)
	}

	return timeutil.JoinJulianDay(jdn, elapsed), nil
}

// FromJulianDay converts a Julian Day to an instant in the calculator's
// location, truncated to the second.
func (c *Calculator) FromJulianDay(jd float64) (time.Time, error) {
	return c.instantFor(jd)
}

func (c *Calculator) eventsFor(base float64) (Events, error) {
	var events Events
	for p := NewMoon; p <= WaningCrescent; p++ {
		e, err := c.eventAt(base, p)
		if err != nil {
			return Events{}, err
		}
		events[p] = e
	}
	return events, nil
}

func (c *Calculator) eventAt(base float64, p Phase) (PhaseEvent, error) {
	jd := lunation.JulianDay(base, p.quadrant(), p.Intermediate())

	t, err := c.instantFor(jd)
	if err != nil {
		return PhaseEvent{}, fmt.Errorf("%s event: %w", p, err)
	}

	return PhaseEvent{
		Phase:     p,
		JulianDay: jd,
		Time:      t,
	}, nil
}

// instantFor converts a Julian Day to an instant in c.loc: the midnight of
// the civil date carrying the day number, plus the noon-based clock offset
// as elapsed time.
func (c *Calculator) instantFor(jd float64) (time.Time, error) {
	clk := timeutil.SplitJulianDay(jd)

	year, month, day, err := c.cal.Date(clk.Day)
	if err != nil {
		return time.Time{}, err
	}

	midnight := time.Date(year, month, day, 0, 0, 0, 0, c.loc)
	return c.dm.AddSeconds(midnight, clk.Elapsed()), nil
}

// validate accepts references from 1582-12-14 through 9999-09-02.
func (c *Calculator) validate(t time.Time) error {
	year, month, day := t.Date()
	jdn, err := c.cal.JulianDayNumber(year, month, day)
	if err != nil {
		return err
	}
	if jdn < firstReferenceJDN || jdn > lastReferenceJDN {
		return fmt.Errorf("%w: %04d-%02d-%02d outside the supported range 1582-12-14..9999-09-02",
			ErrInvalidInstant, year, int(month), day)
	}
	return nil
}
