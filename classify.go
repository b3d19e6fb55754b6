package lunarphase

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/thurmanmarka/lunarphase/internal/lunation"
	"github.com/thurmanmarka/lunarphase/internal/solver"
	"github.com/thurmanmarka/lunarphase/internal/timeutil"
)

// reanchorSeconds is how far back the classifier moves the query instant
// when the new moon of its lunation has not happened yet.
const reanchorSeconds = 15 * 86400

// ClassifyNow returns the phase the Moon is currently in, using the
// configured Clock in the calculator's location.
func (c *Calculator) ClassifyNow() (Phase, error) {
	return c.ClassifyInstant(c.clock.Now(c.loc))
}

// ClassifyInstant returns the phase t falls in: the last phase whose event
// is not after t. An instant exactly at an event classifies as that event's
// phase.
//
// The lunation is chosen from t's decimal year. If its new moon is still
// ahead of t, the lookup is redone 15 days earlier. When no event of the
// chosen lunation brackets t, which happens from the waning crescent event
// up to the next lunation's anchor, NoPhase and ErrIndeterminate are
// returned.
func (c *Calculator) ClassifyInstant(t time.Time) (Phase, error) {
	if err := c.validate(t); err != nil {
		return NoPhase, err
	}
	// Event times are whole seconds.
	t = t.Truncate(time.Second)

	dy := timeutil.DecimalYear(t)
	newMoon, err := c.eventAt(lunation.Index(dy), NewMoon)
	if err != nil {
		return NoPhase, err
	}

	if c.dm.DiffSeconds(t, newMoon.Time) > 0 {
		anchor := c.dm.AddSeconds(t, -reanchorSeconds)
		dy = timeutil.DecimalYear(anchor)
		c.logger.Debug("new moon ahead of instant, re-anchoring",
			zap.Time("instant", t),
			zap.Time("new_moon", newMoon.Time),
			zap.Time("anchor", anchor),
			zap.Float64("decimal_year", dy),
		)
	}

	events, err := c.eventsFor(lunation.Index(dy))
	if err != nil {
		return NoPhase, err
	}

	offsets := make([]float64, NumPhases)
	for i, e := range events {
		offsets[i] = float64(c.dm.DiffSeconds(t, e.Time))
	}

	switch {
	case offsets[NewMoon] < 0:
		// First event still ahead of t; the phase is the one before it.
		res := solver.FindCrossing(offsets, solver.CrossingUp)
		if res.OK {
			return events[res.Index].Phase - 1, nil
		}
	case offsets[NewMoon] == 0:
		return NewMoon, nil
	}

	c.logger.Debug("no phase event brackets instant",
		zap.Time("instant", t),
		zap.Time("new_moon", events[NewMoon].Time),
		zap.Time("waning_crescent", events[WaningCrescent].Time),
	)
	return NoPhase, fmt.Errorf("%w: %s", ErrIndeterminate, t.Format(time.RFC3339))
}

// PhaseAt classifies t with a default Calculator in t's location.
func PhaseAt(t time.Time) (Phase, error) {
	c, err := New(t)
	if err != nil {
		return NoPhase, err
	}
	return c.ClassifyInstant(t)
}
