package lunarphase

import (
	"fmt"
	"time"

	"github.com/thurmanmarka/lunarphase/internal/lunation"
	"github.com/thurmanmarka/lunarphase/internal/timeutil"
)

// EventsBetween returns every phase event with from <= Time <= to, in time
// order. The reference instant of c is not used; only its location and
// collaborators are.
func (c *Calculator) EventsBetween(from, to time.Time) ([]PhaseEvent, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("invalid range: end %s before start %s",
			to.Format(time.RFC3339), from.Format(time.RFC3339))
	}
	if err := c.validate(from); err != nil {
		return nil, err
	}
	if err := c.validate(to); err != nil {
		return nil, err
	}

	// The lunation before from's nearest one always starts before from.
	base := lunation.Index(timeutil.DecimalYear(from)) - 1

	var out []PhaseEvent
	for ; ; base++ {
		events, err := c.eventsFor(base)
		if err != nil {
			return nil, err
		}
		for _, e := range events {
			if e.Time.After(to) {
				return out, nil
			}
			if !e.Time.Before(from) {
				out = append(out, e)
			}
		}
	}
}
