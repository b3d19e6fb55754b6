package lunarphase

import (
	"time"

	"go.uber.org/zap"
)

// Option configures a Calculator.
type Option func(*Calculator)

// WithLocation sets the time zone of the returned event times. Without it
// the reference instant's location is used.
func WithLocation(loc *time.Location) Option {
	return func(c *Calculator) {
		c.loc = loc
	}
}

// WithCalendar replaces the date to Julian Day Number conversion.
func WithCalendar(cal Calendar) Option {
	return func(c *Calculator) {
		c.cal = cal
	}
}

// WithDateMath replaces the elapsed-time arithmetic on instants.
func WithDateMath(dm DateMath) Option {
	return func(c *Calculator) {
		c.dm = dm
	}
}

// WithClock replaces the clock used by ClassifyNow.
func WithClock(clk Clock) Option {
	return func(c *Calculator) {
		c.clock = clk
	}
}

// WithLogger attaches a logger for debug tracing of the classifier. A nil
// logger disables logging.
func WithLogger(l *zap.Logger) Option {
	return func(c *Calculator) {
		if l == nil {
			l = zap.NewNop()
		}
		c.logger = l
	}
}
