package lunarphase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/thurmanmarka/lunarphase"
)

type fixedClock struct {
	t time.Time
}

func (f fixedClock) Now(loc *time.Location) time.Time {
	return f.t.In(loc)
}

func TestClassifyInstant_FullMoon_2016_11_16(t *testing.T) {
	loc := paris(t)
	at := time.Date(2016, time.November, 16, 0, 0, 0, 0, loc)

	c, err := lunarphase.New(at, lunarphase.WithLocation(loc))
	require.NoError(t, err)

	got, err := c.ClassifyInstant(at)
	require.NoError(t, err)
	assert.Equal(t, lunarphase.FullMoon, got)
	assert.Equal(t, 4, int(got))
}

func TestClassifyInstant_Table(t *testing.T) {
	loc := paris(t)
	c := newParisCalculator(t)

	tests := []struct {
		name string
		at   time.Time
		want lunarphase.Phase
	}{
		{"just after new moon", time.Date(2016, time.November, 1, 0, 0, 0, 0, loc), lunarphase.NewMoon},
		{"between first quarter and waxing gibbous", time.Date(2016, time.November, 9, 0, 0, 0, 0, loc), lunarphase.FirstQuarter},
		{"between waning gibbous and last quarter", time.Date(2016, time.November, 20, 0, 0, 0, 0, loc), lunarphase.WaningGibbous},
		{"next lunation", time.Date(2016, time.November, 30, 0, 0, 0, 0, loc), lunarphase.NewMoon},
		{"next lunation waxing crescent", time.Date(2016, time.December, 5, 0, 0, 0, 0, loc), lunarphase.WaxingCrescent},
		{"new year", time.Date(2017, time.January, 1, 0, 0, 0, 0, loc), lunarphase.NewMoon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.ClassifyInstant(tt.at)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// An instant exactly at a phase event classifies as that event's phase, and
// one second later still does.
func TestClassifyInstant_AtEvents(t *testing.T) {
	c := newParisCalculator(t)

	events, err := c.AllPhaseEvents()
	require.NoError(t, err)

	for _, e := range events[:lunarphase.WaningCrescent] {
		t.Run(e.Phase.String(), func(t *testing.T) {
			got, err := c.ClassifyInstant(e.Time)
			require.NoError(t, err)
			assert.Equal(t, e.Phase, got)

			got, err = c.ClassifyInstant(e.Time.Add(time.Second))
			require.NoError(t, err)
			assert.Equal(t, e.Phase, got)
		})
	}

	for _, e := range events[lunarphase.WaxingCrescent:lunarphase.WaningCrescent] {
		got, err := c.ClassifyInstant(e.Time.Add(-time.Second))
		require.NoError(t, err)
		assert.Equal(t, e.Phase-1, got, "one second before %s", e.Phase)
	}
}

// Instants with sub-second precision, such as those from time.Now, are
// compared at whole seconds: an event a fraction of a second ahead has not
// happened yet.
func TestClassifyInstant_SubSecond(t *testing.T) {
	c := newParisCalculator(t)

	events, err := c.AllPhaseEvents()
	require.NoError(t, err)

	for _, e := range events[lunarphase.WaxingCrescent:lunarphase.WaningCrescent] {
		got, err := c.ClassifyInstant(e.Time.Add(-100 * time.Millisecond))
		require.NoError(t, err)
		assert.Equal(t, e.Phase-1, got, "100ms before %s", e.Phase)
	}
	for _, e := range events[:lunarphase.WaningCrescent] {
		got, err := c.ClassifyInstant(e.Time.Add(900 * time.Millisecond))
		require.NoError(t, err)
		assert.Equal(t, e.Phase, got, "900ms after %s", e.Phase)
	}
}

func TestClassifyNow_SubSecondClock(t *testing.T) {
	loc := paris(t)
	c := newParisCalculator(t)
	fq, err := c.PhaseEvent(lunarphase.FirstQuarter)
	require.NoError(t, err)

	c, err = lunarphase.New(fq.Time, lunarphase.WithLocation(loc),
		lunarphase.WithClock(fixedClock{t: fq.Time.Add(-time.Millisecond)}))
	require.NoError(t, err)

	got, err := c.ClassifyNow()
	require.NoError(t, err)
	assert.Equal(t, lunarphase.WaxingCrescent, got)
}

// From the waning crescent event onwards no event of the chosen lunation
// lies ahead of the instant, and one second before the new moon the
// re-anchored lunation is still the one starting at that new moon. Both
// boundaries yield an explicit empty result.
func TestClassifyInstant_Indeterminate(t *testing.T) {
	loc := paris(t)
	c := newParisCalculator(t)

	tests := []struct {
		name string
		at   time.Time
	}{
		{"at waning crescent", time.Date(2016, time.November, 25, 1, 10, 58, 0, loc)},
		{"after waning crescent", time.Date(2016, time.November, 26, 0, 0, 0, 0, loc)},
		{"before next new moon", time.Date(2016, time.November, 27, 12, 0, 0, 0, loc)},
		{"one second before new moon", time.Date(2016, time.October, 30, 16, 39, 33, 0, loc)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.ClassifyInstant(tt.at)
			require.ErrorIs(t, err, lunarphase.ErrIndeterminate)
			assert.Equal(t, lunarphase.NoPhase, got)
			assert.False(t, got.Valid())
		})
	}
}

func TestClassifyInstant_InvalidInstant(t *testing.T) {
	c := newParisCalculator(t)

	got, err := c.ClassifyInstant(time.Date(1400, time.June, 1, 0, 0, 0, 0, time.UTC))
	require.ErrorIs(t, err, lunarphase.ErrInvalidInstant)
	assert.Equal(t, lunarphase.NoPhase, got)
}

func TestClassifyNow_UsesClock(t *testing.T) {
	loc := paris(t)
	now := time.Date(2016, time.November, 16, 0, 0, 0, 0, loc)

	c, err := lunarphase.New(time.Date(2016, time.November, 1, 0, 0, 0, 0, loc),
		lunarphase.WithClock(fixedClock{t: now}))
	require.NoError(t, err)

	got, err := c.ClassifyNow()
	require.NoError(t, err)
	assert.Equal(t, lunarphase.FullMoon, got)
}

func TestClassifyInstant_LogsReanchor(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	loc := paris(t)

	c, err := lunarphase.New(time.Date(2016, time.November, 1, 0, 0, 0, 0, loc),
		lunarphase.WithLogger(zap.New(core)))
	require.NoError(t, err)

	// 2016-11-16 maps onto the lunation starting 2016-11-29, so the
	// classifier has to step back.
	_, err = c.ClassifyInstant(time.Date(2016, time.November, 16, 0, 0, 0, 0, loc))
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("new moon ahead of instant, re-anchoring").Len())

	_, err = c.ClassifyInstant(time.Date(2016, time.November, 26, 0, 0, 0, 0, loc))
	require.ErrorIs(t, err, lunarphase.ErrIndeterminate)
	assert.Equal(t, 1, logs.FilterMessage("no phase event brackets instant").Len())
}

func TestPhaseAt(t *testing.T) {
	loc := paris(t)

	got, err := lunarphase.PhaseAt(time.Date(2016, time.November, 16, 0, 0, 0, 0, loc))
	require.NoError(t, err)
	assert.Equal(t, lunarphase.FullMoon, got)
}
