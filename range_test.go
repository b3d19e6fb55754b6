package lunarphase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thurmanmarka/lunarphase"
)

func TestEventsBetween_Year(t *testing.T) {
	c, err := lunarphase.New(time.Date(2016, time.January, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	from := time.Date(2016, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2016, time.December, 31, 23, 59, 59, 0, time.UTC)

	events, err := c.EventsBetween(from, to)
	require.NoError(t, err)
	require.Len(t, events, 99)

	assert.Equal(t, lunarphase.LastQuarter, events[0].Phase)
	assert.Equal(t, "2016-01-02 05:31:49", events[0].Time.Format(layout))
	assert.Equal(t, lunarphase.NewMoon, events[len(events)-1].Phase)
	assert.Equal(t, "2016-12-29 06:54:26", events[len(events)-1].Time.Format(layout))

	for i := 1; i < len(events); i++ {
		prev, cur := events[i-1], events[i]
		assert.True(t, cur.Time.After(prev.Time), "event %d (%s) not after %s", i, cur.Phase, prev.Phase)
		assert.Equal(t, prev.Phase.Next(), cur.Phase, "event %d", i)
	}
}

func TestEventsBetween_MatchesLunation(t *testing.T) {
	c := newParisCalculator(t)

	lunation, err := c.AllPhaseEvents()
	require.NoError(t, err)

	events, err := c.EventsBetween(lunation[lunarphase.NewMoon].Time, lunation[lunarphase.WaningCrescent].Time)
	require.NoError(t, err)
	assert.Equal(t, lunation.Slice(), events)
}

func TestEventsBetween_EmptyAndInvalid(t *testing.T) {
	c := newParisCalculator(t)
	loc := paris(t)

	// No event between the waxing gibbous and full moon of the fixture.
	events, err := c.EventsBetween(
		time.Date(2016, time.November, 12, 0, 0, 0, 0, loc),
		time.Date(2016, time.November, 13, 0, 0, 0, 0, loc),
	)
	require.NoError(t, err)
	assert.Empty(t, events)

	_, err = c.EventsBetween(
		time.Date(2016, time.November, 13, 0, 0, 0, 0, loc),
		time.Date(2016, time.November, 12, 0, 0, 0, 0, loc),
	)
	require.Error(t, err)

	_, err = c.EventsBetween(
		time.Date(1000, time.January, 1, 0, 0, 0, 0, loc),
		time.Date(2016, time.November, 12, 0, 0, 0, 0, loc),
	)
	require.ErrorIs(t, err, lunarphase.ErrInvalidInstant)
}
