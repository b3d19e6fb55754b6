package lunarphase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thurmanmarka/lunarphase"
)

func TestElapsedDateMath_DiffSecondsFloors(t *testing.T) {
	var dm lunarphase.ElapsedDateMath
	a := time.Date(2016, time.November, 7, 19, 53, 23, 0, time.UTC)

	tests := []struct {
		b    time.Time
		want int64
	}{
		{a, 0},
		{a.Add(900 * time.Millisecond), 0},
		{a.Add(1500 * time.Millisecond), 1},
		{a.Add(-500 * time.Millisecond), -1},
		{a.Add(-time.Second), -1},
		{a.Add(-1100 * time.Millisecond), -2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, dm.DiffSeconds(a, tt.b), "b - a = %s", tt.b.Sub(a))
	}
}

func TestGregorianCalendar(t *testing.T) {
	var cal lunarphase.GregorianCalendar

	jdn, err := cal.JulianDayNumber(2016, time.October, 30)
	require.NoError(t, err)
	assert.Equal(t, 2457692, jdn)

	y, m, d, err := cal.Date(jdn)
	require.NoError(t, err)
	assert.Equal(t, []int{2016, 10, 30}, []int{y, int(m), d})

	_, err = cal.JulianDayNumber(1582, time.October, 14)
	require.ErrorIs(t, err, lunarphase.ErrInvalidInstant)
	_, _, _, err = cal.Date(2299160)
	require.ErrorIs(t, err, lunarphase.ErrInvalidInstant)
}

// Every lookup from a reference inside the supported range stays on dates
// the calendar can convert, including the lunation before it and the
// re-anchored one.
func TestSupportedRange_Edges(t *testing.T) {
	refs := []time.Time{
		time.Date(1582, time.December, 14, 0, 0, 0, 0, time.UTC),
		time.Date(1583, time.January, 20, 12, 0, 0, 0, time.UTC),
		time.Date(9999, time.August, 1, 0, 0, 0, 0, time.UTC),
		time.Date(9999, time.September, 2, 23, 59, 59, 0, time.UTC),
	}
	for _, ref := range refs {
		t.Run(ref.Format("2006-01-02"), func(t *testing.T) {
			c, err := lunarphase.New(ref)
			require.NoError(t, err)

			_, err = c.AllPhaseEvents()
			require.NoError(t, err)

			_, err = c.EventsBetween(ref, ref)
			require.NoError(t, err)

			_, err = c.ClassifyInstant(ref)
			assert.NotErrorIs(t, err, lunarphase.ErrInvalidInstant)
		})
	}

	for _, ref := range []time.Time{
		time.Date(1582, time.October, 15, 0, 0, 0, 0, time.UTC),
		time.Date(1582, time.December, 13, 23, 59, 59, 0, time.UTC),
		time.Date(9999, time.September, 3, 0, 0, 0, 0, time.UTC),
	} {
		_, err := lunarphase.New(ref)
		assert.ErrorIs(t, err, lunarphase.ErrInvalidInstant, "%s", ref)
	}

	c, err := lunarphase.New(time.Date(9999, time.August, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	_, err = c.EventsBetween(c.Reference(), time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC))
	require.ErrorIs(t, err, lunarphase.ErrInvalidInstant)
}
