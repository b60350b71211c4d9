package dateutil_test

import (
	"testing"
	"time"

	"github.com/funkybooboo/alle-sub000/pkg/dateutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_ReturnsMidnightUTC(t *testing.T) {
	got, err := dateutil.Parse("2025-01-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), got)
	assert.Equal(t, "2025-01-01", dateutil.Format(got))
}

func TestParse_RejectsInvalidDate(t *testing.T) {
	_, err := dateutil.Parse("2025-13-01")
	require.Error(t, err)
}

func TestRange_IncludesBothEnds(t *testing.T) {
	from := time.Date(2025, 2, 27, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)

	days := dateutil.Range(from, to)
	require.Len(t, days, 4)
	assert.Equal(t, "2025-02-27", dateutil.Format(days[0]))
	assert.Equal(t, "2025-03-02", dateutil.Format(days[3]))
	assert.Nil(t, dateutil.Range(to, from))
}

func TestWeekStart_ReturnsMonday(t *testing.T) {
	sunday := time.Date(2025, 1, 5, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-12-30", dateutil.Format(dateutil.WeekStart(sunday)))

	monday := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-01-06", dateutil.Format(dateutil.WeekStart(monday)))
}

func TestCompare_PlacesNilLast(t *testing.T) {
	a := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	b := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, -1, dateutil.Compare(&a, &b))
	assert.Equal(t, 1, dateutil.Compare(&b, &a))
	assert.Equal(t, 0, dateutil.Compare(&a, &a))
	assert.Equal(t, -1, dateutil.Compare(&a, nil))
	assert.Equal(t, 1, dateutil.Compare(nil, &a))
	assert.Equal(t, 0, dateutil.Compare(nil, nil))
}

func TestInRangeAndDaysBetween(t *testing.T) {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	assert.True(t, dateutil.InRange(time.Date(2025, 1, 10, 23, 0, 0, 0, time.UTC), from, to))
	assert.False(t, dateutil.InRange(time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC), from, to))
	assert.Equal(t, 9, dateutil.DaysBetween(from, to))
	assert.Equal(t, -9, dateutil.DaysBetween(to, from))
	assert.True(t, dateutil.SameDay(from, time.Date(2025, 1, 1, 18, 30, 0, 0, time.UTC)))
}
