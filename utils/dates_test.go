package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateAcceptsLegacyLayouts(t *testing.T) {
	want := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	for _, value := range []string{
		"2026-03-10",
		"2026-03-10T15:30:00Z",
		"10/03/2026",
		"  2026-03-10  ",
	} {
		got, err := ParseDate(value)
		require.NoError(t, err, value)
		assert.Equal(t, want, got, value)
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	for _, value := range []string{"", "   ", "amanhã", "2026-13-40"} {
		_, err := ParseDate(value)
		assert.Error(t, err, "%q", value)
	}
}

func TestDayTruncates(t *testing.T) {
	late := time.Date(2026, 3, 10, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), Day(late))
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(2026, time.March))
	assert.Equal(t, 28, DaysInMonth(2026, time.February))
	assert.Equal(t, 29, DaysInMonth(2028, time.February))
	assert.Equal(t, 30, DaysInMonth(2026, time.April))
}

func TestWeekRangeIsMondayAnchored(t *testing.T) {
	wednesday := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	start, end := WeekRange(wednesday)
	assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), end)

	// Sunday closes the week instead of opening the next one.
	sunday := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	start, end = WeekRange(sunday)
	assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), end)
}

func TestMonthRange(t *testing.T) {
	start, end := MonthRange(time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC), end)
}
