package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(2024, time.August))
	assert.Equal(t, 30, DaysInMonth(2024, time.September))
	assert.Equal(t, 31, DaysInMonth(2024, time.December))

	// Leap year handling
	assert.Equal(t, 29, DaysInMonth(2024, time.February))
	assert.Equal(t, 28, DaysInMonth(2023, time.February))
	assert.Equal(t, 28, DaysInMonth(2100, time.February))
	assert.Equal(t, 29, DaysInMonth(2000, time.February))
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-08-07")
	require.NoError(t, err)
	assert.Equal(t, 2024, date.Year())
	assert.Equal(t, time.August, date.Month())
	assert.Equal(t, 7, date.Day())

	_, err = ParseDate("not-a-date")
	assert.Error(t, err)
}

func TestFormatDate(t *testing.T) {
	date := time.Date(2024, time.August, 7, 15, 30, 0, 0, time.Local)
	assert.Equal(t, "2024-08-07", FormatDate(date))
}

func TestBeforeAfterMonth(t *testing.T) {
	july := time.Date(2024, time.July, 28, 0, 0, 0, 0, time.UTC)
	august := time.Date(2024, time.August, 15, 0, 0, 0, 0, time.UTC)
	december := time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC)

	assert.True(t, BeforeMonth(july, 2024, time.August))
	assert.False(t, BeforeMonth(august, 2024, time.August))
	assert.True(t, BeforeMonth(december, 2024, time.January))

	assert.True(t, AfterMonth(august, 2024, time.July))
	assert.False(t, AfterMonth(august, 2024, time.August))
	assert.False(t, AfterMonth(december, 2024, time.January))
}

func TestContainsDay(t *testing.T) {
	start := time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.August, 3, 0, 0, 0, 0, time.UTC)

	assert.True(t, ContainsDay(start, end, start))
	assert.True(t, ContainsDay(start, end, end))
	assert.True(t, ContainsDay(start, end, time.Date(2024, time.August, 2, 0, 0, 0, 0, time.UTC)))
	assert.False(t, ContainsDay(start, end, time.Date(2024, time.August, 4, 0, 0, 0, 0, time.UTC)))
	assert.False(t, ContainsDay(start, end, time.Date(2024, time.July, 31, 0, 0, 0, 0, time.UTC)))

	// Times of day are irrelevant
	noon := time.Date(2024, time.August, 3, 12, 45, 0, 0, time.Local)
	assert.True(t, ContainsDay(start, end, noon))
}

func TestSameDay(t *testing.T) {
	a := time.Date(2024, time.August, 3, 0, 0, 0, 0, time.UTC)
	b := time.Date(2024, time.August, 3, 23, 59, 59, 0, time.Local)
	c := time.Date(2024, time.August, 4, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(a, c))
}
