package dateutil

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormatRoundTrip(t *testing.T) {
	for _, s := range []string{"2024-01-01", "2024-02-29", "1999-12-31", "2030-07-04"} {
		d, err := Parse(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, Format(d))
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	d := time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC)
	got, err := Parse(Format(d))
	require.NoError(t, err)
	assert.True(t, d.Equal(got))
}

func TestParseRejectsMalformed(t *testing.T) {
	bad := []string{
		"",
		"2024/01/01",
		"2024.01.01",
		"24-01-01",
		"2024-1-01",
		"2024-01-1",
		"2024-13-01",
		"2024-00-10",
		"2024-02-30",
		"2023-02-29",
		"2024-01-32",
		" 2024-01-01",
		"2024-01-01 ",
		"01-02-2024",
		"tomorrow",
	}
	for _, s := range bad {
		_, err := Parse(s)
		require.Error(t, err, s)

		var fe *FormatError
		require.True(t, errors.As(err, &fe), s)
		assert.Equal(t, s, fe.Text)
		assert.Equal(t, FormatHint, fe.Expected)
		assert.False(t, IsValid(s), s)
	}
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("2024-06-15"))
	assert.False(t, IsValid("2024-6-15"))
}

func TestDaysBetween(t *testing.T) {
	today := time.Date(2024, time.March, 10, 23, 59, 0, 0, time.UTC)
	due := time.Date(2024, time.March, 13, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 3, DaysBetween(today, due))
	assert.Equal(t, -3, DaysBetween(due, today))
	assert.Equal(t, 0, DaysBetween(today, today))
}

func TestDaysBetweenAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	from := time.Date(2024, time.March, 9, 12, 0, 0, 0, loc)
	to := time.Date(2024, time.March, 11, 12, 0, 0, 0, loc)
	assert.Equal(t, 2, DaysBetween(from, to))
}
