package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		minutes int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"07:30", 450, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"7:30", 0, true},
		{"07:5", 0, true},
		{" 7:30", 0, true},
		{"07.30", 0, true},
		{"", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		if tc.wantErr {
			assert.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.minutes, got, tc.in)
	}
}

func TestClockAfter(t *testing.T) {
	ok, err := ClockAfter("07:00", "08:30")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = ClockAfter("08:30", "08:30")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = ClockAfter("09:00", "08:00")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = ClockAfter("pagi", "08:00")
	assert.Error(t, err)
}

func TestWeekdayName(t *testing.T) {
	// 2025-01-06 adalah Senin
	monday := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	names := []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
	for i, want := range names {
		assert.Equal(t, want, WeekdayName(monday.AddDate(0, 0, i)))
	}
}
