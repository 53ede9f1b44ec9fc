package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func utcDay(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestNewActivityStreak(t *testing.T) {
	t.Run("Fails when summaries empty", func(t *testing.T) {
		_, ok := NewActivityStreak(nil, false)
		assert.False(t, ok)
	})

	t.Run("Single summary", func(t *testing.T) {
		s, ok := NewActivityStreak([]ActivitySummary{{Date: utcDay(2024, 5, 6), DidComplete: true}}, true)
		require.True(t, ok)
		assert.Equal(t, utcDay(2024, 5, 6), s.StartDate)
		assert.Equal(t, utcDay(2024, 5, 6), s.EndDate)
		assert.True(t, s.IsCurrentStreak)
		assert.Equal(t, 1, s.Days(NewCalendar(time.UTC)))
	})

	t.Run("Copies summaries", func(t *testing.T) {
		summaries := []ActivitySummary{
			{Date: utcDay(2024, 5, 6), DidComplete: true},
			{Date: utcDay(2024, 5, 7), DidComplete: true},
		}
		s, ok := NewActivityStreak(summaries, false)
		require.True(t, ok)

		summaries[0].Date = utcDay(1999, 1, 1)

		assert.Equal(t, utcDay(2024, 5, 6), s.Summaries[0].Date)
		assert.Equal(t, utcDay(2024, 5, 7), s.EndDate)
	})
}

func TestActivityStreaks(t *testing.T) {
	cal := NewCalendar(time.UTC)

	short, _ := NewActivityStreak([]ActivitySummary{{Date: utcDay(2024, 1, 1), DidComplete: true}}, false)
	long, _ := NewActivityStreak([]ActivitySummary{
		{Date: utcDay(2024, 1, 3), DidComplete: true},
		{Date: utcDay(2024, 1, 4), DidComplete: true},
	}, false)
	current, _ := NewActivityStreak([]ActivitySummary{{Date: utcDay(2024, 1, 9), DidComplete: true}}, true)

	streaks := ActivityStreaks{Move: []ActivityStreak{short, long, current}}

	t.Run("Zero value is empty", func(t *testing.T) {
		var empty ActivityStreaks
		for _, d := range AllDimensions {
			assert.Empty(t, empty.For(d))
		}
	})

	t.Run("Current", func(t *testing.T) {
		got, ok := streaks.Current(DimensionMove)
		require.True(t, ok)
		assert.Equal(t, current, got)

		_, ok = streaks.Current(DimensionStand)
		assert.False(t, ok)
	})

	t.Run("Longest", func(t *testing.T) {
		got, ok := streaks.Longest(DimensionMove, cal)
		require.True(t, ok)
		assert.Equal(t, long, got)

		_, ok = streaks.Longest(DimensionExercise, cal)
		assert.False(t, ok)
	})

	t.Run("Unknown dimension", func(t *testing.T) {
		assert.Nil(t, streaks.For(Dimension("swim")))
	})
}

func TestFormatDateRange(t *testing.T) {
	cal := NewCalendar(time.UTC)

	tests := []struct {
		name       string
		start, end time.Time
		want       string
	}{
		{"One day", utcDay(2024, 5, 6), utcDay(2024, 5, 6), "May 6, 2024"},
		{"Same month", utcDay(2024, 5, 6), utcDay(2024, 5, 7), "May 6 – 7, 2024"},
		{"Same year", utcDay(2024, 5, 30), utcDay(2024, 6, 2), "May 30 – Jun 2, 2024"},
		{"Across years", utcDay(2024, 12, 30), utcDay(2025, 1, 2), "Dec 30, 2024 – Jan 2, 2025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, ok := NewActivityStreak([]ActivitySummary{
				{Date: tt.start, DidComplete: true},
				{Date: tt.end, DidComplete: true},
			}, false)
			require.True(t, ok)
			assert.Equal(t, tt.want, FormatDateRange(s, cal))
		})
	}
}

func TestFormatDateRange_UsesCalendarLocation(t *testing.T) {
	tokyo := time.FixedZone("UTC+9", 9*60*60)
	start := time.Date(2024, 5, 6, 0, 0, 0, 0, tokyo)

	s, ok := NewActivityStreak([]ActivitySummary{{Date: start, DidComplete: true}}, false)
	require.True(t, ok)

	assert.Equal(t, "May 6, 2024", FormatDateRange(s, NewCalendar(tokyo)))
	assert.Equal(t, "May 5, 2024", FormatDateRange(s, NewCalendar(time.UTC)))
}

func TestFormatDuration(t *testing.T) {
	cal := NewCalendar(time.UTC)

	t.Run("One day", func(t *testing.T) {
		s, _ := NewActivityStreak([]ActivitySummary{{Date: utcDay(2024, 5, 6), DidComplete: true}}, false)
		assert.Equal(t, "1 day", FormatDuration(s, cal))
	})

	t.Run("Two days", func(t *testing.T) {
		s, _ := NewActivityStreak([]ActivitySummary{
			{Date: utcDay(2024, 5, 6), DidComplete: true},
			{Date: utcDay(2024, 5, 7), DidComplete: true},
		}, false)
		assert.Equal(t, "2 days", FormatDuration(s, cal))
	})

	t.Run("Thirty days", func(t *testing.T) {
		s, _ := NewActivityStreak([]ActivitySummary{
			{Date: utcDay(2024, 5, 1), DidComplete: true},
			{Date: utcDay(2024, 5, 30), DidComplete: true},
		}, false)
		assert.Equal(t, "30 days", FormatDuration(s, cal))
	})

	t.Run("Falls back when end precedes start", func(t *testing.T) {
		s := ActivityStreak{StartDate: utcDay(2024, 5, 6), EndDate: utcDay(2024, 5, 1)}
		assert.Equal(t, "Since May 6, 2024", FormatDuration(s, cal))
	})
}
