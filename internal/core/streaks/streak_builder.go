package streaks

import (
	"time"

	"github.com/comitanigiacomo/rings-closed-engine/internal/core/domain"
)

// Build partitions day-ordered summaries into maximal streaks.
//
// summaries must be ascending by day with at most one entry per day. Two
// completed days belong to the same streak only when they are exactly one
// calendar day apart; a duplicate day or an out-of-order entry starts a new
// streak instead of failing.
//
// Today is not over yet: when the last summary falls on today and its goal is
// still open, it keeps the preceding run alive. The resulting streak is
// flagged current but ends on yesterday.
func Build(summaries []domain.ActivitySummary, today time.Time, cal domain.Calendar) []domain.ActivityStreak {
	if len(summaries) == 0 {
		return []domain.ActivityStreak{}
	}

	completed := make([]domain.ActivitySummary, 0, len(summaries))
	for _, s := range summaries {
		if s.DidComplete {
			completed = append(completed, s)
		}
	}

	if last := summaries[len(summaries)-1]; !last.DidComplete && cal.IsSameDay(last.Date, today) {
		completed = append(completed, last)
	}

	result := make([]domain.ActivityStreak, 0)
	for _, run := range chunkConsecutiveDays(completed, cal) {
		isCurrent := false
		if last := run[len(run)-1]; cal.IsSameDay(last.Date, today) {
			if !last.DidComplete {
				run = run[:len(run)-1]
			}
			isCurrent = true
		}

		if streak, ok := domain.NewActivityStreak(run, isCurrent); ok {
			result = append(result, streak)
		}
	}

	return result
}

func chunkConsecutiveDays(summaries []domain.ActivitySummary, cal domain.Calendar) [][]domain.ActivitySummary {
	var runs [][]domain.ActivitySummary

	start := 0
	for i := 1; i <= len(summaries); i++ {
		if i < len(summaries) && cal.DaysBetween(summaries[i-1].Date, summaries[i].Date) == 1 {
			continue
		}
		if i > start {
			runs = append(runs, summaries[start:i])
		}
		start = i
	}

	return runs
}
