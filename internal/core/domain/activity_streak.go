package domain

import "time"

// ActivityStreak is one contiguous run of completed days. It is built once by
// the streak builder and never mutated.
type ActivityStreak struct {
	StartDate       time.Time         `json:"start_date"`
	EndDate         time.Time         `json:"end_date"`
	Summaries       []ActivitySummary `json:"summaries"`
	IsCurrentStreak bool              `json:"is_current_streak"`
}

// NewActivityStreak returns false when summaries is empty. The slice is copied
// so later changes by the caller do not leak into the streak.
func NewActivityStreak(summaries []ActivitySummary, isCurrentStreak bool) (ActivityStreak, bool) {
	if len(summaries) == 0 {
		return ActivityStreak{}, false
	}

	owned := make([]ActivitySummary, len(summaries))
	copy(owned, summaries)

	return ActivityStreak{
		StartDate:       owned[0].Date,
		EndDate:         owned[len(owned)-1].Date,
		Summaries:       owned,
		IsCurrentStreak: isCurrentStreak,
	}, true
}

// Days is the number of calendar days covered, counting both ends.
func (s ActivityStreak) Days(cal Calendar) int {
	if len(s.Summaries) == 0 {
		return 0
	}
	return cal.DaysBetween(s.StartDate, s.EndDate) + 1
}

// ActivityStreaks holds the independent streak lists of every dimension. The
// zero value means "not calculated yet".
type ActivityStreaks struct {
	Exercise []ActivityStreak `json:"exercise"`
	Move     []ActivityStreak `json:"move"`
	Stand    []ActivityStreak `json:"stand"`
}

func (s ActivityStreaks) For(dim Dimension) []ActivityStreak {
	switch dim {
	case DimensionExercise:
		return s.Exercise
	case DimensionMove:
		return s.Move
	case DimensionStand:
		return s.Stand
	default:
		return nil
	}
}

// Current returns the streak still open today for dim, if any.
func (s ActivityStreaks) Current(dim Dimension) (ActivityStreak, bool) {
	for _, streak := range s.For(dim) {
		if streak.IsCurrentStreak {
			return streak, true
		}
	}
	return ActivityStreak{}, false
}

func (s ActivityStreaks) Longest(dim Dimension, cal Calendar) (ActivityStreak, bool) {
	var (
		best  ActivityStreak
		found bool
	)
	for _, streak := range s.For(dim) {
		if !found || streak.Days(cal) > best.Days(cal) {
			best = streak
			found = true
		}
	}
	return best, found
}
