package streaks

import (
	"time"

	"github.com/comitanigiacomo/rings-closed-engine/internal/core/domain"
)

// ForDimension computes the streaks of a single dimension from raw records.
func ForDimension(dim domain.Dimension, records []*domain.ActivityRecord, today time.Time, cal domain.Calendar) []domain.ActivityStreak {
	return Build(Summaries(dim, records, cal), today, cal)
}

// ForOptions computes the streaks of every dimension in opts. Dimensions left
// out are returned as empty lists and their records are never scanned.
//
// opts must not be empty; callers always know at compile time which
// dimensions they need, so an empty set is a programming error.
func ForOptions(opts domain.StreaksOptions, records []*domain.ActivityRecord, today time.Time, cal domain.Calendar) domain.ActivityStreaks {
	if opts.IsEmpty() {
		panic("streaks: ForOptions called with no dimensions")
	}

	result := domain.ActivityStreaks{
		Exercise: []domain.ActivityStreak{},
		Move:     []domain.ActivityStreak{},
		Stand:    []domain.ActivityStreak{},
	}

	if opts.Contains(domain.DimensionExercise) {
		result.Exercise = ForDimension(domain.DimensionExercise, records, today, cal)
	}
	if opts.Contains(domain.DimensionMove) {
		result.Move = ForDimension(domain.DimensionMove, records, today, cal)
	}
	if opts.Contains(domain.DimensionStand) {
		result.Stand = ForDimension(domain.DimensionStand, records, today, cal)
	}

	return result
}

// All computes the streaks of exercise, move and stand.
func All(records []*domain.ActivityRecord, today time.Time, cal domain.Calendar) domain.ActivityStreaks {
	return ForOptions(domain.AllStreaksOptions(), records, today, cal)
}
