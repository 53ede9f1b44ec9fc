package streaks

import "github.com/comitanigiacomo/rings-closed-engine/internal/core/domain"

// Summary maps one raw record onto the goal outcome of dim. It returns false
// when the record's day cannot be resolved or when the goal is missing or not
// positive: a zero goal means the dimension was not tracked that day, which
// is different from a missed goal.
func Summary(dim domain.Dimension, record *domain.ActivityRecord, cal domain.Calendar) (domain.ActivitySummary, bool) {
	if record == nil {
		return domain.ActivitySummary{}, false
	}

	day, ok := cal.Date(record.DateComponents)
	if !ok {
		return domain.ActivitySummary{}, false
	}

	value, goal := record.Measurement(dim)
	if goal == nil || *goal <= 0 {
		return domain.ActivitySummary{}, false
	}

	return domain.NewActivitySummary(day, value >= *goal), true
}

// Summaries applies Summary to every record, keeping their order and
// silently dropping records without a usable goal.
func Summaries(dim domain.Dimension, records []*domain.ActivityRecord, cal domain.Calendar) []domain.ActivitySummary {
	summaries := make([]domain.ActivitySummary, 0, len(records))
	for _, r := range records {
		if s, ok := Summary(dim, r, cal); ok {
			summaries = append(summaries, s)
		}
	}
	return summaries
}
