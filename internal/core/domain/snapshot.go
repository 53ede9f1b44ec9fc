package domain

import "time"

// StreakSnapshot is the precomputed per-dimension state served to widgets.
type StreakSnapshot struct {
	UserID    string    `json:"-" db:"user_id"`
	Dimension Dimension `json:"dimension" db:"dimension"`
	Timezone  string    `json:"timezone" db:"timezone"`

	CurrentLength int        `json:"current_length" db:"current_length"`
	CurrentStart  *time.Time `json:"current_start,omitempty" db:"current_start"`
	CurrentEnd    *time.Time `json:"current_end,omitempty" db:"current_end"`
	LongestLength int        `json:"longest_length" db:"longest_length"`
	StreakCount   int        `json:"streak_count" db:"streak_count"`

	// ComputedFor is the local day the snapshot was calculated on.
	ComputedFor time.Time `json:"computed_for" db:"computed_for"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// NewStreakSnapshot summarises the streaks of dim as seen on `today`.
func NewStreakSnapshot(userID string, dim Dimension, streaks ActivityStreaks, today time.Time, cal Calendar) *StreakSnapshot {
	snap := &StreakSnapshot{
		UserID:      userID,
		Dimension:   dim,
		Timezone:    cal.Location().String(),
		StreakCount: len(streaks.For(dim)),
		ComputedFor: civilDate(cal.StartOfDay(today)),
		UpdatedAt:   time.Now().UTC(),
	}

	if current, ok := streaks.Current(dim); ok {
		start := civilDate(current.StartDate.In(cal.Location()))
		end := civilDate(current.EndDate.In(cal.Location()))
		snap.CurrentLength = current.Days(cal)
		snap.CurrentStart = &start
		snap.CurrentEnd = &end
	}

	if longest, ok := streaks.Longest(dim, cal); ok {
		snap.LongestLength = longest.Days(cal)
	}

	return snap
}

// IsStale reports whether the snapshot was computed before the current local day.
func (s *StreakSnapshot) IsStale(now time.Time) bool {
	loc, err := LoadTimezone(s.Timezone)
	if err != nil {
		loc = time.UTC
	}
	today := civilDate(NewCalendar(loc).StartOfDay(now))
	return s.ComputedFor.Before(today)
}

// civilDate maps a local day onto midnight UTC, the form DATE columns round-trip as.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
