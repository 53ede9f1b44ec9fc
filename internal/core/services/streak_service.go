package services

import (
	"context"
	"strings"
	"time"

	"github.com/comitanigiacomo/rings-closed-engine/internal/core/domain"
	"github.com/comitanigiacomo/rings-closed-engine/internal/core/streaks"
	"github.com/comitanigiacomo/rings-closed-engine/internal/observability"
)

type StreakService struct {
	users     domain.UserRepository
	activity  domain.ActivityRepository
	snapshots domain.SnapshotRepository
	now       func() time.Time
}

func NewStreakService(users domain.UserRepository, activity domain.ActivityRepository, snapshots domain.SnapshotRepository) *StreakService {
	return &StreakService{
		users:     users,
		activity:  activity,
		snapshots: snapshots,
		now:       time.Now,
	}
}

type CalculateInput struct {
	UserID  string
	Options domain.StreaksOptions
	// Timezone overrides the user's stored zone when set.
	Timezone string
}

// StreakReport carries the streaks of the requested dimensions together with
// the calendar they were computed in, which formatting needs.
type StreakReport struct {
	Dimensions []domain.Dimension
	Streaks    domain.ActivityStreaks
	Calendar   domain.Calendar
	Today      time.Time
}

func (s *StreakService) Calculate(ctx context.Context, input CalculateInput) (*StreakReport, error) {
	opts := input.Options
	if opts.IsEmpty() {
		opts = domain.AllStreaksOptions()
	}

	user, err := s.users.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	loc := user.Location()
	if tz := strings.TrimSpace(input.Timezone); tz != "" {
		loc, err = domain.LoadTimezone(tz)
		if err != nil {
			return nil, err
		}
	}

	records, err := s.activity.ListByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	cal := domain.NewCalendar(loc)
	now := s.now()

	started := time.Now()
	result := streaks.ForOptions(opts, records, now, cal)
	took := time.Since(started)

	dims := opts.Dimensions()
	for _, dim := range dims {
		observability.ObserveStreaks(string(dim), len(result.For(dim)), took)
	}

	return &StreakReport{
		Dimensions: dims,
		Streaks:    result,
		Calendar:   cal,
		Today:      now,
	}, nil
}

// Current returns the stored per-dimension snapshots. A user the worker has
// not processed yet gets an empty list.
func (s *StreakService) Current(ctx context.Context, userID string) ([]*domain.StreakSnapshot, error) {
	return s.snapshots.ListByUserID(ctx, userID)
}
