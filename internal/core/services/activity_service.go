package services

import (
	"context"
	"fmt"
	"time"

	"github.com/comitanigiacomo/rings-closed-engine/internal/core/domain"
	"github.com/comitanigiacomo/rings-closed-engine/internal/core/workers"
	"github.com/comitanigiacomo/rings-closed-engine/internal/observability"
)

type ActivityService struct {
	repo   domain.ActivityRepository
	worker *workers.StreakWorker
}

func NewActivityService(repo domain.ActivityRepository, worker *workers.StreakWorker) *ActivityService {
	return &ActivityService{
		repo:   repo,
		worker: worker,
	}
}

// RecordInput is one uploaded daily summary. Nil goals mean the dimension
// was not tracked that day.
type RecordInput struct {
	Day                    domain.DateComponents
	ActiveEnergyBurned     float64
	ActiveEnergyBurnedGoal *float64
	ExerciseMinutes        float64
	ExerciseMinutesGoal    *float64
	StandHours             float64
	StandHoursGoal         *float64
}

// Sync upserts a batch of daily records for the user. Either every record is
// stored or none is.
func (s *ActivityService) Sync(ctx context.Context, userID string, inputs []RecordInput) ([]*domain.ActivityRecord, error) {
	if len(inputs) == 0 {
		return nil, domain.ErrEmptyBatch
	}
	if len(inputs) > domain.MaxSyncBatch {
		return nil, domain.ErrBatchTooLarge
	}

	// Later entries for the same day win, as they would in sequential upserts.
	index := make(map[domain.DateComponents]int, len(inputs))
	records := make([]*domain.ActivityRecord, 0, len(inputs))

	for i, in := range inputs {
		record := domain.NewActivityRecord(userID, in.Day)
		record.ActiveEnergyBurned = in.ActiveEnergyBurned
		record.ActiveEnergyBurnedGoal = in.ActiveEnergyBurnedGoal
		record.ExerciseMinutes = in.ExerciseMinutes
		record.ExerciseMinutesGoal = in.ExerciseMinutesGoal
		record.StandHours = in.StandHours
		record.StandHoursGoal = in.StandHoursGoal

		if err := record.Validate(); err != nil {
			return nil, fmt.Errorf("record %d (%s): %w", i, in.Day, err)
		}

		if pos, ok := index[in.Day]; ok {
			records[pos] = record
			continue
		}
		index[in.Day] = len(records)
		records = append(records, record)
	}

	if err := s.repo.UpsertMany(ctx, records); err != nil {
		return nil, err
	}

	observability.RecordsSynced(len(records))
	s.worker.Enqueue(userID)

	return records, nil
}

func (s *ActivityService) GetByID(ctx context.Context, id string, userID string) (*domain.ActivityRecord, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record.UserID != userID {
		return nil, domain.ErrUnauthorized
	}
	return record, nil
}

// List returns the user's records between from and to inclusive. A zero
// bound is open.
func (s *ActivityService) List(ctx context.Context, userID string, from, to domain.DateComponents) ([]*domain.ActivityRecord, error) {
	if from == (domain.DateComponents{}) && to == (domain.DateComponents{}) {
		return s.repo.ListByUserID(ctx, userID)
	}

	if from == (domain.DateComponents{}) {
		from = domain.DateComponents{Year: 1, Month: 1, Day: 1}
	}
	if to == (domain.DateComponents{}) {
		to = domain.ComponentsOf(time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC))
	}

	return s.repo.ListByUserIDWithRange(ctx, userID, from, to)
}

func (s *ActivityService) Delete(ctx context.Context, id string, userID string) error {
	if _, err := s.GetByID(ctx, id, userID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id, userID); err != nil {
		return err
	}

	s.worker.Enqueue(userID)

	return nil
}
