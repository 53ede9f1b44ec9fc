package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidRecord    = errors.New("invalid activity record data")
	ErrInvalidRecordDay = errors.New("year, month and day must describe a real calendar day")
	ErrNegativeValue    = errors.New("activity values and goals cannot be negative")
	ErrEmptyBatch       = errors.New("at least one activity record is required")
	ErrBatchTooLarge    = errors.New("too many activity records in one request")
)

// MaxSyncBatch bounds the records accepted by a single sync.
const MaxSyncBatch = 1000

// ActivityRecord is the raw daily summary uploaded by a device: the measured
// value of each dimension and its goal for that day. A nil goal means the
// device did not track that dimension.
type ActivityRecord struct {
	ID     string `json:"id" db:"id"`
	UserID string `json:"user_id" db:"user_id"`

	DateComponents

	ActiveEnergyBurned     float64  `json:"active_energy_burned" db:"active_energy_burned"`
	ActiveEnergyBurnedGoal *float64 `json:"active_energy_burned_goal,omitempty" db:"active_energy_burned_goal"`
	ExerciseMinutes        float64  `json:"exercise_minutes" db:"exercise_minutes"`
	ExerciseMinutesGoal    *float64 `json:"exercise_minutes_goal,omitempty" db:"exercise_minutes_goal"`
	StandHours             float64  `json:"stand_hours" db:"stand_hours"`
	StandHoursGoal         *float64 `json:"stand_hours_goal,omitempty" db:"stand_hours_goal"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

func NewActivityRecord(userID string, day DateComponents) *ActivityRecord {
	now := time.Now().UTC()

	return &ActivityRecord{
		ID:             uuid.NewString(),
		UserID:         userID,
		DateComponents: day,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Measurement returns the measured value and goal of dim.
func (r *ActivityRecord) Measurement(dim Dimension) (float64, *float64) {
	switch dim {
	case DimensionExercise:
		return r.ExerciseMinutes, r.ExerciseMinutesGoal
	case DimensionMove:
		return r.ActiveEnergyBurned, r.ActiveEnergyBurnedGoal
	case DimensionStand:
		return r.StandHours, r.StandHoursGoal
	default:
		return 0, nil
	}
}

func (r *ActivityRecord) Validate() error {
	if r.UserID == "" {
		return ErrInvalidRecord
	}
	if _, ok := NewCalendar(time.UTC).Date(r.DateComponents); !ok {
		return ErrInvalidRecordDay
	}

	for _, v := range []float64{r.ActiveEnergyBurned, r.ExerciseMinutes, r.StandHours} {
		if v < 0 {
			return ErrNegativeValue
		}
	}
	for _, g := range []*float64{r.ActiveEnergyBurnedGoal, r.ExerciseMinutesGoal, r.StandHoursGoal} {
		if g != nil && *g < 0 {
			return ErrNegativeValue
		}
	}
	return nil
}

// Before orders records by calendar day.
func (r *ActivityRecord) Before(other *ActivityRecord) bool {
	if r.Year != other.Year {
		return r.Year < other.Year
	}
	if r.Month != other.Month {
		return r.Month < other.Month
	}
	return r.Day < other.Day
}
