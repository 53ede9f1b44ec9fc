package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidDimension = errors.New("invalid dimension (must be exercise, move, or stand)")
)

type Dimension string

const (
	DimensionExercise Dimension = "exercise"
	DimensionMove     Dimension = "move"
	DimensionStand    Dimension = "stand"
)

// AllDimensions is the canonical ordering used for responses and snapshots.
var AllDimensions = []Dimension{DimensionExercise, DimensionMove, DimensionStand}

func ParseDimension(s string) (Dimension, error) {
	switch d := Dimension(strings.ToLower(strings.TrimSpace(s))); d {
	case DimensionExercise, DimensionMove, DimensionStand:
		return d, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDimension, s)
	}
}

// ActivitySummary is one calendar day's goal outcome for a single dimension.
// Only the day of Date is meaningful.
type ActivitySummary struct {
	Date        time.Time `json:"date"`
	DidComplete bool      `json:"did_complete"`
}

func NewActivitySummary(date time.Time, didComplete bool) ActivitySummary {
	return ActivitySummary{Date: date, DidComplete: didComplete}
}
