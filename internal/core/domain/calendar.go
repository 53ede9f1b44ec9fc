package domain

import (
	"fmt"
	"time"
)

// DateComponents identifies a calendar day independently of any time zone.
type DateComponents struct {
	Year  int `json:"year" db:"year"`
	Month int `json:"month" db:"month"`
	Day   int `json:"day" db:"day"`
}

func (dc DateComponents) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", dc.Year, dc.Month, dc.Day)
}

func ComponentsOf(t time.Time) DateComponents {
	y, m, d := t.Date()
	return DateComponents{Year: y, Month: int(m), Day: d}
}

const DayLayout = "2006-01-02"

// Calendar resolves day boundaries in a single location. Every day-level
// comparison in the streak engine goes through a Calendar so that results
// follow the user's local midnight instead of UTC.
type Calendar struct {
	loc *time.Location
}

func NewCalendar(loc *time.Location) Calendar {
	if loc == nil {
		loc = time.UTC
	}
	return Calendar{loc: loc}
}

func (c Calendar) Location() *time.Location {
	if c.loc == nil {
		return time.UTC
	}
	return c.loc
}

// Date returns the start of the day described by dc. Components that do not
// describe a real day (month 13, Feb 30, year 0) are rejected rather than
// normalized.
func (c Calendar) Date(dc DateComponents) (time.Time, bool) {
	if dc.Year < 1 || dc.Month < 1 || dc.Month > 12 || dc.Day < 1 || dc.Day > 31 {
		return time.Time{}, false
	}

	t := time.Date(dc.Year, time.Month(dc.Month), dc.Day, 0, 0, 0, 0, c.Location())
	if ComponentsOf(t) != dc {
		return time.Time{}, false
	}
	return t, true
}

func (c Calendar) StartOfDay(t time.Time) time.Time {
	y, m, d := t.In(c.Location()).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, c.Location())
}

func (c Calendar) IsSameDay(a, b time.Time) bool {
	return ComponentsOf(a.In(c.Location())) == ComponentsOf(b.In(c.Location()))
}

// DaysBetween counts calendar days from `from` to `to`. The result is
// negative when `to` falls on an earlier day. Time of day is ignored, so a
// DST transition never yields a 23 or 25 hour "day".
func (c Calendar) DaysBetween(from, to time.Time) int {
	return civilDayNumber(to.In(c.Location())) - civilDayNumber(from.In(c.Location()))
}

func (c Calendar) AddDays(t time.Time, days int) time.Time {
	local := t.In(c.Location())
	y, m, d := local.Date()
	h, mi, s := local.Clock()
	return time.Date(y, m, d+days, h, mi, s, local.Nanosecond(), c.Location())
}

func civilDayNumber(t time.Time) int {
	y, m, d := t.Date()
	return int(time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400)
}

// ParseDateComponents reads a "YYYY-MM-DD" day.
func ParseDateComponents(s string) (DateComponents, error) {
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return DateComponents{}, err
	}
	return ComponentsOf(t), nil
}
