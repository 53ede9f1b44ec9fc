package domain

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	abbreviatedDate     = "Jan 2, 2006"
	abbreviatedMonthDay = "Jan 2"
	rangeSeparator      = " – "
	durationKey         = "%d days"
)

var durationPrinter = message.NewPrinter(language.English)

func init() {
	if err := message.Set(language.English, durationKey,
		plural.Selectf(1, "%d",
			"=1", "%d day",
			"other", "%d days",
		)); err != nil {
		panic(err)
	}
}

// FormatDateRange renders the days a streak covers, e.g. "May 6, 2024" for a
// single day and "May 6 – 7, 2024" for a range inside one month.
func FormatDateRange(s ActivityStreak, cal Calendar) string {
	start := s.StartDate.In(cal.Location())
	end := s.EndDate.In(cal.Location())

	if cal.IsSameDay(start, end) {
		return end.Format(abbreviatedDate)
	}

	switch {
	case start.Year() == end.Year() && start.Month() == end.Month():
		return start.Format(abbreviatedMonthDay) + rangeSeparator + end.Format("2, 2006")
	case start.Year() == end.Year():
		return start.Format(abbreviatedMonthDay) + rangeSeparator + end.Format(abbreviatedDate)
	default:
		return start.Format(abbreviatedDate) + rangeSeparator + end.Format(abbreviatedDate)
	}
}

// FormatDuration renders the length of a streak in days, e.g. "1 day". The
// inclusive end day is turned into an exclusive bound first; when that bound
// is not after the start the streak falls back to "Since <start>".
func FormatDuration(s ActivityStreak, cal Calendar) string {
	exclusiveEnd := cal.AddDays(s.EndDate, 1)
	days := cal.DaysBetween(s.StartDate, exclusiveEnd)
	if days <= 0 {
		return "Since " + s.StartDate.In(cal.Location()).Format(abbreviatedDate)
	}
	return durationPrinter.Sprintf(durationKey, days)
}
