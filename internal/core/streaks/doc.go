// Package streaks turns raw daily activity records into streaks of
// consecutive days on which a goal was met.
//
// Every function here is pure: the calendar and the reference "today" are
// explicit arguments, nothing is read from the environment, and the inputs
// are never modified. Functions are safe for concurrent use.
package streaks
