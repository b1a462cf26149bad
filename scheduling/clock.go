package scheduling

import (
	"time"
)

// Clock abstracts wall-clock time so eligibility checks and projections can
// be tested with a fixed date instead of ambient system time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// Active is the clock used by the handlers. Tests swap it the same way
// testutils swaps db.DB.
var Active Clock = systemClock{}

func Now() time.Time {
	return Active.Now()
}

// Today returns the current operational date at midnight.
func Today() time.Time {
	return DateOf(Active.Now())
}

// DateOf truncates a timestamp to its calendar date in UTC. Delivery dates
// come back from Postgres at UTC midnight, so every comparison normalizes to
// UTC first; a server running in a local zone must not shift the operational
// date near midnight.
func DateOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDate reports whether two timestamps fall on the same UTC calendar date.
func SameDate(a, b time.Time) bool {
	au, bu := a.UTC(), b.UTC()
	return au.Year() == bu.Year() && au.Month() == bu.Month() && au.Day() == bu.Day()
}

// At combines a calendar date with a "15:04" time-of-day, in UTC. An
// unparseable time-of-day falls back to midnight.
func At(date time.Time, timeOfDay string) time.Time {
	day := DateOf(date)
	parsed, err := time.Parse("15:04", timeOfDay)
	if err != nil {
		return day
	}
	return day.Add(time.Duration(parsed.Hour())*time.Hour + time.Duration(parsed.Minute())*time.Minute)
}

// FixedClock always returns the same instant. Test helper.
type FixedClock struct {
	Instant time.Time
}

func (f FixedClock) Now() time.Time {
	return f.Instant
}
