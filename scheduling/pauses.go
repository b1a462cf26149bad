package scheduling

import (
	"time"

	"github.com/oggainzofficial-dotcom/og-gainz-sub001/models"
)

// DateRange is an inclusive calendar-date interval.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether the date falls inside the range (inclusive).
func (r DateRange) Contains(date time.Time) bool {
	d := DateOf(date)
	return !d.Before(DateOf(r.Start)) && !d.After(DateOf(r.End))
}

// EffectivePauseRanges derives the pause windows that currently apply to a
// subscription: every APPROVED pause request minus those neutralized by an
// APPROVED withdraw request. The result is a view; it is recomputed on every
// read and never written back to the request rows.
func EffectivePauseRanges(pauses []models.PauseRequest, withdraws []models.WithdrawPauseRequest) []DateRange {
	withdrawn := make(map[string]bool)
	for _, w := range withdraws {
		if w.Status == models.RequestApproved {
			withdrawn[w.PauseRequestID] = true
		}
	}

	var ranges []DateRange
	for _, p := range pauses {
		if p.Status != models.RequestApproved || withdrawn[p.ID] {
			continue
		}
		ranges = append(ranges, DateRange{Start: p.StartDate, End: p.EndDate})
	}
	return ranges
}

// InPause reports whether a date falls inside any of the given ranges.
func InPause(date time.Time, ranges []DateRange) bool {
	for _, r := range ranges {
		if r.Contains(date) {
			return true
		}
	}
	return false
}

// IsDeliveryDay reports whether deliveries run on that date (weekdays only).
func IsDeliveryDay(date time.Time) bool {
	wd := date.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}
