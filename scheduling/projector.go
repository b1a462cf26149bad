package scheduling

import (
	"time"

	"github.com/oggainzofficial-dotcom/og-gainz-sub001/models"
)

// maxProjectionDays bounds the forward walk so data that never satisfies the
// delivery-day predicate cannot loop forever.
const maxProjectionDays = 366

// ProjectedDelivery is one entry of the upcoming schedule: either an
// existing delivery row carried as-is, or a synthesized placeholder that the
// materializer has not created yet.
type ProjectedDelivery struct {
	Date     time.Time             `json:"date"`
	Status   models.DeliveryStatus `json:"status"`
	Planned  bool                  `json:"planned"`
	Delivery *models.Delivery      `json:"delivery,omitempty"`
}

// ProjectUpcoming computes the next deliveries owed to a subscription. The
// schedule is a pure view over {servings remaining, effective pauses, real
// delivery rows}: an approved pause pushes later dates outward without any
// write to existing records.
//
// The walk starts at the earliest future non-delivered real row (else
// today), steps one calendar day at a time, and emits only weekdays outside
// every effective pause range. Dates with a real non-delivered row are
// emitted with their real status; other dates become PENDING placeholders.
func ProjectUpcoming(sub models.Subscription, deliveredCount int, pauses []DateRange, realDeliveries []models.Delivery, count int, today time.Time) []ProjectedDelivery {
	remaining := sub.TotalServings - deliveredCount
	if remaining <= 0 {
		return nil
	}
	if count > 0 && count < remaining {
		remaining = count
	}

	byDate := make(map[string]*models.Delivery, len(realDeliveries))
	var earliest time.Time
	for i := range realDeliveries {
		d := &realDeliveries[i]
		if d.Status == models.DeliveryDelivered {
			continue
		}
		date := DateOf(d.DeliveryDate)
		byDate[date.Format("2006-01-02")] = d
		if earliest.IsZero() || date.Before(earliest) {
			earliest = date
		}
	}

	// Start from the earliest known non-delivered row when it lies in the
	// future. Otherwise the schedule begins tomorrow: today's delivery is an
	// operational concern of the kitchen board, not of the forward schedule.
	start := DateOf(today).AddDate(0, 0, 1)
	if !earliest.IsZero() && earliest.After(DateOf(today)) {
		start = earliest
	}

	var out []ProjectedDelivery
	day := start
	for i := 0; i < maxProjectionDays && len(out) < remaining; i++ {
		if IsDeliveryDay(day) && !InPause(day, pauses) {
			if real, ok := byDate[day.Format("2006-01-02")]; ok {
				out = append(out, ProjectedDelivery{
					Date:     day,
					Status:   real.Status,
					Planned:  false,
					Delivery: real,
				})
			} else {
				out = append(out, ProjectedDelivery{
					Date:    day,
					Status:  models.DeliveryPending,
					Planned: true,
				})
			}
		}
		day = day.AddDate(0, 0, 1)
	}
	return out
}
