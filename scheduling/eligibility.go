package scheduling

import (
	"fmt"
	"time"

	"github.com/oggainzofficial-dotcom/og-gainz-sub001/models"
)

// Stable reason codes carried on every eligibility failure so the frontend
// can render the exact explanation.
const (
	ReasonWrongDate        = "wrong_date"
	ReasonWrongStatus      = "wrong_status"
	ReasonAlreadyRequested = "already_requested"
	ReasonCutoffExceeded   = "cutoff_exceeded"
	ReasonAlreadyPaused    = "already_paused"
	ReasonPendingRequest   = "pending_request_exists"
	ReasonPauseNotApproved = "pause_not_approved"
)

// EligibilityError is a business-rule gate failure. Nothing here is
// recovered silently; the caller surfaces code and message as-is.
type EligibilityError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *EligibilityError) Error() string {
	return e.Message
}

func notEligible(code, message string) *EligibilityError {
	return &EligibilityError{Code: code, Message: message}
}

// CheckSkip validates a skip request against a delivery. Skips are same-day
// only: the delivery must be due today, still PENDING, without another
// in-flight skip, outside every effective pause range, and the request must
// arrive at least the cutoff before the scheduled time.
func CheckSkip(delivery models.Delivery, hasPendingSkip bool, pauses []DateRange, cutoff time.Duration, now time.Time) *EligibilityError {
	if !SameDate(delivery.DeliveryDate, now) {
		return notEligible(ReasonWrongDate, "Skip requests can only be made on the delivery day")
	}
	if delivery.Status != models.DeliveryPending {
		return notEligible(ReasonWrongStatus, "Only pending deliveries can be skipped")
	}
	if hasPendingSkip {
		return notEligible(ReasonAlreadyRequested, "A skip request is already pending for this delivery")
	}
	if InPause(delivery.DeliveryDate, pauses) {
		return notEligible(ReasonAlreadyPaused, "This delivery date is already covered by an approved pause")
	}
	scheduledAt := At(delivery.DeliveryDate, delivery.DeliveryTime)
	if !now.Add(cutoff).Before(scheduledAt) {
		return notEligible(ReasonCutoffExceeded, fmt.Sprintf("Skip requests must be made at least %d minutes before delivery", int(cutoff.Minutes())))
	}
	return nil
}

// CheckPause validates a new pause request for a subscription. One in-flight
// request at a time, and the next active delivery must not already be inside
// the cutoff window: pausing must not disrupt a delivery in motion.
// nextActive is the earliest non-delivered, non-skipped delivery (nil when
// none exists).
func CheckPause(hasPendingPause bool, nextActive *models.Delivery, cutoff time.Duration, now time.Time) *EligibilityError {
	if hasPendingPause {
		return notEligible(ReasonPendingRequest, "A pause request is already pending for this subscription")
	}
	if nextActive != nil {
		scheduledAt := At(nextActive.DeliveryDate, nextActive.DeliveryTime)
		if !scheduledAt.Before(now) && !now.Add(cutoff).Before(scheduledAt) {
			return notEligible(ReasonCutoffExceeded, fmt.Sprintf("The next delivery is less than %d minutes away and can no longer be paused", int(cutoff.Minutes())))
		}
	}
	return nil
}

// CheckWithdraw validates a withdraw request for a pause. Only approved
// pauses can be withdrawn and only one withdraw may be in flight. Withdraws
// touch future dates only, so there is no cutoff check.
func CheckWithdraw(pause models.PauseRequest, hasPendingWithdraw bool) *EligibilityError {
	if pause.Status != models.RequestApproved {
		return notEligible(ReasonPauseNotApproved, "Only approved pause requests can be withdrawn")
	}
	if hasPendingWithdraw {
		return notEligible(ReasonAlreadyRequested, "A withdraw request is already pending for this pause request")
	}
	return nil
}
