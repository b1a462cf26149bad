package models

import (
	"time"
)

// SkipRequest targets a single delivery. Validated at submit time only; the
// PENDING-status guard on the delivery is re-checked when the approval marks
// it skipped.
type SkipRequest struct {
	ID         string        `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	DeliveryID string        `json:"deliveryId" gorm:"type:uuid;not null"`
	Status     RequestStatus `json:"status" gorm:"type:varchar(20);default:'PENDING'"`
	Reason     string        `json:"reason"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt"`
}

type SkipRequestCreate struct {
	Reason string `json:"reason"`
}
