package models

import (
	"time"
)

// DeliveryStatusLog records every status transition for the order lifecycle
// timeline. Append-only.
type DeliveryStatusLog struct {
	ID         string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	DeliveryID string         `json:"deliveryId" gorm:"type:uuid;not null"`
	FromStatus DeliveryStatus `json:"fromStatus" gorm:"type:varchar(20)"`
	ToStatus   DeliveryStatus `json:"toStatus" gorm:"type:varchar(20)"`
	Actor      string         `json:"actor"` // admin user id, or "system"
	CreatedAt  time.Time      `json:"createdAt"`
}
