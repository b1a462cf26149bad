package models

import (
	"time"
)

type SubscriptionStatus string

const (
	SubscriptionActive SubscriptionStatus = "ACTIVE"
	SubscriptionPaused SubscriptionStatus = "PAUSED"
)

// Subscription is created when a confirmed order is moved to kitchen.
// Its status is an operational whole-subscription flag (rare admin path);
// the common path for pausing is a date-range PauseRequest.
type Subscription struct {
	ID            string             `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID        string             `json:"userId" gorm:"type:uuid;not null"`
	OrderID       string             `json:"orderId" gorm:"type:uuid;not null"`
	OrderItemID   string             `json:"orderItemId" gorm:"type:uuid;not null"`
	Kind          ItemKind           `json:"kind" gorm:"type:varchar(20)"`
	Cadence       Cadence            `json:"cadence" gorm:"type:varchar(20)"`
	StartDate     time.Time          `json:"startDate"`
	TotalServings int                `json:"totalServings"`
	Status        SubscriptionStatus `json:"status" gorm:"type:varchar(20);default:'ACTIVE'"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

type SubscriptionStatusUpdate struct {
	Status SubscriptionStatus `json:"status" binding:"required"`
}
