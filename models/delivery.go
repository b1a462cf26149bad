package models

import (
	"time"
)

type DeliveryStatus string

const (
	DeliveryPending        DeliveryStatus = "PENDING"
	DeliveryCooking        DeliveryStatus = "COOKING"
	DeliveryPacked         DeliveryStatus = "PACKED"
	DeliveryOutForDelivery DeliveryStatus = "OUT_FOR_DELIVERY"
	DeliveryDelivered      DeliveryStatus = "DELIVERED"
	DeliverySkipped        DeliveryStatus = "SKIPPED"
)

// Next returns the single following status in the linear kitchen chain.
// The second return is false when the status is terminal or unknown.
// SKIPPED is only reachable through an approved skip request, never here.
func (s DeliveryStatus) Next() (DeliveryStatus, bool) {
	switch s {
	case DeliveryPending:
		return DeliveryCooking, true
	case DeliveryCooking:
		return DeliveryPacked, true
	case DeliveryPacked:
		return DeliveryOutForDelivery, true
	case DeliveryOutForDelivery:
		return DeliveryDelivered, true
	default:
		return s, false
	}
}

func (s DeliveryStatus) IsTerminal() bool {
	return s == DeliveryDelivered || s == DeliverySkipped
}

// Delivery is one concrete delivery attempt: one row per subscription per
// calendar date. Rows are never deleted, terminal statuses stay terminal.
type Delivery struct {
	ID                 string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	SubscriptionID     *string        `json:"subscriptionId" gorm:"type:uuid"` // nil for one-off items
	OrderID            string         `json:"orderId" gorm:"type:uuid;not null"`
	DeliveryDate       time.Time      `json:"deliveryDate" gorm:"type:date"`
	DeliveryTime       string         `json:"deliveryTime"`
	Status             DeliveryStatus `json:"status" gorm:"type:varchar(20);default:'PENDING'"`
	SkippedByRequestID *string        `json:"skippedByRequestId" gorm:"type:uuid"`
	PhotoURL           string         `json:"photoUrl"`
	Items              []DeliveryItem `json:"items" gorm:"foreignKey:DeliveryID"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
}

type DeliveryItem struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	DeliveryID  string    `json:"deliveryId" gorm:"type:uuid;not null"`
	OrderItemID string    `json:"orderItemId" gorm:"type:uuid"`
	Title       string    `json:"title"`
	Quantity    int       `json:"quantity"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
