package models

import (
	"time"
)

type OrderAcceptance string

const (
	OrderPendingReview OrderAcceptance = "PENDING_REVIEW"
	OrderConfirmed     OrderAcceptance = "CONFIRMED"
	OrderDeclined      OrderAcceptance = "DECLINED"
)

type ItemKind string

const (
	MealPackItem   ItemKind = "mealPack"
	CustomMealItem ItemKind = "customMeal"
	AddonItem      ItemKind = "addon"
)

type Cadence string

const (
	WeeklyCadence  Cadence = "weekly"
	MonthlyCadence Cadence = "monthly"
)

type Order struct {
	ID               string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID           string          `json:"userId" gorm:"type:uuid;not null"`
	Acceptance       OrderAcceptance `json:"acceptance" gorm:"type:varchar(20);default:'PENDING_REVIEW'"`
	PaidAt           *time.Time      `json:"paidAt"`
	MovedToKitchenAt *time.Time      `json:"movedToKitchenAt"`
	Items            []OrderItem     `json:"items" gorm:"foreignKey:OrderID"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// OrderItem is a resolved catalog line: title, quantity and schedule are
// computed upstream by the catalog/pricing services, the engine only
// schedules around them.
type OrderItem struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	OrderID      string    `json:"orderId" gorm:"type:uuid;not null"`
	Title        string    `json:"title"`
	Quantity     int       `json:"quantity"`
	Kind         ItemKind  `json:"kind" gorm:"type:varchar(20)"`
	Recurring    bool      `json:"recurring"`
	Cadence      Cadence   `json:"cadence" gorm:"type:varchar(20)"`
	StartDate    time.Time `json:"startDate"`
	DeliveryTime string    `json:"deliveryTime"` // "15:04" 24h format
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type OrderAcceptanceUpdate struct {
	Acceptance OrderAcceptance `json:"acceptance" binding:"required"`
}
