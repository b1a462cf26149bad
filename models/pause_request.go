package models

import (
	"time"
)

type RequestStatus string

const (
	RequestPending  RequestStatus = "PENDING"
	RequestApproved RequestStatus = "APPROVED"
	RequestDeclined RequestStatus = "DECLINED"
)

// PauseRequest asks to exclude a date range (inclusive) from a
// subscription's schedule. Never edited after an admin decision; an approved
// pause is neutralized by an approved WithdrawPauseRequest, reconciled at
// read time.
type PauseRequest struct {
	ID             string        `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	SubscriptionID string        `json:"subscriptionId" gorm:"type:uuid;not null"`
	StartDate      time.Time     `json:"startDate" gorm:"type:date"`
	EndDate        time.Time     `json:"endDate" gorm:"type:date"`
	Status         RequestStatus `json:"status" gorm:"type:varchar(20);default:'PENDING'"`
	Reason         string        `json:"reason"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

type PauseRequestCreate struct {
	StartDate string `json:"startDate" binding:"required"` // "2006-01-02"
	EndDate   string `json:"endDate" binding:"required"`
	Reason    string `json:"reason"`
}
