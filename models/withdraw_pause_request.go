package models

import (
	"time"
)

// WithdrawPauseRequest cancels an approved pause without mutating it. An
// approved pause with an approved withdraw linked to it drops out of the
// effective pause ranges at read time.
type WithdrawPauseRequest struct {
	ID             string        `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	PauseRequestID string        `json:"pauseRequestId" gorm:"type:uuid;not null"`
	Status         RequestStatus `json:"status" gorm:"type:varchar(20);default:'PENDING'"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

type RequestDecision struct {
	Type     string        `json:"type" binding:"required"` // pause | skip | withdraw
	Decision RequestStatus `json:"decision" binding:"required"`
}
