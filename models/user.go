package models

import (
	"time"
)

type Role string

// Possible values for the user role
const (
	AdminRole    Role = "ADMIN"
	CustomerRole Role = "CUSTOMER"
)

type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Email     string    `json:"email" binding:"required,email"`
	Password  string    `json:"password" binding:"required,min=6"`
	Role      Role      `json:"role" gorm:"type:varchar(20);default:'CUSTOMER'"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type UserLogin struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
