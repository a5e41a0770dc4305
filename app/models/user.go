package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID         string  `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	ExternalID *string `gorm:"size:64;uniqueIndex;null" json:"external_id,omitempty"`
	FirstName  string  `gorm:"size:100;not null" json:"first_name"`
	LastName   string  `gorm:"size:100" json:"last_name"`
	Email      string  `gorm:"size:100;not null;uniqueIndex" json:"email"`
	Phone      string  `gorm:"size:20" json:"phone"`
	Picture    string  `gorm:"size:255" json:"picture"`
	Password   string  `gorm:"size:255" json:"-"`
	Role       string  `gorm:"size:20;default:'customer';not null" json:"role"`
	Stores     []Store `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt
}

const (
	RoleAdmin    = "admin"
	RoleSeller   = "seller"
	RoleCustomer = "customer"
)
