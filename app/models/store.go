package models

import (
	"time"

	"gorm.io/gorm"
)

type Store struct {
	ID          string `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	UserID      string `gorm:"size:36;index;not null" json:"user_id"`
	User        User   `gorm:"foreignKey:UserID" json:"-"`
	Name        string `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Slug        string `gorm:"size:100;not null;uniqueIndex" json:"slug"`
	Email       string `gorm:"size:100;not null;uniqueIndex" json:"email"`
	Phone       string `gorm:"size:20;not null;uniqueIndex" json:"phone"`
	Description string `gorm:"type:text" json:"description"`
	Logo        string `gorm:"size:255" json:"logo"`
	Cover       string `gorm:"size:255" json:"cover"`
	Status      string `gorm:"size:20;default:'pending';not null" json:"status"`
	Featured    bool   `gorm:"default:false" json:"featured"`
	Products    []Product `gorm:"foreignKey:StoreID" json:"-"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

const (
	StoreStatusPending  = "pending"
	StoreStatusActive   = "active"
	StoreStatusBanned   = "banned"
	StoreStatusDisabled = "disabled"
)
