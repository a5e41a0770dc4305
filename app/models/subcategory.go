package models

import (
	"time"

	"gorm.io/gorm"
)

type SubCategory struct {
	ID         string `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name       string `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Slug       string `gorm:"size:100;not null;uniqueIndex" json:"slug"`
	CategoryID string `gorm:"size:36;index;not null" json:"category_id"`
	Image      string `gorm:"size:255" json:"image"`
	Featured   bool   `gorm:"default:false" json:"featured"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}
