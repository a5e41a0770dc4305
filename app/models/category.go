package models

import (
	"time"

	"gorm.io/gorm"
)

type Category struct {
	ID            string        `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name          string        `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Slug          string        `gorm:"size:100;not null;uniqueIndex" json:"slug"`
	Image         string        `gorm:"size:255" json:"image"`
	Featured      bool          `gorm:"default:false" json:"featured"`
	SubCategories []SubCategory `gorm:"foreignKey:CategoryID" json:"sub_categories,omitempty"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}
