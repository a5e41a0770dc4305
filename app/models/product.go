package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID            string           `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	StoreID       string           `gorm:"size:36;index;not null" json:"store_id"`
	Store         Store            `gorm:"foreignKey:StoreID" json:"-"`
	CategoryID    string           `gorm:"size:36;index;not null" json:"category_id"`
	SubCategoryID string           `gorm:"size:36;index" json:"sub_category_id"`
	Name          string           `gorm:"size:255;not null" json:"name"`
	Slug          string           `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Description   string           `gorm:"type:text" json:"description"`
	Brand         string           `gorm:"size:100" json:"brand"`
	Rating        float64          `gorm:"default:0" json:"rating"`
	Variants      []ProductVariant `gorm:"foreignKey:ProductID" json:"variants,omitempty"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

type ProductVariant struct {
	ID        string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	ProductID string          `gorm:"size:36;index;not null" json:"product_id"`
	Name      string          `gorm:"size:100" json:"name"`
	Sku       string          `gorm:"size:100" json:"sku"`
	Price     decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"price"`
	Stock     int             `gorm:"not null" json:"stock"`
	Weight    decimal.Decimal `gorm:"type:decimal(10,2);default:0.00" json:"weight"`
	Image     string          `gorm:"size:255" json:"image"`
	Images    []ProductImage  `gorm:"foreignKey:VariantID" json:"images,omitempty"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

type ProductImage struct {
	ID        string `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	VariantID string `gorm:"size:36;index;not null" json:"variant_id"`
	Path      string `gorm:"size:255;not null" json:"path"`
	Alt       string `gorm:"size:255" json:"alt"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
