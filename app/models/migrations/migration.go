package migrations

import (
	"github.com/andikanugraha/go-multistore/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Store{}, &models.Category{}, &models.SubCategory{}, &models.Product{}, &models.ProductVariant{}, &models.ProductImage{})
}
