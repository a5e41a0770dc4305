package seeders

import (
	"log"

	"github.com/andikanugraha/go-multistore/app/db/fakers"
	"github.com/andikanugraha/go-multistore/app/models"
	"gorm.io/gorm"
)

func DBSeed(db *gorm.DB) error {
	admin := fakers.UserFaker(models.RoleAdmin)
	admin.Email = "admin@example.com"
	if err := db.FirstOrCreate(admin, "email = ?", admin.Email).Error; err != nil {
		return err
	}

	seller := fakers.UserFaker(models.RoleSeller)
	seller.Email = "seller@example.com"
	if err := db.FirstOrCreate(seller, "email = ?", seller.Email).Error; err != nil {
		return err
	}

	store := fakers.StoreFaker(seller)
	if err := db.FirstOrCreate(store, "user_id = ?", seller.ID).Error; err != nil {
		return err
	}

	for i := 0; i < 3; i++ {
		category := fakers.CategoryFaker()
		if err := db.Create(category).Error; err != nil {
			return err
		}

		subCategory := fakers.SubCategoryFaker(category)
		if err := db.Create(subCategory).Error; err != nil {
			return err
		}

		for j := 0; j < 4; j++ {
			product := fakers.ProductFaker(store, category, subCategory)
			if err := db.Create(product).Error; err != nil {
				return err
			}
		}
	}

	log.Println("Seeded admin@example.com and seller@example.com (password: password)")
	return nil
}
