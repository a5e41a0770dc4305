package repositories

import (
	"context"

	"github.com/andikanugraha/go-multistore/app/models"
	"gorm.io/gorm"
)

type SubCategoryRepositoryImpl interface {
	Create(ctx context.Context, subCategory *models.SubCategory) error
	GetByID(ctx context.Context, id string) (*models.SubCategory, error)
	GetBySlug(ctx context.Context, slug string) (*models.SubCategory, error)
	GetAll(ctx context.Context) ([]models.SubCategory, error)
	GetByCategoryID(ctx context.Context, categoryID string) ([]models.SubCategory, error)
	Update(ctx context.Context, subCategory *models.SubCategory) error
	Delete(ctx context.Context, id string) error
	FindConflicting(ctx context.Context, candidate *models.SubCategory) (*models.SubCategory, error)
}

type subCategoryRepository struct {
	db *gorm.DB
}

func NewSubCategoryRepository(db *gorm.DB) SubCategoryRepositoryImpl {
	return &subCategoryRepository{db: db}
}

func (r *subCategoryRepository) Create(ctx context.Context, subCategory *models.SubCategory) error {
	return r.db.WithContext(ctx).Create(subCategory).Error
}

func (r *subCategoryRepository) GetByID(ctx context.Context, id string) (*models.SubCategory, error) {
	var subCategory models.SubCategory
	err := r.db.WithContext(ctx).First(&subCategory, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &subCategory, nil
}

func (r *subCategoryRepository) GetBySlug(ctx context.Context, slug string) (*models.SubCategory, error) {
	var subCategory models.SubCategory
	err := r.db.WithContext(ctx).First(&subCategory, "slug = ?", slug).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &subCategory, nil
}

func (r *subCategoryRepository) GetAll(ctx context.Context) ([]models.SubCategory, error) {
	var subCategories []models.SubCategory
	err := r.db.WithContext(ctx).Find(&subCategories).Error
	if err != nil {
		return nil, err
	}
	return subCategories, nil
}

func (r *subCategoryRepository) GetByCategoryID(ctx context.Context, categoryID string) ([]models.SubCategory, error) {
	var subCategories []models.SubCategory
	err := r.db.WithContext(ctx).Find(&subCategories, "category_id = ?", categoryID).Error
	if err != nil {
		return nil, err
	}
	return subCategories, nil
}

func (r *subCategoryRepository) Update(ctx context.Context, subCategory *models.SubCategory) error {
	return r.db.WithContext(ctx).Save(subCategory).Error
}

func (r *subCategoryRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.SubCategory{}, "id = ?", id).Error
}

func (r *subCategoryRepository) FindConflicting(ctx context.Context, candidate *models.SubCategory) (*models.SubCategory, error) {
	var subCategory models.SubCategory
	err := r.db.WithContext(ctx).
		Where("id <> ?", candidate.ID).
		Where(
			r.db.Where("name = ?", candidate.Name).
				Or("slug = ?", candidate.Slug),
		).
		First(&subCategory).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &subCategory, nil
}
