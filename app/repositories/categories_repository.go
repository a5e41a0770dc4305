package repositories

import (
	"context"
	"fmt"
	"log"

	"github.com/andikanugraha/go-multistore/app/models"
	"gorm.io/gorm"
)

type CategoryRepositoryImpl interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id string) (*models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	GetAll(ctx context.Context) ([]models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id string) error
	GetCategoriesWithSubCategories(ctx context.Context) ([]models.Category, error)
	FindConflicting(ctx context.Context, candidate *models.Category) (*models.Category, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepositoryImpl {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) GetByID(ctx context.Context, id string) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).First(&category, "slug = ?", slug).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) Update(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Category{}, "id = ?", id).Error
}

func (r *categoryRepository) GetCategoriesWithSubCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category

	err := r.db.WithContext(ctx).
		Preload("SubCategories").
		Find(&categories).Error
	if err != nil {
		log.Printf("GetCategoriesWithSubCategories: Failed to get categories with subcategories: %v", err)
		return nil, fmt.Errorf("failed to get categories with subcategories: %w", err)
	}
	return categories, nil
}

func (r *categoryRepository) FindConflicting(ctx context.Context, candidate *models.Category) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).
		Where("id <> ?", candidate.ID).
		Where(
			r.db.Where("name = ?", candidate.Name).
				Or("slug = ?", candidate.Slug),
		).
		First(&category).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}
