package repositories

import (
	"context"

	"github.com/andikanugraha/go-multistore/app/models"
	"gorm.io/gorm"
)

type StoreRepositoryImpl interface {
	Create(ctx context.Context, store *models.Store) error
	GetByID(ctx context.Context, id string) (*models.Store, error)
	GetBySlug(ctx context.Context, slug string) (*models.Store, error)
	GetByUserID(ctx context.Context, userID string) ([]models.Store, error)
	GetAll(ctx context.Context) ([]models.Store, error)
	Update(ctx context.Context, store *models.Store) error
	Delete(ctx context.Context, id string) error

	// FindConflicting returns a different store that already holds one of
	// the candidate's unique field values, or nil when none exists.
	FindConflicting(ctx context.Context, candidate *models.Store) (*models.Store, error)
}

type storeRepository struct {
	db *gorm.DB
}

func NewStoreRepository(db *gorm.DB) StoreRepositoryImpl {
	return &storeRepository{db: db}
}

func (r *storeRepository) Create(ctx context.Context, store *models.Store) error {
	return r.db.WithContext(ctx).Create(store).Error
}

func (r *storeRepository) GetByID(ctx context.Context, id string) (*models.Store, error) {
	var store models.Store
	err := r.db.WithContext(ctx).First(&store, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &store, nil
}

func (r *storeRepository) GetBySlug(ctx context.Context, slug string) (*models.Store, error) {
	var store models.Store
	err := r.db.WithContext(ctx).First(&store, "slug = ?", slug).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &store, nil
}

func (r *storeRepository) GetByUserID(ctx context.Context, userID string) ([]models.Store, error) {
	var stores []models.Store
	err := r.db.WithContext(ctx).Find(&stores, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return stores, nil
}

func (r *storeRepository) GetAll(ctx context.Context) ([]models.Store, error) {
	var stores []models.Store
	err := r.db.WithContext(ctx).Find(&stores).Error
	if err != nil {
		return nil, err
	}
	return stores, nil
}

func (r *storeRepository) Update(ctx context.Context, store *models.Store) error {
	return r.db.WithContext(ctx).Save(store).Error
}

func (r *storeRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Store{}, "id = ?", id).Error
}

func (r *storeRepository) FindConflicting(ctx context.Context, candidate *models.Store) (*models.Store, error) {
	var store models.Store
	err := r.db.WithContext(ctx).
		Where("id <> ?", candidate.ID).
		Where(
			r.db.Where("name = ?", candidate.Name).
				Or("email = ?", candidate.Email).
				Or("phone = ?", candidate.Phone).
				Or("slug = ?", candidate.Slug),
		).
		First(&store).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &store, nil
}
