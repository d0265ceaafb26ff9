package repository

import (
	"context"

	"gorm.io/gorm"

	"tropicalbs/internal/model"
)

// PageRepository defines page persistence operations.
type PageRepository interface {
	Create(ctx context.Context, page *model.Page) error
	Update(ctx context.Context, page *model.Page) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Page, error)
	List(ctx context.Context) ([]model.Page, error)
}

type pageRepository struct {
	db *gorm.DB
}

// NewPageRepository builds a GORM-backed page repository.
func NewPageRepository(db *gorm.DB) PageRepository {
	return &pageRepository{db: db}
}

func (r *pageRepository) Create(ctx context.Context, page *model.Page) error {
	return r.db.WithContext(ctx).Create(page).Error
}

func (r *pageRepository) Update(ctx context.Context, page *model.Page) error {
	return r.db.WithContext(ctx).Save(page).Error
}

func (r *pageRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Page{}, id).Error
}

func (r *pageRepository) FindByID(ctx context.Context, id uint) (*model.Page, error) {
	var page model.Page
	if err := r.db.WithContext(ctx).First(&page, id).Error; err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *pageRepository) List(ctx context.Context) ([]model.Page, error) {
	var pages []model.Page
	if err := r.db.WithContext(ctx).Order("id").Find(&pages).Error; err != nil {
		return nil, err
	}
	return pages, nil
}
