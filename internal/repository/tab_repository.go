package repository

import (
	"context"

	"gorm.io/gorm"

	"tropicalbs/internal/model"
)

// TabRepository defines tab persistence operations. Finders preload the
// visible-role association.
type TabRepository interface {
	Create(ctx context.Context, tab *model.Tab) error
	Update(ctx context.Context, tab *model.Tab) error
	Delete(ctx context.Context, tab *model.Tab) error
	FindByID(ctx context.Context, id uint) (*model.Tab, error)
	List(ctx context.Context) ([]model.Tab, error)
	ReplaceVisibleRoles(ctx context.Context, tab *model.Tab, roles []model.Role) error
}

type tabRepository struct {
	db *gorm.DB
}

// NewTabRepository builds a GORM-backed tab repository.
func NewTabRepository(db *gorm.DB) TabRepository {
	return &tabRepository{db: db}
}

func (r *tabRepository) Create(ctx context.Context, tab *model.Tab) error {
	return r.db.WithContext(ctx).Create(tab).Error
}

func (r *tabRepository) Update(ctx context.Context, tab *model.Tab) error {
	return r.db.WithContext(ctx).Save(tab).Error
}

func (r *tabRepository) Delete(ctx context.Context, tab *model.Tab) error {
	return r.db.WithContext(ctx).Select("VisibleRoles").Delete(tab).Error
}

func (r *tabRepository) FindByID(ctx context.Context, id uint) (*model.Tab, error) {
	var tab model.Tab
	if err := r.db.WithContext(ctx).Preload("VisibleRoles").First(&tab, id).Error; err != nil {
		return nil, err
	}
	return &tab, nil
}

func (r *tabRepository) List(ctx context.Context) ([]model.Tab, error) {
	var tabs []model.Tab
	if err := r.db.WithContext(ctx).Preload("VisibleRoles").Order("id").Find(&tabs).Error; err != nil {
		return nil, err
	}
	return tabs, nil
}

func (r *tabRepository) ReplaceVisibleRoles(ctx context.Context, tab *model.Tab, roles []model.Role) error {
	return r.db.WithContext(ctx).Model(tab).Association("VisibleRoles").Replace(roles)
}
