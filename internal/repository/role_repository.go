package repository

import (
	"context"

	"gorm.io/gorm"

	"tropicalbs/internal/model"
)

// AnyOfNames is a query predicate matching roles whose name equals any of the
// listed names.
type AnyOfNames []string

// Dedupe returns the predicate with duplicate names removed, preserving
// first-seen order.
func (p AnyOfNames) Dedupe() AnyOfNames {
	seen := make(map[string]struct{}, len(p))
	out := make(AnyOfNames, 0, len(p))
	for _, name := range p {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

// RoleRepository defines role persistence operations.
type RoleRepository interface {
	FindByName(ctx context.Context, name string) (*model.Role, error)
	FindMatching(ctx context.Context, pred AnyOfNames) ([]model.Role, error)
	List(ctx context.Context) ([]model.Role, error)
	EnsureExists(ctx context.Context, name string) (*model.Role, error)
}

type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository builds a GORM-backed role repository.
func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) FindByName(ctx context.Context, name string) (*model.Role, error) {
	var role model.Role
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *roleRepository) FindMatching(ctx context.Context, pred AnyOfNames) ([]model.Role, error) {
	var roles []model.Role
	if len(pred) == 0 {
		return roles, nil
	}
	if err := r.db.WithContext(ctx).Where("name IN ?", []string(pred)).Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

func (r *roleRepository) List(ctx context.Context) ([]model.Role, error) {
	var roles []model.Role
	if err := r.db.WithContext(ctx).Order("name").Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

// EnsureExists creates the named role if it is missing and returns it.
func (r *roleRepository) EnsureExists(ctx context.Context, name string) (*model.Role, error) {
	role := model.Role{Name: name}
	if err := r.db.WithContext(ctx).Where("name = ?", name).FirstOrCreate(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}
