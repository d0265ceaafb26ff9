package repository

import (
	"context"

	"gorm.io/gorm"

	"tropicalbs/internal/model"
)

// UserRepository defines user persistence operations. Finders preload the
// role association so callers always see the persisted role set.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	AddRole(ctx context.Context, user *model.User, role *model.Role) error
	ReplaceRoles(ctx context.Context, user *model.User, roles []model.Role) error
	SetResetToken(ctx context.Context, email, token string) (int64, error)
	ResetPasswordByToken(ctx context.Context, token, passwordHash string) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed user repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) Delete(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Select("Roles").Delete(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Preload("Roles").First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Preload("Roles").
		Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Preload("Roles").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// AddRole appends a role to the user's role set.
func (r *userRepository) AddRole(ctx context.Context, user *model.User, role *model.Role) error {
	return r.db.WithContext(ctx).Model(user).Association("Roles").Append(role)
}

// ReplaceRoles swaps the user's entire role set for roles.
func (r *userRepository) ReplaceRoles(ctx context.Context, user *model.User, roles []model.Role) error {
	return r.db.WithContext(ctx).Model(user).Association("Roles").Replace(roles)
}

// SetResetToken stores a fresh reset token on the user matched by email and
// reports how many rows were touched, so callers can detect an unknown email.
func (r *userRepository) SetResetToken(ctx context.Context, email, token string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.User{}).
		Where("email = ?", email).
		Update("password_reset_token", token)
	return res.RowsAffected, res.Error
}

// ResetPasswordByToken sets the new password hash and clears the reset token
// in a single UPDATE keyed on the token itself. A consumed or unknown token
// matches zero rows, which enforces single use.
func (r *userRepository) ResetPasswordByToken(ctx context.Context, token, passwordHash string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.User{}).
		Where("password_reset_token = ?", token).
		Updates(map[string]interface{}{
			"password_hash":        passwordHash,
			"password_reset_token": nil,
		})
	return res.RowsAffected, res.Error
}
