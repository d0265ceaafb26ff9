package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"tropicalbs/internal/mail"
	"tropicalbs/internal/model"
	"tropicalbs/internal/repository"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) AddRole(ctx context.Context, user *model.User, role *model.Role) error {
	args := m.Called(ctx, user, role)
	return args.Error(0)
}

func (m *MockUserRepository) ReplaceRoles(ctx context.Context, user *model.User, roles []model.Role) error {
	args := m.Called(ctx, user, roles)
	return args.Error(0)
}

func (m *MockUserRepository) SetResetToken(ctx context.Context, email, token string) (int64, error) {
	args := m.Called(ctx, email, token)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) ResetPasswordByToken(ctx context.Context, token, passwordHash string) (int64, error) {
	args := m.Called(ctx, token, passwordHash)
	return args.Get(0).(int64), args.Error(1)
}

// MockRoleRepository is a mock implementation of repository.RoleRepository.
type MockRoleRepository struct {
	mock.Mock
}

func (m *MockRoleRepository) FindByName(ctx context.Context, name string) (*model.Role, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Role), args.Error(1)
}

func (m *MockRoleRepository) FindMatching(ctx context.Context, pred repository.AnyOfNames) ([]model.Role, error) {
	args := m.Called(ctx, pred)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Role), args.Error(1)
}

func (m *MockRoleRepository) List(ctx context.Context) ([]model.Role, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Role), args.Error(1)
}

func (m *MockRoleRepository) EnsureExists(ctx context.Context, name string) (*model.Role, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Role), args.Error(1)
}

// MockTokenStore is a mock implementation of auth.TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

// MockMailSender is a mock implementation of mail.Sender.
type MockMailSender struct {
	mock.Mock
}

func (m *MockMailSender) Send(ctx context.Context, msg mail.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

// MockPageRepository is a mock implementation of repository.PageRepository.
type MockPageRepository struct {
	mock.Mock
}

func (m *MockPageRepository) Create(ctx context.Context, page *model.Page) error {
	args := m.Called(ctx, page)
	return args.Error(0)
}

func (m *MockPageRepository) Update(ctx context.Context, page *model.Page) error {
	args := m.Called(ctx, page)
	return args.Error(0)
}

func (m *MockPageRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPageRepository) FindByID(ctx context.Context, id uint) (*model.Page, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Page), args.Error(1)
}

func (m *MockPageRepository) List(ctx context.Context) ([]model.Page, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Page), args.Error(1)
}

// MockTabRepository is a mock implementation of repository.TabRepository.
type MockTabRepository struct {
	mock.Mock
}

func (m *MockTabRepository) Create(ctx context.Context, tab *model.Tab) error {
	args := m.Called(ctx, tab)
	return args.Error(0)
}

func (m *MockTabRepository) Update(ctx context.Context, tab *model.Tab) error {
	args := m.Called(ctx, tab)
	return args.Error(0)
}

func (m *MockTabRepository) Delete(ctx context.Context, tab *model.Tab) error {
	args := m.Called(ctx, tab)
	return args.Error(0)
}

func (m *MockTabRepository) FindByID(ctx context.Context, id uint) (*model.Tab, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tab), args.Error(1)
}

func (m *MockTabRepository) List(ctx context.Context) ([]model.Tab, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Tab), args.Error(1)
}

func (m *MockTabRepository) ReplaceVisibleRoles(ctx context.Context, tab *model.Tab, roles []model.Role) error {
	args := m.Called(ctx, tab, roles)
	return args.Error(0)
}
