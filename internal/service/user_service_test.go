package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"tropicalbs/internal/model"
	"tropicalbs/internal/repository"
)

func TestUserService_List(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockUserRepo.On("List", mock.Anything).Return([]model.User{
		{ID: 1, Email: "alice@example.com", Roles: []model.Role{{ID: 1, Name: "user"}, {ID: 2, Name: "admin"}}},
		{ID: 2, Email: "bob@example.com", Roles: []model.Role{{ID: 1, Name: "user"}}},
	}, nil)

	service := NewUserService(mockUserRepo, new(MockRoleRepository), nil)
	profiles, err := service.List(context.Background())

	assert.NoError(t, err)
	assert.Len(t, profiles, 2)
	assert.Equal(t, []string{"user", "admin"}, profiles[0].Roles)
	assert.Equal(t, []string{"user"}, profiles[1].Roles)
	mockUserRepo.AssertExpectations(t)
}

func TestUserService_Update_ReplacesRoleSet(t *testing.T) {
	adminRole := model.Role{ID: 2, Name: "admin"}
	before := &model.User{ID: 1, Email: "alice@example.com", Roles: []model.Role{{ID: 1, Name: "user"}}}
	after := &model.User{ID: 1, Email: "alice@example.com", Roles: []model.Role{adminRole}}

	mockUserRepo := new(MockUserRepository)
	mockRoleRepo := new(MockRoleRepository)

	mockUserRepo.On("FindByID", mock.Anything, uint(1)).Return(before, nil).Once()
	mockUserRepo.On("Update", mock.Anything, before).Return(nil)
	mockRoleRepo.On("FindMatching", mock.Anything, repository.AnyOfNames{"admin"}).
		Return([]model.Role{adminRole}, nil)
	mockUserRepo.On("ReplaceRoles", mock.Anything, before, []model.Role{adminRole}).Return(nil)
	mockUserRepo.On("FindByID", mock.Anything, uint(1)).Return(after, nil).Once()

	service := NewUserService(mockUserRepo, mockRoleRepo, nil)
	updated, err := service.Update(context.Background(), 1, "", []string{"admin"})

	assert.NoError(t, err)
	// Replacement, not append: the prior "user" role is gone.
	assert.Equal(t, []string{"admin"}, updated.RoleNames())
	mockUserRepo.AssertExpectations(t)
	mockRoleRepo.AssertExpectations(t)
}

func TestUserService_Update_DedupesRequestedRoles(t *testing.T) {
	userRole := model.Role{ID: 1, Name: "user"}
	adminRole := model.Role{ID: 2, Name: "admin"}
	stored := &model.User{ID: 1, Email: "alice@example.com", Roles: []model.Role{userRole}}

	mockUserRepo := new(MockUserRepository)
	mockRoleRepo := new(MockRoleRepository)

	mockUserRepo.On("FindByID", mock.Anything, uint(1)).Return(stored, nil)
	mockUserRepo.On("Update", mock.Anything, stored).Return(nil)
	mockRoleRepo.On("FindMatching", mock.Anything, repository.AnyOfNames{"admin", "user"}).
		Return([]model.Role{adminRole, userRole}, nil)
	mockUserRepo.On("ReplaceRoles", mock.Anything, stored, []model.Role{adminRole, userRole}).Return(nil)

	service := NewUserService(mockUserRepo, mockRoleRepo, nil)
	_, err := service.Update(context.Background(), 1, "", []string{"admin", "admin", "user"})

	assert.NoError(t, err)
	mockRoleRepo.AssertExpectations(t)
}

func TestUserService_Update_UnknownRole(t *testing.T) {
	stored := &model.User{ID: 1, Email: "alice@example.com"}

	mockUserRepo := new(MockUserRepository)
	mockRoleRepo := new(MockRoleRepository)

	mockUserRepo.On("FindByID", mock.Anything, uint(1)).Return(stored, nil)
	mockUserRepo.On("Update", mock.Anything, stored).Return(nil)
	mockRoleRepo.On("FindMatching", mock.Anything, repository.AnyOfNames{"admin", "superuser"}).
		Return([]model.Role{{ID: 2, Name: "admin"}}, nil)

	service := NewUserService(mockUserRepo, mockRoleRepo, nil)
	_, err := service.Update(context.Background(), 1, "", []string{"admin", "superuser"})

	assert.ErrorIs(t, err, ErrRoleNotFound)
	mockRoleRepo.AssertExpectations(t)
}

func TestUserService_Update_LowercasesEmailOverride(t *testing.T) {
	stored := &model.User{ID: 1, Email: "alice@example.com"}

	mockUserRepo := new(MockUserRepository)
	mockUserRepo.On("FindByID", mock.Anything, uint(1)).Return(stored, nil)
	mockUserRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.Email == "new@example.com"
	})).Return(nil)

	service := NewUserService(mockUserRepo, new(MockRoleRepository), nil)
	_, err := service.Update(context.Background(), 1, "New@Example.COM", nil)

	assert.NoError(t, err)
	mockUserRepo.AssertExpectations(t)
}

func TestUserService_GetByID_Unknown(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockUserRepo.On("FindByID", mock.Anything, uint(42)).Return(nil, gorm.ErrRecordNotFound)

	service := NewUserService(mockUserRepo, new(MockRoleRepository), nil)
	_, err := service.GetByID(context.Background(), 42)

	assert.ErrorIs(t, err, ErrUnknownUser)
}

func TestUserService_Delete(t *testing.T) {
	stored := &model.User{ID: 1, Email: "alice@example.com"}

	mockUserRepo := new(MockUserRepository)
	mockUserRepo.On("FindByID", mock.Anything, uint(1)).Return(stored, nil)
	mockUserRepo.On("Delete", mock.Anything, stored).Return(nil)

	service := NewUserService(mockUserRepo, new(MockRoleRepository), nil)
	assert.NoError(t, service.Delete(context.Background(), 1))
	mockUserRepo.AssertExpectations(t)
}
