package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"tropicalbs/internal/model"
	"tropicalbs/internal/repository"
)

func TestTabService_Create(t *testing.T) {
	adminRole := model.Role{ID: 2, Name: "admin"}

	mockTabRepo := new(MockTabRepository)
	mockRoleRepo := new(MockRoleRepository)

	mockRoleRepo.On("FindMatching", mock.Anything, repository.AnyOfNames{"admin"}).
		Return([]model.Role{adminRole}, nil)
	mockTabRepo.On("Create", mock.Anything, mock.MatchedBy(func(tab *model.Tab) bool {
		return tab.Title == "Admin" && tab.UISref == "admin" && len(tab.VisibleRoles) == 1
	})).Return(nil)

	service := NewTabService(mockTabRepo, mockRoleRepo)
	tab, err := service.Create(context.Background(), "Admin", "admin", []string{"admin"})

	assert.NoError(t, err)
	assert.Equal(t, "Admin", tab.Title)
	mockTabRepo.AssertExpectations(t)
	mockRoleRepo.AssertExpectations(t)
}

func TestTabService_Create_UnknownRole(t *testing.T) {
	mockTabRepo := new(MockTabRepository)
	mockRoleRepo := new(MockRoleRepository)

	mockRoleRepo.On("FindMatching", mock.Anything, repository.AnyOfNames{"ghost"}).
		Return([]model.Role{}, nil)

	service := NewTabService(mockTabRepo, mockRoleRepo)
	_, err := service.Create(context.Background(), "Ghost", "ghost", []string{"ghost"})

	assert.ErrorIs(t, err, ErrRoleNotFound)
	mockTabRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTabService_Update_ReplacesVisibleRoles(t *testing.T) {
	userRole := model.Role{ID: 1, Name: "user"}
	stored := &model.Tab{ID: 1, Title: "Admin", UISref: "admin", VisibleRoles: []model.Role{{ID: 2, Name: "admin"}}}
	updated := &model.Tab{ID: 1, Title: "Admin", UISref: "admin", VisibleRoles: []model.Role{userRole}}

	mockTabRepo := new(MockTabRepository)
	mockRoleRepo := new(MockRoleRepository)

	mockTabRepo.On("FindByID", mock.Anything, uint(1)).Return(stored, nil).Once()
	mockTabRepo.On("Update", mock.Anything, stored).Return(nil)
	mockRoleRepo.On("FindMatching", mock.Anything, repository.AnyOfNames{"user"}).
		Return([]model.Role{userRole}, nil)
	mockTabRepo.On("ReplaceVisibleRoles", mock.Anything, stored, []model.Role{userRole}).Return(nil)
	mockTabRepo.On("FindByID", mock.Anything, uint(1)).Return(updated, nil).Once()

	service := NewTabService(mockTabRepo, mockRoleRepo)
	tab, err := service.Update(context.Background(), 1, "", "", []string{"user"})

	assert.NoError(t, err)
	assert.Equal(t, []string{"user"}, NewTabView(tab).VisibleRoles)
	mockTabRepo.AssertExpectations(t)
}
