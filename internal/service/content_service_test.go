package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"tropicalbs/internal/model"
)

func TestContentService_Index(t *testing.T) {
	mockPageRepo := new(MockPageRepository)
	mockTabRepo := new(MockTabRepository)

	mockPageRepo.On("List", mock.Anything).Return([]model.Page{
		{ID: 1, Title: "Home", Slug: "home"},
	}, nil)
	mockTabRepo.On("List", mock.Anything).Return([]model.Tab{
		{ID: 1, Title: "Admin", UISref: "admin", VisibleRoles: []model.Role{{ID: 2, Name: "admin"}}},
		{ID: 2, Title: "Public", UISref: "public"},
	}, nil)

	service := NewContentService(mockPageRepo, mockTabRepo)
	payload, err := service.Index(context.Background())

	assert.NoError(t, err)
	assert.Len(t, payload.Pages, 1)
	assert.Len(t, payload.Tabs, 2)
	assert.Equal(t, []string{"admin"}, payload.Tabs[0].VisibleRoles)
	assert.Empty(t, payload.Tabs[1].VisibleRoles)
	mockPageRepo.AssertExpectations(t)
	mockTabRepo.AssertExpectations(t)
}

func TestContentService_Index_PropagatesStoreError(t *testing.T) {
	mockPageRepo := new(MockPageRepository)
	mockTabRepo := new(MockTabRepository)

	mockPageRepo.On("List", mock.Anything).Return(nil, assert.AnError)
	mockTabRepo.On("List", mock.Anything).Return([]model.Tab{}, nil).Maybe()

	service := NewContentService(mockPageRepo, mockTabRepo)
	_, err := service.Index(context.Background())

	assert.Error(t, err)
}
