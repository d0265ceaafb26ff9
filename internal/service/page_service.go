package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"tropicalbs/internal/model"
	"tropicalbs/internal/repository"
)

// ErrPageNotFound is returned when a page id resolves to nothing.
var ErrPageNotFound = errors.New("page not found")

// ErrSlugTaken is returned when a page slug collides with an existing one.
var ErrSlugTaken = errors.New("page slug is already in use")

// PageService manages content pages.
type PageService interface {
	List(ctx context.Context) ([]model.Page, error)
	GetByID(ctx context.Context, id uint) (*model.Page, error)
	Create(ctx context.Context, title, slug, content string) (*model.Page, error)
	Update(ctx context.Context, id uint, title, slug, content string) (*model.Page, error)
	Delete(ctx context.Context, id uint) error
}

type pageService struct {
	pageRepo repository.PageRepository
}

// NewPageService builds a PageService.
func NewPageService(pageRepo repository.PageRepository) PageService {
	return &pageService{pageRepo: pageRepo}
}

func (s *pageService) List(ctx context.Context) ([]model.Page, error) {
	return s.pageRepo.List(ctx)
}

func (s *pageService) GetByID(ctx context.Context, id uint) (*model.Page, error) {
	page, err := s.pageRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}
	return page, nil
}

func (s *pageService) Create(ctx context.Context, title, slug, content string) (*model.Page, error) {
	page := &model.Page{Title: title, Slug: slug, Content: content}
	if err := s.pageRepo.Create(ctx, page); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("create page: %w", err)
	}
	return page, nil
}

func (s *pageService) Update(ctx context.Context, id uint, title, slug, content string) (*model.Page, error) {
	page, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if title != "" {
		page.Title = title
	}
	if slug != "" {
		page.Slug = slug
	}
	if content != "" {
		page.Content = content
	}
	if err := s.pageRepo.Update(ctx, page); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("save page: %w", err)
	}
	return page, nil
}

func (s *pageService) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.pageRepo.Delete(ctx, id)
}
