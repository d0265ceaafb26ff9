package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"tropicalbs/internal/model"
	"tropicalbs/internal/repository"
)

// IndexPayload is the SPA bootstrap document: all pages plus all tabs with
// their visibility roles flattened.
type IndexPayload struct {
	Pages []model.Page `json:"pages"`
	Tabs  []TabView    `json:"tabs"`
}

// ContentService assembles the SPA bootstrap payload.
type ContentService interface {
	Index(ctx context.Context) (*IndexPayload, error)
}

type contentService struct {
	pageRepo repository.PageRepository
	tabRepo  repository.TabRepository
}

// NewContentService builds a ContentService.
func NewContentService(pageRepo repository.PageRepository, tabRepo repository.TabRepository) ContentService {
	return &contentService{pageRepo: pageRepo, tabRepo: tabRepo}
}

// Index fetches pages and tabs concurrently and joins the results.
func (s *contentService) Index(ctx context.Context) (*IndexPayload, error) {
	var (
		pages []model.Page
		tabs  []model.Tab
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		pages, err = s.pageRepo.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		tabs, err = s.tabRepo.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	views := make([]TabView, 0, len(tabs))
	for i := range tabs {
		views = append(views, NewTabView(&tabs[i]))
	}
	return &IndexPayload{Pages: pages, Tabs: views}, nil
}
