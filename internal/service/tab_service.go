package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"tropicalbs/internal/model"
	"tropicalbs/internal/repository"
)

// ErrTabNotFound is returned when a tab id resolves to nothing.
var ErrTabNotFound = errors.New("tab not found")

// TabView is the projection the SPA renders: the tab plus flattened role
// names controlling its visibility.
type TabView struct {
	ID           uint     `json:"id"`
	Title        string   `json:"title"`
	UISref       string   `json:"uisref"`
	VisibleRoles []string `json:"visible_roles"`
}

// NewTabView projects a tab with its loaded visible roles.
func NewTabView(t *model.Tab) TabView {
	names := make([]string, 0, len(t.VisibleRoles))
	for _, role := range t.VisibleRoles {
		names = append(names, role.Name)
	}
	return TabView{ID: t.ID, Title: t.Title, UISref: t.UISref, VisibleRoles: names}
}

// TabService manages navigation tabs and their role visibility.
type TabService interface {
	List(ctx context.Context) ([]TabView, error)
	Create(ctx context.Context, title, uisref string, visibleRoles []string) (*model.Tab, error)
	Update(ctx context.Context, id uint, title, uisref string, visibleRoles []string) (*model.Tab, error)
	Delete(ctx context.Context, id uint) error
}

type tabService struct {
	tabRepo  repository.TabRepository
	roleRepo repository.RoleRepository
}

// NewTabService builds a TabService.
func NewTabService(tabRepo repository.TabRepository, roleRepo repository.RoleRepository) TabService {
	return &tabService{tabRepo: tabRepo, roleRepo: roleRepo}
}

func (s *tabService) List(ctx context.Context) ([]TabView, error) {
	tabs, err := s.tabRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]TabView, 0, len(tabs))
	for i := range tabs {
		views = append(views, NewTabView(&tabs[i]))
	}
	return views, nil
}

func (s *tabService) Create(ctx context.Context, title, uisref string, visibleRoles []string) (*model.Tab, error) {
	roles, err := s.resolveRoles(ctx, visibleRoles)
	if err != nil {
		return nil, err
	}

	tab := &model.Tab{Title: title, UISref: uisref, VisibleRoles: roles}
	if err := s.tabRepo.Create(ctx, tab); err != nil {
		return nil, fmt.Errorf("create tab: %w", err)
	}
	return tab, nil
}

func (s *tabService) Update(ctx context.Context, id uint, title, uisref string, visibleRoles []string) (*model.Tab, error) {
	tab, err := s.tabRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTabNotFound
		}
		return nil, err
	}

	if title != "" {
		tab.Title = title
	}
	if uisref != "" {
		tab.UISref = uisref
	}
	if err := s.tabRepo.Update(ctx, tab); err != nil {
		return nil, fmt.Errorf("save tab: %w", err)
	}

	if visibleRoles != nil {
		roles, err := s.resolveRoles(ctx, visibleRoles)
		if err != nil {
			return nil, err
		}
		if err := s.tabRepo.ReplaceVisibleRoles(ctx, tab, roles); err != nil {
			return nil, fmt.Errorf("replace visible roles: %w", err)
		}
	}

	return s.tabRepo.FindByID(ctx, id)
}

func (s *tabService) Delete(ctx context.Context, id uint) error {
	tab, err := s.tabRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTabNotFound
		}
		return err
	}
	return s.tabRepo.Delete(ctx, tab)
}

func (s *tabService) resolveRoles(ctx context.Context, names []string) ([]model.Role, error) {
	pred := repository.AnyOfNames(names).Dedupe()
	roles, err := s.roleRepo.FindMatching(ctx, pred)
	if err != nil {
		return nil, fmt.Errorf("resolve roles: %w", err)
	}
	if len(roles) != len(pred) {
		return nil, ErrRoleNotFound
	}
	return roles, nil
}
