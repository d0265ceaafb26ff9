package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"tropicalbs/internal/cache"
	"tropicalbs/internal/model"
	"tropicalbs/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// UserProfile is the role-flattened projection returned to the admin UI.
type UserProfile struct {
	ID          uint     `json:"id"`
	Email       string   `json:"email"`
	DisplayName string   `json:"display_name"`
	Roles       []string `json:"roles"`
}

// NewUserProfile projects a user record with its loaded roles.
func NewUserProfile(u *model.User) UserProfile {
	return UserProfile{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Roles:       u.RoleNames(),
	}
}

// UserService exposes user administration operations.
type UserService interface {
	List(ctx context.Context) ([]UserProfile, error)
	GetByID(ctx context.Context, id uint) (*model.User, error)
	Update(ctx context.Context, id uint, email string, roles []string) (*model.User, error)
	Delete(ctx context.Context, id uint) error
}

type userService struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
	cache    *cache.Client
}

// NewUserService builds a UserService with repositories and cache.
func NewUserService(userRepo repository.UserRepository, roleRepo repository.RoleRepository, cache *cache.Client) UserService {
	return &userService{userRepo: userRepo, roleRepo: roleRepo, cache: cache}
}

func (s *userService) cacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

func (s *userService) List(ctx context.Context) ([]UserProfile, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	profiles := make([]UserProfile, 0, len(users))
	for i := range users {
		profiles = append(profiles, NewUserProfile(&users[i]))
	}
	return profiles, nil
}

func (s *userService) GetByID(ctx context.Context, id uint) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownUser
		}
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, userCacheTTL)
	}
	return user, nil
}

// Update applies an optional email override and, when roles are supplied,
// replaces the user's entire role set with the named roles. Replacement is
// not an append: a user with {user} updated to ["admin"] holds exactly
// {admin} afterwards.
func (s *userService) Update(ctx context.Context, id uint, email string, roles []string) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownUser
		}
		return nil, err
	}

	if email != "" {
		user.Email = strings.ToLower(email)
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("save user: %w", err)
	}

	if roles != nil {
		pred := repository.AnyOfNames(roles).Dedupe()
		resolved, err := s.roleRepo.FindMatching(ctx, pred)
		if err != nil {
			return nil, fmt.Errorf("resolve roles: %w", err)
		}
		if len(resolved) != len(pred) {
			return nil, ErrRoleNotFound
		}
		if err := s.userRepo.ReplaceRoles(ctx, user, resolved); err != nil {
			return nil, fmt.Errorf("replace roles: %w", err)
		}
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))

	updated, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload user: %w", err)
	}
	return updated, nil
}

func (s *userService) Delete(ctx context.Context, id uint) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUnknownUser
		}
		return err
	}
	if err := s.userRepo.Delete(ctx, user); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}
