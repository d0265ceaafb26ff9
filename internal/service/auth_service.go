package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"tropicalbs/internal/auth"
	"tropicalbs/internal/mail"
	"tropicalbs/internal/model"
	"tropicalbs/internal/repository"
)

const (
	resetTokenBytes  = 20
	resetMailSubject = "Password Reset"

	// anonymousDisplayName is used when sign-up omits a display name.
	anonymousDisplayName = "Anonymous"
)

var (
	// ErrInvalidCredentials is returned for both an unknown email and a wrong
	// password, so a caller cannot probe which accounts exist.
	ErrInvalidCredentials = errors.New("user does not exist or password is incorrect")
	// ErrEmailTaken is returned when the unique email constraint rejects a sign-up.
	ErrEmailTaken = errors.New("email is already registered")
	// ErrMissingToken is returned when no bearer token accompanies a request.
	ErrMissingToken = errors.New("no token provided")
	// ErrInvalidToken is returned when a token fails signature or expiry checks.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrTokenRevoked is returned when a token was invalidated by logout.
	ErrTokenRevoked = errors.New("token has been revoked")
	// ErrUnknownUser is returned when an identity no longer resolves to a stored user.
	ErrUnknownUser = errors.New("user does not exist")
	// ErrRoleNotFound is returned when a named role is missing from the role store.
	ErrRoleNotFound = errors.New("role not found")
	// ErrResetTokenInvalid is returned when a reset token matches no user,
	// including tokens already consumed once.
	ErrResetTokenInvalid = errors.New("reset token is invalid or already used")
	// ErrTokenGeneration is returned when randomness for a reset token fails.
	ErrTokenGeneration = errors.New("could not generate a reset token")
	// ErrNotificationFailed is returned when the reset email cannot be dispatched.
	ErrNotificationFailed = errors.New("could not send notification email")
)

// AuthService is the single authority for identity verification, credential
// issuance and the password-reset lifecycle.
type AuthService interface {
	SignUp(ctx context.Context, email, password, displayName, firstName, lastName string) (string, *model.User, error)
	Login(ctx context.Context, email, password string) (string, *model.User, error)
	CheckAuth(ctx context.Context, token string) (*model.User, error)
	Logout(ctx context.Context, token string) error
	SendResetToken(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type authService struct {
	userRepo   repository.UserRepository
	roleRepo   repository.RoleRepository
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
	mailer     mail.Sender
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	jwtService *auth.JWTService,
	tokenStore auth.TokenStoreInterface,
	mailer mail.Sender,
) AuthService {
	return &authService{
		userRepo:   userRepo,
		roleRepo:   roleRepo,
		jwtService: jwtService,
		tokenStore: tokenStore,
		mailer:     mailer,
	}
}

// SignUp creates a user, attaches the default role, and issues a token over
// the role set that was actually persisted. Email uniqueness is left to the
// store's constraint; there is no pre-check.
func (s *authService) SignUp(ctx context.Context, email, password, displayName, firstName, lastName string) (string, *model.User, error) {
	email = strings.ToLower(email)
	if displayName == "" {
		displayName = anonymousDisplayName
	}

	user := &model.User{
		Email:       email,
		Password:    password,
		DisplayName: displayName,
		FirstName:   firstName,
		LastName:    lastName,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", nil, ErrEmailTaken
		}
		return "", nil, fmt.Errorf("create user: %w", err)
	}

	role, err := s.roleRepo.FindByName(ctx, model.DefaultRoleName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrRoleNotFound
		}
		return "", nil, fmt.Errorf("find default role: %w", err)
	}
	if err := s.userRepo.AddRole(ctx, user, role); err != nil {
		return "", nil, fmt.Errorf("attach default role: %w", err)
	}

	// Reload so the tokenized role set reflects what was persisted, not the
	// in-memory record.
	created, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, fmt.Errorf("reload user: %w", err)
	}

	token, err := s.jwtService.GenerateToken(created.Email, created.RoleNames())
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}
	return token, created, nil
}

// Login authenticates by email and password and issues a bearer token.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("find user: %w", err)
	}

	if !user.ComparePassword(password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.Email, user.RoleNames())
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}
	return token, user, nil
}

// CheckAuth verifies a bearer token and resolves it to a stored user. A token
// for a since-deleted user never yields a stale success.
func (s *authService) CheckAuth(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	revoked, err := s.tokenStore.IsTokenRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("check revocation: %w", err)
	}
	if revoked {
		return nil, ErrTokenRevoked
	}

	user, err := s.userRepo.FindByEmail(ctx, claims.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownUser
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// Logout revokes the token until its natural expiry.
func (s *authService) Logout(ctx context.Context, token string) error {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return ErrInvalidToken
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return s.tokenStore.RevokeToken(ctx, claims.ID, ttl)
}

// SendResetToken stores a fresh one-time reset token on the user matched by
// email and mails it to them. An email that matches no user fails explicitly
// rather than reporting silent success.
func (s *authService) SendResetToken(ctx context.Context, email string) error {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return ErrTokenGeneration
	}
	token := hex.EncodeToString(buf)

	email = strings.ToLower(email)
	rows, err := s.userRepo.SetResetToken(ctx, email, token)
	if err != nil {
		return fmt.Errorf("store reset token: %w", err)
	}
	if rows == 0 {
		return ErrUnknownUser
	}

	msg := mail.Message{
		To:      email,
		Subject: resetMailSubject,
		Body:    token,
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		return ErrNotificationFailed
	}
	return nil
}

// ResetPassword consumes a reset token: the new password hash is written and
// the token cleared in one atomic update, so a token authenticates exactly
// one reset.
func (s *authService) ResetPassword(ctx context.Context, token, newPassword string) error {
	hash, err := model.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	rows, err := s.userRepo.ResetPasswordByToken(ctx, token, hash)
	if err != nil {
		return fmt.Errorf("reset password: %w", err)
	}
	if rows == 0 {
		return ErrResetTokenInvalid
	}
	return nil
}
