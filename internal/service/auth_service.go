package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/xalt/xolt-api/internal/auth"
	"github.com/xalt/xolt-api/internal/config"
	"github.com/xalt/xolt-api/internal/domain"
	"github.com/xalt/xolt-api/internal/events"
	"github.com/xalt/xolt-api/internal/repository"
	"github.com/xalt/xolt-api/pkg/util"
)

// AuthService coordinates login and password reset flows.
type AuthService struct {
	users       repository.UserRepository
	resets      repository.PasswordResetRepository
	tokenMgr    *auth.TokenManager
	dispatcher  events.Dispatcher
	bcryptCost  int
	resetTTL    time.Duration
	frontendURL string
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, users repository.UserRepository, resets repository.PasswordResetRepository, dispatcher events.Dispatcher) *AuthService {
	return &AuthService{
		users:       users,
		resets:      resets,
		tokenMgr:    auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL()),
		dispatcher:  dispatcher,
		bcryptCost:  cfg.Auth.BcryptCost,
		resetTTL:    cfg.Auth.ResetTokenTTL(),
		frontendURL: cfg.Notification.FrontendURL,
	}
}

// Login authenticates by email and password and issues a bearer token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", time.Time{}, util.NewUnauthorized("Invalid email or password")
		}
		return nil, "", time.Time{}, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, util.NewUnauthorized("Invalid email or password")
	}

	token, expiresAt, err := s.tokenMgr.Issue(user.ID, user.Roles)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, expiresAt, nil
}

// RequestPasswordReset mints a one-shot token, stores it with a TTL and
// publishes the event that triggers the reset email.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", util.NewNotFound("user", map[string]any{"email": email})
		}
		return "", err
	}

	token := uuid.NewString()
	if err := s.resets.Store(ctx, token, user.ID, s.resetTTL); err != nil {
		return "", err
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", s.frontendURL, token)
	_ = s.dispatcher.Publish(ctx, events.Event{
		Type:    events.EventPasswordResetRequested,
		UserID:  user.ID,
		Email:   user.Email,
		Payload: map[string]any{"reset_link": resetLink},
	})
	return resetLink, nil
}

// ConfirmPasswordReset consumes the reset token and stores the new hash.
func (s *AuthService) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	userID, err := s.resets.Consume(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return util.NewUnauthorized("Invalid or expired reset token")
		}
		return err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return util.NewUnauthorized("Invalid or expired reset token")
		}
		return err
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	user.UpdatedAt = time.Now()
	return s.users.Update(ctx, user)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
