package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/xalt/xolt-api/internal/events"
)

// NotificationService emits email notifications for domain events.
type NotificationService struct {
	dispatcher events.Dispatcher
	mailer     *Mailer
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, mailer *Mailer, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		mailer:     mailer,
		logger:     logger,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventUserCreated, n.handleUserCreated)
	n.dispatcher.Subscribe(events.EventPasswordResetRequested, n.handlePasswordResetRequested)
}

func (n *NotificationService) handleUserCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("UserCreated", zap.String("user_id", event.UserID), zap.String("email", event.Email))
	content := "Hello,\n\nYour Xolt account has been created.\n\nThanks,\nXalt Team"
	if err := n.mailer.Send(ctx, event.Email, "Welcome to Xolt", content); err != nil {
		n.logger.Warn("welcome email failed", zap.String("email", event.Email), zap.Error(err))
	}
	return nil
}

func (n *NotificationService) handlePasswordResetRequested(ctx context.Context, event events.Event) error {
	n.logger.Info("PasswordResetRequested", zap.String("user_id", event.UserID))
	resetLink, _ := event.Payload["reset_link"].(string)
	content := "Hello,\n\nClick the link below to reset your password:\n" + resetLink +
		"\n\nIf you did not request this, please ignore this email.\n\nThanks,\nXalt Team"
	if err := n.mailer.Send(ctx, event.Email, "Password Reset Request", content); err != nil {
		n.logger.Warn("reset email failed", zap.String("email", event.Email), zap.Error(err))
		return err
	}
	return nil
}
