package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/xalt/xolt-api/internal/config"
)

const brevoEndpoint = "https://api.brevo.com/v3/smtp/email"

// Mailer sends transactional email through the Brevo REST API. When no
// API key is configured it degrades to a logged no-op.
type Mailer struct {
	cfg    config.NotificationConfig
	client *http.Client
	logger *zap.Logger
}

// NewMailer constructs the mailer.
func NewMailer(cfg config.NotificationConfig, logger *zap.Logger) *Mailer {
	return &Mailer{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
		logger: logger,
	}
}

type brevoRecipient struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type brevoMessage struct {
	Sender      brevoRecipient   `json:"sender"`
	To          []brevoRecipient `json:"to"`
	Subject     string           `json:"subject"`
	HTMLContent string           `json:"htmlContent"`
}

// Send delivers a plain-text message wrapped in a pre block.
func (m *Mailer) Send(ctx context.Context, to, subject, content string) error {
	if m.cfg.BrevoAPIKey == "" {
		m.logger.Info("email sending disabled; BREVO_API_KEY not set",
			zap.String("to", to), zap.String("subject", subject))
		return nil
	}

	payload := brevoMessage{
		Sender:      brevoRecipient{Name: "Xalt", Email: m.cfg.EmailFrom},
		To:          []brevoRecipient{{Email: to}},
		Subject:     subject,
		HTMLContent: fmt.Sprintf("<pre>%s</pre>", content),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, brevoEndpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", m.cfg.BrevoAPIKey)

	resp, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("failed to send email: %s", string(text))
	}
	return nil
}
