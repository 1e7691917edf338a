package sms

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Service defines the interface for SMS delivery.
type Service interface {
	Send(ctx context.Context, phone, message string) error
}

// PanelConfig holds configuration for the SMS panel provider.
type PanelConfig struct {
	BaseURL  string
	Username string
	Password string
	Timeout  time.Duration
}

// PanelService implements Service against a form-encoded SMS panel API.
type PanelService struct {
	config PanelConfig
	client *http.Client
	logger zerolog.Logger
}

// NewPanelService creates a new PanelService.
func NewPanelService(config PanelConfig, logger zerolog.Logger) *PanelService {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &PanelService{
		config: config,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Send posts the message to the panel endpoint. When credentials are not
// configured, the message is logged instead so local development works
// without a provider account.
func (s *PanelService) Send(ctx context.Context, phone, message string) error {
	if s.config.Username == "" || s.config.Password == "" {
		s.logger.Warn().
			Str("phone", phone).
			Str("message", message).
			Msg("SMS credentials not configured - message not sent. Use the logged code for testing.")
		return nil
	}

	form := url.Values{}
	form.Set("UserName", s.config.Username)
	form.Set("Password", s.config.Password)
	form.Set("Mobile", phone)
	form.Set("Message", message)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.BaseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build SMS request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("SMS request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		s.logger.Error().Int("status", resp.StatusCode).Str("body", string(body)).Msg("SMS panel returned non-200 response")
		return fmt.Errorf("SMS request failed with status %d", resp.StatusCode)
	}

	return nil
}
