package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Client delivers transactional email.
type Client interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// HTTPClient talks to a Brevo compatible transactional email API.
type HTTPClient struct {
	apiURL     string
	apiKey     string
	sender     string
	httpClient *http.Client
	logger     *slog.Logger
}

type payload struct {
	Sender      map[string]string   `json:"sender"`
	To          []map[string]string `json:"to"`
	Subject     string              `json:"subject"`
	HTMLContent string              `json:"htmlContent"`
}

// NewHTTPClient creates the email client with default timeout.
func NewHTTPClient(apiURL, apiKey, sender string, logger *slog.Logger) *HTTPClient {
	return &HTTPClient{
		apiURL: apiURL,
		apiKey: apiKey,
		sender: sender,
		logger: logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Send posts one message to the API.
func (c *HTTPClient) Send(ctx context.Context, to, subject, htmlBody string) error {
	body, err := json.Marshal(payload{
		Sender:      map[string]string{"email": c.sender},
		To:          []map[string]string{{"email": to}},
		Subject:     subject,
		HTMLContent: htmlBody,
	})
	if err != nil {
		return fmt.Errorf("marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("api-key", c.apiKey)
	req.Header.Set("content-type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		respBody, _ := io.ReadAll(resp.Body)
		c.logger.Error("email request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(respBody)))
		return fmt.Errorf("email error: %s", resp.Status)
	}
	return nil
}

// NoopClient is used when no API key is configured. Messages are logged and
// dropped so the outbox keeps draining in development setups.
type NoopClient struct {
	logger *slog.Logger
}

// NewNoopClient constructs NoopClient.
func NewNoopClient(logger *slog.Logger) *NoopClient {
	return &NoopClient{logger: logger}
}

// Send logs the message instead of delivering it.
func (c *NoopClient) Send(_ context.Context, to, subject, _ string) error {
	c.logger.Warn("email delivery disabled, dropping message", slog.String("to", to), slog.String("subject", subject))
	return nil
}
