package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const sendGridSendURL = "https://api.sendgrid.com/v3/mail/send"

// SendGridMailer sends transactional email through the SendGrid v3 API.
type SendGridMailer struct {
	APIKey   string
	From     string
	FromName string

	// BaseURL overrides the SendGrid endpoint, used by tests.
	BaseURL string

	client *http.Client
}

// NewSendGridMailer builds a Mailer backed by SendGrid.
func NewSendGridMailer(apiKey, from, fromName string) (*SendGridMailer, error) {
	if apiKey == "" || from == "" {
		return nil, fmt.Errorf("sendgrid credentials not set in configuration")
	}
	return &SendGridMailer{
		APIKey:   apiKey,
		From:     from,
		FromName: fromName,
		client:   &http.Client{Timeout: 10 * time.Second},
	}, nil
}

type sgAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type sgContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type sgPersonalization struct {
	To []sgAddress `json:"to"`
}

type sgMailRequest struct {
	Personalizations []sgPersonalization `json:"personalizations"`
	From             sgAddress           `json:"from"`
	Subject          string              `json:"subject"`
	Content          []sgContent         `json:"content"`
}

// Send posts a mail/send request to SendGrid.
func (m *SendGridMailer) Send(ctx context.Context, toAddress, subject, textBody, htmlBody string) error {
	endpoint := m.BaseURL
	if endpoint == "" {
		endpoint = sendGridSendURL
	}

	content := []sgContent{{Type: "text/plain", Value: textBody}}
	if htmlBody != "" {
		content = append(content, sgContent{Type: "text/html", Value: htmlBody})
	}

	payload := sgMailRequest{
		Personalizations: []sgPersonalization{{To: []sgAddress{{Email: toAddress}}}},
		From:             sgAddress{Email: m.From, Name: m.FromName},
		Subject:          subject,
		Content:          content,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("sendgrid: failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("sendgrid: failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("sendgrid: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("sendgrid: send to %s rejected (status %d): %s", toAddress, resp.StatusCode, string(detail))
	}
	return nil
}
