package sms

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const twilioAPIBase = "https://api.twilio.com/2010-04-01"

// TwilioSender sends SMS through the Twilio Messages API.
type TwilioSender struct {
	AccountSID string
	AuthToken  string
	FromNumber string

	// BaseURL overrides the Twilio endpoint, used by tests.
	BaseURL string

	client *http.Client
}

// NewTwilioSender builds a Sender backed by Twilio.
func NewTwilioSender(accountSID, authToken, fromNumber string) (*TwilioSender, error) {
	if accountSID == "" || authToken == "" || fromNumber == "" {
		return nil, fmt.Errorf("twilio credentials not set in configuration")
	}
	return &TwilioSender{
		AccountSID: accountSID,
		AuthToken:  authToken,
		FromNumber: fromNumber,
		client:     &http.Client{Timeout: 10 * time.Second},
	}, nil
}

type twilioMessageResponse struct {
	SID          string `json:"sid"`
	Status       string `json:"status"`
	ErrorCode    *int   `json:"error_code"`
	ErrorMessage string `json:"error_message"`
	Message      string `json:"message"` // Set on API-level errors.
}

// Send posts a message to the Twilio Messages endpoint.
func (s *TwilioSender) Send(ctx context.Context, toPhone, message string) error {
	base := s.BaseURL
	if base == "" {
		base = twilioAPIBase
	}
	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", base, s.AccountSID)

	form := url.Values{}
	form.Set("To", toPhone)
	form.Set("From", s.FromNumber)
	form.Set("Body", message)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("twilio: failed to build request: %w", err)
	}
	req.SetBasicAuth(s.AccountSID, s.AuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("twilio: request failed: %w", err)
	}
	defer resp.Body.Close()

	var msgResp twilioMessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&msgResp); err != nil {
		return fmt.Errorf("twilio: decoding response failed: %w", err)
	}

	if resp.StatusCode >= 300 {
		return fmt.Errorf("twilio: send to %s rejected (status %d): %s", toPhone, resp.StatusCode, msgResp.Message)
	}
	if msgResp.ErrorCode != nil {
		return fmt.Errorf("twilio: send to %s failed (code %d): %s", toPhone, *msgResp.ErrorCode, msgResp.ErrorMessage)
	}
	return nil
}
