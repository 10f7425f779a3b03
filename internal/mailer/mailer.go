// Package mailer delivers transactional email through the Brevo HTTP API.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const apiURL = "https://api.brevo.com/v3/smtp/email"

type BrevoMailer struct {
	apiKey string
	sender string
	client *http.Client
}

func NewBrevoMailer(apiKey, sender string) *BrevoMailer {
	return &BrevoMailer{
		apiKey: apiKey,
		sender: sender,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type sendRequest struct {
	Sender      emailAddress   `json:"sender"`
	To          []emailAddress `json:"to"`
	Subject     string         `json:"subject"`
	HTMLContent string         `json:"htmlContent"`
}

type emailAddress struct {
	Email string `json:"email"`
}

func (m *BrevoMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	payload := sendRequest{
		Sender:      emailAddress{Email: m.sender},
		To:          []emailAddress{{Email: to}},
		Subject:     subject,
		HTMLContent: htmlBody,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", m.apiKey)

	resp, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("mail API returned status %d", resp.StatusCode)
	}

	return nil
}
