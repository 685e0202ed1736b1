package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

// NotificationService delivers email and SMS. Delivery is best-effort:
// lifecycle writes never wait on or roll back for a failed notification, so
// callers either log the returned error or run sends in a goroutine.
type NotificationService interface {
	SendEmail(ctx context.Context, recipient, subject, body string) error
	SendSMS(ctx context.Context, recipient, message string) error
}

type notificationService struct {
	emailAPIURL string
	emailAPIKey string
	fromEmail   string
	smsAPIURL   string
	httpClient  *http.Client
}

// NewNotificationService creates a notification service backed by HTTP
// delivery providers. When a provider URL is unset the send is logged and
// dropped, which keeps development environments working without credentials.
func NewNotificationService(emailAPIURL, emailAPIKey, fromEmail, smsAPIURL string) NotificationService {
	return &notificationService{
		emailAPIURL: emailAPIURL,
		emailAPIKey: emailAPIKey,
		fromEmail:   fromEmail,
		smsAPIURL:   smsAPIURL,
		httpClient:  &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *notificationService) SendEmail(ctx context.Context, recipient, subject, body string) error {
	if s.emailAPIURL == "" {
		log.Printf("email provider not configured, dropping mail to %s: %s", recipient, subject)
		return nil
	}
	payload := map[string]interface{}{
		"from":    s.fromEmail,
		"to":      recipient,
		"subject": subject,
		"text":    body,
	}
	return s.post(ctx, s.emailAPIURL, payload)
}

func (s *notificationService) SendSMS(ctx context.Context, recipient, message string) error {
	if s.smsAPIURL == "" {
		log.Printf("sms provider not configured, dropping sms to %s", recipient)
		return nil
	}
	payload := map[string]interface{}{
		"to":      recipient,
		"message": message,
	}
	return s.post(ctx, s.smsAPIURL, payload)
}

func (s *notificationService) post(ctx context.Context, url string, payload map[string]interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.emailAPIKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.emailAPIKey)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("notification provider returned HTTP %d", resp.StatusCode)
	}
	return nil
}
