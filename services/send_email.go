package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site/config"
)

const resendEndpoint = "https://api.resend.com/emails"

// Mailer sends a single e-mail.
type Mailer interface {
	SendEmail(ctx context.Context, subject, body string, recipients []string) error
}

type resendPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
}

// resendReply covers both the success body (ID) and the error body (Message).
type resendReply struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type ResendMailer struct {
	apiKey    string
	fromEmail string
	endpoint  string
	client    *http.Client
	logger    zerolog.Logger
}

// NewMailer returns a Resend mailer when RESEND_API_KEY and RESEND_FROM_EMAIL
// are configured and a NopMailer otherwise.
func NewMailer(c map[string]string) Mailer {
	apiKey := config.GetString(c, "RESEND_API_KEY", "")
	fromEmail := config.GetString(c, "RESEND_FROM_EMAIL", "")
	if apiKey == "" || fromEmail == "" {
		log.Info().Msg("RESEND_API_KEY or RESEND_FROM_EMAIL not set, outbound mail disabled")
		return NopMailer{}
	}
	return NewResendMailer(apiKey, fromEmail, resendEndpoint)
}

func NewResendMailer(apiKey, fromEmail, endpoint string) *ResendMailer {
	return &ResendMailer{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		endpoint:  endpoint,
		client:    &http.Client{Timeout: 10 * time.Second},
		logger:    log.With().Str("component", "mailer").Logger(),
	}
}

// SendEmail posts one HTML message to the Resend API. Any non-2xx reply is
// an error carrying the status and the API's message.
func (m *ResendMailer) SendEmail(ctx context.Context, subject, body string, recipients []string) error {
	if len(recipients) == 0 {
		return errors.New("send email: no recipients")
	}

	payload, err := json.Marshal(resendPayload{From: m.fromEmail, To: recipients, Subject: subject, Html: body})
	if err != nil {
		return fmt.Errorf("encode email: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build resend request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("call resend: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return fmt.Errorf("read resend reply: %w", err)
	}
	var reply resendReply
	decodeErr := json.Unmarshal(raw, &reply)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail := reply.Message
		if decodeErr != nil || detail == "" {
			detail = string(raw)
		}
		return fmt.Errorf("resend rejected email (status %d): %s", resp.StatusCode, detail)
	}
	if decodeErr != nil {
		m.logger.Warn().Err(decodeErr).Msg("email sent but reply was unreadable")
		return nil
	}
	m.logger.Info().Str("emailId", reply.ID).Strs("to", recipients).Msg("email sent")
	return nil
}

// NopMailer drops every message.
type NopMailer struct{}

func (NopMailer) SendEmail(context.Context, string, string, []string) error {
	return nil
}
