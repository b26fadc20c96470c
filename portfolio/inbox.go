package portfolio

import (
	"context"
	"fmt"
	"html"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site/errs"
	"github.com/rpupo63/portfolio-site/models"
	"github.com/rpupo63/portfolio-site/services"
)

const (
	maxNameLength    = 100
	maxEmailLength   = 255
	maxMessageLength = 2000
)

// Inbox stores messages sent through the public contact form.
type Inbox struct {
	messages MessageStore
	mailer   services.Mailer
	notify   []string
	logger   zerolog.Logger
}

// NewInbox notifies every address in notify when a message arrives.
func NewInbox(messages MessageStore, mailer services.Mailer, notify []string) *Inbox {
	return &Inbox{
		messages: messages,
		mailer:   mailer,
		notify:   notify,
		logger:   log.With().Str("component", "inbox").Logger(),
	}
}

// Submit validates and stores the message. The notification e-mail is best
// effort: a failed send is logged and the message is still accepted.
func (i *Inbox) Submit(ctx context.Context, message *models.ContactMessage) error {
	message.Name = strings.TrimSpace(message.Name)
	message.Email = strings.TrimSpace(message.Email)
	message.Message = strings.TrimSpace(message.Message)
	if err := validateMessage(message); err != nil {
		return err
	}
	message.IsRead = false

	if err := i.messages.Add(ctx, message); err != nil {
		i.logger.Error().Err(err).Msg("failed to store contact message")
		return errs.NewDatabaseError("create", "message", err)
	}

	if len(i.notify) > 0 {
		subject := fmt.Sprintf("New message from %s", message.Name)
		body := fmt.Sprintf("<p><strong>%s</strong> &lt;%s&gt;</p><p>%s</p>",
			html.EscapeString(message.Name), html.EscapeString(message.Email), html.EscapeString(message.Message))
		if err := i.mailer.SendEmail(ctx, subject, body, i.notify); err != nil {
			i.logger.Warn().Err(err).Msg("failed to send contact notification")
		}
	}
	return nil
}

func validateMessage(m *models.ContactMessage) error {
	switch {
	case m.Name == "":
		return errs.NewMissingRequiredFieldError("name")
	case utf8.RuneCountInString(m.Name) > maxNameLength:
		return errs.NewInvalidFieldError("name", fmt.Sprintf("must be at most %d characters", maxNameLength))
	case m.Email == "":
		return errs.NewMissingRequiredFieldError("email")
	case len(m.Email) > maxEmailLength:
		return errs.NewInvalidFieldError("email", fmt.Sprintf("must be at most %d characters", maxEmailLength))
	case m.Message == "":
		return errs.NewMissingRequiredFieldError("message")
	case utf8.RuneCountInString(m.Message) > maxMessageLength:
		return errs.NewInvalidFieldError("message", fmt.Sprintf("must be at most %d characters", maxMessageLength))
	}
	if _, err := mail.ParseAddress(m.Email); err != nil {
		return errs.NewInvalidFieldError("email", "not a valid e-mail address")
	}
	return nil
}
