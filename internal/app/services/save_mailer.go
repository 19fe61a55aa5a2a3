package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/forensicsite/internal/app/editsession"
	"github.com/yigit/forensicsite/internal/pkg/email"
)

// SaveMailer e-mails a notice to one address after every save.
type SaveMailer struct {
	email     email.EmailService
	to        string
	publicURL string
	logger    zerolog.Logger
}

var _ editsession.Notifier = (*SaveMailer)(nil)

// NewSaveMailer creates a SaveMailer. An empty to disables it.
func NewSaveMailer(emailService email.EmailService, to, publicURL string, logger zerolog.Logger) *SaveMailer {
	return &SaveMailer{
		email:     emailService,
		to:        to,
		publicURL: strings.TrimRight(publicURL, "/"),
		logger:    logger,
	}
}

// Notify implements editsession.Notifier
func (m *SaveMailer) Notify(_ context.Context, n editsession.Notification) {
	if m.to == "" {
		return
	}

	notice := email.SaveNotice{
		Realm:     n.Realm,
		Editor:    n.Username,
		Persisted: n.Persisted,
		At:        n.At,
	}
	if n.Err != nil {
		notice.Problem = n.Err.Error()
	}
	if m.publicURL != "" {
		notice.PageURL = fmt.Sprintf("%s/%s", m.publicURL, n.Realm)
	}

	if err := m.email.SendSaveNotification(m.to, notice); err != nil {
		m.logger.Error().Err(err).Str("realm", n.Realm).Msg("Failed to send save notification")
	}
}
