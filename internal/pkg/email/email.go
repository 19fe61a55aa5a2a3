package email

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"net/smtp"
	"sort"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

// EmailService defines the interface for email operations
type EmailService interface {
	SendSaveNotification(toEmail string, notice SaveNotice) error
}

// SaveNotice is the content of a "page saved" email.
type SaveNotice struct {
	Realm     string
	Editor    string
	Persisted bool
	Problem   string
	At        time.Time
	PageURL   string
}

// SMTPConfig holds configuration for SMTP server
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
	UseTLS    bool
	BaseURL   string // Base URL for links in emails
}

// EmailServiceImpl implements EmailService
type EmailServiceImpl struct {
	config SMTPConfig
	logger zerolog.Logger
	send   func(toEmail string, message []byte) error
}

// NewEmailService creates a new EmailService
func NewEmailService(config SMTPConfig, logger zerolog.Logger) *EmailServiceImpl {
	s := &EmailServiceImpl{
		config: config,
		logger: logger,
	}
	s.send = s.sendSMTP
	return s
}

var saveNoticeTemplate = template.Must(template.New("save").Parse(`<html>
<body>
	<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
		<h2 style="color: #333;">The {{.Realm}} page was saved</h2>
		<p>{{.Editor}} saved changes on {{.At.Format "2 Jan 2006 15:04 MST"}}.</p>
		{{if .Persisted}}<p>The changes are stored and live.</p>{{else}}<p style="color: #b00;">The changes could not be stored: {{.Problem}}</p>{{end}}
		{{if .PageURL}}<p><a href="{{.PageURL}}">Open the page</a></p>{{end}}
	</div>
</body>
</html>`))

// SendSaveNotification tells toEmail that a page was saved
func (s *EmailServiceImpl) SendSaveNotification(toEmail string, notice SaveNotice) error {
	if toEmail == "" {
		return nil
	}
	if notice.PageURL == "" && s.config.BaseURL != "" {
		notice.PageURL = fmt.Sprintf("%s/%s", s.config.BaseURL, notice.Realm)
	}

	// Without credentials the notice is only logged (development)
	if s.config.Username == "" || s.config.Password == "" {
		s.logger.Warn().
			Str("toEmail", toEmail).
			Str("realm", notice.Realm).
			Bool("persisted", notice.Persisted).
			Msg("SMTP credentials not configured - save notification not sent")
		return nil
	}

	var body bytes.Buffer
	if err := saveNoticeTemplate.Execute(&body, notice); err != nil {
		return fmt.Errorf("failed to render save notification: %w", err)
	}

	subject := fmt.Sprintf("Page saved: %s", notice.Realm)
	if !notice.Persisted {
		subject = fmt.Sprintf("Page save failed: %s", notice.Realm)
	}
	return s.send(toEmail, s.buildMessage(toEmail, subject, body.String()))
}

func (s *EmailServiceImpl) buildMessage(toEmail, subject, htmlBody string) []byte {
	headers := map[string]string{
		"From":         fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromEmail),
		"To":           toEmail,
		"Subject":      subject,
		"MIME-Version": "1.0",
		"Content-Type": "text/html; charset=UTF-8",
	}
	keys := make([]string, 0, len(headers))
	for key := range headers {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var message bytes.Buffer
	for _, key := range keys {
		fmt.Fprintf(&message, "%s: %s\r\n", key, headers[key])
	}
	message.WriteString("\r\n")
	message.WriteString(htmlBody)
	return message.Bytes()
}

// sendSMTP delivers message through the configured server
func (s *EmailServiceImpl) sendSMTP(toEmail string, message []byte) error {
	auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)
	serverAddress := s.config.Host + ":" + strconv.Itoa(s.config.Port)

	if !s.config.UseTLS {
		if err := smtp.SendMail(serverAddress, auth, s.config.FromEmail, []string{toEmail}, message); err != nil {
			s.logger.Error().Err(err).Str("server", serverAddress).Msg("Failed to send email")
			return fmt.Errorf("failed to send email: %w", err)
		}
		return nil
	}

	conn, err := tls.Dial("tcp", serverAddress, &tls.Config{ServerName: s.config.Host})
	if err != nil {
		s.logger.Error().Err(err).Str("server", serverAddress).Msg("Failed to connect to SMTP server")
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, s.config.Host)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to create SMTP client")
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer client.Quit()

	if err = client.Auth(auth); err != nil {
		s.logger.Error().Err(err).Msg("SMTP authentication failed")
		return fmt.Errorf("SMTP authentication failed: %w", err)
	}
	if err = client.Mail(s.config.FromEmail); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err = client.Rcpt(toEmail); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}
	if _, err = w.Write(message); err != nil {
		return fmt.Errorf("failed to write email message: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}
	return nil
}
