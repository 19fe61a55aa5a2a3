package email

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendSaveNotification(t *testing.T) {
	svc := NewEmailService(SMTPConfig{
		Host:      "smtp.example.org",
		Port:      587,
		Username:  "mailer",
		Password:  "secret",
		FromName:  "Forensic Institute",
		FromEmail: "noreply@example.org",
		BaseURL:   "https://institute.example.org",
	}, zerolog.Nop())

	var sentTo string
	var sent []byte
	svc.send = func(to string, message []byte) error {
		sentTo, sent = to, message
		return nil
	}

	err := svc.SendSaveNotification("office@example.org", SaveNotice{
		Realm:     "faculty",
		Editor:    "admin",
		Persisted: true,
		At:        time.Date(2024, 3, 9, 14, 30, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, "office@example.org", sentTo)
	body := string(sent)
	assert.Contains(t, body, "Subject: Page saved: faculty\r\n")
	assert.Contains(t, body, "From: Forensic Institute <noreply@example.org>\r\n")
	assert.Contains(t, body, "admin saved changes on 9 Mar 2024 14:30 UTC")
	assert.Contains(t, body, `href="https://institute.example.org/faculty"`)
}

func TestSendSaveNotification_FailureSubject(t *testing.T) {
	svc := NewEmailService(SMTPConfig{Username: "u", Password: "p"}, zerolog.Nop())
	var sent []byte
	svc.send = func(_ string, message []byte) error {
		sent = message
		return nil
	}

	require.NoError(t, svc.SendSaveNotification("office@example.org", SaveNotice{Realm: "blog", Problem: "quota exceeded"}))
	assert.Contains(t, string(sent), "Subject: Page save failed: blog")
	assert.Contains(t, string(sent), "could not be stored: quota exceeded")
}

func TestSendSaveNotification_WithoutCredentialsOnlyLogs(t *testing.T) {
	svc := NewEmailService(SMTPConfig{}, zerolog.Nop())
	svc.send = func(string, []byte) error {
		t.Fatal("nothing should be sent without credentials")
		return nil
	}

	assert.NoError(t, svc.SendSaveNotification("office@example.org", SaveNotice{Realm: "events"}))
	assert.NoError(t, svc.SendSaveNotification("", SaveNotice{Realm: "events"}))
}
