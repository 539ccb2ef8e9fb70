// Package mailer sends vendor order mail over SMTP with STARTTLS.
package mailer

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// Config holds SMTP transport settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

// LoadConfig reads SMTP settings from the environment.
func LoadConfig() Config {
	cfg := Config{
		Host:     getEnv("SMTP_HOST", "smtp.gmail.com"),
		Port:     587,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
		FromName: getEnv("SMTP_FROM_NAME", "Medicine Order System"),
	}
	if portStr := os.Getenv("SMTP_PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil {
			cfg.Port = port
		}
	}
	if cfg.From == "" {
		cfg.From = cfg.Username
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Message is one outbound plain-text mail with a single attachment.
type Message struct {
	To             string
	Subject        string
	Body           string
	AttachmentName string
	Attachment     []byte
}

// Sender delivers a message. Implementations make at most one delivery
// attempt and give no confirmation beyond the returned error.
type Sender interface {
	Send(msg Message) error
}

type smtpSender struct {
	cfg    Config
	dialer *gomail.Dialer
}

// NewSMTPSender creates a Sender backed by the configured SMTP server.
// gomail negotiates STARTTLS on port 587.
func NewSMTPSender(cfg Config) Sender {
	return &smtpSender{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

func (s *smtpSender) Send(msg Message) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.cfg.From, s.cfg.FromName)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)
	if msg.AttachmentName != "" {
		attachment := msg.Attachment
		m.Attach(msg.AttachmentName, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(attachment)
			return err
		}))
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("sending mail to %s: %w", msg.To, err)
	}
	return nil
}
