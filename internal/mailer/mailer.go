// Package mailer delivers one-time passcodes to users over SMTP.
package mailer

import (
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

// Sender delivers a passcode to a recipient out-of-band.
type Sender interface {
	SendOTP(to, code string, expiresIn time.Duration) error
}

// Config holds SMTP settings for the mailer.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Mailer sends passcode emails through an SMTP server.
type Mailer struct {
	cfg    Config
	dialer *gomail.Dialer
}

// New creates a Mailer from SMTP configuration.
func New(cfg Config) *Mailer {
	return &Mailer{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

// SendOTP emails a one-time passcode to the recipient.
func (m *Mailer) SendOTP(to, code string, expiresIn time.Duration) error {
	body := fmt.Sprintf(
		"Your verification code is %s.\n\nIt expires in %s. If you did not request a code, you can ignore this email.",
		code, expiresIn,
	)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Your verification code")
	msg.SetBody("text/plain", body)

	return m.dialer.DialAndSend(msg)
}
