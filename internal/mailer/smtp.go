package mailer

import (
	"context"
	"fmt"
	"net"
	"strconv"

	gomail "gopkg.in/gomail.v2"

	"github.com/yemmycode/alx-files-manager/internal/logger"
)

// SMTPMailer delivers mail over SMTP.
type SMTPMailer struct {
	dialer *gomail.Dialer
	sender string
}

// NewSMTP builds a mailer for the given "host:port" address.
func NewSMTP(addr, user, password, sender string) (*SMTPMailer, error) {
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, fmt.Errorf("mailer: invalid smtp address %q: %w", addr, err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("mailer: invalid smtp port %q: %w", portStr, err)
	}
	if sender == "" {
		return nil, fmt.Errorf("mailer: sender address is required")
	}

	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, user, password),
		sender: sender,
	}, nil
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	gm := gomail.NewMessage()
	gm.SetHeader("From", m.sender)
	gm.SetHeader("To", msg.To)
	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/html", msg.HTMLBody)

	return m.dialer.DialAndSend(gm)
}

// LogMailer is used when SMTP is unconfigured; it records the message
// instead of delivering it so the pipeline stays exercisable locally.
type LogMailer struct{}

func (LogMailer) Send(ctx context.Context, msg Message) error {
	logger.Info("mail delivery skipped (smtp unconfigured)", map[string]any{
		"to":      msg.To,
		"subject": msg.Subject,
	})
	return nil
}
