// Package notify provides the concrete notification transports: SMTP for
// email and a log-backed sender for SMS.
package notify

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"ordertrack/internal/notifications"
)

// SMTPSender delivers email over plain SMTP.
// Implements notifications.MailSender.
type SMTPSender struct {
	addr string
	auth smtp.Auth
}

// NewSMTPSender creates a mail sender for the given SMTP address
// (host:port). Auth may be nil for unauthenticated relays.
func NewSMTPSender(addr string, auth smtp.Auth) *SMTPSender {
	return &SMTPSender{addr: addr, auth: auth}
}

// Send delivers one message. The context is not honored mid-send; net/smtp
// has no context support, so cancellation only gates entry.
func (s *SMTPSender) Send(ctx context.Context, msg notifications.MailMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", msg.From)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.Body)

	return smtp.SendMail(s.addr, s.auth, msg.From, []string{msg.To}, []byte(b.String()))
}
