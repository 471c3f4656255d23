// Package notifications fans a status transition out to the configured
// delivery channels. Channels are independent: one failing channel never
// blocks another, and a channel without a recipient is skipped, not failed.
package notifications

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"ordertrack/internal/core/domain/model/order"
)

// MailMessage is one email ready for transport.
type MailMessage struct {
	From    string
	To      string
	Subject string
	Body    string
}

// MailSender delivers email notifications.
type MailSender interface {
	Send(ctx context.Context, msg MailMessage) error
}

// SMSSender delivers SMS notifications.
type SMSSender interface {
	Send(ctx context.Context, to string, text string) error
}

// Config enables channels and names their recipients. Channels are off by
// default; an enabled channel with no recipient is a skip, not an error.
type Config struct {
	EmailEnabled   bool
	EmailRecipient string
	FromAddress    string
	SMSEnabled     bool
	SMSRecipient   string
}

// Dispatcher delivers status transition notifications across channels.
type Dispatcher struct {
	config Config
	mail   MailSender
	sms    SMSSender
	logger *slog.Logger
}

// NewDispatcher creates a dispatcher with the given channel configuration and
// transports. A nil transport disables its channel regardless of config.
func NewDispatcher(config Config, mail MailSender, sms SMSSender, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		config: config,
		mail:   mail,
		sms:    sms,
		logger: logger.With("component", "notification_dispatcher"),
	}
}

// Dispatch attempts every enabled channel for the transition. Each channel is
// tried regardless of the others' outcomes; the joined channel errors are
// returned so the caller can retry the whole unit.
func (d *Dispatcher) Dispatch(ctx context.Context, transition order.StatusTransition) error {
	var channelErrs []error

	if err := d.dispatchMail(ctx, transition); err != nil {
		d.logger.ErrorContext(ctx, "Email notification failed",
			"order_number", transition.OrderNumber,
			"error", err)
		channelErrs = append(channelErrs, fmt.Errorf("mail: %w", err))
	}

	if err := d.dispatchSMS(ctx, transition); err != nil {
		d.logger.ErrorContext(ctx, "SMS notification failed",
			"order_number", transition.OrderNumber,
			"error", err)
		channelErrs = append(channelErrs, fmt.Errorf("sms: %w", err))
	}

	return errors.Join(channelErrs...)
}

func (d *Dispatcher) dispatchMail(ctx context.Context, transition order.StatusTransition) error {
	if !d.config.EmailEnabled || d.mail == nil {
		return nil
	}

	recipient := d.config.EmailRecipient
	if recipient == "" {
		recipient = d.config.FromAddress
	}
	if recipient == "" {
		d.logger.WarnContext(ctx, "Email channel enabled but no recipient configured, skipping",
			"order_number", transition.OrderNumber)
		return nil
	}

	return d.mail.Send(ctx, MailMessage{
		From:    d.config.FromAddress,
		To:      recipient,
		Subject: MailSubject(transition),
		Body:    MailBody(transition),
	})
}

func (d *Dispatcher) dispatchSMS(ctx context.Context, transition order.StatusTransition) error {
	if !d.config.SMSEnabled || d.sms == nil {
		return nil
	}

	if d.config.SMSRecipient == "" {
		d.logger.WarnContext(ctx, "SMS channel enabled but no recipient configured, skipping",
			"order_number", transition.OrderNumber)
		return nil
	}

	return d.sms.Send(ctx, d.config.SMSRecipient, SMSText(transition))
}

// MailSubject renders the email subject line for a transition.
func MailSubject(transition order.StatusTransition) string {
	return fmt.Sprintf("Order #%s Status Changed to %s", transition.OrderNumber, transition.NewStatus.Label())
}

// MailBody renders the plain-text email body for a transition. An absent
// previous status renders as "N/A".
func MailBody(transition order.StatusTransition) string {
	previous := "N/A"
	if transition.PreviousStatus != "" {
		previous = transition.PreviousStatus.Label()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Order Number: %s\n", transition.OrderNumber)
	fmt.Fprintf(&b, "Previous Status: %s\n", previous)
	fmt.Fprintf(&b, "New Status: %s\n", transition.NewStatus.Label())
	fmt.Fprintf(&b, "Total Amount: $%s\n", transition.TotalAmount.StringFixed(2))
	return b.String()
}

// SMSText renders the one-line SMS body for a transition.
func SMSText(transition order.StatusTransition) string {
	return fmt.Sprintf("Order #%s is now %s", transition.OrderNumber, transition.NewStatus.Label())
}
