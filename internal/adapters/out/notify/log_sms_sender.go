package notify

import (
	"context"
	"log/slog"
)

// LogSMSSender records SMS notifications in the application log instead of
// handing them to a real gateway. Stands in until an SMS provider is wired.
// Implements notifications.SMSSender.
type LogSMSSender struct {
	logger *slog.Logger
}

// NewLogSMSSender creates a log-backed SMS sender.
func NewLogSMSSender(logger *slog.Logger) *LogSMSSender {
	return &LogSMSSender{logger: logger.With("component", "sms_sender")}
}

// Send logs the SMS that would have been delivered.
func (s *LogSMSSender) Send(ctx context.Context, to string, text string) error {
	s.logger.InfoContext(ctx, "SMS notification",
		"to", to,
		"text", text)
	return nil
}
