package notifications_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/notifications"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMailSender struct {
	mock.Mock
}

func (m *MockMailSender) Send(ctx context.Context, msg notifications.MailMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

type MockSMSSender struct {
	mock.Mock
}

func (m *MockSMSSender) Send(ctx context.Context, to string, text string) error {
	args := m.Called(ctx, to, text)
	return args.Error(0)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleTransition() order.StatusTransition {
	return order.StatusTransition{
		OrderID:        "a2f1e6b0-0000-0000-0000-000000000001",
		OrderNumber:    "ORD-4001",
		PreviousStatus: order.Pending,
		NewStatus:      order.Shipped,
		TotalAmount:    decimal.NewFromFloat(120.50),
		OccurredAt:     time.Now().UTC(),
	}
}

func TestDispatcher_Dispatch_BothChannels(t *testing.T) {
	ctx := t.Context()
	transition := sampleTransition()

	mail := new(MockMailSender)
	mail.On("Send", ctx, notifications.MailMessage{
		From:    "orders@example.com",
		To:      "customer@example.com",
		Subject: notifications.MailSubject(transition),
		Body:    notifications.MailBody(transition),
	}).Return(nil).Once()

	sms := new(MockSMSSender)
	sms.On("Send", ctx, "+15551234567", notifications.SMSText(transition)).Return(nil).Once()

	d := notifications.NewDispatcher(notifications.Config{
		EmailEnabled:   true,
		EmailRecipient: "customer@example.com",
		FromAddress:    "orders@example.com",
		SMSEnabled:     true,
		SMSRecipient:   "+15551234567",
	}, mail, sms, testLogger())

	require.NoError(t, d.Dispatch(ctx, transition))

	mail.AssertExpectations(t)
	sms.AssertExpectations(t)
}

func TestDispatcher_Dispatch_OneChannelFailureDoesNotBlockOther(t *testing.T) {
	ctx := t.Context()
	transition := sampleTransition()
	mailErr := errors.New("smtp connection refused")

	mail := new(MockMailSender)
	mail.On("Send", ctx, mock.AnythingOfType("notifications.MailMessage")).Return(mailErr).Once()

	sms := new(MockSMSSender)
	sms.On("Send", ctx, "+15551234567", notifications.SMSText(transition)).Return(nil).Once()

	d := notifications.NewDispatcher(notifications.Config{
		EmailEnabled:   true,
		EmailRecipient: "customer@example.com",
		SMSEnabled:     true,
		SMSRecipient:   "+15551234567",
	}, mail, sms, testLogger())

	err := d.Dispatch(ctx, transition)
	require.ErrorIs(t, err, mailErr)

	sms.AssertExpectations(t)
}

func TestDispatcher_Dispatch_BothChannelsFailing(t *testing.T) {
	ctx := t.Context()
	mailErr := errors.New("smtp down")
	smsErr := errors.New("gateway down")

	mail := new(MockMailSender)
	mail.On("Send", ctx, mock.AnythingOfType("notifications.MailMessage")).Return(mailErr).Once()

	sms := new(MockSMSSender)
	sms.On("Send", ctx, mock.Anything, mock.Anything).Return(smsErr).Once()

	d := notifications.NewDispatcher(notifications.Config{
		EmailEnabled:   true,
		EmailRecipient: "customer@example.com",
		SMSEnabled:     true,
		SMSRecipient:   "+15551234567",
	}, mail, sms, testLogger())

	err := d.Dispatch(ctx, sampleTransition())
	require.ErrorIs(t, err, mailErr)
	require.ErrorIs(t, err, smsErr)
}

func TestDispatcher_Dispatch_DisabledChannels(t *testing.T) {
	mail := new(MockMailSender)
	sms := new(MockSMSSender)

	d := notifications.NewDispatcher(notifications.Config{}, mail, sms, testLogger())
	require.NoError(t, d.Dispatch(t.Context(), sampleTransition()))

	mail.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	sms.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatcher_Dispatch_MissingRecipientSkips(t *testing.T) {
	mail := new(MockMailSender)
	sms := new(MockSMSSender)

	d := notifications.NewDispatcher(notifications.Config{
		EmailEnabled: true,
		SMSEnabled:   true,
	}, mail, sms, testLogger())

	require.NoError(t, d.Dispatch(t.Context(), sampleTransition()))

	mail.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	sms.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatcher_Dispatch_EmailFallsBackToFromAddress(t *testing.T) {
	ctx := t.Context()

	mail := new(MockMailSender)
	mail.On("Send", ctx, mock.MatchedBy(func(msg notifications.MailMessage) bool {
		return msg.To == "orders@example.com" && msg.From == "orders@example.com"
	})).Return(nil).Once()

	d := notifications.NewDispatcher(notifications.Config{
		EmailEnabled: true,
		FromAddress:  "orders@example.com",
	}, mail, nil, testLogger())

	require.NoError(t, d.Dispatch(ctx, sampleTransition()))
	mail.AssertExpectations(t)
}

func TestDispatcher_Dispatch_NilTransport(t *testing.T) {
	d := notifications.NewDispatcher(notifications.Config{
		EmailEnabled:   true,
		EmailRecipient: "customer@example.com",
		SMSEnabled:     true,
		SMSRecipient:   "+15551234567",
	}, nil, nil, testLogger())

	require.NoError(t, d.Dispatch(t.Context(), sampleTransition()))
}

func TestMailSubject(t *testing.T) {
	subject := notifications.MailSubject(sampleTransition())
	require.Equal(t, "Order #ORD-4001 Status Changed to Shipped", subject)
}

func TestMailBody(t *testing.T) {
	body := notifications.MailBody(sampleTransition())
	require.Equal(t,
		"Order Number: ORD-4001\n"+
			"Previous Status: Pending\n"+
			"New Status: Shipped\n"+
			"Total Amount: $120.50\n",
		body)
}

func TestMailBody_NoPreviousStatus(t *testing.T) {
	transition := sampleTransition()
	transition.PreviousStatus = ""

	require.Contains(t, notifications.MailBody(transition), "Previous Status: N/A\n")
}

func TestSMSText(t *testing.T) {
	require.Equal(t, "Order #ORD-4001 is now Shipped", notifications.SMSText(sampleTransition()))
}
