package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"ordertrack/internal/core/domain/model/order"

	"github.com/IBM/sarama"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTransitionHandler struct {
	mock.Mock
}

func (m *MockTransitionHandler) Dispatch(ctx context.Context, transition order.StatusTransition) error {
	args := m.Called(ctx, transition)
	return args.Error(0)
}

func testConsumer(handler TransitionHandler) *TransitionConsumer {
	return &TransitionConsumer{
		topics:  []string{"order.status.transitions"},
		handler: handler,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func transitionMessage(t *testing.T) (*sarama.ConsumerMessage, order.StatusTransition) {
	t.Helper()

	transition := order.StatusTransition{
		OrderID:        "a2f1e6b0-0000-0000-0000-000000000001",
		OrderNumber:    "ORD-6001",
		PreviousStatus: order.Pending,
		NewStatus:      order.Shipped,
		TotalAmount:    decimal.NewFromFloat(33.00),
	}

	value, err := json.Marshal(transition)
	require.NoError(t, err)

	return &sarama.ConsumerMessage{
		Topic: "order.status.transitions",
		Value: value,
	}, transition
}

func TestHandleMessage_DispatchSucceeds(t *testing.T) {
	message, transition := transitionMessage(t)

	handler := new(MockTransitionHandler)
	handler.On("Dispatch", mock.Anything, mock.MatchedBy(func(got order.StatusTransition) bool {
		return got.OrderNumber == transition.OrderNumber &&
			got.PreviousStatus == transition.PreviousStatus &&
			got.NewStatus == transition.NewStatus
	})).Return(nil).Once()

	testConsumer(handler).handleMessage(t.Context(), message)

	handler.AssertExpectations(t)
}

func TestHandleMessage_RetriesUntilSuccess(t *testing.T) {
	message, _ := transitionMessage(t)

	handler := new(MockTransitionHandler)
	handler.On("Dispatch", mock.Anything, mock.Anything).
		Return(errors.New("smtp down")).Once()
	handler.On("Dispatch", mock.Anything, mock.Anything).
		Return(nil).Once()

	testConsumer(handler).handleMessage(t.Context(), message)

	handler.AssertNumberOfCalls(t, "Dispatch", 2)
}

func TestHandleMessage_GivesUpAfterMaxAttempts(t *testing.T) {
	message, _ := transitionMessage(t)

	handler := new(MockTransitionHandler)
	handler.On("Dispatch", mock.Anything, mock.Anything).
		Return(errors.New("smtp down"))

	testConsumer(handler).handleMessage(t.Context(), message)

	handler.AssertNumberOfCalls(t, "Dispatch", MaxAttempts)
}

func TestHandleMessage_MalformedMessageDropped(t *testing.T) {
	handler := new(MockTransitionHandler)

	testConsumer(handler).handleMessage(t.Context(), &sarama.ConsumerMessage{
		Topic: "order.status.transitions",
		Value: []byte("not json"),
	})

	handler.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
}
