package order_test

import (
	"testing"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/domain/model/tag"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newOrder(t *testing.T, orderNumber string) *order.Order {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), orderNumber, decimal.NewFromFloat(100.50), nil)
	require.NoError(t, err)

	return o
}

func newTag(t *testing.T, name string) tag.Tag {
	t.Helper()

	created, err := tag.NewTag(kernel.NewUUID(), name)
	require.NoError(t, err)

	return *created
}

func TestNewOrder_Valid(t *testing.T) {
	id := kernel.NewUUID()
	o, err := order.NewOrder(id, "ORD-1001", decimal.NewFromFloat(100.50), nil)
	require.NoError(t, err)
	require.NoError(t, o.Validate())
	require.Equal(t, id, o.ID())
	require.Equal(t, "ORD-1001", o.OrderNumber())
	require.Equal(t, order.Pending, o.Status())
	require.True(t, o.TotalAmount().Equal(decimal.NewFromFloat(100.50)))
	require.Empty(t, o.Items())
	require.Empty(t, o.Tags())
}

func TestNewOrder_WithItems(t *testing.T) {
	item, err := order.NewItem("Widget", 2, decimal.NewFromFloat(25.00))
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), "ORD-1002", decimal.NewFromFloat(50.00), []order.Item{item})
	require.NoError(t, err)
	require.Len(t, o.Items(), 1)
	require.Equal(t, "Widget", o.Items()[0].ProductName())
}

func TestNewOrder_InvalidParams(t *testing.T) {
	_, err := order.NewOrder(kernel.UUID{}, "ORD-1001", decimal.Zero, nil)
	require.Error(t, err)

	_, err = order.NewOrder(kernel.NewUUID(), "", decimal.Zero, nil)
	require.ErrorIs(t, err, order.ErrOrderNumberIsRequired)

	_, err = order.NewOrder(kernel.NewUUID(), "ORD-1001", decimal.NewFromFloat(-1), nil)
	require.ErrorIs(t, err, order.ErrTotalAmountIsNegative)
}

func TestRestoreOrder_Valid(t *testing.T) {
	priority := newTag(t, "Priority")

	o, err := order.RestoreOrder(
		kernel.NewUUID(), "ORD-1003", order.Shipped, decimal.NewFromFloat(10.00),
		nil, []tag.Tag{priority},
	)
	require.NoError(t, err)
	require.Equal(t, order.Shipped, o.Status())
	require.Len(t, o.Tags(), 1)
}

func TestRestoreOrder_InvalidStatus(t *testing.T) {
	_, err := order.RestoreOrder(
		kernel.NewUUID(), "ORD-1003", order.Status("unknown"), decimal.Zero, nil, nil,
	)
	require.Error(t, err)
}

func TestOrder_Validate_NotConstructed(t *testing.T) {
	var o order.Order
	require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)

	var nilOrder *order.Order
	require.ErrorIs(t, nilOrder.Validate(), order.ErrOrderIsNotConstructed)
}

func TestOrder_ChangeStatus(t *testing.T) {
	o := newOrder(t, "ORD-1004")

	changed, err := o.ChangeStatus(order.Shipped)
	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, order.Shipped, o.Status())
}

func TestOrder_ChangeStatus_SameValue(t *testing.T) {
	o := newOrder(t, "ORD-1005")

	changed, err := o.ChangeStatus(order.Pending)
	require.NoError(t, err)
	require.False(t, changed)
	require.Equal(t, order.Pending, o.Status())
}

func TestOrder_ChangeStatus_Invalid(t *testing.T) {
	o := newOrder(t, "ORD-1006")

	changed, err := o.ChangeStatus(order.Status("unknown"))
	require.Error(t, err)
	require.False(t, changed)
	require.Equal(t, order.Pending, o.Status())
}

func TestOrder_ReplaceTags(t *testing.T) {
	o := newOrder(t, "ORD-1007")

	o.ReplaceTags([]tag.Tag{newTag(t, "Priority"), newTag(t, "Fragile")})
	require.Len(t, o.Tags(), 2)

	o.ReplaceTags([]tag.Tag{newTag(t, "Gift Wrap")})
	require.Len(t, o.Tags(), 1)
	require.Equal(t, "Gift Wrap", o.Tags()[0].Name())

	o.ReplaceTags(nil)
	require.Empty(t, o.Tags())
}

func TestOrder_IsEqual(t *testing.T) {
	first := newOrder(t, "ORD-1008")
	second := newOrder(t, "ORD-1008")

	require.True(t, first.IsEqual(first))
	require.False(t, first.IsEqual(second))
	require.False(t, first.IsEqual(nil))
}
