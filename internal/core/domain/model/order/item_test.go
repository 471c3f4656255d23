package order_test

import (
	"testing"

	"ordertrack/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestNewItem_Valid(t *testing.T) {
	item, err := order.NewItem("Widget", 3, decimal.NewFromFloat(19.99))
	require.NoError(t, err)
	require.NoError(t, item.ID().Validate())
	require.Equal(t, "Widget", item.ProductName())
	require.Equal(t, 3, item.Quantity())
	require.True(t, item.Price().Equal(decimal.NewFromFloat(19.99)))
}

func TestNewItem_EmptyProductName(t *testing.T) {
	_, err := order.NewItem("", 1, decimal.Zero)
	require.ErrorIs(t, err, order.ErrProductNameIsRequired)
}

func TestNewItem_InvalidQuantity(t *testing.T) {
	_, err := order.NewItem("Widget", 0, decimal.Zero)
	require.ErrorIs(t, err, order.ErrQuantityIsInvalid)

	_, err = order.NewItem("Widget", -1, decimal.Zero)
	require.ErrorIs(t, err, order.ErrQuantityIsInvalid)
}

func TestNewItem_NegativePrice(t *testing.T) {
	_, err := order.NewItem("Widget", 1, decimal.NewFromFloat(-0.01))
	require.ErrorIs(t, err, order.ErrPriceIsNegative)
}
