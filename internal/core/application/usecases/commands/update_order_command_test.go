package commands_test

import (
	"testing"

	"ordertrack/internal/core/application/usecases/commands"
	"ordertrack/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderCommand_StatusOnly(t *testing.T) {
	status := order.Shipped
	cmd, err := commands.NewUpdateOrderCommand("ORD-1001", &status, nil)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())

	require.Equal(t, "ORD-1001", cmd.OrderNumber())

	got, ok := cmd.Status()
	require.True(t, ok)
	require.Equal(t, order.Shipped, got)

	_, ok = cmd.Tags()
	require.False(t, ok)
}

func TestNewUpdateOrderCommand_TagsOnly(t *testing.T) {
	cmd, err := commands.NewUpdateOrderCommand("ORD-1001", nil, []string{"priority"})
	require.NoError(t, err)

	_, ok := cmd.Status()
	require.False(t, ok)

	tags, ok := cmd.Tags()
	require.True(t, ok)
	require.Equal(t, []string{"priority"}, tags)
}

func TestNewUpdateOrderCommand_EmptyOrderNumber(t *testing.T) {
	status := order.Shipped
	_, err := commands.NewUpdateOrderCommand("", &status, nil)
	require.ErrorIs(t, err, commands.ErrOrderNumberIsRequired)
}

func TestNewUpdateOrderCommand_NoChanges(t *testing.T) {
	_, err := commands.NewUpdateOrderCommand("ORD-1001", nil, nil)
	require.ErrorIs(t, err, commands.ErrNoChangesRequested)
}

func TestNewUpdateOrderCommand_InvalidStatus(t *testing.T) {
	status := order.Status("unknown")
	_, err := commands.NewUpdateOrderCommand("ORD-1001", &status, nil)
	require.Error(t, err)
}

func TestUpdateOrderCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.UpdateOrderCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrUpdateOrderCommandIsNotConstructed)
}
