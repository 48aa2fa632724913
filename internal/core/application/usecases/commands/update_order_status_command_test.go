package commands_test

import (
	"testing"

	"ordertrack/internal/core/application/usecases/commands"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderStatusCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	actorID := kernel.NewUUID()

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, actorID, order.Ready, "+2347011112222")
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, actorID, cmd.ActorID())
	assert.Equal(t, order.Ready, cmd.TargetStatus())
	assert.Equal(t, "+2347011112222", cmd.RiderPhone())
}

func TestNewUpdateOrderStatusCommand_RiderPhoneOptionalAtConstruction(t *testing.T) {
	// Whether the phone is required depends on the target edge, which is the
	// domain model's decision, not the command constructor's.
	_, err := commands.NewUpdateOrderStatusCommand(kernel.NewUUID(), kernel.NewUUID(), order.Processing, "")
	require.NoError(t, err)
}

func TestNewUpdateOrderStatusCommand_UnknownStatus(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(kernel.NewUUID(), kernel.NewUUID(), order.Status("SHIPPED"), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewUpdateOrderStatusCommand_InvalidActor(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(kernel.NewUUID(), kernel.UUID{}, order.Processing, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestUpdateOrderStatusCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.UpdateOrderStatusCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrUpdateOrderStatusCommandIsNotConstructed)
}
