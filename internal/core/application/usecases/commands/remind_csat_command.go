package commands

import (
	"errors"

	"ordertrack/internal/pkg/guard"
)

var ErrRemindCsatCommandIsNotConstructed = errors.New(
	"RemindCsatCommand must be created via NewRemindCsatCommand constructor",
)

// RemindCsatCommand triggers one sweep over completed orders that have neither
// a satisfaction score nor a previously sent reminder. Parameterless; the
// reminder delay is handler configuration.
type RemindCsatCommand struct {
	guard guard.ConstructorGuard
}

// NewRemindCsatCommand creates a reminder sweep command.
func NewRemindCsatCommand() RemindCsatCommand {
	return RemindCsatCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c RemindCsatCommand) Validate() error {
	return c.guard.Validate(ErrRemindCsatCommandIsNotConstructed)
}
