package commands

import (
	"errors"

	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/guard"
)

var ErrSubmitCsatCommandIsNotConstructed = errors.New(
	"SubmitCsatCommand must be created via NewSubmitCsatCommand constructor",
)

// SubmitCsatCommand represents an anonymous customer's satisfaction rating,
// authorized purely by the customer access token. The score range is enforced
// by the domain model after the token resolves, so an invalid token always
// fails as not-found regardless of the score.
type SubmitCsatCommand struct { //nolint:recvcheck //using for validation
	customerToken string
	score         int
	comment       string

	guard guard.ConstructorGuard
}

// NewSubmitCsatCommand creates a rating submission command.
// Only the token's presence is validated here.
func NewSubmitCsatCommand(customerToken string, score int, comment string) (SubmitCsatCommand, error) {
	if customerToken == "" {
		return SubmitCsatCommand{}, errs.NewValueIsRequiredError("token")
	}

	return SubmitCsatCommand{
		customerToken: customerToken,
		score:         score,
		comment:       comment,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitCsatCommand) Validate() error {
	return c.guard.Validate(ErrSubmitCsatCommandIsNotConstructed)
}

// CustomerToken returns the opaque token presented by the caller.
func (c SubmitCsatCommand) CustomerToken() string { return c.customerToken }

// Score returns the submitted satisfaction score.
func (c SubmitCsatCommand) Score() int { return c.score }

// Comment returns the optional free-text comment.
func (c SubmitCsatCommand) Comment() string { return c.comment }
