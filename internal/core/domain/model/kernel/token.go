package kernel

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"ordertrack/internal/pkg/errs"
)

// tokenByteLength is the number of random bytes behind each access token.
// 16 bytes give 128 bits of entropy, the floor for an unguessable public token.
const tokenByteLength = 16

// TokenRole identifies which restricted view of an order a token grants.
// Rider and customer tokens are independent values of different semantic roles;
// keeping the role on the token prevents privilege confusion between the two views.
type TokenRole string

const (
	// RiderRole grants the delivery rider's read view of one order.
	RiderRole TokenRole = "rider"

	// CustomerRole grants the customer's read view of one order plus the
	// right to submit a satisfaction rating.
	CustomerRole TokenRole = "customer"
)

// Validate checks that the role is one of the two defined roles.
func (r TokenRole) Validate() error {
	if r != RiderRole && r != CustomerRole {
		return errs.NewValueIsInvalidErrorWithCause("token role",
			fmt.Errorf("%q is not a valid token role", string(r)))
	}
	return nil
}

// ErrAccessTokenIsNotConstructed indicates that an AccessToken was not created
// through NewAccessToken or RestoreAccessToken.
var ErrAccessTokenIsNotConstructed = errs.NewValueIsRequiredError("AccessToken must be created via NewAccessToken or RestoreAccessToken")

// AccessToken is a role-scoped opaque token granting anonymous access to one
// order's public projection. The value is unguessable and URL-safe so it can be
// embedded directly in tracking and feedback links.
//
// Tokens are minted exactly once per order and role and are immutable afterwards.
// Global uniqueness across the order population is enforced by the storage layer
// (unique index); callers must treat a uniqueness violation as a retryable conflict.
type AccessToken struct {
	role  TokenRole
	value string
}

// NewAccessToken mints a fresh token for the given role from 128 bits of
// cryptographically random data, encoded URL-safe without padding.
func NewAccessToken(role TokenRole) (AccessToken, error) {
	if err := role.Validate(); err != nil {
		return AccessToken{}, err
	}

	raw := make([]byte, tokenByteLength)
	if _, err := rand.Read(raw); err != nil {
		return AccessToken{}, fmt.Errorf("generating token randomness: %w", err)
	}

	return AccessToken{
		role:  role,
		value: base64.RawURLEncoding.EncodeToString(raw),
	}, nil
}

// RestoreAccessToken reconstructs a token from persistence. The value must be
// non-empty; no attempt is made to re-validate its randomness.
func RestoreAccessToken(role TokenRole, value string) (AccessToken, error) {
	if err := role.Validate(); err != nil {
		return AccessToken{}, err
	}
	if value == "" {
		return AccessToken{}, errs.NewValueIsRequiredError("token value")
	}

	return AccessToken{role: role, value: value}, nil
}

// Role returns the role the token is scoped to.
func (t AccessToken) Role() TokenRole {
	return t.role
}

// Value returns the opaque token string.
func (t AccessToken) Value() string {
	return t.value
}

// IsZero reports whether the token has not been minted yet.
func (t AccessToken) IsZero() bool {
	return t.value == ""
}

// IsEqual reports whether two tokens carry the same role and value.
func (t AccessToken) IsEqual(other AccessToken) bool {
	return t.role == other.role && t.value == other.value
}

// Validate returns ErrAccessTokenIsNotConstructed for the zero value.
func (t AccessToken) Validate() error {
	if t.IsZero() {
		return ErrAccessTokenIsNotConstructed
	}
	return t.role.Validate()
}
