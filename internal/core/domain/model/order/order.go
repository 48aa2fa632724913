package order

import (
	"errors"
	"strings"
	"time"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Csat score bounds.
const (
	minCsatScore = 1
	maxCsatScore = 5
)

// Order represents a delivery order placed by a merchant. It is the aggregate
// root managing the order lifecycle from creation through dispatch to completion
// or cancellation.
//
// Order maintains these invariants:
//   - Owned by exactly one merchant; ownership never changes
//   - Customer fields are set at creation and immutable afterwards
//   - Status transitions follow the directed graph defined on Status
//   - The rider token is non-zero iff the order has ever reached READY
//   - The customer token is non-zero iff the order has ever reached DISPATCHED
//   - Tokens, once minted, are immutable
//   - The satisfaction score, when present, is within [1,5]; resubmission
//     overwrites (last write wins, no history)
//
// The struct uses private fields to ensure encapsulation; all mutation goes
// through validated methods.
type Order struct {
	id         kernel.UUID
	readableID string
	ownerID    kernel.UUID

	customerName    string
	customerPhone   string
	deliveryAddress string
	priceTotal      float64

	status        Status
	riderPhone    string
	riderToken    kernel.AccessToken
	customerToken kernel.AccessToken

	csatScore        *int
	csatComment      string
	csatReminderSent bool

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewOrder creates an order in NEW status owned by the given merchant.
// All customer fields are required and the price must be positive.
// The human-facing readable id is derived from the order id.
func NewOrder(
	id kernel.UUID,
	ownerID kernel.UUID,
	customerName string,
	customerPhone string,
	deliveryAddress string,
	priceTotal float64,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        New,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOwnerID(ownerID),
		o.setCustomerName(customerName),
		o.setCustomerPhone(customerPhone),
		o.setDeliveryAddress(deliveryAddress),
		o.setPriceTotal(priceTotal),
	); err != nil {
		return nil, err
	}

	o.readableID = readableIDFor(id)
	return o, nil
}

// RestoreOrder reconstructs an order from persistence without re-running the
// creation rules. The status must be valid and the token fields must be
// consistent with how far the order has progressed.
func RestoreOrder(
	id kernel.UUID,
	readableID string,
	ownerID kernel.UUID,
	customerName string,
	customerPhone string,
	deliveryAddress string,
	priceTotal float64,
	status Status,
	riderPhone string,
	riderToken kernel.AccessToken,
	customerToken kernel.AccessToken,
	csatScore *int,
	csatComment string,
	csatReminderSent bool,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		ownerID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if readableID == "" {
		return nil, errs.NewValueIsRequiredError("readable_id")
	}

	return &Order{
		id:               id,
		readableID:       readableID,
		ownerID:          ownerID,
		customerName:     customerName,
		customerPhone:    customerPhone,
		deliveryAddress:  deliveryAddress,
		priceTotal:       priceTotal,
		status:           status,
		riderPhone:       riderPhone,
		riderToken:       riderToken,
		customerToken:    customerToken,
		csatScore:        csatScore,
		csatComment:      csatComment,
		csatReminderSent: csatReminderSent,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
		isConstructed:    true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed for zero values or direct instantiation.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the internal identifier. Never exposed to public token holders.
func (o *Order) ID() kernel.UUID { return o.id }

// ReadableID returns the human-facing order number.
func (o *Order) ReadableID() string { return o.readableID }

// OwnerID returns the merchant that created the order.
func (o *Order) OwnerID() kernel.UUID { return o.ownerID }

// CustomerName returns the recipient's name.
func (o *Order) CustomerName() string { return o.customerName }

// CustomerPhone returns the recipient's phone number.
func (o *Order) CustomerPhone() string { return o.customerPhone }

// DeliveryAddress returns the destination address.
func (o *Order) DeliveryAddress() string { return o.deliveryAddress }

// PriceTotal returns the order total.
func (o *Order) PriceTotal() float64 { return o.priceTotal }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// RiderPhone returns the designated rider's phone, empty before READY.
func (o *Order) RiderPhone() string { return o.riderPhone }

// RiderToken returns the rider access token, zero before READY.
func (o *Order) RiderToken() kernel.AccessToken { return o.riderToken }

// CustomerToken returns the customer access token, zero before DISPATCHED.
func (o *Order) CustomerToken() kernel.AccessToken { return o.customerToken }

// CsatScore returns the satisfaction score, nil when not yet submitted.
func (o *Order) CsatScore() *int { return o.csatScore }

// CsatComment returns the optional satisfaction comment.
func (o *Order) CsatComment() string { return o.csatComment }

// CsatReminderSent reports whether the post-delivery feedback reminder went out.
func (o *Order) CsatReminderSent() bool { return o.csatReminderSent }

// CreatedAt returns the creation time.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// UpdatedAt returns the last mutation time.
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// IsOwnedBy reports whether the given merchant owns the order.
// Every authenticated mutation must pass this check before touching the order.
func (o *Order) IsOwnedBy(merchantID kernel.UUID) bool {
	return o.ownerID.IsEqual(merchantID)
}

// MarkProcessing moves the order from NEW to PROCESSING.
func (o *Order) MarkProcessing(now time.Time) error {
	newStatus, err := o.status.TransitionTo(Processing)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = now
	return nil
}

// MarkReady moves the order to READY, storing the rider's phone and the
// freshly minted rider token. The phone number is required for this
// transition; the token must be rider-scoped.
func (o *Order) MarkReady(riderPhone string, riderToken kernel.AccessToken, now time.Time) error {
	if riderPhone == "" {
		return errs.NewValueIsRequiredError("rider_phone")
	}
	if err := riderToken.Validate(); err != nil {
		return err
	}
	if riderToken.Role() != kernel.RiderRole {
		return errs.NewValueIsInvalidError("rider token role")
	}

	newStatus, err := o.status.TransitionTo(Ready)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.riderPhone = riderPhone
	o.riderToken = riderToken
	o.updatedAt = now
	return nil
}

// MarkDispatched moves the order to DISPATCHED, storing the freshly minted
// customer token.
func (o *Order) MarkDispatched(customerToken kernel.AccessToken, now time.Time) error {
	if err := customerToken.Validate(); err != nil {
		return err
	}
	if customerToken.Role() != kernel.CustomerRole {
		return errs.NewValueIsInvalidError("customer token role")
	}

	newStatus, err := o.status.TransitionTo(Dispatched)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.customerToken = customerToken
	o.updatedAt = now
	return nil
}

// MarkCompleted moves the order from DISPATCHED to COMPLETED.
func (o *Order) MarkCompleted(now time.Time) error {
	newStatus, err := o.status.TransitionTo(Completed)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = now
	return nil
}

// Cancel moves the order to CANCELLED. Only reachable before dispatch.
func (o *Order) Cancel(now time.Time) error {
	newStatus, err := o.status.TransitionTo(Cancelled)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = now
	return nil
}

// SubmitCsat attaches a satisfaction rating. Resubmission overwrites the
// previous value unconditionally; no history is kept.
func (o *Order) SubmitCsat(score int, comment string, now time.Time) error {
	if score < minCsatScore || score > maxCsatScore {
		return errs.NewValueIsOutOfRangeError("csat_score", score, minCsatScore, maxCsatScore)
	}

	o.csatScore = &score
	o.csatComment = comment
	o.updatedAt = now
	return nil
}

// MarkCsatReminderSent records that the one-off feedback reminder was delivered.
func (o *Order) MarkCsatReminderSent(now time.Time) {
	o.csatReminderSent = true
	o.updatedAt = now
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("owner_id", err)
	}
	o.ownerID = ownerID
	return nil
}

func (o *Order) setCustomerName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customer_name")
	}
	o.customerName = name
	return nil
}

func (o *Order) setCustomerPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("customer_phone")
	}
	o.customerPhone = phone
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("delivery_address")
	}
	o.deliveryAddress = address
	return nil
}

func (o *Order) setPriceTotal(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidError("price_total")
	}
	o.priceTotal = price
	return nil
}

// readableIDFor derives the human-facing order number from the first UUID block.
func readableIDFor(id kernel.UUID) string {
	return "ORD-" + strings.ToUpper(strings.SplitN(id.String(), "-", 2)[0])
}
