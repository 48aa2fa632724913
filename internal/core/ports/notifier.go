package ports

import "context"

// Notifier is the outbound messaging gateway contract. One role-specific
// message is sent per successful lifecycle transition into READY, DISPATCHED,
// or COMPLETED. Delivery is fire-and-forget with respect to the order state:
// implementations may fail independently, and callers log and swallow errors
// after the state change has committed.
type Notifier interface {
	// SendRiderAssignment tells the designated rider about a READY order,
	// with a tracking link built from the rider token.
	SendRiderAssignment(ctx context.Context, riderPhone, orderRef, trackingLink string) error

	// SendCustomerDispatch tells the customer their order is on the way,
	// with a tracking link built from the customer token.
	SendCustomerDispatch(ctx context.Context, customerPhone, orderRef, trackingLink string) error

	// SendDeliveryComplete asks the customer for feedback after delivery,
	// with a rating link built from the customer token.
	SendDeliveryComplete(ctx context.Context, customerPhone, csatLink string) error
}
