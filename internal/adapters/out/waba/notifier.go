// Package waba is the WhatsApp Business API outbound gateway. The real
// provider integration is not wired yet; this implementation logs every
// message it would send so the notification flow can be exercised end to end.
package waba

import (
	"context"
	"log/slog"

	"ordertrack/internal/core/ports"
)

// Notifier implements ports.Notifier by logging outbound messages.
type Notifier struct {
	logger *slog.Logger
}

// NewNotifier creates a logging WhatsApp gateway.
func NewNotifier(logger *slog.Logger) *Notifier {
	return &Notifier{logger: logger.With("component", "waba")}
}

var _ ports.Notifier = (*Notifier)(nil)

// SendRiderAssignment tells the rider which order they picked up and where to
// follow it.
func (n *Notifier) SendRiderAssignment(ctx context.Context, riderPhone, orderRef, trackingLink string) error {
	n.logger.InfoContext(ctx, "sending rider assignment",
		"to", riderPhone,
		"order", orderRef,
		"link", trackingLink,
	)
	return nil
}

// SendCustomerDispatch tells the customer their order is on the way.
func (n *Notifier) SendCustomerDispatch(ctx context.Context, customerPhone, orderRef, trackingLink string) error {
	n.logger.InfoContext(ctx, "sending customer dispatch notice",
		"to", customerPhone,
		"order", orderRef,
		"link", trackingLink,
	)
	return nil
}

// SendDeliveryComplete asks the customer to rate the finished delivery.
func (n *Notifier) SendDeliveryComplete(ctx context.Context, customerPhone, csatLink string) error {
	n.logger.InfoContext(ctx, "sending delivery completion notice",
		"to", customerPhone,
		"link", csatLink,
	)
	return nil
}
