package subscription

import (
	"context"
)

//go:generate mockgen -package mocksubscription -source=interface.go -destination=mock/mocksubscription.go *
type Subscription interface {
	// Submit registers a new pending subscriber and emails them a confirmation
	// link. For an address that already has a subscriber, it re-sends the
	// confirmation email with the previously issued token instead.
	Submit(ctx context.Context, name string, email string) error
	// Confirm marks the subscriber that owns the given token as confirmed.
	// Confirming an already confirmed subscriber succeeds.
	Confirm(ctx context.Context, token string) error
}
