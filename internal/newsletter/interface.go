package newsletter

import (
	"context"

	"newsletter/pkg/domain"
)

// Issue is a single newsletter edition to deliver to confirmed subscribers.
type Issue struct {
	// Title becomes the subject line of the outgoing emails.
	Title string
	// TextBody is the plain-text variant of the issue.
	TextBody string
	// HTMLBody is the HTML variant of the issue.
	HTMLBody string
}

//go:generate mockgen -package mocknewsletter -source=interface.go -destination=mock/mocknewsletter.go *
type Dispatcher interface {
	// Publish authenticates the caller and delivers the issue to every
	// confirmed subscriber. Delivery stops at the first send failure.
	Publish(ctx context.Context, credentials domain.Credentials, issue Issue) error
}
