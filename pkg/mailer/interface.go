// Package mailer defines the abstraction for the outbound email gateway used
// to deliver confirmation links and newsletter issues.
package mailer

import (
	"context"
	"newsletter/pkg/domain"
)

// Email is a single outbound message. The sender is a property of the
// gateway client, not of the message.
type Email struct {
	// To is the validated recipient address.
	To domain.SubscriberEmail
	// Subject is the message subject line.
	Subject string
	// TextBody is the plain-text variant of the message.
	TextBody string
	// HTMLBody is the HTML variant of the message.
	HTMLBody string
}

// Client is the abstraction for outbound email transports. Implementations
// send one message per call and classify failures as transport errors
// (unreachable, timeout) or non-success HTTP statuses.
//
//go:generate mockgen -package mockmailer -source=interface.go -destination=mock/mockmailer.go *
type Client interface {
	// Send delivers a single email. The call blocks until the gateway accepts
	// or rejects the message, bounded by the client's configured timeout.
	Send(ctx context.Context, email Email) error
}
