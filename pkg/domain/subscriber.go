package domain

import (
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"newsletter/pkg/serrors"
)

// SubscriberID uniquely identifies a subscriber.
// It wraps uuid.UUID to provide type safety at the domain layer.
type SubscriberID uuid.UUID

func (id SubscriberID) String() string { return uuid.UUID(id).String() }

// SubscriberStatus represents the lifecycle state of a subscriber. A
// subscriber only ever advances from pending confirmation to confirmed,
// never backward.
type SubscriberStatus string

const (
	// SubscriberStatusPending indicates the subscriber signed up but has not
	// followed the confirmation link yet.
	SubscriberStatusPending SubscriberStatus = "pending_confirmation"
	// SubscriberStatusConfirmed indicates the subscriber confirmed their email
	// address and is eligible to receive newsletter issues.
	SubscriberStatusConfirmed SubscriberStatus = "confirmed"
)

// MaxNameLength is the maximum number of characters allowed in a
// subscriber name.
const MaxNameLength = 256

// forbiddenNameChars are rejected in subscriber names to keep stored names
// safe to embed in HTML and query contexts.
const forbiddenNameChars = `/()"<>\{}`

// SubscriberName is a validated subscriber display name. Use NewSubscriberName
// to construct one; the zero value is not valid.
type SubscriberName struct {
	value string
}

// NewSubscriberName validates the raw input and returns a SubscriberName.
// The name must be non-empty after trimming, at most MaxNameLength characters,
// and free of characters from the forbidden set.
func NewSubscriberName(raw string) (SubscriberName, error) {
	if strings.TrimSpace(raw) == "" {
		return SubscriberName{}, serrors.With(serrors.ErrBadRequest, "name must not be empty")
	}
	if utf8.RuneCountInString(raw) > MaxNameLength {
		return SubscriberName{}, serrors.With(serrors.ErrBadRequest,
			"name must not be longer than %d characters", MaxNameLength)
	}
	if strings.ContainsAny(raw, forbiddenNameChars) {
		return SubscriberName{}, serrors.With(serrors.ErrBadRequest, "name contains forbidden characters")
	}

	return SubscriberName{value: raw}, nil
}

func (n SubscriberName) String() string { return n.value }

// SubscriberEmail is a validated email address. Use NewSubscriberEmail to
// construct one; the zero value is not valid.
type SubscriberEmail struct {
	value string
}

// NewSubscriberEmail validates that the raw input is a bare RFC 5322 address
// (no display name) and returns a SubscriberEmail.
func NewSubscriberEmail(raw string) (SubscriberEmail, error) {
	if raw == "" {
		return SubscriberEmail{}, serrors.With(serrors.ErrBadRequest, "email must not be empty")
	}

	addr, err := mail.ParseAddress(raw)
	if err != nil {
		return SubscriberEmail{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid email")
	}
	// reject addresses carrying a display name, e.g. `Jon <jon@email.com>`
	if addr.Address != raw {
		return SubscriberEmail{}, serrors.With(serrors.ErrBadRequest, "email must be a bare address")
	}

	return SubscriberEmail{value: addr.Address}, nil
}

func (e SubscriberEmail) String() string { return e.value }

// Subscriber represents a single mailing-list member and their confirmation
// state.
type Subscriber struct {
	// ID is the unique identifier of the subscriber.
	ID SubscriberID `json:"id"`

	// Name is the validated display name provided at signup.
	Name SubscriberName `json:"name"`
	// Email is the validated address; it is the natural dedup key, no two
	// subscribers share one.
	Email SubscriberEmail `json:"email"`
	// Status is the current lifecycle state of the subscriber.
	Status SubscriberStatus `json:"status"`

	// SubscribedAt is the time when the signup was accepted.
	SubscribedAt time.Time `json:"subscribedAt"`
}
