package auth

import (
	"context"

	"newsletter/pkg/domain"
)

//go:generate mockgen -package mockauth -source=interface.go -destination=mock/mockauth.go *
type CredentialValidator interface {
	// Validate checks the given credentials against stored operator accounts and
	// returns the matching user ID. Unknown usernames and wrong passwords fail
	// with the same opaque unauthorized error.
	Validate(ctx context.Context, credentials domain.Credentials) (*domain.UserID, error)
}
