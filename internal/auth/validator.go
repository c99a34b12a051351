package auth

import (
	"context"
	"fmt"

	"newsletter/internal/config"
	"newsletter/pkg/domain"
	"newsletter/pkg/serrors"
	"newsletter/pkg/storage"
)

// fallbackPHC is a hash of a throwaway password. When the username is unknown
// we still verify the candidate against it so that lookups for existing and
// non-existing accounts take roughly the same time.
const fallbackPHC = "$argon2id$v=19$m=15000,t=2,p=1$" +
	"gZiV/M1gPc22ElAH/Jh1Hw$CWOrkoo7oJBQ/iyh7uJ0LO2aLEfrHwTWllSAxT0zRno"

// Options configure credential validation.
type Options struct {
	// VerifyWorkers is the number of workers hashing candidate passwords.
	VerifyWorkers int
	// VerifyQueueSize bounds how many verifications may wait for a worker.
	VerifyQueueSize int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		VerifyWorkers:   cfg.Auth.VerifyWorkers,
		VerifyQueueSize: cfg.Auth.VerifyQueueSize,
	}
}

// Validator implements CredentialValidator backed by stored operator accounts
// and a verification pool.
type Validator struct {
	storage storage.Storage
	pool    *VerifyPool
}

// New constructs a Validator with its own verification pool.
// Close must be called to release the pool.
func New(st storage.Storage, options Options) *Validator {
	return &Validator{
		storage: st,
		pool:    NewVerifyPool(options.VerifyWorkers, options.VerifyQueueSize),
	}
}

func (v *Validator) Validate(ctx context.Context, credentials domain.Credentials) (*domain.UserID, error) {
	credential, err := v.storage.CredentialByUsername(ctx, credentials.Username)
	if err != nil {
		return nil, fmt.Errorf("could not load stored credentials: %w", err)
	}

	if credential == nil {
		// burn the same amount of CPU as a real check, then fail
		_ = v.pool.Verify(ctx, fallbackPHC, credentials.Password.Expose())

		return nil, serrors.With(serrors.ErrUnauthorized, "invalid credentials")
	}

	if err := v.pool.Verify(ctx, credential.PasswordHash, credentials.Password.Expose()); err != nil {
		return nil, err
	}

	userID := credential.UserID

	return &userID, nil
}

// Close releases the underlying verification pool.
func (v *Validator) Close() {
	v.pool.Close()
}
