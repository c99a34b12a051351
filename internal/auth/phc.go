package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"newsletter/pkg/serrors"
)

// HashParams control the cost of argon2id hashing.
type HashParams struct {
	Memory      uint32
	Time        uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// DefaultHashParams are used when provisioning new operator passwords.
var DefaultHashParams = HashParams{
	Memory:      15000,
	Time:        2,
	Parallelism: 1,
	SaltLength:  16,
	KeyLength:   32,
}

// phcVersion is the only argon2 version this package accepts.
const phcVersion = argon2.Version

// GeneratePHC hashes the password with argon2id and a random salt, returning
// the PHC string representation suitable for storage.
func GeneratePHC(password string, params HashParams) (string, error) {
	salt := make([]byte, params.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("could not generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, params.Time, params.Memory, params.Parallelism, params.KeyLength)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		phcVersion,
		params.Memory, params.Time, params.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key)), nil
}

// VerifyPHC hashes the candidate password with the parameters and salt encoded
// in the stored PHC string and compares the result in constant time. A
// mismatch returns ErrUnauthorized; a stored hash that cannot be parsed
// returns ErrInternal since it indicates corrupted provisioning data.
func VerifyPHC(stored string, candidate string) error {
	params, salt, key, err := parsePHC(stored)
	if err != nil {
		return serrors.Wrap(serrors.ErrInternal, err, "invalid stored password hash")
	}

	candidateKey := argon2.IDKey([]byte(candidate), salt,
		params.Time, params.Memory, params.Parallelism, uint32(len(key))) //nolint: gosec

	if subtle.ConstantTimeCompare(key, candidateKey) != 1 {
		return serrors.With(serrors.ErrUnauthorized, "invalid credentials")
	}

	return nil
}

// parsePHC splits a `$argon2id$v=19$m=..,t=..,p=..$salt$hash` string into its
// parameters, salt and derived key.
func parsePHC(stored string) (HashParams, []byte, []byte, error) {
	var params HashParams

	parts := strings.Split(stored, "$")
	if len(parts) != 6 || parts[0] != "" {
		return params, nil, nil, fmt.Errorf("malformed PHC string")
	}
	if parts[1] != "argon2id" {
		return params, nil, nil, fmt.Errorf("unsupported algorithm %q", parts[1])
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return params, nil, nil, fmt.Errorf("malformed version segment: %w", err)
	}
	if version != phcVersion {
		return params, nil, nil, fmt.Errorf("unsupported argon2 version %d", version)
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d",
		&params.Memory, &params.Time, &params.Parallelism); err != nil {
		return params, nil, nil, fmt.Errorf("malformed parameters segment: %w", err)
	}

	salt, err := base64.RawStdEncoding.Strict().DecodeString(parts[4])
	if err != nil {
		return params, nil, nil, fmt.Errorf("malformed salt: %w", err)
	}
	key, err := base64.RawStdEncoding.Strict().DecodeString(parts[5])
	if err != nil {
		return params, nil, nil, fmt.Errorf("malformed hash: %w", err)
	}

	return params, salt, key, nil
}
