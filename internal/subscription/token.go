package subscription

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

// TokenLength is the exact length of a subscription token.
const TokenLength = 25

// tokenAlphabet is the set of characters tokens are drawn from. Alphanumeric
// only, so tokens are safe to embed in URLs without escaping.
const tokenAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewToken returns a cryptographically random subscription token.
func NewToken() (string, error) {
	var sb strings.Builder
	sb.Grow(TokenLength)

	alphabetSize := big.NewInt(int64(len(tokenAlphabet)))
	for range TokenLength {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", fmt.Errorf("could not generate token: %w", err)
		}
		sb.WriteByte(tokenAlphabet[n.Int64()])
	}

	return sb.String(), nil
}

// ValidTokenShape reports whether raw looks like a token this service could
// have issued. It does not check the token exists.
func ValidTokenShape(raw string) bool {
	if len(raw) != TokenLength {
		return false
	}
	for i := 0; i < len(raw); i++ {
		if !strings.ContainsRune(tokenAlphabet, rune(raw[i])) {
			return false
		}
	}

	return true
}
