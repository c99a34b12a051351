package domain

// Secret wraps a sensitive string value (passwords, API tokens, confirmation
// tokens in transit). Its default string conversion is redacted so that a
// Secret accidentally passed to a logger or formatted into an error message
// does not expose the underlying value. Reading the value requires the
// explicit Expose call, which keeps every access auditable.
type Secret struct {
	value string
}

// NewSecret wraps the given value.
func NewSecret(value string) Secret { return Secret{value: value} }

// Redacted is what Secret prints instead of its value.
const Redacted = "[REDACTED]"

func (s Secret) String() string { return Redacted }

// GoString makes %#v formatting redacted as well.
func (s Secret) GoString() string { return Redacted }

// MarshalText redacts the secret in any text-based serialization (JSON, YAML).
func (s Secret) MarshalText() ([]byte, error) { return []byte(Redacted), nil }

// Expose returns the underlying sensitive value.
func (s Secret) Expose() string { return s.value }
