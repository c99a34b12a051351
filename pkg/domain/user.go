package domain

import "github.com/google/uuid"

// UserID uniquely identifies an operator account within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

func (id UserID) String() string { return uuid.UUID(id).String() }

// Credentials carries an operator's username and candidate password as
// extracted from an authentication attempt. The password is wrapped in
// Secret so it never leaks through logs or error messages.
type Credentials struct {
	Username string
	Password Secret
}
