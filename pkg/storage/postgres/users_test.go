package postgres_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"newsletter/pkg/domain"
)

func TestCredentialByUsername(t *testing.T) {
	pgSQL := setupTestDB(t)
	ctx := context.Background()

	userID := uuid.New()
	_, err := pgSQL.DB.ExecContext(ctx,
		`INSERT INTO users (user_id, username, password) VALUES ($1, $2, $3)`,
		userID, "admin", "$argon2id$v=19$m=15000,t=2,p=1$c2FsdHNhbHRzYWx0c2FsdA$aGFzaGhhc2hoYXNoaGFzaA")
	require.NoError(t, err)

	credential, err := pgSQL.CredentialByUsername(ctx, "admin")
	require.NoError(t, err)
	require.NotNil(t, credential)
	require.Equal(t, domain.UserID(userID), credential.UserID)
	require.Contains(t, credential.PasswordHash, "$argon2id$")
}

func TestCredentialByUsernameNotFound(t *testing.T) {
	pgSQL := setupTestDB(t)

	credential, err := pgSQL.CredentialByUsername(context.Background(), "ghost")
	require.NoError(t, err)
	require.Nil(t, credential)
}
