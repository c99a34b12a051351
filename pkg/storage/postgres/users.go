package postgres

import (
	"context"
	"fmt"
	"newsletter/pkg/domain"
	"newsletter/pkg/storage"

	"github.com/doug-martin/goqu/v9"
)

const usersTable = "users"

func (p *PgSQL) CredentialByUsername(ctx context.Context, username string) (*storage.StoredCredential, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(goqu.I("username").Eq(username)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch credential by username: %w", err)
	}
	if !found {
		return nil, nil
	}

	return &storage.StoredCredential{
		UserID:       domain.UserID(row.UserID),
		PasswordHash: row.Password,
	}, nil
}
