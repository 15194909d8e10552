package pgquery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func scanUser(row pgx.Row) (UserRow, error) {
	var u UserRow
	err := row.Scan(&u.ID, &u.Email, &u.DisplayName, &u.Role)
	return u, err
}

func (q *Queries) ListUsersByIDs(ctx context.Context, db DBTX, ids []uuid.UUID) ([]UserRow, error) {
	b := psql.Select("id", "email", "display_name", "role").
		From("users").
		Where(inIDs("id", ids))
	return queryAll(ctx, db, b, scanUser)
}

type CreateUserParams struct {
	ID          uuid.UUID
	Email       string
	DisplayName string
	Role        string
}

func (q *Queries) CreateUser(ctx context.Context, db DBTX, arg CreateUserParams) error {
	return execOne(ctx, db, psql.Insert("users").
		Columns("id", "email", "display_name", "role").
		Values(arg.ID, arg.Email, arg.DisplayName, arg.Role))
}
