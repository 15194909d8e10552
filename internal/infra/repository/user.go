package repository

import (
	"context"

	"boat-reservation/internal/domain/user"
	"boat-reservation/internal/infra"
	"boat-reservation/internal/infra/pgquery"
	"boat-reservation/internal/infra/repository/converter"

	"github.com/google/uuid"
)

type UserQueries interface {
	ListUsersByIDs(ctx context.Context, db pgquery.DBTX, ids []uuid.UUID) ([]pgquery.UserRow, error)
}

type UserRepository struct {
	queries UserQueries
	db      pgquery.DBTX
}

func NewUserRepository(queries UserQueries, db pgquery.DBTX) *UserRepository {
	return &UserRepository{queries: queries, db: db}
}

func (r *UserRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*user.User, error) {
	users := make(map[uuid.UUID]*user.User, len(ids))
	if len(ids) == 0 {
		return users, nil
	}

	rows, err := r.queries.ListUsersByIDs(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	for _, row := range rows {
		users[row.ID] = converter.UserToDomain(row)
	}
	return users, nil
}
