// Package pgquery holds the hand-written SQL behind the repositories. Every
// method takes the DBTX to run on, so the same Queries value serves the pool
// and any transaction.
package pgquery

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Queries struct{}

func New() *Queries {
	return &Queries{}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func execOne(ctx context.Context, db DBTX, b sq.Sqlizer) error {
	query, args, err := b.ToSql()
	if err != nil {
		return err
	}
	tag, err := db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func queryRow(ctx context.Context, db DBTX, b sq.Sqlizer) (pgx.Row, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	return db.QueryRow(ctx, query, args...), nil
}

func queryAll[T any](ctx context.Context, db DBTX, b sq.Sqlizer, scan func(pgx.Row) (T, error)) ([]T, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func inIDs(column string, ids []uuid.UUID) sq.Eq {
	return sq.Eq{column: ids}
}

// sq.Eq expands array values and uuid.UUID is a [16]byte, so single ids are
// bound through Expr.
func eqID(column string, id uuid.UUID) sq.Sqlizer {
	return sq.Expr(column+" = ?", id)
}
