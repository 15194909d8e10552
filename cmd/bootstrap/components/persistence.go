package components

import (
	"boat-reservation/internal/infra/pgquery"
	"boat-reservation/internal/infra/readstore"
	"boat-reservation/internal/infra/uow"
	"boat-reservation/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Write-side repositories are created per transaction by the unit of work,
// so only the read store is bound to the pool here.
var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	pgquery.New,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		func(q *pgquery.Queries) readstore.ReservationViewQueries { return q },
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
	),
)

var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewDBTX(pool *pgxpool.Pool) pgquery.DBTX {
	return pool
}
