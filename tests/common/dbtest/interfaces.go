//go:build unit || e2e

package dbtest

import (
	"boat-reservation/internal/infra/pgquery"
)

// DBLike is a pool, a connection or a transaction.
type DBLike = pgquery.DBTX
