package repository

import (
	"context"

	"github.com/jackc/pgx/v4"
)

// Tx is an opaque transaction handle passed through use cases. The concrete
// type is infra-defined (pgx.Tx for Postgres). Repositories must accept a
// nil handle and fall back to their non-transactional path.
type Tx interface{}

// NoTX is passed where an operation intentionally runs outside a transaction.
var NoTX Tx

// TransactionManager executes a function within a database transaction,
// passing the underlying handle via tx. It keeps use-case interfaces clean:
// no transaction types leak out, and repository methods that accept a Tx can
// run conditional updates or row locks inside the same transaction.
type TransactionManager interface {
	WithTx(ctx context.Context, txOpt pgx.TxOptions, fn func(ctx context.Context, tx Tx) error) error
}
