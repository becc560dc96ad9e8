package repositories

import (
	"context"
)

// TxFn is a function executed within a database transaction
type TxFn func(ctx context.Context) error

// TransactionManager runs multi-step writes inside a single transaction.
// The transaction is the unit of atomicity: failure of any step rolls the
// whole operation back so readers never observe intermediate state.
type TransactionManager interface {
	ExecTx(ctx context.Context, fn TxFn) error
}
