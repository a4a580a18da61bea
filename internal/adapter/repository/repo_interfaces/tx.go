package repo_interfaces

import "context"

// Tx is one transfer-scoped unit of work. The postgres implementation wraps
// *sql.Tx; the memory implementation serializes on the store lock.
type Tx interface {
	Commit() error
	Rollback() error
}

type TxBeginner interface {
	BeginTx(ctx context.Context) (Tx, error)
}
