package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/api-sage/core-banking/internal/adapter/repository/repo_interfaces"
)

// TxManager begins transfer units of work. Read committed is enough because
// every balance read on the transfer path takes a FOR UPDATE row lock.
type TxManager struct {
	db *sql.DB
}

func NewTxManager(db *sql.DB) *TxManager {
	return &TxManager{db: db}
}

func (m *TxManager) BeginTx(ctx context.Context) (repo_interfaces.Tx, error) {
	tx, err := m.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return &Txn{tx: tx}, nil
}

type Txn struct {
	tx *sql.Tx
}

func (t *Txn) Commit() error   { return t.tx.Commit() }
func (t *Txn) Rollback() error { return t.tx.Rollback() }

func sqlTx(tx repo_interfaces.Tx) (*sql.Tx, error) {
	pgTx, ok := tx.(*Txn)
	if !ok || pgTx == nil {
		return nil, fmt.Errorf("unexpected transaction type %T", tx)
	}
	return pgTx.tx, nil
}
