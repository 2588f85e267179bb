// Package db carries the transaction plumbing shared by the portal's
// repositories. Multi-table writes, such as a comment plus the task's
// activity timestamps, or a violation plus the penalty accrual and blue-page
// flag, go through a TransactionManager so they commit or roll back as one.
package db

import (
	"context"

	"gorm.io/gorm"
)

// txKey keys the active gorm transaction in a context.
type txKey struct{}

// TransactionManager opens transactions on the portal database and threads
// them to repositories through the context.
type TransactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// RunInTransaction runs fn inside a single transaction. Repositories called
// with the context fn receives pick up that transaction via GetTxFromContext,
// so every write inside fn commits together or not at all.
func (tm *TransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCtx := context.WithValue(ctx, txKey{}, tx)
		return fn(txCtx)
	})
}

// GetTx returns the transaction carried by ctx, or the base handle when the
// caller is not inside RunInTransaction.
func (tm *TransactionManager) GetTx(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return tm.db.WithContext(ctx)
}

// GetTxFromContext is the repository-side counterpart of GetTx for
// repositories that hold their own *gorm.DB instead of a TransactionManager.
func GetTxFromContext(ctx context.Context, defaultDB *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return defaultDB.WithContext(ctx)
}
