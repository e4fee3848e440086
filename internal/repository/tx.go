package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/shopcart/internal/db"
	"github.com/nikolayk812/shopcart/internal/port"
)

func withTx[T any](ctx context.Context, pool *pgxpool.Pool, q *db.Queries, fn func(q *db.Queries) (T, error)) (_ T, txErr error) {
	var zero T

	// already inside a transaction owned by the caller
	if pool == nil {
		return fn(q)
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return zero, fmt.Errorf("pool.Begin: %w", err)
	}

	defer func() {
		if txErr != nil {
			rollbackErr := tx.Rollback(ctx)
			if rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				txErr = errors.Join(txErr, fmt.Errorf("tx.Rollback: %w", rollbackErr))
			}
		}
	}()

	result, err := fn(db.New(tx))
	if err != nil {
		return zero, err
	}

	if err := tx.Commit(ctx); err != nil {
		return zero, fmt.Errorf("tx.Commit: %w", err)
	}

	return result, nil
}

type transactor struct {
	pool *pgxpool.Pool
}

// NewTransactor returns a port.Transactor backed by a pgx transaction.
// Repositories handed to fn share the transaction, rows read with the
// ForUpdate methods stay locked until it ends.
func NewTransactor(pool *pgxpool.Pool) port.Transactor {
	return &transactor{pool: pool}
}

func (t *transactor) WithinTx(ctx context.Context, fn func(repos port.Repositories) error) error {
	_, err := withTx(ctx, t.pool, db.New(t.pool), func(q *db.Queries) (struct{}, error) {
		return struct{}{}, fn(port.Repositories{
			Carts:    &cartRepository{q: q},
			Users:    &userRepository{q: q},
			Products: &productRepository{q: q},
		})
	})
	return err
}

// NewRepositories returns pool backed repositories, each call runs in its own transaction.
func NewRepositories(pool *pgxpool.Pool) port.Repositories {
	return port.Repositories{
		Carts:    NewCart(pool),
		Users:    NewUser(pool),
		Products: NewProduct(pool),
	}
}
