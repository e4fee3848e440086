package port

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)

type Repositories struct {
	Carts    CartRepository
	Users    UserRepository
	Products ProductRepository
}

// Transactor runs fn with repositories bound to a single transaction.
// Writes made through them are committed together when fn returns nil
// and discarded otherwise.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(repos Repositories) error) error
}
