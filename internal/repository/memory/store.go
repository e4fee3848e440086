// Package memory keeps users, products and carts in process memory.
// It implements the same port contracts as the Postgres repositories and
// is used for local runs and service tests.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/nikolayk812/shopcart/internal/domain"
	"github.com/nikolayk812/shopcart/internal/port"
)

type state struct {
	users    map[string]domain.User
	products map[uuid.UUID]domain.Product
	carts    map[string]domain.Cart
}

func newState() *state {
	return &state{
		users:    make(map[string]domain.User),
		products: make(map[uuid.UUID]domain.Product),
		carts:    make(map[string]domain.Cart),
	}
}

func (s *state) clone() *state {
	c := newState()
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.products {
		c.products[k] = v
	}
	for k, v := range s.carts {
		c.carts[k] = v.Clone()
	}
	return c
}

// accessor runs fn against a state, either the committed one under the
// store lock or a staged copy owned by a transaction.
type accessor func(fn func(st *state) error) error

type Store struct {
	mu    sync.Mutex
	state *state
}

func NewStore() *Store {
	return &Store{state: newState()}
}

// Repositories returns repositories where every call commits on its own.
// They must not be used from inside WithinTx.
func (s *Store) Repositories() port.Repositories {
	return s.repositories(s.autocommit)
}

// WithinTx runs fn against a copy of the store and publishes the copy only if fn succeeds.
// Transactions are serialized.
func (s *Store) WithinTx(ctx context.Context, fn func(repos port.Repositories) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	staged := s.state.clone()
	staging := func(fn func(st *state) error) error {
		return fn(staged)
	}

	if err := fn(s.repositories(staging)); err != nil {
		return err
	}

	s.state = staged
	return nil
}

func (s *Store) autocommit(fn func(st *state) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(s.state)
}

func (s *Store) repositories(access accessor) port.Repositories {
	return port.Repositories{
		Carts:    &cartRepository{access: access},
		Users:    &userRepository{access: access},
		Products: &productRepository{access: access},
	}
}
