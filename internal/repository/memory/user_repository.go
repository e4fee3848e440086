package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/nikolayk812/shopcart/internal/domain"
	"github.com/nikolayk812/shopcart/internal/port"
)

type userRepository struct {
	access accessor
}

func (r *userRepository) GetUserByEmail(_ context.Context, email string) (domain.User, error) {
	if email == "" {
		return domain.User{}, fmt.Errorf("email is empty")
	}

	var user domain.User
	err := r.access(func(st *state) error {
		stored, ok := st.users[email]
		if !ok {
			return fmt.Errorf("user[%s]: %w", email, port.ErrNotFound)
		}
		user = stored
		return nil
	})
	return user, err
}

func (r *userRepository) GetUserByEmailForUpdate(ctx context.Context, email string) (domain.User, error) {
	return r.GetUserByEmail(ctx, email)
}

func (r *userRepository) CreateUser(_ context.Context, user domain.User) (domain.User, error) {
	if user.Email == "" {
		return domain.User{}, fmt.Errorf("email is empty")
	}

	now := time.Now().UTC()
	user.CreatedAt, user.UpdatedAt = now, now

	err := r.access(func(st *state) error {
		if _, ok := st.users[user.Email]; ok {
			return fmt.Errorf("user[%s]: %w", user.Email, port.ErrAlreadyExists)
		}
		st.users[user.Email] = user
		return nil
	})
	if err != nil {
		return domain.User{}, err
	}

	return user, nil
}

func (r *userRepository) SaveUser(_ context.Context, user domain.User) (domain.User, error) {
	if user.Email == "" {
		return domain.User{}, fmt.Errorf("email is empty")
	}

	err := r.access(func(st *state) error {
		stored, ok := st.users[user.Email]
		if !ok {
			return fmt.Errorf("user[%s]: %w", user.Email, port.ErrNotFound)
		}
		user.ID = stored.ID
		user.CreatedAt = stored.CreatedAt
		user.UpdatedAt = time.Now().UTC()
		st.users[user.Email] = user
		return nil
	})
	if err != nil {
		return domain.User{}, err
	}

	return user, nil
}
