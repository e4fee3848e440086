package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/shopcart/internal/db"
	"github.com/nikolayk812/shopcart/internal/domain"
	"github.com/nikolayk812/shopcart/internal/port"
	"golang.org/x/text/currency"
)

type userRepository struct {
	q *db.Queries
}

func NewUser(pool *pgxpool.Pool) port.UserRepository {
	return &userRepository{q: db.New(pool)}
}

func NewUserWithTx(tx pgx.Tx) port.UserRepository {
	return &userRepository{q: db.New(tx)}
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	if email == "" {
		return domain.User{}, fmt.Errorf("email is empty")
	}

	row, err := r.q.GetUserByEmail(ctx, email)
	if err != nil {
		return domain.User{}, fmt.Errorf("q.GetUserByEmail: %w", mapError(err))
	}

	return mapUserToDomain(row)
}

func (r *userRepository) GetUserByEmailForUpdate(ctx context.Context, email string) (domain.User, error) {
	if email == "" {
		return domain.User{}, fmt.Errorf("email is empty")
	}

	row, err := r.q.GetUserByEmailForUpdate(ctx, email)
	if err != nil {
		return domain.User{}, fmt.Errorf("q.GetUserByEmailForUpdate: %w", mapError(err))
	}

	return mapUserToDomain(row)
}

func (r *userRepository) CreateUser(ctx context.Context, user domain.User) (domain.User, error) {
	if user.Email == "" {
		return domain.User{}, fmt.Errorf("email is empty")
	}

	row, err := r.q.CreateUser(ctx, db.CreateUserParams{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		PasswordHash:   user.PasswordHash,
		WalletAmount:   user.WalletMoney.Amount,
		WalletCurrency: user.WalletMoney.Currency.String(),
		Address:        user.Address,
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("q.CreateUser: %w", mapError(err))
	}

	return mapUserToDomain(row)
}

func (r *userRepository) SaveUser(ctx context.Context, user domain.User) (domain.User, error) {
	if user.Email == "" {
		return domain.User{}, fmt.Errorf("email is empty")
	}

	row, err := r.q.UpdateUser(ctx, db.UpdateUserParams{
		Email:          user.Email,
		Name:           user.Name,
		PasswordHash:   user.PasswordHash,
		WalletAmount:   user.WalletMoney.Amount,
		WalletCurrency: user.WalletMoney.Currency.String(),
		Address:        user.Address,
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("q.UpdateUser: %w", mapError(err))
	}

	return mapUserToDomain(row)
}

func mapUserToDomain(row db.User) (domain.User, error) {
	parsedCurrency, err := currency.ParseISO(row.WalletCurrency)
	if err != nil {
		return domain.User{}, fmt.Errorf("currency[%s] is not valid: %w", row.WalletCurrency, err)
	}

	return domain.User{
		ID:           row.ID,
		Name:         row.Name,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		WalletMoney:  domain.Money{Amount: row.WalletAmount, Currency: parsedCurrency},
		Address:      row.Address,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}, nil
}
