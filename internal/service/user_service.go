package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"github.com/nikolayk812/shopcart/internal/domain"
	"github.com/nikolayk812/shopcart/internal/port"
	"github.com/sirupsen/logrus"
)

const (
	minPasswordLength = 8
	maxPasswordLength = 72 // bcrypt input limit
	minAddressLength  = 20
)

type CreateUserInput struct {
	Name     string
	Email    string
	Password string
}

// UserAddress is the subset of a user returned by GetUserAddress.
type UserAddress struct {
	ID      uuid.UUID
	Email   string
	Address string
}

type UserService struct {
	repos    port.Repositories
	tx       port.Transactor
	locks    *KeyLock
	hasher   port.PasswordHasher
	defaults domain.Defaults
	log      logrus.FieldLogger
}

func NewUserService(repos port.Repositories, tx port.Transactor, locks *KeyLock, hasher port.PasswordHasher, defaults domain.Defaults, log logrus.FieldLogger) *UserService {
	return &UserService{
		repos:    repos,
		tx:       tx,
		locks:    locks,
		hasher:   hasher,
		defaults: defaults,
		log:      log.WithField("component", "user"),
	}
}

// CreateUser registers a user with the default wallet balance and the sentinel address.
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (domain.User, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return domain.User{}, domain.InvalidInput("name is required")
	}

	email := domain.NormalizeEmail(input.Email)
	if _, err := mail.ParseAddress(email); err != nil {
		return domain.User{}, domain.InvalidInput("invalid email address")
	}

	if err := validatePassword(input.Password); err != nil {
		return domain.User{}, err
	}

	_, err := s.repos.Users.GetUserByEmail(ctx, email)
	if err == nil {
		return domain.User{}, domain.Conflict("email already taken")
	}
	if !errors.Is(err, port.ErrNotFound) {
		return domain.User{}, domain.Internal("failed to get user", err)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return domain.User{}, domain.Internal("failed to hash password", err)
	}

	user, err := s.repos.Users.CreateUser(ctx, domain.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		WalletMoney:  s.defaults.WalletMoney,
		Address:      s.defaults.Address,
	})
	if errors.Is(err, port.ErrAlreadyExists) {
		return domain.User{}, domain.Conflict("email already taken")
	}
	if err != nil {
		return domain.User{}, domain.Internal("failed to create user", err)
	}

	s.log.WithField("email", email).Info("user created")

	return user, nil
}

func (s *UserService) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	user, err := s.repos.Users.GetUserByEmail(ctx, domain.NormalizeEmail(email))
	if errors.Is(err, port.ErrNotFound) {
		return domain.User{}, domain.NotFound(msgUserNotFound)
	}
	if err != nil {
		return domain.User{}, domain.Internal("failed to get user", err)
	}

	return user, nil
}

func (s *UserService) GetUserAddress(ctx context.Context, email string) (UserAddress, error) {
	user, err := s.GetUserByEmail(ctx, email)
	if err != nil {
		return UserAddress{}, err
	}

	return UserAddress{ID: user.ID, Email: user.Email, Address: user.Address}, nil
}

// SetAddress stores a shipping address. It runs under the user's key so it
// cannot overwrite a wallet debit made by a concurrent checkout.
func (s *UserService) SetAddress(ctx context.Context, email, address string) (string, error) {
	email = domain.NormalizeEmail(email)
	address = strings.TrimSpace(address)

	if len(address) < minAddressLength {
		return "", domain.InvalidInput("address must be at least 20 characters")
	}
	if address == s.defaults.Address {
		return "", domain.InvalidInput("address is reserved")
	}

	unlock, err := s.locks.Lock(ctx, email)
	if err != nil {
		return "", domain.Internal("failed to lock user", err)
	}
	defer unlock()

	var saved domain.User

	err = s.tx.WithinTx(ctx, func(repos port.Repositories) error {
		user, err := repos.Users.GetUserByEmailForUpdate(ctx, email)
		if errors.Is(err, port.ErrNotFound) {
			return domain.NotFound(msgUserNotFound)
		}
		if err != nil {
			return domain.Internal("failed to get user", err)
		}

		user.Address = address
		saved, err = repos.Users.SaveUser(ctx, user)
		if err != nil {
			return domain.Internal("failed to save user", err)
		}
		return nil
	})
	if err != nil {
		return "", internalUnlessKnown(err, "address transaction failed")
	}

	s.log.WithField("email", email).Info("address updated")

	return saved.Address, nil
}

// Authenticate resolves the user for a request. Token issuance is left to the caller.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (domain.User, error) {
	user, err := s.repos.Users.GetUserByEmail(ctx, domain.NormalizeEmail(email))
	if errors.Is(err, port.ErrNotFound) {
		return domain.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return domain.User{}, domain.Internal("failed to get user", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return domain.User{}, ErrInvalidCredentials
	}

	return user, nil
}

func validatePassword(password string) error {
	if len(password) < minPasswordLength || len(password) > maxPasswordLength {
		return domain.InvalidInput("password must be between 8 and 72 characters")
	}

	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if !hasLetter || !hasDigit {
		return domain.InvalidInput("password must contain at least one letter and one number")
	}

	return nil
}
