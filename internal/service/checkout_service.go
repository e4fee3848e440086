package service

import (
	"context"
	"errors"

	"github.com/nikolayk812/shopcart/internal/domain"
	"github.com/nikolayk812/shopcart/internal/port"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// CheckoutService converts a cart into a wallet debit.
//
// The debit and the cart clear are written in one transaction with the
// cart and user rows locked, so either both are visible or neither is.
// Checkouts of the same user are additionally serialized by the shared KeyLock.
type CheckoutService struct {
	tx       port.Transactor
	locks    *KeyLock
	defaults domain.Defaults
	log      logrus.FieldLogger
}

func NewCheckoutService(tx port.Transactor, locks *KeyLock, defaults domain.Defaults, log logrus.FieldLogger) *CheckoutService {
	return &CheckoutService{
		tx:       tx,
		locks:    locks,
		defaults: defaults,
		log:      log.WithField("component", "checkout"),
	}
}

// Checkout validates the cart, debits its total from the wallet and empties the cart.
// Every failed check returns before anything is written.
func (s *CheckoutService) Checkout(ctx context.Context, email string) error {
	if email == "" {
		return domain.InvalidInput("email is empty")
	}

	unlock, err := s.locks.Lock(ctx, email)
	if err != nil {
		return domain.Internal("failed to lock cart", err)
	}
	defer unlock()

	var total decimal.Decimal

	err = s.tx.WithinTx(ctx, func(repos port.Repositories) error {
		cart, err := repos.Carts.GetCartForUpdate(ctx, email)
		if errors.Is(err, port.ErrNotFound) {
			return domain.NotFound(msgCartNotFound)
		}
		if err != nil {
			return domain.Internal("failed to get cart", err)
		}

		if cart.IsEmpty() {
			return domain.InvalidInput(msgEmptyCart)
		}

		user, err := repos.Users.GetUserByEmailForUpdate(ctx, email)
		if errors.Is(err, port.ErrNotFound) {
			return domain.NotFound(msgUserNotFound)
		}
		if err != nil {
			return domain.Internal("failed to get user", err)
		}

		if !user.HasSetNonDefaultAddress(s.defaults) {
			return domain.InvalidInput(msgAddressNotSet)
		}

		total = domain.TotalCost(cart.Items)

		if total.GreaterThan(user.WalletMoney.Amount) {
			return domain.InvalidInput(msgInsufficientBalance)
		}

		user.WalletMoney.Amount = user.WalletMoney.Amount.Sub(total)
		if _, err := repos.Users.SaveUser(ctx, user); err != nil {
			return domain.Internal("failed to debit wallet", err)
		}

		cart.Items = nil
		if _, err := repos.Carts.SaveCart(ctx, cart); err != nil {
			return domain.Internal("failed to clear cart", err)
		}

		return nil
	})
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"email": email,
			"kind":  domain.KindOf(err).String(),
		}).WithError(err).Warn("checkout rejected")

		return internalUnlessKnown(err, "checkout transaction failed")
	}

	s.log.WithFields(logrus.Fields{
		"email": email,
		"total": total.String(),
	}).Info("checkout completed")

	return nil
}
