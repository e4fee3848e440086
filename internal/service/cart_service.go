package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/google/uuid"
	"github.com/nikolayk812/shopcart/internal/domain"
	"github.com/nikolayk812/shopcart/internal/port"
	"github.com/sirupsen/logrus"
)

// CartService maintains the cart of a single authenticated user against the catalog.
type CartService struct {
	repos    port.Repositories
	tx       port.Transactor
	locks    *KeyLock
	defaults domain.Defaults
	log      logrus.FieldLogger
}

func NewCartService(repos port.Repositories, tx port.Transactor, locks *KeyLock, defaults domain.Defaults, log logrus.FieldLogger) *CartService {
	return &CartService{
		repos:    repos,
		tx:       tx,
		locks:    locks,
		defaults: defaults,
		log:      log.WithField("component", "cart"),
	}
}

func (s *CartService) GetCart(ctx context.Context, email string) (domain.Cart, error) {
	cart, err := s.repos.Carts.GetCart(ctx, email)
	if errors.Is(err, port.ErrNotFound) {
		return domain.Cart{}, domain.NotFound(msgCartNotFound)
	}
	if err != nil {
		return domain.Cart{}, domain.Internal("failed to get cart", err)
	}

	return cart, nil
}

// AddProduct appends a snapshot of the product to the user's cart, creating
// the cart on the first successful add.
func (s *CartService) AddProduct(ctx context.Context, email string, productID uuid.UUID, quantity int) (domain.Cart, error) {
	if err := validateQuantity(quantity); err != nil {
		return domain.Cart{}, err
	}

	var result domain.Cart

	err := s.locked(ctx, email, func(repos port.Repositories) error {
		cart, err := repos.Carts.GetCartForUpdate(ctx, email)
		exists := err == nil
		if err != nil {
			if !errors.Is(err, port.ErrNotFound) {
				return domain.Internal("failed to get cart", err)
			}
			cart = domain.Cart{Email: email, PaymentOption: s.defaults.PaymentOption}
		}

		if cart.ItemIndex(productID) >= 0 {
			return domain.Conflict(msgProductInCart)
		}

		product, err := getProduct(ctx, repos, productID)
		if err != nil {
			return err
		}
		if !product.Cost.SameCurrency(s.defaults.WalletMoney) {
			return domain.InvalidInput(msgCurrencyMismatch)
		}

		cart.Items = append(cart.Items, domain.CartItem{
			Product:  product.Snapshot(),
			Quantity: quantity,
		})

		if !exists {
			result, err = repos.Carts.CreateCart(ctx, cart)
			if errors.Is(err, port.ErrAlreadyExists) {
				return domain.Internal(msgCartCreationRace, err)
			}
			if err != nil {
				return domain.Internal("failed to create cart", err)
			}
			return nil
		}

		result, err = repos.Carts.SaveCart(ctx, cart)
		if err != nil {
			return domain.Internal("failed to save cart", err)
		}
		return nil
	})
	if err != nil {
		return domain.Cart{}, err
	}

	s.log.WithFields(logrus.Fields{
		"email":      email,
		"product_id": productID,
		"quantity":   quantity,
	}).Info("product added to cart")

	return result, nil
}

// UpdateProduct sets the quantity of a line item already in the cart, the snapshot is kept.
func (s *CartService) UpdateProduct(ctx context.Context, email string, productID uuid.UUID, quantity int) (domain.Cart, error) {
	if err := validateQuantity(quantity); err != nil {
		return domain.Cart{}, err
	}

	var result domain.Cart

	err := s.locked(ctx, email, func(repos port.Repositories) error {
		cart, err := repos.Carts.GetCartForUpdate(ctx, email)
		if errors.Is(err, port.ErrNotFound) {
			return domain.InvalidInput(msgCartNotFoundForEdit)
		}
		if err != nil {
			return domain.Internal("failed to get cart", err)
		}

		if _, err := getProduct(ctx, repos, productID); err != nil {
			return err
		}

		idx := cart.ItemIndex(productID)
		if idx < 0 {
			return domain.InvalidInput(msgProductNotInCart)
		}
		cart.Items[idx].Quantity = quantity

		result, err = repos.Carts.SaveCart(ctx, cart)
		if err != nil {
			return domain.Internal("failed to save cart", err)
		}
		return nil
	})
	if err != nil {
		return domain.Cart{}, err
	}

	s.log.WithFields(logrus.Fields{
		"email":      email,
		"product_id": productID,
		"quantity":   quantity,
	}).Info("cart item quantity updated")

	return result, nil
}

func (s *CartService) RemoveProduct(ctx context.Context, email string, productID uuid.UUID) error {
	err := s.locked(ctx, email, func(repos port.Repositories) error {
		cart, err := repos.Carts.GetCartForUpdate(ctx, email)
		if errors.Is(err, port.ErrNotFound) {
			return domain.InvalidInput(msgCartNotFound)
		}
		if err != nil {
			return domain.Internal("failed to get cart", err)
		}

		idx := cart.ItemIndex(productID)
		if idx < 0 {
			return domain.InvalidInput(msgProductNotInCart)
		}
		cart.Items = slices.Delete(cart.Items, idx, idx+1)

		if _, err := repos.Carts.SaveCart(ctx, cart); err != nil {
			return domain.Internal("failed to save cart", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"email":      email,
		"product_id": productID,
	}).Info("product removed from cart")

	return nil
}

// validateQuantity bounds quantity to the range of the stored INT column.
func validateQuantity(quantity int) error {
	if quantity < 1 {
		return domain.InvalidInput(msgInvalidQuantity)
	}
	if quantity > math.MaxInt32 {
		return domain.InvalidInput(msgQuantityTooLarge)
	}
	return nil
}

// locked runs fn in a transaction while holding the user's key.
func (s *CartService) locked(ctx context.Context, email string, fn func(repos port.Repositories) error) error {
	if email == "" {
		return domain.InvalidInput("email is empty")
	}

	unlock, err := s.locks.Lock(ctx, email)
	if err != nil {
		return domain.Internal("failed to lock cart", err)
	}
	defer unlock()

	if err := s.tx.WithinTx(ctx, fn); err != nil {
		return internalUnlessKnown(err, "cart transaction failed")
	}

	return nil
}

func getProduct(ctx context.Context, repos port.Repositories, productID uuid.UUID) (domain.Product, error) {
	product, err := repos.Products.GetProduct(ctx, productID)
	if errors.Is(err, port.ErrNotFound) {
		return domain.Product{}, domain.InvalidInput(msgProductNotExist)
	}
	if err != nil {
		return domain.Product{}, domain.Internal(fmt.Sprintf("failed to get product %s", productID), err)
	}

	return product, nil
}
