package service

import (
	"errors"

	"github.com/nikolayk812/shopcart/internal/domain"
)

const (
	msgCartNotFound        = "user does not have a cart"
	msgCartNotFoundForEdit = "user does not have a cart, use add instead"
	msgCartCreationRace    = "user cart creation failed because user already has a cart"
	msgProductInCart       = "product already in cart, update or remove it instead"
	msgProductNotExist     = "product doesn't exist"
	msgProductNotInCart    = "product not in cart"
	msgInvalidQuantity     = "quantity must be at least 1"
	msgQuantityTooLarge    = "quantity must not exceed 2147483647"
	msgCurrencyMismatch    = "product currency is not supported"
	msgEmptyCart           = "user does not have items in the cart"
	msgAddressNotSet       = "address is not set"
	msgInsufficientBalance = "insufficient balance"
	msgUserNotFound        = "user not found"
)

// ErrInvalidCredentials is returned by Authenticate for unknown emails and wrong passwords alike.
var ErrInvalidCredentials = errors.New("incorrect email or password")

// internalUnlessKnown keeps *domain.Error values and marks anything else as internal.
func internalUnlessKnown(err error, message string) error {
	var e *domain.Error
	if errors.As(err, &e) {
		return err
	}
	return domain.Internal(message, err)
}
