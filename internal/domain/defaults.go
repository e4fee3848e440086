package domain

// Defaults holds the configured values applied to new users and carts.
// It is built once at startup and passed to service constructors by value.
type Defaults struct {
	WalletMoney   Money
	Address       string
	PaymentOption string
}
