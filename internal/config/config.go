package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"github.com/nikolayk812/shopcart/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

type Config struct {
	HTTPAddr        string        `env:"HTTP_ADDR,default=:8082"`
	DatabaseURL     string        `env:"DATABASE_URL"`
	Store           string        `env:"STORE,default=postgres"`
	LogLevel        string        `env:"LOG_LEVEL,default=info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`

	DefaultWalletMoney   string `env:"DEFAULT_WALLET_MONEY,default=500"`
	DefaultAddress       string `env:"DEFAULT_ADDRESS,default=ADDRESS_NOT_SET"`
	DefaultPaymentOption string `env:"DEFAULT_PAYMENT_OPTION,default=PAYMENT_OPTION_DEFAULT"`
	Currency             string `env:"CURRENCY,default=INR"`

	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS,default=10"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST,default=20"`
	BcryptCost     int     `env:"BCRYPT_COST,default=10"`
}

// Load reads envFile if it exists and decodes the environment.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("godotenv.Load[%s]: %w", envFile, err)
		}
	}

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("envdecode.Decode: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Store {
	case StorePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for store %q", c.Store)
		}
	case StoreMemory:
	default:
		return fmt.Errorf("store %q is not supported", c.Store)
	}

	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return fmt.Errorf("rate limit must be positive")
	}

	if _, err := c.Defaults(); err != nil {
		return err
	}

	return nil
}

// Defaults builds the values applied to new users and carts.
func (c Config) Defaults() (domain.Defaults, error) {
	unit, err := currency.ParseISO(c.Currency)
	if err != nil {
		return domain.Defaults{}, fmt.Errorf("currency[%s] is not valid: %w", c.Currency, err)
	}

	amount, err := decimal.NewFromString(c.DefaultWalletMoney)
	if err != nil {
		return domain.Defaults{}, fmt.Errorf("wallet money[%s] is not valid: %w", c.DefaultWalletMoney, err)
	}
	if amount.IsNegative() {
		return domain.Defaults{}, fmt.Errorf("wallet money[%s] is negative", c.DefaultWalletMoney)
	}

	return domain.Defaults{
		WalletMoney:   domain.Money{Amount: amount, Currency: unit},
		Address:       c.DefaultAddress,
		PaymentOption: c.DefaultPaymentOption,
	}, nil
}
