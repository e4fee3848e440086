package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/shopcart/internal/catalog"
	"github.com/nikolayk812/shopcart/internal/config"
	"github.com/nikolayk812/shopcart/internal/httpapi"
	"github.com/nikolayk812/shopcart/internal/logging"
	"github.com/nikolayk812/shopcart/internal/metrics"
	"github.com/nikolayk812/shopcart/internal/port"
	"github.com/nikolayk812/shopcart/internal/repository"
	"github.com/nikolayk812/shopcart/internal/repository/memory"
	"github.com/nikolayk812/shopcart/internal/security"
	"github.com/nikolayk812/shopcart/internal/service"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logging.New(logging.Options{Service: "shopcart", Level: cfg.LogLevel})

	if err := run(cfg, log); err != nil {
		log.WithError(err).Fatal("shopcart stopped")
	}
}

func run(cfg config.Config, log *logrus.Entry) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	defaults, err := cfg.Defaults()
	if err != nil {
		return fmt.Errorf("cfg.Defaults: %w", err)
	}

	repos, tx, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	if cfg.Store == config.StoreMemory {
		created, err := catalog.Seed(ctx, repos.Products, defaults.WalletMoney.Currency)
		if err != nil {
			return fmt.Errorf("catalog.Seed: %w", err)
		}
		log.WithField("products", created).Info("catalog seeded")
	}

	locks := service.NewKeyLock()
	m := metrics.New()

	server := httpapi.NewServer(httpapi.Deps{
		Users:    service.NewUserService(repos, tx, locks, security.NewBcryptHasher(cfg.BcryptCost), defaults, log),
		Carts:    service.NewCartService(repos, tx, locks, defaults, log),
		Checkout: service.NewCheckoutService(tx, locks, defaults, log),
		Products: repos.Products,
		Metrics:  m,
		Limiter:  httpapi.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, log),
		Log:      log,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           server.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.WithFields(logrus.Fields{"addr": cfg.HTTPAddr, "store": cfg.Store}).Info("http server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("srv.ListenAndServe: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown requested")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("srv.Shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	log.Info("bye")
	return nil
}

func openStore(ctx context.Context, cfg config.Config) (port.Repositories, port.Transactor, func(), error) {
	if cfg.Store == config.StoreMemory {
		store := memory.NewStore()
		return store.Repositories(), store, func() {}, nil
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return port.Repositories{}, nil, nil, fmt.Errorf("pgxpool.New: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return port.Repositories{}, nil, nil, fmt.Errorf("pool.Ping: %w", err)
	}

	return repository.NewRepositories(pool), repository.NewTransactor(pool), pool.Close, nil
}
