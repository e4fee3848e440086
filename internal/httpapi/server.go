// Package httpapi exposes the account, catalog and cart services over HTTP+JSON.
package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/nikolayk812/shopcart/internal/metrics"
	"github.com/nikolayk812/shopcart/internal/port"
	"github.com/nikolayk812/shopcart/internal/service"
	"github.com/sirupsen/logrus"
)

type Server struct {
	users    *service.UserService
	carts    *service.CartService
	checkout *service.CheckoutService
	products port.ProductRepository

	metrics *metrics.Metrics
	limiter *RateLimiter
	log     logrus.FieldLogger
}

type Deps struct {
	Users    *service.UserService
	Carts    *service.CartService
	Checkout *service.CheckoutService
	Products port.ProductRepository
	Metrics  *metrics.Metrics
	Limiter  *RateLimiter
	Log      logrus.FieldLogger
}

func NewServer(deps Deps) *Server {
	return &Server{
		users:    deps.Users,
		carts:    deps.Carts,
		checkout: deps.Checkout,
		products: deps.Products,
		metrics:  deps.Metrics,
		limiter:  deps.Limiter,
		log:      deps.Log.WithField("component", "http"),
	}
}

func (s *Server) Router() http.Handler {
	r := mux.NewRouter()
	r.Use(s.instrument)

	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.Handle("/metrics", s.metrics.Handler()).Methods(http.MethodGet)

	v1 := r.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/users", s.handleCreateUser).Methods(http.MethodPost)
	v1.HandleFunc("/products", s.handleListProducts).Methods(http.MethodGet)
	v1.HandleFunc("/products/{productId}", s.handleGetProduct).Methods(http.MethodGet)

	authed := v1.NewRoute().Subrouter()
	authed.Use(s.authenticate, s.limiter.Middleware)
	authed.HandleFunc("/users/me", s.handleGetMe).Methods(http.MethodGet)
	authed.HandleFunc("/users/me/address", s.handleGetAddress).Methods(http.MethodGet)
	authed.HandleFunc("/users/me/address", s.handleSetAddress).Methods(http.MethodPut)
	authed.HandleFunc("/cart", s.handleGetCart).Methods(http.MethodGet)
	authed.HandleFunc("/cart", s.handleAddProduct).Methods(http.MethodPost)
	authed.HandleFunc("/cart", s.handleUpdateProduct).Methods(http.MethodPut)
	authed.HandleFunc("/cart/checkout", s.handleCheckout).Methods(http.MethodPut)
	authed.HandleFunc("/cart/{productId}", s.handleRemoveProduct).Methods(http.MethodDelete)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, errorResponse{Message: "not found"})
	})

	return r
}
