package httpapi

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/nikolayk812/shopcart/internal/domain"
	"github.com/nikolayk812/shopcart/internal/port"
	"github.com/nikolayk812/shopcart/internal/service"
)

type createUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type addressRequest struct {
	Address string `json:"address"`
}

type cartItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  *int   `json:"quantity"`
}

func isInvalidCredentials(err error) bool {
	return errors.Is(err, service.ErrInvalidCredentials)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := s.users.CreateUser(r.Context(), service.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toUserResponse(user))
}

func (s *Server) handleGetMe(w http.ResponseWriter, r *http.Request) {
	user, err := s.users.GetUserByEmail(r.Context(), emailFrom(r.Context()))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(user))
}

func (s *Server) handleGetAddress(w http.ResponseWriter, r *http.Request) {
	address, err := s.users.GetUserAddress(r.Context(), emailFrom(r.Context()))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, addressResponse{
		ID:      address.ID,
		Email:   address.Email,
		Address: address.Address,
	})
}

func (s *Server) handleSetAddress(w http.ResponseWriter, r *http.Request) {
	var req addressRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	address, err := s.users.SetAddress(r.Context(), emailFrom(r.Context()), req.Address)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, addressRequest{Address: address})
}

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.products.ListProducts(r.Context())
	if err != nil {
		s.writeError(w, r, domain.Internal("failed to list products", err))
		return
	}

	resp := make([]productResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, toProductResponse(p))
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["productId"])
	if err != nil {
		s.writeError(w, r, domain.InvalidInput("invalid product id"))
		return
	}

	product, err := s.products.GetProduct(r.Context(), id)
	if errors.Is(err, port.ErrNotFound) {
		s.writeError(w, r, domain.NotFound("product doesn't exist"))
		return
	}
	if err != nil {
		s.writeError(w, r, domain.Internal("failed to get product", err))
		return
	}

	writeJSON(w, http.StatusOK, toProductResponse(product))
}

func (s *Server) handleGetCart(w http.ResponseWriter, r *http.Request) {
	cart, err := s.carts.GetCart(r.Context(), emailFrom(r.Context()))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCartResponse(cart))
}

func (s *Server) handleAddProduct(w http.ResponseWriter, r *http.Request) {
	productID, quantity, ok := s.decodeCartItem(w, r)
	if !ok {
		return
	}

	cart, err := s.carts.AddProduct(r.Context(), emailFrom(r.Context()), productID, quantity)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCartResponse(cart))
}

// handleUpdateProduct removes the item when quantity is 0.
func (s *Server) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	productID, quantity, ok := s.decodeCartItem(w, r)
	if !ok {
		return
	}

	email := emailFrom(r.Context())

	if quantity == 0 {
		if err := s.carts.RemoveProduct(r.Context(), email, productID); err != nil {
			s.writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
		return
	}

	cart, err := s.carts.UpdateProduct(r.Context(), email, productID, quantity)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCartResponse(cart))
}

func (s *Server) handleRemoveProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := uuid.Parse(mux.Vars(r)["productId"])
	if err != nil {
		s.writeError(w, r, domain.InvalidInput("invalid product id"))
		return
	}

	if err := s.carts.RemoveProduct(r.Context(), emailFrom(r.Context()), productID); err != nil {
		s.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCheckout(w http.ResponseWriter, r *http.Request) {
	err := s.checkout.Checkout(r.Context(), emailFrom(r.Context()))
	s.metrics.ObserveCheckout(err)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) decodeCartItem(w http.ResponseWriter, r *http.Request) (uuid.UUID, int, bool) {
	var req cartItemRequest
	if !decodeJSON(w, r, &req) {
		return uuid.Nil, 0, false
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		s.writeError(w, r, domain.InvalidInput("invalid product id"))
		return uuid.Nil, 0, false
	}

	if req.Quantity == nil {
		s.writeError(w, r, domain.InvalidInput("quantity is required"))
		return uuid.Nil, 0, false
	}

	return productID, *req.Quantity, true
}
