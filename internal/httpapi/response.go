package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/nikolayk812/shopcart/internal/domain"
	"github.com/shopspring/decimal"
)

type errorResponse struct {
	Message string `json:"message"`
}

type productResponse struct {
	ID       uuid.UUID       `json:"_id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Cost     decimal.Decimal `json:"cost"`
	Currency string          `json:"currency"`
	Rating   int             `json:"rating"`
	Image    string          `json:"image"`
}

type cartItemResponse struct {
	Product  productResponse `json:"product"`
	Quantity int             `json:"quantity"`
}

type cartResponse struct {
	Email         string             `json:"email"`
	CartItems     []cartItemResponse `json:"cartItems"`
	PaymentOption string             `json:"paymentOption"`
	Total         decimal.Decimal    `json:"total"`
}

type userResponse struct {
	ID          uuid.UUID       `json:"_id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	WalletMoney decimal.Decimal `json:"walletMoney"`
	Currency    string          `json:"currency"`
	Address     string          `json:"address"`
}

type addressResponse struct {
	ID      uuid.UUID `json:"_id"`
	Email   string    `json:"email"`
	Address string    `json:"address"`
}

func toProductResponse(p domain.Product) productResponse {
	return toSnapshotResponse(p.Snapshot())
}

func toSnapshotResponse(p domain.ProductSnapshot) productResponse {
	return productResponse{
		ID:       p.ID,
		Name:     p.Name,
		Category: p.Category,
		Cost:     p.Cost.Amount,
		Currency: p.Cost.Currency.String(),
		Rating:   p.Rating,
		Image:    p.Image,
	}
}

func toCartResponse(c domain.Cart) cartResponse {
	items := make([]cartItemResponse, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, cartItemResponse{
			Product:  toSnapshotResponse(item.Product),
			Quantity: item.Quantity,
		})
	}

	return cartResponse{
		Email:         c.Email,
		CartItems:     items,
		PaymentOption: c.PaymentOption,
		Total:         domain.TotalCost(c.Items),
	}
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		WalletMoney: u.WalletMoney.Amount,
		Currency:    u.WalletMoney.Currency.String(),
		Address:     u.Address,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func statusFor(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindInvalidInput:
		return http.StatusBadRequest
	case domain.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(domain.KindOf(err))
	if status >= http.StatusInternalServerError {
		s.log.WithError(err).WithField("path", r.URL.Path).Error("request failed")
	}

	writeJSON(w, status, errorResponse{Message: domain.MessageOf(err)})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid json"})
		return false
	}
	return true
}
