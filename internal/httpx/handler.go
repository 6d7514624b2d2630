package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/nikolayk812/bakery-web/internal/api"
	"github.com/nikolayk812/bakery-web/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
	"net/http"
)

// maxBodyBytes caps request bodies; a full cart is a few kilobytes.
const maxBodyBytes = 1 << 20

type Shop interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	Checkout(ctx context.Context, order domain.Order) (string, error)
	GetOrder(ctx context.Context, orderID string) (domain.Order, error)
	SubmitFeedback(ctx context.Context, feedback domain.Feedback) (int64, error)
}

// Handler serves the shop API.
type Handler struct {
	shop     Shop
	currency currency.Unit
	logger   *zap.Logger
}

func NewHandler(shop Shop, cur currency.Unit, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Handler{
		shop:     shop,
		currency: cur,
		logger:   logger,
	}
}

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.shop.ListProducts(r.Context())
	if err != nil {
		h.log(r).Error("list products", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, api.ErrorResponse{Error: "products unavailable"})
		return
	}

	writeJSON(w, http.StatusOK, api.NewProducts(products))
}

// Checkout stores an order and answers {success, order_id}.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req api.CheckoutRequest
	if err := decode(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, api.CheckoutResponse{Success: false, Error: "invalid json"})
		return
	}

	orderID, err := h.shop.Checkout(r.Context(), req.ToDomain(h.currency))
	switch {
	case errors.Is(err, domain.ErrInvalidOrder):
		writeJSON(w, http.StatusBadRequest, api.CheckoutResponse{Success: false, Error: err.Error()})
		return
	case err != nil:
		h.log(r).Error("checkout", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, api.CheckoutResponse{Success: false, Error: "order could not be stored"})
		return
	}

	writeJSON(w, http.StatusOK, api.CheckoutResponse{Success: true, OrderID: api.FlexString(orderID)})
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")

	order, err := h.shop.GetOrder(r.Context(), orderID)
	switch {
	case errors.Is(err, domain.ErrOrderNotFound):
		writeJSON(w, http.StatusNotFound, api.ErrorResponse{Error: "order not found"})
		return
	case err != nil:
		h.log(r).Error("get order", zap.String("order_id", orderID), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, api.ErrorResponse{Error: "order unavailable"})
		return
	}

	writeJSON(w, http.StatusOK, api.NewOrder(order))
}

func (h *Handler) Feedback(w http.ResponseWriter, r *http.Request) {
	var req api.FeedbackRequest
	if err := decode(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, api.FeedbackResponse{Success: false, Error: "invalid json"})
		return
	}

	_, err := h.shop.SubmitFeedback(r.Context(), req.ToDomain())
	switch {
	case errors.Is(err, domain.ErrInvalidFeedback):
		writeJSON(w, http.StatusBadRequest, api.FeedbackResponse{Success: false, Error: err.Error()})
		return
	case err != nil:
		h.log(r).Error("feedback", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, api.FeedbackResponse{Success: false, Error: "feedback could not be stored"})
		return
	}

	writeJSON(w, http.StatusOK, api.FeedbackResponse{Success: true})
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) log(r *http.Request) *zap.Logger {
	return h.logger.With(zap.String("request_id", middleware.GetReqID(r.Context())))
}

func decode(w http.ResponseWriter, r *http.Request, v any) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
