package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avc/coin-payments/internal/domain"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type OrdersHandler struct {
	payments domain.PaymentService
	logger   *zap.Logger
}

func NewOrdersHandler(payments domain.PaymentService, logger *zap.Logger) *OrdersHandler {
	return &OrdersHandler{
		payments: payments,
		logger:   logger,
	}
}

func (h *OrdersHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	accountID, ok := GetAccountID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	orders, err := h.payments.GetOrders(r.Context(), accountID)
	if err != nil {
		h.logger.Error("failed to get orders", zap.Int64("account_id", accountID), zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if len(orders) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(orders); err != nil {
		h.logger.Error("failed to encode orders response", zap.Error(err))
	}
}

// GetOrder возвращает заказ владельцу, например для страницы результата оплаты
func (h *OrdersHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	accountID, ok := GetAccountID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	order, err := h.payments.GetOrder(r.Context(), accountID, chi.URLParam(r, "orderID"))
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to get order", zap.Int64("account_id", accountID), zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(order); err != nil {
		h.logger.Error("failed to encode order response", zap.Error(err))
	}
}
