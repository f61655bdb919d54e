package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/avc/coin-payments/internal/domain"
	domainmocks "github.com/avc/coin-payments/internal/domain/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestOrdersHandler_GetOrders(t *testing.T) {
	mockService := domainmocks.NewPaymentServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewOrdersHandler(mockService, logger)

	createdAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		transID := int64(42)
		orders := []*domain.Order{{
			ID:        "7-1",
			AccountID: 7,
			Units:     100,
			Amount:    20000,
			Status:    domain.OrderStatusCompleted,
			TransID:   &transID,
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
		}}
		mockService.EXPECT().GetOrders(mock.Anything, int64(7)).Return(orders, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/payments", nil)
		w := httptest.NewRecorder()

		handler.GetOrders(w, withAccount(req, 7))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[{
			"order_id": "7-1",
			"units": 100,
			"amount": 20000,
			"description": "",
			"status": "COMPLETED",
			"trans_id": 42,
			"created_at": "2024-03-01T12:00:00Z",
			"updated_at": "2024-03-01T12:00:00Z"
		}]`, w.Body.String())
	})

	t.Run("No orders", func(t *testing.T) {
		mockService.EXPECT().GetOrders(mock.Anything, int64(7)).Return(nil, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/payments", nil)
		w := httptest.NewRecorder()

		handler.GetOrders(w, withAccount(req, 7))
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Unauthorized - no account ID in context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/payments", nil)
		w := httptest.NewRecorder()

		handler.GetOrders(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func withOrderID(req *http.Request, orderID string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("orderID", orderID)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestOrdersHandler_GetOrder(t *testing.T) {
	mockService := domainmocks.NewPaymentServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewOrdersHandler(mockService, logger)

	tests := []struct {
		name       string
		order      *domain.Order
		err        error
		wantStatus int
	}{
		{name: "Success", order: &domain.Order{ID: "7-1", AccountID: 7, Status: domain.OrderStatusPending}, wantStatus: http.StatusOK},
		{name: "Not found", err: domain.ErrOrderNotFound, wantStatus: http.StatusNotFound},
		{name: "Database error", err: errors.New("db error"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService.EXPECT().GetOrder(mock.Anything, int64(7), "7-1").Return(tt.order, tt.err).Once()

			req := httptest.NewRequest(http.MethodGet, "/api/payments/7-1", nil)
			w := httptest.NewRecorder()

			handler.GetOrder(w, withOrderID(withAccount(req, 7), "7-1"))
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
