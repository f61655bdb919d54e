package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/avc/coin-payments/internal/domain"
	"go.uber.org/zap"
)

// Статусы, с которыми пользователь возвращается на страницу результата
const (
	returnStatusSuccess = "success"
	returnStatusFailed  = "failed"
	returnStatusPending = "pending"
	returnStatusError   = "error"
)

const maxCreateRequestSize = 16 << 10

type PaymentsHandler struct {
	payments   domain.PaymentService
	reconciler domain.ReconcileService
	resultURL  string
	logger     *zap.Logger
}

// NewPaymentsHandler создает новый PaymentsHandler.
// resultURL страница, куда пользователь попадает после возврата из кошелька.
func NewPaymentsHandler(payments domain.PaymentService, reconciler domain.ReconcileService, resultURL string, logger *zap.Logger) *PaymentsHandler {
	return &PaymentsHandler{
		payments:   payments,
		reconciler: reconciler,
		resultURL:  resultURL,
		logger:     logger,
	}
}

type createPaymentRequest struct {
	Units       int64  `json:"units"`
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
}

type providerErrorResponse struct {
	Error      string `json:"error"`
	ResultCode int64  `json:"result_code,omitempty"`
	Message    string `json:"message,omitempty"`
}

// Create создает платеж для счета из токена и возвращает ссылку на оплату
func (h *PaymentsHandler) Create(w http.ResponseWriter, r *http.Request) {
	accountID, ok := GetAccountID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req createPaymentRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxCreateRequestSize)).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	result, err := h.payments.CreatePayment(r.Context(), domain.CreatePaymentInput{
		AccountID:   accountID,
		Units:       req.Units,
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		var rejected *domain.ProviderRejectedError
		switch {
		case errors.Is(err, domain.ErrInvalidUnits), errors.Is(err, domain.ErrInvalidAmount):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		case errors.As(err, &rejected):
			h.logger.Warn("payment rejected by provider",
				zap.Int64("account_id", accountID),
				zap.Int64("result_code", rejected.Code),
				zap.String("message", rejected.Message),
			)
			h.writeJSON(w, http.StatusBadGateway, providerErrorResponse{
				Error:      "payment provider rejected the payment",
				ResultCode: rejected.Code,
				Message:    rejected.Message,
			})
		case errors.Is(err, domain.ErrProviderUnavailable), errors.Is(err, domain.ErrProviderResponse):
			h.logger.Error("payment provider unavailable", zap.Int64("account_id", accountID), zap.Error(err))
			h.writeJSON(w, http.StatusBadGateway, providerErrorResponse{
				Error: "payment provider is unavailable, try again later",
			})
		default:
			h.logger.Error("failed to create payment", zap.Int64("account_id", accountID), zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}

	h.writeJSON(w, http.StatusCreated, result)
}

// Return обрабатывает возврат пользователя из кошелька (канал redirect)
func (h *PaymentsHandler) Return(w http.ResponseWriter, r *http.Request) {
	n, err := notificationFromQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("malformed return notification", zap.Error(err))
		h.redirectResult(w, r, r.URL.Query().Get("orderId"), returnStatusError)
		return
	}

	outcome, err := h.reconciler.Reconcile(r.Context(), n, domain.ChannelRedirect)
	status := returnStatus(n, outcome, err)
	if err == nil && outcome == domain.ReconcileDuplicate {
		status = h.finalStatus(r, n, status)
	}
	h.redirectResult(w, r, n.OrderID, status)
}

// finalStatus статус повторного уведомления по сохраненному заказу
func (h *PaymentsHandler) finalStatus(r *http.Request, n *domain.PaymentNotification, fallback string) string {
	orderStatus, err := h.reconciler.OrderStatus(r.Context(), n.OrderID)
	if err != nil {
		h.logger.Warn("failed to get order status for return page",
			zap.String("order_id", n.OrderID),
			zap.Error(err),
		)
		return fallback
	}

	switch orderStatus {
	case domain.OrderStatusCompleted:
		return returnStatusSuccess
	case domain.OrderStatusFailed:
		return returnStatusFailed
	default:
		return returnStatusPending
	}
}

// IPN обрабатывает серверное уведомление провайдера (канал ipn).
// Не 2xx ответ заставляет провайдера повторить доставку.
func (h *PaymentsHandler) IPN(w http.ResponseWriter, r *http.Request) {
	n, err := notificationFromJSON(r.Body)
	if err != nil {
		h.logger.Warn("malformed ipn notification", zap.Error(err))
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	_, err = h.reconciler.Reconcile(r.Context(), n, domain.ChannelIPN)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, domain.ErrSignatureInvalid):
		http.Error(w, "Bad Request", http.StatusBadRequest)
	case errors.Is(err, domain.ErrOrderNotFound):
		http.Error(w, "Not Found", http.StatusNotFound)
	case errors.Is(err, domain.ErrOrderFinalized), errors.Is(err, domain.ErrAmountMismatch):
		http.Error(w, "Conflict", http.StatusConflict)
	default:
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// returnStatus статус для страницы результата
func returnStatus(n *domain.PaymentNotification, outcome domain.ReconcileOutcome, err error) string {
	if err != nil {
		// Оплата подтверждена, монеты будут зачислены при повторной сверке
		if errors.Is(err, domain.ErrCreditFailed) {
			return returnStatusPending
		}
		return returnStatusError
	}

	switch outcome {
	case domain.ReconcileCompleted:
		return returnStatusSuccess
	case domain.ReconcileFailed:
		return returnStatusFailed
	case domain.ReconcileDuplicate:
		if n.ResultCode == domain.ResultCodeSuccess {
			return returnStatusSuccess
		}
		if domain.IsInProgressCode(n.ResultCode) || domain.IsProviderErrorCode(n.ResultCode) {
			return returnStatusPending
		}
		return returnStatusFailed
	default:
		return returnStatusPending
	}
}

// redirectResult отправляет пользователя на страницу результата.
// Без настроенной страницы результат отдается в JSON.
func (h *PaymentsHandler) redirectResult(w http.ResponseWriter, r *http.Request, orderID, status string) {
	if h.resultURL == "" {
		h.writeJSON(w, http.StatusOK, map[string]string{"order_id": orderID, "status": status})
		return
	}

	u, err := url.Parse(h.resultURL)
	if err != nil {
		h.logger.Error("invalid payment result url", zap.String("url", h.resultURL), zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	q := u.Query()
	q.Set("orderId", orderID)
	q.Set("status", status)
	u.RawQuery = q.Encode()

	http.Redirect(w, r, u.String(), http.StatusSeeOther)
}

func (h *PaymentsHandler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}
