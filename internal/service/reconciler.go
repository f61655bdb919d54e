package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/coin-payments/internal/clock"
	"github.com/avc/coin-payments/internal/domain"
	"go.uber.org/zap"
)

// Исходы сверки в журнале аудита помимо domain.ReconcileOutcome
const (
	auditRejected     = "rejected"
	auditCreditFailed = "credit_failed"
)

// paymentResult результат оплаты независимо от источника (уведомление или запрос статуса)
type paymentResult struct {
	OrderID    string
	Amount     int64
	ResultCode int64
	TransID    int64
	ExtraData  string
	// checkAmount требует сверить сумму с заказом
	checkAmount bool
	// checkPayload требует сверить extraData с заказом
	checkPayload bool
}

// Reconciler реализует domain.ReconcileService
type Reconciler struct {
	orderRepo   domain.OrderRepository
	accountRepo domain.AccountRepository
	auditRepo   domain.AuditRepository
	provider    domain.PaymentProvider
	clock       clock.Clock
	logger      *zap.Logger
}

// NewReconciler создает новый Reconciler
func NewReconciler(
	orderRepo domain.OrderRepository,
	accountRepo domain.AccountRepository,
	auditRepo domain.AuditRepository,
	provider domain.PaymentProvider,
	clk clock.Clock,
	logger *zap.Logger,
) *Reconciler {
	return &Reconciler{
		orderRepo:   orderRepo,
		accountRepo: accountRepo,
		auditRepo:   auditRepo,
		provider:    provider,
		clock:       clk,
		logger:      logger,
	}
}

// Reconcile применяет уведомление о результате оплаты из любого канала.
// Подпись проверяется при каждом вызове, повторная доставка не меняет баланс.
func (r *Reconciler) Reconcile(ctx context.Context, n *domain.PaymentNotification, channel domain.Channel) (domain.ReconcileOutcome, error) {
	if n == nil || !r.provider.VerifyNotification(n) {
		event := &domain.AuditEvent{Channel: channel, Outcome: auditRejected, Reason: "signature_invalid"}
		if n != nil {
			event.OrderID = n.OrderID
			event.ResultCode = n.ResultCode
			event.TransID = n.TransID
			event.Amount = n.Amount
		}
		r.logger.Error("notification signature invalid, possible forgery",
			zap.String("order_id", event.OrderID),
			zap.String("channel", string(channel)),
		)
		r.audit(ctx, event)
		return "", domain.ErrSignatureInvalid
	}

	return r.apply(ctx, paymentResult{
		OrderID:      n.OrderID,
		Amount:       n.Amount,
		ResultCode:   n.ResultCode,
		TransID:      n.TransID,
		ExtraData:    n.ExtraData,
		checkAmount:  true,
		checkPayload: true,
	}, channel)
}

// Resolve доводит зависший заказ до конечного состояния.
// Подтвержденная, но не зачисленная оплата зачисляется повторно, иначе статус запрашивается у провайдера.
func (r *Reconciler) Resolve(ctx context.Context, orderID string) (domain.ReconcileOutcome, error) {
	order, err := r.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return "", fmt.Errorf("reconciler: failed to get order %s: %w", orderID, err)
	}

	if order.Status.IsFinal() {
		return domain.ReconcileDuplicate, nil
	}

	if order.PaidTransID != nil {
		r.logger.Info("retrying credit for paid order",
			zap.String("order_id", orderID),
			zap.Int64("trans_id", *order.PaidTransID),
		)
		return r.apply(ctx, paymentResult{
			OrderID:     orderID,
			Amount:      order.Amount,
			ResultCode:  domain.ResultCodeSuccess,
			TransID:     *order.PaidTransID,
			checkAmount: true,
		}, domain.ChannelSweep)
	}

	status, err := r.provider.QueryPayment(ctx, orderID)
	if err != nil {
		return "", fmt.Errorf("reconciler: failed to query payment %s: %w", orderID, err)
	}

	// Ответ о неуспешной оплате может не содержать amount и transId
	return r.apply(ctx, paymentResult{
		OrderID:      orderID,
		Amount:       status.Amount,
		ResultCode:   status.ResultCode,
		TransID:      status.TransID,
		ExtraData:    status.ExtraData,
		checkAmount:  status.ResultCode == domain.ResultCodeSuccess || status.Amount != 0,
		checkPayload: status.ExtraData != "",
	}, domain.ChannelSweep)
}

// OrderStatus возвращает сохраненный статус заказа
func (r *Reconciler) OrderStatus(ctx context.Context, orderID string) (domain.OrderStatus, error) {
	order, err := r.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return "", fmt.Errorf("reconciler: failed to get order %s: %w", orderID, err)
	}
	return order.Status, nil
}

// apply выполняет переход состояния заказа под блокировкой заказа
func (r *Reconciler) apply(ctx context.Context, res paymentResult, channel domain.Channel) (domain.ReconcileOutcome, error) {
	log := r.logger.With(
		zap.String("order_id", res.OrderID),
		zap.String("channel", string(channel)),
		zap.Int64("result_code", res.ResultCode),
		zap.Int64("trans_id", res.TransID),
	)
	event := &domain.AuditEvent{
		OrderID:    res.OrderID,
		Channel:    channel,
		ResultCode: res.ResultCode,
		TransID:    res.TransID,
		Amount:     res.Amount,
	}

	var outcome domain.ReconcileOutcome
	var creditErr error

	err := r.orderRepo.WithOrderLock(ctx, res.OrderID, func(ctx context.Context, order *domain.Order) error {
		if err := matchOrder(order, res); err != nil {
			return err
		}

		if order.Status.IsFinal() {
			if !sameOutcome(order.Status, res.ResultCode) {
				return fmt.Errorf("%w: order is %s", domain.ErrOrderFinalized, order.Status)
			}
			outcome = domain.ReconcileDuplicate
			return nil
		}

		switch {
		case res.ResultCode == domain.ResultCodeSuccess:
			if err := r.accountRepo.CreditBalance(ctx, order.AccountID, order.ID, order.Units); err != nil {
				creditErr = err
				return fmt.Errorf("%w: %v", domain.ErrCreditFailed, err)
			}
			if err := r.orderRepo.CompleteOrder(ctx, order.ID, res.TransID); err != nil {
				return err
			}
			event.Amount = order.Amount
			outcome = domain.ReconcileCompleted

		case domain.IsInProgressCode(res.ResultCode), domain.IsProviderErrorCode(res.ResultCode):
			outcome = domain.ReconcileIgnored

		case order.PaidTransID != nil:
			return fmt.Errorf("%w: payment %d already confirmed", domain.ErrOrderFinalized, *order.PaidTransID)

		default:
			if err := r.orderRepo.FailOrder(ctx, order.ID, res.ResultCode); err != nil {
				return err
			}
			outcome = domain.ReconcileFailed
		}

		return nil
	})

	if creditErr != nil {
		// Оплата подтверждена, заказ остается PENDING до успешного зачисления
		if err := r.orderRepo.MarkPaid(ctx, res.OrderID, res.TransID); err != nil {
			log.Error("failed to record paid order for retry", zap.Error(err))
		}
		log.Error("credit apply failed, order left pending", zap.Error(creditErr))
		event.Outcome = auditCreditFailed
		event.Reason = creditErr.Error()
		r.audit(ctx, event)
		return "", fmt.Errorf("reconciler: order %s: %w", res.OrderID, domain.ErrCreditFailed)
	}

	if err != nil {
		event.Outcome = auditRejected
		event.Reason = rejectReason(err)
		switch {
		case errors.Is(err, domain.ErrAmountMismatch):
			log.Warn("notification does not match order, suspicious", zap.Error(err))
		case errors.Is(err, domain.ErrOrderNotFound):
			log.Warn("notification for unknown order")
		case errors.Is(err, domain.ErrOrderFinalized):
			log.Warn("notification contradicts finalized order", zap.Error(err))
		default:
			log.Error("failed to reconcile payment", zap.Error(err))
		}
		r.audit(ctx, event)
		return "", fmt.Errorf("reconciler: order %s: %w", res.OrderID, err)
	}

	event.Outcome = string(outcome)
	r.audit(ctx, event)

	switch outcome {
	case domain.ReconcileDuplicate:
		log.Info("duplicate notification for finalized order")
	case domain.ReconcileIgnored:
		log.Debug("payment not final yet")
	default:
		log.Info("payment reconciled", zap.String("outcome", string(outcome)))
	}

	return outcome, nil
}

// matchOrder сверяет данные результата с сохраненным заказом
func matchOrder(order *domain.Order, res paymentResult) error {
	if res.checkAmount && res.Amount != order.Amount {
		return fmt.Errorf("%w: amount %d, expected %d", domain.ErrAmountMismatch, res.Amount, order.Amount)
	}

	if !res.checkPayload {
		return nil
	}

	payload, err := DecodePayload(res.ExtraData)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrAmountMismatch, err)
	}
	if payload.AccountID != order.AccountID {
		return fmt.Errorf("%w: account %d, expected %d", domain.ErrAmountMismatch, payload.AccountID, order.AccountID)
	}
	if payload.Units != order.Units {
		return fmt.Errorf("%w: units %d, expected %d", domain.ErrAmountMismatch, payload.Units, order.Units)
	}

	return nil
}

// sameOutcome сообщает, что результат не противоречит конечному статусу заказа
func sameOutcome(status domain.OrderStatus, resultCode int64) bool {
	if domain.IsInProgressCode(resultCode) || domain.IsProviderErrorCode(resultCode) {
		return true
	}
	if resultCode == domain.ResultCodeSuccess {
		return status == domain.OrderStatusCompleted
	}
	return status == domain.OrderStatusFailed
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrOrderNotFound):
		return "order_not_found"
	case errors.Is(err, domain.ErrOrderFinalized):
		return "order_finalized"
	case errors.Is(err, domain.ErrAmountMismatch):
		return "amount_mismatch"
	default:
		return err.Error()
	}
}

// audit пишет событие в журнал, ошибка журнала не прерывает сверку
func (r *Reconciler) audit(ctx context.Context, event *domain.AuditEvent) {
	event.RecordedAt = r.clock.Now()
	if err := r.auditRepo.RecordEvent(ctx, event); err != nil {
		r.logger.Warn("failed to record audit event",
			zap.String("order_id", event.OrderID),
			zap.String("outcome", event.Outcome),
			zap.Error(err),
		)
	}
}
