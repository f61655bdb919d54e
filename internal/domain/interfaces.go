package domain

import (
	"context"
	"time"
)

// OrderRepository хранит платежные заказы и владеет их жизненным циклом
type OrderRepository interface {
	CreateOrder(ctx context.Context, order *Order) error
	GetOrderByID(ctx context.Context, orderID string) (*Order, error)
	// WithOrderLock выполняет fn, удерживая заказ эксклюзивно.
	// Ошибка fn откатывает все изменения, сделанные через ctx.
	WithOrderLock(ctx context.Context, orderID string, fn func(ctx context.Context, order *Order) error) error
	CompleteOrder(ctx context.Context, orderID string, transID int64) error
	FailOrder(ctx context.Context, orderID string, resultCode int64) error
	MarkPaid(ctx context.Context, orderID string, transID int64) error
	GetPendingOrders(ctx context.Context, createdBefore time.Time, limit int) ([]*Order, error)
	GetOrdersByAccount(ctx context.Context, accountID int64) ([]*Order, error)
}

// AccountRepository внешний счет пользователя с атомарным зачислением
type AccountRepository interface {
	CreditBalance(ctx context.Context, accountID int64, orderID string, units int64) error
	GetBalance(ctx context.Context, accountID int64) (int64, error)
}

// AuditRepository журнал результатов сверки для оператора
type AuditRepository interface {
	RecordEvent(ctx context.Context, event *AuditEvent) error
}

// PaymentProvider определяет методы взаимодействия с платежным провайдером
type PaymentProvider interface {
	CreatePayment(ctx context.Context, intent *PaymentIntent) (*PaymentResponse, error)
	QueryPayment(ctx context.Context, orderID string) (*PaymentStatus, error)
	VerifyNotification(n *PaymentNotification) bool
}

// PaymentService создает платежи и показывает заказы их владельцу
type PaymentService interface {
	CreatePayment(ctx context.Context, in CreatePaymentInput) (*CreatePaymentResult, error)
	GetOrders(ctx context.Context, accountID int64) ([]*Order, error)
	GetOrder(ctx context.Context, accountID int64, orderID string) (*Order, error)
}

// BalanceService показывает баланс монет
type BalanceService interface {
	GetBalance(ctx context.Context, accountID int64) (*Balance, error)
}

// ReconcileService применяет результаты платежей к заказам
type ReconcileService interface {
	Reconcile(ctx context.Context, n *PaymentNotification, channel Channel) (ReconcileOutcome, error)
	Resolve(ctx context.Context, orderID string) (ReconcileOutcome, error)
	OrderStatus(ctx context.Context, orderID string) (OrderStatus, error)
}

// CreatePaymentInput параметры покупки монет
type CreatePaymentInput struct {
	AccountID   int64
	Units       int64
	Amount      int64
	Description string
}

// CreatePaymentResult созданный заказ и адрес оплаты
type CreatePaymentResult struct {
	OrderID string `json:"order_id"`
	PayURL  string `json:"pay_url"`
}
