package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc/coin-payments/internal/domain"
	"github.com/jackc/pgx/v5"
)

const orderColumns = `order_id, request_id, account_id, units, amount, description, status,
	result_code, paid_trans_id, trans_id, created_at, updated_at`

// OrderRepository реализует domain.OrderRepository
type OrderRepository struct {
	db DBTX
}

// NewOrderRepository создает новый OrderRepository
func NewOrderRepository(db DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

// CreateOrder сохраняет новый заказ, существующий заказ не перезаписывается
func (r *OrderRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	err := conn(ctx, r.db).QueryRow(ctx,
		`INSERT INTO payment_orders (order_id, request_id, account_id, units, amount, description, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		 RETURNING created_at, updated_at`,
		order.ID, order.RequestID, order.AccountID, order.Units, order.Amount, order.Description, order.Status, order.CreatedAt,
	).Scan(&order.CreatedAt, &order.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrOrderExists
		}
		return fmt.Errorf("repository: failed to create order %q: %w", order.ID, err)
	}

	return nil
}

// GetOrderByID получает заказ по идентификатору
func (r *OrderRepository) GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	row := conn(ctx, r.db).QueryRow(ctx,
		`SELECT `+orderColumns+`
		 FROM payment_orders
		 WHERE order_id = $1`,
		orderID,
	)

	order, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("repository: failed to get order %q: %w", orderID, err)
	}

	return order, nil
}

// WithOrderLock блокирует строку заказа (SELECT ... FOR UPDATE) на время fn.
// fn получает ctx с транзакцией, к которой присоединяются остальные репозитории.
func (r *OrderRepository) WithOrderLock(ctx context.Context, orderID string, fn func(ctx context.Context, order *domain.Order) error) error {
	return withTx(ctx, r.db, func(ctx context.Context) error {
		row := conn(ctx, r.db).QueryRow(ctx,
			`SELECT `+orderColumns+`
			 FROM payment_orders
			 WHERE order_id = $1
			 FOR UPDATE`,
			orderID,
		)

		order, err := scanOrder(row)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrOrderNotFound
			}
			return fmt.Errorf("repository: failed to lock order %q: %w", orderID, err)
		}

		return fn(ctx, order)
	})
}

// CompleteOrder переводит заказ из PENDING в COMPLETED
func (r *OrderRepository) CompleteOrder(ctx context.Context, orderID string, transID int64) error {
	result, err := conn(ctx, r.db).Exec(ctx,
		`UPDATE payment_orders
		 SET status = $1, trans_id = $2, result_code = $3, updated_at = NOW()
		 WHERE order_id = $4 AND status = $5`,
		domain.OrderStatusCompleted, transID, domain.ResultCodeSuccess, orderID, domain.OrderStatusPending,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to complete order %q: %w", orderID, err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrOrderFinalized
	}

	return nil
}

// FailOrder переводит заказ из PENDING в FAILED
func (r *OrderRepository) FailOrder(ctx context.Context, orderID string, resultCode int64) error {
	result, err := conn(ctx, r.db).Exec(ctx,
		`UPDATE payment_orders
		 SET status = $1, result_code = $2, updated_at = NOW()
		 WHERE order_id = $3 AND status = $4`,
		domain.OrderStatusFailed, resultCode, orderID, domain.OrderStatusPending,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to fail order %q: %w", orderID, err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrOrderFinalized
	}

	return nil
}

// MarkPaid запоминает подтвержденную оплату, монеты по которой еще не зачислены
func (r *OrderRepository) MarkPaid(ctx context.Context, orderID string, transID int64) error {
	result, err := conn(ctx, r.db).Exec(ctx,
		`UPDATE payment_orders
		 SET paid_trans_id = $1, updated_at = NOW()
		 WHERE order_id = $2 AND status = $3`,
		transID, orderID, domain.OrderStatusPending,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to mark order %q paid: %w", orderID, err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrOrderFinalized
	}

	return nil
}

// GetPendingOrders получает заказы в ожидании, созданные раньше createdBefore, старые первыми
func (r *OrderRepository) GetPendingOrders(ctx context.Context, createdBefore time.Time, limit int) ([]*domain.Order, error) {
	rows, err := conn(ctx, r.db).Query(ctx,
		`SELECT `+orderColumns+`
		 FROM payment_orders
		 WHERE status = $1 AND created_at < $2
		 ORDER BY created_at ASC
		 LIMIT $3`,
		domain.OrderStatusPending, createdBefore, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get pending orders: %w", err)
	}
	defer rows.Close()

	var orders []*domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating pending orders: %w", err)
	}

	return orders, nil
}

// GetOrdersByAccount получает заказы счета, новые первыми
func (r *OrderRepository) GetOrdersByAccount(ctx context.Context, accountID int64) ([]*domain.Order, error) {
	rows, err := conn(ctx, r.db).Query(ctx,
		`SELECT `+orderColumns+`
		 FROM payment_orders
		 WHERE account_id = $1
		 ORDER BY created_at DESC`,
		accountID,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get orders of account %d: %w", accountID, err)
	}
	defer rows.Close()

	var orders []*domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating orders: %w", err)
	}

	return orders, nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	order := &domain.Order{}
	err := row.Scan(
		&order.ID, &order.RequestID, &order.AccountID, &order.Units, &order.Amount, &order.Description, &order.Status,
		&order.ResultCode, &order.PaidTransID, &order.TransID, &order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return order, nil
}
