package memory

import (
	"context"
	"sort"
	"time"

	"github.com/avc/coin-payments/internal/domain"
)

// OrderRepository реализует domain.OrderRepository в памяти
type OrderRepository struct {
	store *Store
}

// NewOrderRepository создает новый OrderRepository
func NewOrderRepository(store *Store) *OrderRepository {
	return &OrderRepository{store: store}
}

// CreateOrder сохраняет копию заказа
func (r *OrderRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.orders[order.ID]; ok {
		return domain.ErrOrderExists
	}

	order.UpdatedAt = order.CreatedAt
	r.store.orders[order.ID] = copyOrder(order)
	return nil
}

// GetOrderByID возвращает копию заказа, видя изменения текущей транзакции
func (r *OrderRepository) GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	if tx := txFromContext(ctx); tx != nil {
		if order, ok := tx.orders[orderID]; ok {
			return copyOrder(order), nil
		}
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	order, ok := r.store.orders[orderID]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return copyOrder(order), nil
}

// WithOrderLock выполняет fn, удерживая мьютекс заказа.
// Изменения внутри fn применяются только если fn вернула nil.
func (r *OrderRepository) WithOrderLock(ctx context.Context, orderID string, fn func(ctx context.Context, order *domain.Order) error) error {
	if txFromContext(ctx) != nil {
		order, err := r.GetOrderByID(ctx, orderID)
		if err != nil {
			return err
		}
		return fn(ctx, order)
	}

	lock := r.store.orderLock(orderID)
	lock.Lock()
	defer lock.Unlock()

	order, err := r.GetOrderByID(ctx, orderID)
	if err != nil {
		return err
	}

	tx := &memTx{orders: make(map[string]*domain.Order)}
	if err := fn(context.WithValue(ctx, txKey{}, tx), order); err != nil {
		return err
	}

	return r.store.commit(tx)
}

// CompleteOrder переводит заказ из PENDING в COMPLETED
func (r *OrderRepository) CompleteOrder(ctx context.Context, orderID string, transID int64) error {
	return r.update(ctx, orderID, func(order *domain.Order) {
		code := domain.ResultCodeSuccess
		order.Status = domain.OrderStatusCompleted
		order.TransID = &transID
		order.ResultCode = &code
	})
}

// FailOrder переводит заказ из PENDING в FAILED
func (r *OrderRepository) FailOrder(ctx context.Context, orderID string, resultCode int64) error {
	return r.update(ctx, orderID, func(order *domain.Order) {
		order.Status = domain.OrderStatusFailed
		order.ResultCode = &resultCode
	})
}

// MarkPaid запоминает подтвержденную оплату заказа в ожидании
func (r *OrderRepository) MarkPaid(ctx context.Context, orderID string, transID int64) error {
	return r.update(ctx, orderID, func(order *domain.Order) {
		order.PaidTransID = &transID
	})
}

// update меняет заказ в статусе PENDING: в транзакции через ее копию, иначе сразу
func (r *OrderRepository) update(ctx context.Context, orderID string, mutate func(order *domain.Order)) error {
	if tx := txFromContext(ctx); tx != nil {
		order, err := r.GetOrderByID(ctx, orderID)
		if err != nil {
			return err
		}
		if order.Status != domain.OrderStatusPending {
			return domain.ErrOrderFinalized
		}
		mutate(order)
		order.UpdatedAt = time.Now().UTC()
		tx.orders[orderID] = order
		return nil
	}

	lock := r.store.orderLock(orderID)
	lock.Lock()
	defer lock.Unlock()

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, ok := r.store.orders[orderID]
	if !ok {
		return domain.ErrOrderNotFound
	}
	if stored.Status != domain.OrderStatusPending {
		return domain.ErrOrderFinalized
	}

	order := copyOrder(stored)
	mutate(order)
	order.UpdatedAt = time.Now().UTC()
	r.store.orders[orderID] = order
	return nil
}

// GetPendingOrders возвращает заказы в ожидании, созданные раньше createdBefore, старые первыми
func (r *OrderRepository) GetPendingOrders(ctx context.Context, createdBefore time.Time, limit int) ([]*domain.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var orders []*domain.Order
	for _, order := range r.store.orders {
		if order.Status == domain.OrderStatusPending && order.CreatedAt.Before(createdBefore) {
			orders = append(orders, copyOrder(order))
		}
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.Before(orders[j].CreatedAt)
	})

	if limit > 0 && len(orders) > limit {
		orders = orders[:limit]
	}

	return orders, nil
}

// GetOrdersByAccount возвращает заказы счета, новые первыми
func (r *OrderRepository) GetOrdersByAccount(ctx context.Context, accountID int64) ([]*domain.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var orders []*domain.Order
	for _, order := range r.store.orders {
		if order.AccountID == accountID {
			orders = append(orders, copyOrder(order))
		}
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})

	return orders, nil
}
