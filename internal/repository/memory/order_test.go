package memory

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/avc/coin-payments/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newPendingOrder(id string, accountID int64, createdAt time.Time) *domain.Order {
	return &domain.Order{
		ID:        id,
		RequestID: "req-" + id,
		AccountID: accountID,
		Units:     100,
		Amount:    20000,
		Status:    domain.OrderStatusPending,
		CreatedAt: createdAt,
	}
}

func TestOrderRepository_CreateOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(NewStore())

	order := newPendingOrder("7-1", 7, testTime)
	require.NoError(t, repo.CreateOrder(ctx, order))
	assert.Equal(t, testTime, order.UpdatedAt)

	t.Run("Collision keeps stored order", func(t *testing.T) {
		other := newPendingOrder("7-1", 8, testTime)
		assert.ErrorIs(t, repo.CreateOrder(ctx, other), domain.ErrOrderExists)

		stored, err := repo.GetOrderByID(ctx, "7-1")
		require.NoError(t, err)
		assert.Equal(t, int64(7), stored.AccountID)
	})

	t.Run("Returned order is a copy", func(t *testing.T) {
		stored, err := repo.GetOrderByID(ctx, "7-1")
		require.NoError(t, err)
		stored.Status = domain.OrderStatusCompleted

		again, err := repo.GetOrderByID(ctx, "7-1")
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusPending, again.Status)
	})

	t.Run("Unknown order", func(t *testing.T) {
		_, err := repo.GetOrderByID(ctx, "9-9")
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	})
}

func TestOrderRepository_WithOrderLock(t *testing.T) {
	ctx := context.Background()

	t.Run("Commits staged changes", func(t *testing.T) {
		store := NewStore()
		orders := NewOrderRepository(store)
		accounts := NewAccountRepository(store)
		require.NoError(t, orders.CreateOrder(ctx, newPendingOrder("7-1", 7, testTime)))

		err := orders.WithOrderLock(ctx, "7-1", func(ctx context.Context, order *domain.Order) error {
			if err := accounts.CreditBalance(ctx, order.AccountID, order.ID, order.Units); err != nil {
				return err
			}
			return orders.CompleteOrder(ctx, order.ID, 42)
		})
		require.NoError(t, err)

		order, err := orders.GetOrderByID(ctx, "7-1")
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusCompleted, order.Status)
		require.NotNil(t, order.TransID)
		assert.Equal(t, int64(42), *order.TransID)

		balance, err := accounts.GetBalance(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, int64(100), balance)
	})

	t.Run("Discards changes on error", func(t *testing.T) {
		store := NewStore()
		orders := NewOrderRepository(store)
		accounts := NewAccountRepository(store)
		require.NoError(t, orders.CreateOrder(ctx, newPendingOrder("7-1", 7, testTime)))

		fnErr := errors.New("abort")
		err := orders.WithOrderLock(ctx, "7-1", func(ctx context.Context, order *domain.Order) error {
			require.NoError(t, accounts.CreditBalance(ctx, order.AccountID, order.ID, order.Units))
			require.NoError(t, orders.CompleteOrder(ctx, order.ID, 42))
			return fnErr
		})
		assert.ErrorIs(t, err, fnErr)

		order, err := orders.GetOrderByID(ctx, "7-1")
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusPending, order.Status)

		balance, err := accounts.GetBalance(ctx, 7)
		require.NoError(t, err)
		assert.Zero(t, balance)
	})

	t.Run("Unknown order", func(t *testing.T) {
		orders := NewOrderRepository(NewStore())

		err := orders.WithOrderLock(ctx, "9-9", func(ctx context.Context, order *domain.Order) error {
			t.Fatal("fn must not run")
			return nil
		})
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	})

	t.Run("Concurrent attempts credit once", func(t *testing.T) {
		store := NewStore()
		orders := NewOrderRepository(store)
		accounts := NewAccountRepository(store)
		require.NoError(t, orders.CreateOrder(ctx, newPendingOrder("7-1", 7, testTime)))

		var completed atomic.Int32
		var wg sync.WaitGroup
		for i := 0; i < 32; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				err := orders.WithOrderLock(ctx, "7-1", func(ctx context.Context, order *domain.Order) error {
					if order.Status.IsFinal() {
						return nil
					}
					if err := accounts.CreditBalance(ctx, order.AccountID, order.ID, order.Units); err != nil {
						return err
					}
					if err := orders.CompleteOrder(ctx, order.ID, 42); err != nil {
						return err
					}
					completed.Add(1)
					return nil
				})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(1), completed.Load())
		balance, err := accounts.GetBalance(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, int64(100), balance)
	})
}

func TestOrderRepository_Transitions(t *testing.T) {
	ctx := context.Background()

	t.Run("Fail then complete", func(t *testing.T) {
		orders := NewOrderRepository(NewStore())
		require.NoError(t, orders.CreateOrder(ctx, newPendingOrder("7-1", 7, testTime)))

		require.NoError(t, orders.FailOrder(ctx, "7-1", 1006))
		assert.ErrorIs(t, orders.CompleteOrder(ctx, "7-1", 42), domain.ErrOrderFinalized)
		assert.ErrorIs(t, orders.FailOrder(ctx, "7-1", 1006), domain.ErrOrderFinalized)

		order, err := orders.GetOrderByID(ctx, "7-1")
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusFailed, order.Status)
		require.NotNil(t, order.ResultCode)
		assert.Equal(t, int64(1006), *order.ResultCode)
		assert.Nil(t, order.TransID)
	})

	t.Run("Mark paid keeps order pending", func(t *testing.T) {
		orders := NewOrderRepository(NewStore())
		require.NoError(t, orders.CreateOrder(ctx, newPendingOrder("7-1", 7, testTime)))

		require.NoError(t, orders.MarkPaid(ctx, "7-1", 42))

		order, err := orders.GetOrderByID(ctx, "7-1")
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusPending, order.Status)
		require.NotNil(t, order.PaidTransID)
		assert.Equal(t, int64(42), *order.PaidTransID)
	})

	t.Run("Unknown order", func(t *testing.T) {
		orders := NewOrderRepository(NewStore())
		assert.ErrorIs(t, orders.MarkPaid(ctx, "9-9", 42), domain.ErrOrderNotFound)
		assert.ErrorIs(t, orders.CompleteOrder(ctx, "9-9", 42), domain.ErrOrderNotFound)
		assert.ErrorIs(t, orders.FailOrder(ctx, "9-9", 1006), domain.ErrOrderNotFound)
	})
}

func TestOrderRepository_GetPendingOrders(t *testing.T) {
	ctx := context.Background()
	orders := NewOrderRepository(NewStore())

	require.NoError(t, orders.CreateOrder(ctx, newPendingOrder("1-3", 1, testTime.Add(-1*time.Minute))))
	require.NoError(t, orders.CreateOrder(ctx, newPendingOrder("1-1", 1, testTime.Add(-3*time.Minute))))
	require.NoError(t, orders.CreateOrder(ctx, newPendingOrder("1-2", 1, testTime.Add(-2*time.Minute))))
	require.NoError(t, orders.CreateOrder(ctx, newPendingOrder("1-4", 1, testTime)))
	require.NoError(t, orders.CreateOrder(ctx, newPendingOrder("1-5", 1, testTime.Add(-4*time.Minute))))
	require.NoError(t, orders.FailOrder(ctx, "1-5", 1006))

	pending, err := orders.GetPendingOrders(ctx, testTime, 10)
	require.NoError(t, err)
	require.Len(t, pending, 3)
	assert.Equal(t, "1-1", pending[0].ID)
	assert.Equal(t, "1-2", pending[1].ID)
	assert.Equal(t, "1-3", pending[2].ID)

	limited, err := orders.GetPendingOrders(ctx, testTime, 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, "1-1", limited[0].ID)
}

func TestOrderRepository_GetOrdersByAccount(t *testing.T) {
	ctx := context.Background()
	orders := NewOrderRepository(NewStore())

	require.NoError(t, orders.CreateOrder(ctx, newPendingOrder("7-1", 7, testTime.Add(-time.Hour))))
	require.NoError(t, orders.CreateOrder(ctx, newPendingOrder("7-2", 7, testTime)))
	require.NoError(t, orders.CreateOrder(ctx, newPendingOrder("8-1", 8, testTime)))

	own, err := orders.GetOrdersByAccount(ctx, 7)
	require.NoError(t, err)
	require.Len(t, own, 2)
	assert.Equal(t, "7-2", own[0].ID)
	assert.Equal(t, "7-1", own[1].ID)

	none, err := orders.GetOrdersByAccount(ctx, 9)
	require.NoError(t, err)
	assert.Empty(t, none)
}
