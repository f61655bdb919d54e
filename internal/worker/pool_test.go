package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avc/coin-payments/internal/clock"
	"github.com/avc/coin-payments/internal/domain"
	domainmocks "github.com/avc/coin-payments/internal/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestPool(t *testing.T, cfg PoolConfig) (*Pool, *domainmocks.OrderRepositoryMock, *domainmocks.ReconcileServiceMock) {
	t.Helper()

	orderRepo := domainmocks.NewOrderRepositoryMock(t)
	reconciler := domainmocks.NewReconcileServiceMock(t)
	logger, _ := zap.NewDevelopment()

	return NewPool(cfg, orderRepo, reconciler, clock.NewFixed(testNow), logger), orderRepo, reconciler
}

var defaultPoolConfig = PoolConfig{
	Workers:      1,
	QueueSize:    10,
	ScanInterval: time.Hour,
	QueryAfter:   5 * time.Minute,
	BatchSize:    100,
}

func TestPool_ProcessOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("Resolved", func(t *testing.T) {
		pool, _, reconciler := newTestPool(t, defaultPoolConfig)

		reconciler.EXPECT().Resolve(mock.Anything, "7-1").Return(domain.ReconcileCompleted, nil).Once()

		pool.processOrder(ctx, "7-1")
	})

	t.Run("Still pending", func(t *testing.T) {
		pool, _, reconciler := newTestPool(t, defaultPoolConfig)

		reconciler.EXPECT().Resolve(mock.Anything, "7-1").Return(domain.ReconcileIgnored, nil).Once()

		pool.processOrder(ctx, "7-1")
	})

	t.Run("Provider unavailable", func(t *testing.T) {
		pool, _, reconciler := newTestPool(t, defaultPoolConfig)

		reconciler.EXPECT().Resolve(mock.Anything, "7-1").Return("", domain.ErrProviderUnavailable).Once()

		pool.processOrder(ctx, "7-1")
	})
}

func TestPool_ScanPendingOrders(t *testing.T) {
	ctx := context.Background()

	t.Run("Enqueues old pending orders", func(t *testing.T) {
		pool, orderRepo, _ := newTestPool(t, defaultPoolConfig)

		pendingOrders := []*domain.Order{
			{ID: "7-1", Status: domain.OrderStatusPending},
			{ID: "8-2", Status: domain.OrderStatusPending},
		}
		orderRepo.EXPECT().GetPendingOrders(mock.Anything, testNow.Add(-5*time.Minute), 100).Return(pendingOrders, nil).Once()

		pool.scanPendingOrders(ctx)

		require.Len(t, pool.queue, 2)
		assert.Equal(t, "7-1", <-pool.queue)
		assert.Equal(t, "8-2", <-pool.queue)
	})

	t.Run("Queued order is not enqueued twice", func(t *testing.T) {
		pool, orderRepo, _ := newTestPool(t, defaultPoolConfig)

		pendingOrders := []*domain.Order{{ID: "7-1", Status: domain.OrderStatusPending}}
		orderRepo.EXPECT().GetPendingOrders(mock.Anything, mock.Anything, 100).Return(pendingOrders, nil).Times(3)

		pool.scanPendingOrders(ctx)
		pool.scanPendingOrders(ctx)
		assert.Len(t, pool.queue, 1)

		<-pool.queue
		pool.release("7-1")
		pool.scanPendingOrders(ctx)
		assert.Len(t, pool.queue, 1)
	})

	t.Run("Full queue skips orders", func(t *testing.T) {
		cfg := defaultPoolConfig
		cfg.QueueSize = 1
		pool, orderRepo, _ := newTestPool(t, cfg)

		pendingOrders := []*domain.Order{
			{ID: "7-1", Status: domain.OrderStatusPending},
			{ID: "8-2", Status: domain.OrderStatusPending},
		}
		orderRepo.EXPECT().GetPendingOrders(mock.Anything, mock.Anything, 100).Return(pendingOrders, nil).Once()

		pool.scanPendingOrders(ctx)

		require.Len(t, pool.queue, 1)
		assert.Equal(t, "7-1", <-pool.queue)
		assert.True(t, pool.claim("8-2"))
	})

	t.Run("Storage error", func(t *testing.T) {
		pool, orderRepo, _ := newTestPool(t, defaultPoolConfig)

		orderRepo.EXPECT().GetPendingOrders(mock.Anything, mock.Anything, 100).Return(nil, errors.New("db error")).Once()

		pool.scanPendingOrders(ctx)
		assert.Empty(t, pool.queue)
	})
}

func TestPool_StartStop(t *testing.T) {
	cfg := defaultPoolConfig
	cfg.Workers = 2
	cfg.ScanInterval = 10 * time.Millisecond
	pool, orderRepo, reconciler := newTestPool(t, cfg)

	resolved := make(chan struct{})
	orderRepo.EXPECT().GetPendingOrders(mock.Anything, mock.Anything, 100).
		Return([]*domain.Order{{ID: "7-1", Status: domain.OrderStatusPending}}, nil).Once()
	orderRepo.EXPECT().GetPendingOrders(mock.Anything, mock.Anything, 100).
		Return(nil, nil).Maybe()
	reconciler.EXPECT().Resolve(mock.Anything, "7-1").
		Run(func(context.Context, string) { close(resolved) }).
		Return(domain.ReconcileCompleted, nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool.Start(ctx)

	select {
	case <-resolved:
	case <-time.After(2 * time.Second):
		t.Fatal("order was not resolved")
	}

	assert.NotPanics(t, func() {
		pool.Stop()
		pool.Stop()
	})
}
