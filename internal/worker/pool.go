package worker

import (
	"context"
	"sync"
	"time"

	"github.com/avc/coin-payments/internal/clock"
	"github.com/avc/coin-payments/internal/domain"
	"go.uber.org/zap"
)

// PoolConfig параметры фоновой сверки
type PoolConfig struct {
	Workers      int
	QueueSize    int
	ScanInterval time.Duration
	// QueryAfter возраст заказа, после которого его статус запрашивается у провайдера
	QueryAfter time.Duration
	BatchSize  int
}

// Pool представляет пул воркеров, доводящих зависшие заказы до конечного состояния
type Pool struct {
	cfg        PoolConfig
	queue      chan string
	orderRepo  domain.OrderRepository
	reconciler domain.ReconcileService
	clock      clock.Clock
	logger     *zap.Logger

	wg        sync.WaitGroup
	scannerWG sync.WaitGroup
	stop      chan struct{}
	stopOnce  sync.Once

	mu     sync.Mutex
	queued map[string]struct{}
}

// NewPool создает новый worker pool
func NewPool(
	cfg PoolConfig,
	orderRepo domain.OrderRepository,
	reconciler domain.ReconcileService,
	clk clock.Clock,
	logger *zap.Logger,
) *Pool {
	return &Pool{
		cfg:        cfg,
		queue:      make(chan string, cfg.QueueSize),
		orderRepo:  orderRepo,
		reconciler: reconciler,
		clock:      clk,
		logger:     logger,
		stop:       make(chan struct{}),
		queued:     make(map[string]struct{}),
	}
}

// Start запускает worker pool
func (p *Pool) Start(ctx context.Context) {
	// Запускаем воркеры
	for i := 0; i < p.cfg.Workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}

	// Запускаем сканер pending заказов
	p.scannerWG.Add(1)
	go p.scanner(ctx)
}

// Stop останавливает worker pool.
// Очередь закрывается только после остановки сканера.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		close(p.stop)
		p.scannerWG.Wait()
		close(p.queue)
		p.wg.Wait()
	})
}

// worker обрабатывает заказы из очереди
func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	p.logger.Info("worker started", zap.Int("worker_id", id))

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("worker stopping", zap.Int("worker_id", id))
			return
		case orderID, ok := <-p.queue:
			if !ok {
				return
			}
			p.processOrder(ctx, orderID)
			p.release(orderID)
		}
	}
}

// scanner периодически сканирует pending заказы
func (p *Pool) scanner(ctx context.Context) {
	defer p.scannerWG.Done()

	ticker := time.NewTicker(p.cfg.ScanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("scanner stopping")
			return
		case <-p.stop:
			p.logger.Info("scanner stopping")
			return
		case <-ticker.C:
			p.scanPendingOrders(ctx)
		}
	}
}

// scanPendingOrders отправляет в очередь заказы, ожидающие дольше QueryAfter
func (p *Pool) scanPendingOrders(ctx context.Context) {
	createdBefore := p.clock.Now().Add(-p.cfg.QueryAfter)

	orders, err := p.orderRepo.GetPendingOrders(ctx, createdBefore, p.cfg.BatchSize)
	if err != nil {
		p.logger.Error("failed to get pending orders", zap.Error(err))
		return
	}

	for _, order := range orders {
		if !p.claim(order.ID) {
			continue
		}

		select {
		case p.queue <- order.ID:
			// Успешно добавлено в очередь
		case <-ctx.Done():
			p.release(order.ID)
			return
		default:
			// Очередь заполнена, пропускаем до следующего сканирования
			p.release(order.ID)
			p.logger.Warn("queue is full, skipping order", zap.String("order_id", order.ID))
		}
	}
}

// claim отмечает заказ как поставленный в очередь, false если он уже там
func (p *Pool) claim(orderID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.queued[orderID]; ok {
		return false
	}
	p.queued[orderID] = struct{}{}
	return true
}

func (p *Pool) release(orderID string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	delete(p.queued, orderID)
}

// processOrder сверяет один заказ
func (p *Pool) processOrder(ctx context.Context, orderID string) {
	p.logger.Debug("resolving order", zap.String("order_id", orderID))

	outcome, err := p.reconciler.Resolve(ctx, orderID)
	if err != nil {
		p.logger.Error("failed to resolve order",
			zap.String("order_id", orderID),
			zap.Error(err),
		)
		return
	}

	if outcome == domain.ReconcileIgnored {
		p.logger.Debug("order still pending", zap.String("order_id", orderID))
		return
	}

	p.logger.Info("order resolved",
		zap.String("order_id", orderID),
		zap.String("outcome", string(outcome)),
	)
}
