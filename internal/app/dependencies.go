package app

import (
	"fmt"

	"github.com/avc/coin-payments/internal/clock"
	"github.com/avc/coin-payments/internal/config"
	"github.com/avc/coin-payments/internal/domain"
	"github.com/avc/coin-payments/internal/handlers"
	"github.com/avc/coin-payments/internal/service"
	"github.com/avc/coin-payments/internal/utils/jwt"
	"github.com/avc/coin-payments/internal/worker"
	"go.uber.org/zap"
)

// services содержит все сервисы приложения
type services struct {
	payments   domain.PaymentService
	reconciler domain.ReconcileService
	balance    domain.BalanceService
}

// handlerSet содержит все хендлеры приложения
type handlerSet struct {
	payments *handlers.PaymentsHandler
	orders   *handlers.OrdersHandler
	balance  *handlers.BalanceHandler
	health   *handlers.HealthHandler
}

// dependencies содержит все зависимости приложения
type dependencies struct {
	services   *services
	handlers   *handlerSet
	jwtManager *jwt.Manager
	workerPool *worker.Pool
}

// initDependencies создает все зависимости приложения
func initDependencies(cfg *config.Config, store *storage, logger *zap.Logger) (*dependencies, error) {
	clk := clock.NewSystem()

	// Создание утилит
	jwtManager := jwt.NewManager(cfg.JWTSecret, cfg.JWTTokenTTL)
	ids, err := service.NewOrderIDGenerator(cfg.OrderNodeID)
	if err != nil {
		return nil, fmt.Errorf("failed to init order id generator: %w", err)
	}

	// Создание сервисов
	momoClient := service.NewMoMoClient(service.MoMoConfig{
		Endpoint:     cfg.MoMo.Endpoint,
		PartnerCode:  cfg.MoMo.PartnerCode,
		AccessKey:    cfg.MoMo.AccessKey,
		SecretKey:    cfg.MoMo.SecretKey,
		RedirectURL:  cfg.MoMo.RedirectURL,
		IPNURL:       cfg.MoMo.IPNURL,
		RequestType:  cfg.MoMo.RequestType,
		Lang:         cfg.MoMo.Lang,
		Timeout:      cfg.MoMo.Timeout,
		QueryRetries: cfg.MoMo.QueryRetries,
	}, logger)

	paymentConfig := service.PaymentConfig{
		UnitPrice: cfg.UnitPrice,
		MinAmount: cfg.MinAmount,
		MaxAmount: cfg.MaxAmount,
	}
	svcs := &services{
		payments:   service.NewPaymentService(store.orders, momoClient, ids, paymentConfig, clk, logger),
		reconciler: service.NewReconciler(store.orders, store.accounts, store.audit, momoClient, clk, logger),
		balance:    service.NewBalanceService(store.accounts),
	}

	// Создание handlers
	hdlrs := &handlerSet{
		payments: handlers.NewPaymentsHandler(svcs.payments, svcs.reconciler, cfg.PaymentResultURL, logger),
		orders:   handlers.NewOrdersHandler(svcs.payments, logger),
		balance:  handlers.NewBalanceHandler(svcs.balance, logger),
		health:   handlers.NewHealthHandler(store.pinger, logger),
	}

	// Создание worker pool фоновой сверки
	workerPoolConfig := worker.PoolConfig{
		Workers:      cfg.Sweep.Workers,
		QueueSize:    cfg.Sweep.QueueSize,
		ScanInterval: cfg.Sweep.Interval,
		QueryAfter:   cfg.Sweep.QueryAfter,
		BatchSize:    cfg.Sweep.BatchSize,
	}
	workerPool := worker.NewPool(workerPoolConfig, store.orders, svcs.reconciler, clk, logger)

	return &dependencies{
		services:   svcs,
		handlers:   hdlrs,
		jwtManager: jwtManager,
		workerPool: workerPool,
	}, nil
}
