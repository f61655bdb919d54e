package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/avc/coin-payments/internal/config"
	"github.com/avc/coin-payments/internal/worker"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App представляет приложение
type App struct {
	config     *config.Config
	logger     *zap.Logger
	storage    *storage
	router     *chi.Mux
	workerPool *worker.Pool
	server     *http.Server
}

// NewApp создает новое приложение
func NewApp() (*App, error) {
	ctx := context.Background()

	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализация логгера
	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	// Инициализация хранилища (PostgreSQL или память)
	store, err := initStorage(ctx, cfg.DatabaseURI, logger)
	if err != nil {
		return nil, err
	}

	// Инициализация зависимостей
	deps, err := initDependencies(cfg, store, logger)
	if err != nil {
		store.close()
		return nil, err
	}

	// Настройка роутера
	router := setupRouter(deps.handlers, deps.jwtManager, logger)

	// Создание HTTP сервера
	server := createServer(cfg.RunAddress, router)

	return &App{
		config:     cfg,
		logger:     logger,
		storage:    store,
		router:     router,
		workerPool: deps.workerPool,
		server:     server,
	}, nil
}

// Run запускает приложение
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a.logger.Info("starting payments service",
		zap.String("address", a.config.RunAddress),
		zap.String("momo_endpoint", a.config.MoMo.Endpoint),
		zap.String("partner_code", a.config.MoMo.PartnerCode),
		zap.Int64("unit_price", a.config.UnitPrice),
	)

	// Запуск фоновой сверки
	a.workerPool.Start(ctx)
	a.logger.Info("reconciliation sweep started",
		zap.Int("workers", a.config.Sweep.Workers),
		zap.Duration("interval", a.config.Sweep.Interval),
		zap.Duration("query_after", a.config.Sweep.QueryAfter),
	)

	// Запуск HTTP сервера и ожидание сигнала завершения
	serverErr := a.runServer()

	// Graceful shutdown
	a.shutdown(cancel)

	return serverErr
}
