package app

import (
	"context"
	"fmt"

	"github.com/avc/coin-payments/internal/domain"
	"github.com/avc/coin-payments/internal/handlers"
	"github.com/avc/coin-payments/internal/repository/memory"
	"github.com/avc/coin-payments/internal/repository/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// storage репозитории выбранного хранилища
type storage struct {
	orders   domain.OrderRepository
	accounts domain.AccountRepository
	audit    domain.AuditRepository
	// pinger nil для хранилища в памяти
	pinger handlers.Pinger
	close  func()
}

// initStorage подключает PostgreSQL, а при пустом databaseURI хранит данные в памяти
func initStorage(ctx context.Context, databaseURI string, logger *zap.Logger) (*storage, error) {
	if databaseURI == "" {
		logger.Warn("DATABASE_URI is empty, using in-memory storage; data is lost on restart")

		store := memory.NewStore()
		return &storage{
			orders:   memory.NewOrderRepository(store),
			accounts: memory.NewAccountRepository(store),
			audit:    memory.NewAuditRepository(store),
			close:    func() {},
		}, nil
	}

	dbPool, err := initDatabase(ctx, databaseURI, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("connected to database")

	return &storage{
		orders:   postgres.NewOrderRepository(dbPool),
		accounts: postgres.NewAccountRepository(dbPool),
		audit:    postgres.NewAuditRepository(dbPool),
		pinger:   dbPool,
		close:    dbPool.Close,
	}, nil
}

// initDatabase создает пул соединений с базой данных и выполняет миграции
func initDatabase(ctx context.Context, databaseURI string, logger *zap.Logger) (*pgxpool.Pool, error) {
	dbPool, err := pgxpool.New(ctx, databaseURI)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := postgres.RunMigrations(ctx, dbPool, logger); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	logger.Info("migrations completed successfully")

	return dbPool, nil
}
