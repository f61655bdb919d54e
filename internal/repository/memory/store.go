// Package memory хранит заказы, балансы и журнал сверки в памяти процесса.
// Используется без DATABASE_URI и в тестах конкурентной сверки.
package memory

import (
	"context"
	"sync"

	"github.com/avc/coin-payments/internal/domain"
)

// Store общее состояние трех репозиториев
type Store struct {
	mu       sync.RWMutex
	orders   map[string]*domain.Order
	balances map[int64]int64
	credits  map[string]struct{}
	events   []domain.AuditEvent

	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

// NewStore создает пустое хранилище
func NewStore() *Store {
	return &Store{
		orders:   make(map[string]*domain.Order),
		balances: make(map[int64]int64),
		credits:  make(map[string]struct{}),
		locks:    make(map[string]*sync.Mutex),
	}
}

// orderLock возвращает мьютекс заказа
func (s *Store) orderLock(orderID string) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()

	l, ok := s.locks[orderID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[orderID] = l
	}
	return l
}

type credit struct {
	accountID int64
	orderID   string
	units     int64
}

// memTx изменения, накопленные под блокировкой заказа.
// Применяются разом при успешном завершении fn, иначе отбрасываются.
type memTx struct {
	orders  map[string]*domain.Order
	credits []credit
}

type txKey struct{}

func txFromContext(ctx context.Context) *memTx {
	tx, _ := ctx.Value(txKey{}).(*memTx)
	return tx
}

// commit применяет изменения транзакции
func (s *Store) commit(tx *memTx) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range tx.credits {
		if _, ok := s.credits[c.orderID]; ok {
			return domain.ErrAlreadyCredited
		}
	}

	for _, c := range tx.credits {
		s.credits[c.orderID] = struct{}{}
		s.balances[c.accountID] += c.units
	}
	for id, order := range tx.orders {
		s.orders[id] = order
	}

	return nil
}

func copyOrder(o *domain.Order) *domain.Order {
	c := *o
	return &c
}
