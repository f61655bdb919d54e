package memory

import (
	"context"

	"github.com/avc/coin-payments/internal/domain"
)

// AuditRepository реализует domain.AuditRepository в памяти
type AuditRepository struct {
	store *Store
}

// NewAuditRepository создает новый AuditRepository
func NewAuditRepository(store *Store) *AuditRepository {
	return &AuditRepository{store: store}
}

// RecordEvent добавляет событие в журнал сразу, независимо от транзакции заказа
func (r *AuditRepository) RecordEvent(ctx context.Context, event *domain.AuditEvent) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.events = append(r.store.events, *event)
	return nil
}

// Events возвращает события заказа в порядке записи
func (r *AuditRepository) Events(orderID string) []domain.AuditEvent {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var events []domain.AuditEvent
	for _, e := range r.store.events {
		if e.OrderID == orderID {
			events = append(events, e)
		}
	}
	return events
}
