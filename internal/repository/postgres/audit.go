package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/avc/coin-payments/internal/domain"
	"github.com/google/uuid"
	"github.com/gowebpki/jcs"
)

// AuditRepository реализует domain.AuditRepository
type AuditRepository struct {
	db DBTX
}

// NewAuditRepository создает новый AuditRepository
func NewAuditRepository(db DBTX) *AuditRepository {
	return &AuditRepository{db: db}
}

// RecordEvent сохраняет событие сверки с каноническим JSON (RFC 8785).
// Запись идет мимо транзакции из ctx, чтобы событие пережило откат.
func (r *AuditRepository) RecordEvent(ctx context.Context, event *domain.AuditEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("repository: failed to marshal audit event: %w", err)
	}

	canonical, err := jcs.Transform(payload)
	if err != nil {
		return fmt.Errorf("repository: failed to canonicalize audit event: %w", err)
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO payment_events (event_id, order_id, channel, outcome, payload_json, payload_canonical, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		uuid.New(), event.OrderID, string(event.Channel), event.Outcome, string(canonical), string(canonical), event.RecordedAt,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to record audit event for order %q: %w", event.OrderID, err)
	}

	return nil
}
