package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/coin-payments/internal/domain"
	"github.com/jackc/pgx/v5"
)

// AccountRepository реализует domain.AccountRepository
type AccountRepository struct {
	db DBTX
}

// NewAccountRepository создает новый AccountRepository
func NewAccountRepository(db DBTX) *AccountRepository {
	return &AccountRepository{db: db}
}

// CreditBalance зачисляет монеты на счет.
// Зачисление по одному заказу возможно только один раз (account_credits.order_id уникален).
func (r *AccountRepository) CreditBalance(ctx context.Context, accountID int64, orderID string, units int64) error {
	return withTx(ctx, r.db, func(ctx context.Context) error {
		db := conn(ctx, r.db)

		_, err := db.Exec(ctx,
			`INSERT INTO account_credits (order_id, account_id, units)
			 VALUES ($1, $2, $3)`,
			orderID, accountID, units,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrAlreadyCredited
			}
			return fmt.Errorf("repository: failed to record credit for order %q: %w", orderID, err)
		}

		_, err = db.Exec(ctx,
			`INSERT INTO accounts (account_id, balance)
			 VALUES ($1, $2)
			 ON CONFLICT (account_id) DO UPDATE
			 SET balance = accounts.balance + EXCLUDED.balance, updated_at = NOW()`,
			accountID, units,
		)
		if err != nil {
			return fmt.Errorf("repository: failed to credit account %d: %w", accountID, err)
		}

		return nil
	})
}

// GetBalance возвращает баланс счета, 0 для неизвестного счета
func (r *AccountRepository) GetBalance(ctx context.Context, accountID int64) (int64, error) {
	var balance int64
	err := conn(ctx, r.db).QueryRow(ctx,
		`SELECT balance FROM accounts WHERE account_id = $1`,
		accountID,
	).Scan(&balance)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("repository: failed to get balance for account %d: %w", accountID, err)
	}

	return balance, nil
}
