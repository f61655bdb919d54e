package memory

import (
	"context"

	"github.com/avc/coin-payments/internal/domain"
)

// AccountRepository реализует domain.AccountRepository в памяти
type AccountRepository struct {
	store *Store
}

// NewAccountRepository создает новый AccountRepository
func NewAccountRepository(store *Store) *AccountRepository {
	return &AccountRepository{store: store}
}

// CreditBalance зачисляет монеты, не более одного раза на заказ.
// Под блокировкой заказа зачисление применяется вместе с транзакцией.
func (r *AccountRepository) CreditBalance(ctx context.Context, accountID int64, orderID string, units int64) error {
	if tx := txFromContext(ctx); tx != nil {
		r.store.mu.RLock()
		_, credited := r.store.credits[orderID]
		r.store.mu.RUnlock()

		if credited {
			return domain.ErrAlreadyCredited
		}
		for _, c := range tx.credits {
			if c.orderID == orderID {
				return domain.ErrAlreadyCredited
			}
		}

		tx.credits = append(tx.credits, credit{accountID: accountID, orderID: orderID, units: units})
		return nil
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.credits[orderID]; ok {
		return domain.ErrAlreadyCredited
	}
	r.store.credits[orderID] = struct{}{}
	r.store.balances[accountID] += units
	return nil
}

// GetBalance возвращает баланс счета, 0 для неизвестного счета
func (r *AccountRepository) GetBalance(ctx context.Context, accountID int64) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.store.balances[accountID], nil
}
