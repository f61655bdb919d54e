package memory

import (
	"context"
	"testing"

	"github.com/avc/coin-payments/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountRepository_CreditBalance(t *testing.T) {
	ctx := context.Background()
	accounts := NewAccountRepository(NewStore())

	require.NoError(t, accounts.CreditBalance(ctx, 7, "7-1", 100))
	require.NoError(t, accounts.CreditBalance(ctx, 7, "7-2", 50))
	assert.ErrorIs(t, accounts.CreditBalance(ctx, 7, "7-1", 100), domain.ErrAlreadyCredited)

	balance, err := accounts.GetBalance(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(150), balance)

	balance, err = accounts.GetBalance(ctx, 8)
	require.NoError(t, err)
	assert.Zero(t, balance)
}

func TestAccountRepository_CreditBalance_InLock(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	orders := NewOrderRepository(store)
	accounts := NewAccountRepository(store)
	require.NoError(t, orders.CreateOrder(ctx, newPendingOrder("7-1", 7, testTime)))
	require.NoError(t, accounts.CreditBalance(ctx, 7, "7-1", 100))

	err := orders.WithOrderLock(ctx, "7-1", func(ctx context.Context, order *domain.Order) error {
		return accounts.CreditBalance(ctx, order.AccountID, order.ID, order.Units)
	})
	assert.ErrorIs(t, err, domain.ErrAlreadyCredited)

	balance, err := accounts.GetBalance(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(100), balance)
}
