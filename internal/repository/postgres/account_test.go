package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/avc/coin-payments/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountRepository_CreditBalance(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO account_credits`).
			WithArgs("7-1", int64(7), int64(100)).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec(`INSERT INTO accounts`).
			WithArgs(int64(7), int64(100)).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()

		err := repo.CreditBalance(ctx, 7, "7-1", 100)
		assert.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Already credited", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO account_credits`).
			WithArgs("7-1", int64(7), int64(100)).
			WillReturnError(&pgconn.PgError{Code: "23505"})
		mock.ExpectRollback()

		err := repo.CreditBalance(ctx, 7, "7-1", 100)
		assert.ErrorIs(t, err, domain.ErrAlreadyCredited)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Balance update error", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO account_credits`).
			WithArgs("7-1", int64(7), int64(100)).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec(`INSERT INTO accounts`).
			WithArgs(int64(7), int64(100)).
			WillReturnError(errors.New("database error"))
		mock.ExpectRollback()

		err := repo.CreditBalance(ctx, 7, "7-1", 100)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrAlreadyCredited)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Joins order lock transaction", func(t *testing.T) {
		orders := NewOrderRepository(mock)

		mock.ExpectBegin()
		mock.ExpectQuery(`FOR UPDATE`).
			WithArgs("7-1").
			WillReturnRows(pendingOrderRows(testTime))
		mock.ExpectExec(`INSERT INTO account_credits`).
			WithArgs("7-1", int64(7), int64(100)).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec(`INSERT INTO accounts`).
			WithArgs(int64(7), int64(100)).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec(`UPDATE payment_orders`).
			WithArgs(domain.OrderStatusCompleted, int64(42), domain.ResultCodeSuccess, "7-1", domain.OrderStatusPending).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()

		err := orders.WithOrderLock(ctx, "7-1", func(ctx context.Context, order *domain.Order) error {
			if err := repo.CreditBalance(ctx, order.AccountID, order.ID, order.Units); err != nil {
				return err
			}
			return orders.CompleteOrder(ctx, order.ID, 42)
		})
		assert.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAccountRepository_GetBalance(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`SELECT balance FROM accounts`).
			WithArgs(int64(7)).
			WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow(int64(300)))

		balance, err := repo.GetBalance(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, int64(300), balance)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unknown account", func(t *testing.T) {
		mock.ExpectQuery(`SELECT balance FROM accounts`).
			WithArgs(int64(8)).
			WillReturnError(pgx.ErrNoRows)

		balance, err := repo.GetBalance(ctx, 8)
		require.NoError(t, err)
		assert.Zero(t, balance)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
