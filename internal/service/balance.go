package service

import (
	"context"
	"fmt"

	"github.com/avc/coin-payments/internal/domain"
)

// BalanceService предоставляет баланс монет
type BalanceService struct {
	accountRepo domain.AccountRepository
}

// NewBalanceService создает новый BalanceService
func NewBalanceService(accountRepo domain.AccountRepository) *BalanceService {
	return &BalanceService{
		accountRepo: accountRepo,
	}
}

// GetBalance получает баланс счета
func (s *BalanceService) GetBalance(ctx context.Context, accountID int64) (*domain.Balance, error) {
	current, err := s.accountRepo.GetBalance(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("balance service: failed to get balance: %w", err)
	}

	return &domain.Balance{AccountID: accountID, Current: current}, nil
}
