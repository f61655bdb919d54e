package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/coin-payments/internal/domain"
)

// GetOrders получает платежные заказы счета
func (s *PaymentService) GetOrders(ctx context.Context, accountID int64) ([]*domain.Order, error) {
	orders, err := s.orderRepo.GetOrdersByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("payment service: failed to get orders: %w", err)
	}
	return orders, nil
}

// GetOrder получает заказ счета. Чужой заказ неотличим от несуществующего.
func (s *PaymentService) GetOrder(ctx context.Context, accountID int64, orderID string) (*domain.Order, error) {
	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("payment service: failed to get order: %w", err)
	}

	if order.AccountID != accountID {
		return nil, domain.ErrOrderNotFound
	}

	return order, nil
}
