package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/avc/coin-payments/internal/clock"
	"github.com/avc/coin-payments/internal/domain"
	"go.uber.org/zap"
)

// maxDescriptionLength ограничение длины orderInfo
const maxDescriptionLength = 255

// PaymentConfig правила ценообразования
type PaymentConfig struct {
	UnitPrice int64 // цена одной монеты, 0 означает свободную цену
	MinAmount int64
	MaxAmount int64
}

// PaymentService реализует domain.PaymentService
type PaymentService struct {
	orderRepo domain.OrderRepository
	provider  domain.PaymentProvider
	ids       *OrderIDGenerator
	cfg       PaymentConfig
	clock     clock.Clock
	logger    *zap.Logger
}

// NewPaymentService создает новый PaymentService
func NewPaymentService(
	orderRepo domain.OrderRepository,
	provider domain.PaymentProvider,
	ids *OrderIDGenerator,
	cfg PaymentConfig,
	clk clock.Clock,
	logger *zap.Logger,
) *PaymentService {
	return &PaymentService{
		orderRepo: orderRepo,
		provider:  provider,
		ids:       ids,
		cfg:       cfg,
		clock:     clk,
		logger:    logger,
	}
}

// CreatePayment создает платеж у провайдера и регистрирует заказ в ожидании.
// Заказ сохраняется только после успешного ответа провайдера.
func (s *PaymentService) CreatePayment(ctx context.Context, in domain.CreatePaymentInput) (*domain.CreatePaymentResult, error) {
	amount, err := s.price(in.Units, in.Amount)
	if err != nil {
		return nil, err
	}

	orderID := s.ids.OrderID(in.AccountID)
	extraData, err := EncodePayload(domain.PaymentPayload{AccountID: in.AccountID, Units: in.Units})
	if err != nil {
		return nil, fmt.Errorf("payment service: order %s: %w", orderID, err)
	}

	intent := &domain.PaymentIntent{
		OrderID:   orderID,
		RequestID: s.ids.RequestID(),
		Amount:    amount,
		OrderInfo: s.describe(in.Description, in.Units),
		ExtraData: extraData,
	}

	resp, err := s.provider.CreatePayment(ctx, intent)
	if err != nil {
		return nil, fmt.Errorf("payment service: failed to create payment for order %s: %w", orderID, err)
	}

	if resp.ResultCode != domain.ResultCodeSuccess {
		s.logger.Warn("payment rejected by provider",
			zap.String("order_id", orderID),
			zap.Int64("account_id", in.AccountID),
			zap.Int64("result_code", resp.ResultCode),
			zap.String("message", resp.Message),
		)
		return nil, &domain.ProviderRejectedError{Code: resp.ResultCode, Message: resp.Message}
	}

	now := s.clock.Now()
	order := &domain.Order{
		ID:          orderID,
		RequestID:   intent.RequestID,
		AccountID:   in.AccountID,
		Units:       in.Units,
		Amount:      amount,
		Description: intent.OrderInfo,
		Status:      domain.OrderStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.orderRepo.CreateOrder(ctx, order); err != nil {
		s.logger.Error("payment created at provider but order not stored",
			zap.String("order_id", orderID),
			zap.Int64("account_id", in.AccountID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("payment service: failed to store order %s: %w", orderID, err)
	}

	s.logger.Info("payment order created",
		zap.String("order_id", orderID),
		zap.Int64("account_id", in.AccountID),
		zap.Int64("units", in.Units),
		zap.Int64("amount", amount),
	)

	return &domain.CreatePaymentResult{OrderID: orderID, PayURL: resp.PayURL}, nil
}

// price проверяет количество и вычисляет сумму заказа
func (s *PaymentService) price(units, amount int64) (int64, error) {
	if units <= 0 {
		return 0, domain.ErrInvalidUnits
	}

	if s.cfg.UnitPrice > 0 {
		if units > s.cfg.MaxAmount/s.cfg.UnitPrice {
			return 0, domain.ErrInvalidUnits
		}
		expected := units * s.cfg.UnitPrice
		if amount == 0 {
			amount = expected
		}
		// Покупатель не выбирает цену сам
		if amount != expected {
			return 0, domain.ErrInvalidAmount
		}
	}

	if amount <= 0 || amount < s.cfg.MinAmount || amount > s.cfg.MaxAmount {
		return 0, domain.ErrInvalidAmount
	}

	return amount, nil
}

func (s *PaymentService) describe(description string, units int64) string {
	description = strings.TrimSpace(description)
	if description == "" {
		return fmt.Sprintf("Buy %d coins", units)
	}
	if utf8.RuneCountInString(description) > maxDescriptionLength {
		description = string([]rune(description)[:maxDescriptionLength])
	}
	return description
}
