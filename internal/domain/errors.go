package domain

import (
	"errors"
	"fmt"
)

// Ошибки заказов
var (
	ErrOrderExists    = errors.New("order already exists")
	ErrOrderNotFound  = errors.New("order not found")
	ErrOrderFinalized = errors.New("order already finalized")
	ErrInvalidUnits   = errors.New("invalid units")
	ErrInvalidAmount  = errors.New("invalid amount")
)

// Ошибки сверки уведомлений
var (
	ErrSignatureInvalid = errors.New("signature invalid")
	ErrAmountMismatch   = errors.New("notification does not match order")
	ErrCreditFailed     = errors.New("credit apply failed")
	ErrAlreadyCredited  = errors.New("order already credited")
)

// Ошибки провайдера
var (
	ErrProviderUnavailable = errors.New("payment provider unavailable")
	ErrProviderRejected    = errors.New("payment provider rejected request")
	ErrProviderResponse    = errors.New("malformed payment provider response")
)

// ProviderRejectedError отказ провайдера с ненулевым resultCode
type ProviderRejectedError struct {
	Code    int64
	Message string
}

func (e *ProviderRejectedError) Error() string {
	return fmt.Sprintf("payment provider rejected request: code %d: %s", e.Code, e.Message)
}

// Is позволяет сравнивать с ErrProviderRejected через errors.Is
func (e *ProviderRejectedError) Is(target error) bool {
	return target == ErrProviderRejected
}
