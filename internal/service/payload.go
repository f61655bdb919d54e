package service

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/avc/coin-payments/internal/domain"
	"github.com/gowebpki/jcs"
)

// wirePayload форма extraData при разборе, указатели выявляют пропущенные поля
type wirePayload struct {
	AccountID *int64 `json:"accountId"`
	Units     *int64 `json:"units"`
}

// EncodePayload кодирует payload в base64 от канонического JSON (RFC 8785).
// Одинаковый payload всегда дает одинаковую строку.
func EncodePayload(p domain.PaymentPayload) (string, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("payload: failed to marshal: %w", err)
	}

	canonical, err := jcs.Transform(raw)
	if err != nil {
		return "", fmt.Errorf("payload: failed to canonicalize: %w", err)
	}

	return base64.StdEncoding.EncodeToString(canonical), nil
}

// DecodePayload разбирает extraData, вернувшийся от провайдера
func DecodePayload(extraData string) (*domain.PaymentPayload, error) {
	raw, err := base64.StdEncoding.DecodeString(extraData)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPayloadInvalid, err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var w wirePayload
	if err := dec.Decode(&w); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPayloadInvalid, err)
	}

	if w.AccountID == nil || w.Units == nil {
		return nil, fmt.Errorf("%w: missing fields", ErrPayloadInvalid)
	}

	return &domain.PaymentPayload{AccountID: *w.AccountID, Units: *w.Units}, nil
}
