package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"

	"github.com/avc/coin-payments/internal/domain"
)

var errMalformedNotification = errors.New("malformed notification")

// maxNotificationSize ограничение тела IPN
const maxNotificationSize = 64 << 10

// ipnBody тело IPN. Указатели отличают отсутствующее поле от нулевого значения.
type ipnBody struct {
	PartnerCode  *string `json:"partnerCode"`
	OrderID      *string `json:"orderId"`
	RequestID    *string `json:"requestId"`
	Amount       *int64  `json:"amount"`
	OrderInfo    *string `json:"orderInfo"`
	OrderType    *string `json:"orderType"`
	TransID      *int64  `json:"transId"`
	ResultCode   *int64  `json:"resultCode"`
	Message      *string `json:"message"`
	PayType      *string `json:"payType"`
	ResponseTime *int64  `json:"responseTime"`
	ExtraData    *string `json:"extraData"`
	Signature    *string `json:"signature"`
}

// notificationFromJSON разбирает IPN, все подписанные поля обязательны
func notificationFromJSON(r io.Reader) (*domain.PaymentNotification, error) {
	var body ipnBody
	if err := json.NewDecoder(io.LimitReader(r, maxNotificationSize)).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %v", errMalformedNotification, err)
	}

	missing := ""
	switch {
	case body.PartnerCode == nil:
		missing = "partnerCode"
	case body.OrderID == nil:
		missing = "orderId"
	case body.RequestID == nil:
		missing = "requestId"
	case body.Amount == nil:
		missing = "amount"
	case body.OrderInfo == nil:
		missing = "orderInfo"
	case body.OrderType == nil:
		missing = "orderType"
	case body.TransID == nil:
		missing = "transId"
	case body.ResultCode == nil:
		missing = "resultCode"
	case body.Message == nil:
		missing = "message"
	case body.PayType == nil:
		missing = "payType"
	case body.ResponseTime == nil:
		missing = "responseTime"
	case body.ExtraData == nil:
		missing = "extraData"
	case body.Signature == nil:
		missing = "signature"
	}
	if missing != "" {
		return nil, fmt.Errorf("%w: missing %s", errMalformedNotification, missing)
	}

	return &domain.PaymentNotification{
		PartnerCode:  *body.PartnerCode,
		OrderID:      *body.OrderID,
		RequestID:    *body.RequestID,
		Amount:       *body.Amount,
		OrderInfo:    *body.OrderInfo,
		OrderType:    *body.OrderType,
		TransID:      *body.TransID,
		ResultCode:   *body.ResultCode,
		Message:      *body.Message,
		PayType:      *body.PayType,
		ResponseTime: *body.ResponseTime,
		ExtraData:    *body.ExtraData,
		Signature:    *body.Signature,
	}, nil
}

// notificationFromQuery разбирает параметры возврата пользователя из кошелька
func notificationFromQuery(q url.Values) (*domain.PaymentNotification, error) {
	p := queryParser{values: q}

	n := &domain.PaymentNotification{
		PartnerCode:  p.text("partnerCode"),
		OrderID:      p.text("orderId"),
		RequestID:    p.text("requestId"),
		Amount:       p.num("amount"),
		OrderInfo:    p.text("orderInfo"),
		OrderType:    p.text("orderType"),
		TransID:      p.num("transId"),
		ResultCode:   p.num("resultCode"),
		Message:      p.text("message"),
		PayType:      p.text("payType"),
		ResponseTime: p.num("responseTime"),
		ExtraData:    p.text("extraData"),
		Signature:    p.text("signature"),
	}
	if p.err != nil {
		return nil, p.err
	}

	return n, nil
}

// queryParser запоминает первую ошибку разбора
type queryParser struct {
	values url.Values
	err    error
}

func (p *queryParser) text(key string) string {
	if p.err != nil {
		return ""
	}
	if !p.values.Has(key) {
		p.err = fmt.Errorf("%w: missing %s", errMalformedNotification, key)
		return ""
	}
	return p.values.Get(key)
}

func (p *queryParser) num(key string) int64 {
	s := p.text(key)
	if p.err != nil {
		return 0
	}

	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		p.err = fmt.Errorf("%w: %s is not an integer", errMalformedNotification, key)
		return 0
	}
	return v
}
