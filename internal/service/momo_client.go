package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/avc/coin-payments/internal/domain"
	"github.com/avc/coin-payments/internal/utils/signature"
	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
)

// maxResponseSize ограничение на размер ответа провайдера
const maxResponseSize = 1 << 20

// MoMoConfig параметры подключения к шлюзу MoMo
type MoMoConfig struct {
	Endpoint     string
	PartnerCode  string
	AccessKey    string
	SecretKey    string
	RedirectURL  string
	IPNURL       string
	RequestType  string
	Lang         string
	Timeout      time.Duration
	QueryRetries int
}

// MoMoClient реализует domain.PaymentProvider для шлюза MoMo v2
type MoMoClient struct {
	cfg         MoMoConfig
	signer      *signature.Signer
	httpClient  *http.Client
	queryClient *retryablehttp.Client
	logger      *zap.Logger
}

// NewMoMoClient создает клиент MoMo.
// Создание платежа не повторяется, запрос статуса повторяется до QueryRetries раз.
func NewMoMoClient(cfg MoMoConfig, logger *zap.Logger) *MoMoClient {
	queryClient := retryablehttp.NewClient()
	queryClient.RetryMax = cfg.QueryRetries
	queryClient.RetryWaitMin = 500 * time.Millisecond
	queryClient.RetryWaitMax = 5 * time.Second
	queryClient.HTTPClient.Timeout = cfg.Timeout
	queryClient.Logger = &retryLogger{logger: logger.Sugar()}

	return &MoMoClient{
		cfg:         cfg,
		signer:      signature.NewSigner(cfg.SecretKey),
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		queryClient: queryClient,
		logger:      logger,
	}
}

// createRequest тело запроса создания платежа
type createRequest struct {
	PartnerCode string `json:"partnerCode"`
	AccessKey   string `json:"accessKey"`
	RequestID   string `json:"requestId"`
	Amount      int64  `json:"amount"`
	OrderID     string `json:"orderId"`
	OrderInfo   string `json:"orderInfo"`
	RedirectURL string `json:"redirectUrl"`
	IPNURL      string `json:"ipnUrl"`
	RequestType string `json:"requestType"`
	ExtraData   string `json:"extraData"`
	Lang        string `json:"lang"`
	Signature   string `json:"signature"`
}

// createResponse ответ на создание платежа
type createResponse struct {
	PartnerCode  *string `json:"partnerCode"`
	OrderID      *string `json:"orderId"`
	RequestID    *string `json:"requestId"`
	Amount       *int64  `json:"amount"`
	ResponseTime *int64  `json:"responseTime"`
	Message      *string `json:"message"`
	ResultCode   *int64  `json:"resultCode"`
	PayURL       *string `json:"payUrl"`
	Deeplink     *string `json:"deeplink"`
	QRCodeURL    *string `json:"qrCodeUrl"`
}

// queryRequest тело запроса статуса транзакции
type queryRequest struct {
	PartnerCode string `json:"partnerCode"`
	RequestID   string `json:"requestId"`
	OrderID     string `json:"orderId"`
	Lang        string `json:"lang"`
	Signature   string `json:"signature"`
}

// queryResponse ответ на запрос статуса
type queryResponse struct {
	PartnerCode  *string `json:"partnerCode"`
	OrderID      *string `json:"orderId"`
	RequestID    *string `json:"requestId"`
	ExtraData    *string `json:"extraData"`
	Amount       *int64  `json:"amount"`
	TransID      *int64  `json:"transId"`
	PayType      *string `json:"payType"`
	ResultCode   *int64  `json:"resultCode"`
	Message      *string `json:"message"`
	ResponseTime *int64  `json:"responseTime"`
}

// CreatePayment отправляет подписанный запрос на создание платежа
func (c *MoMoClient) CreatePayment(ctx context.Context, intent *domain.PaymentIntent) (*domain.PaymentResponse, error) {
	req := createRequest{
		PartnerCode: c.cfg.PartnerCode,
		AccessKey:   c.cfg.AccessKey,
		RequestID:   intent.RequestID,
		Amount:      intent.Amount,
		OrderID:     intent.OrderID,
		OrderInfo:   intent.OrderInfo,
		RedirectURL: c.cfg.RedirectURL,
		IPNURL:      c.cfg.IPNURL,
		RequestType: c.cfg.RequestType,
		ExtraData:   intent.ExtraData,
		Lang:        c.cfg.Lang,
	}
	req.Signature = c.signer.Sign(c.createCanonical(&req))

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("momo client: failed to marshal create request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url("create"), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("momo client: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("momo client: create %s: %w: %v", intent.OrderID, domain.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	var wire createResponse
	if err := decodeResponse(resp, &wire); err != nil {
		return nil, fmt.Errorf("momo client: create %s: %w", intent.OrderID, err)
	}

	if wire.ResultCode == nil {
		return nil, fmt.Errorf("momo client: create %s: %w: missing resultCode", intent.OrderID, domain.ErrProviderResponse)
	}

	out := &domain.PaymentResponse{
		ResultCode:   *wire.ResultCode,
		PartnerCode:  deref(wire.PartnerCode),
		OrderID:      deref(wire.OrderID),
		RequestID:    deref(wire.RequestID),
		Message:      deref(wire.Message),
		PayURL:       deref(wire.PayURL),
		Deeplink:     deref(wire.Deeplink),
		QRCodeURL:    deref(wire.QRCodeURL),
		ResponseTime: derefInt(wire.ResponseTime),
		Amount:       derefInt(wire.Amount),
	}

	if out.ResultCode != domain.ResultCodeSuccess {
		return out, nil
	}

	// Успешный ответ обязан относиться к нашему заказу и содержать ссылку на оплату
	switch {
	case wire.OrderID == nil || *wire.OrderID != intent.OrderID:
		return nil, fmt.Errorf("momo client: create %s: %w: orderId mismatch", intent.OrderID, domain.ErrProviderResponse)
	case wire.Amount == nil || *wire.Amount != intent.Amount:
		return nil, fmt.Errorf("momo client: create %s: %w: amount mismatch", intent.OrderID, domain.ErrProviderResponse)
	case out.PayURL == "":
		return nil, fmt.Errorf("momo client: create %s: %w: missing payUrl", intent.OrderID, domain.ErrProviderResponse)
	}

	return out, nil
}

// QueryPayment запрашивает текущий статус транзакции по заказу
func (c *MoMoClient) QueryPayment(ctx context.Context, orderID string) (*domain.PaymentStatus, error) {
	req := queryRequest{
		PartnerCode: c.cfg.PartnerCode,
		RequestID:   newRequestID(),
		OrderID:     orderID,
		Lang:        c.cfg.Lang,
	}
	req.Signature = c.signer.Sign(signature.Canonical(
		signature.Field{Key: "accessKey", Value: c.cfg.AccessKey},
		signature.Field{Key: "orderId", Value: req.OrderID},
		signature.Field{Key: "partnerCode", Value: req.PartnerCode},
		signature.Field{Key: "requestId", Value: req.RequestID},
	))

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("momo client: failed to marshal query request: %w", err)
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.url("query"), body)
	if err != nil {
		return nil, fmt.Errorf("momo client: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.queryClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("momo client: query %s: %w: %v", orderID, domain.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	var wire queryResponse
	if err := decodeResponse(resp, &wire); err != nil {
		return nil, fmt.Errorf("momo client: query %s: %w", orderID, err)
	}

	if wire.ResultCode == nil {
		return nil, fmt.Errorf("momo client: query %s: %w: missing resultCode", orderID, domain.ErrProviderResponse)
	}
	if wire.OrderID == nil || *wire.OrderID != orderID {
		return nil, fmt.Errorf("momo client: query %s: %w: orderId mismatch", orderID, domain.ErrProviderResponse)
	}
	if *wire.ResultCode == domain.ResultCodeSuccess && (wire.Amount == nil || wire.TransID == nil) {
		return nil, fmt.Errorf("momo client: query %s: %w: missing amount or transId", orderID, domain.ErrProviderResponse)
	}

	return &domain.PaymentStatus{
		PartnerCode:  deref(wire.PartnerCode),
		OrderID:      *wire.OrderID,
		RequestID:    deref(wire.RequestID),
		ExtraData:    deref(wire.ExtraData),
		Amount:       derefInt(wire.Amount),
		TransID:      derefInt(wire.TransID),
		PayType:      deref(wire.PayType),
		ResultCode:   *wire.ResultCode,
		Message:      deref(wire.Message),
		ResponseTime: derefInt(wire.ResponseTime),
	}, nil
}

// VerifyNotification проверяет подпись уведомления о результате оплаты.
// accessKey и partnerCode берутся из конфигурации, а не из уведомления.
func (c *MoMoClient) VerifyNotification(n *domain.PaymentNotification) bool {
	if n == nil || n.OrderID == "" || n.Signature == "" {
		return false
	}
	if n.PartnerCode != c.cfg.PartnerCode {
		return false
	}
	return c.signer.Verify(c.notificationCanonical(n), n.Signature)
}

// SignNotification подписывает уведомление тем же ключом, что и MoMo.
// Используется тестами и локальной эмуляцией шлюза.
func (c *MoMoClient) SignNotification(n *domain.PaymentNotification) string {
	return c.signer.Sign(c.notificationCanonical(n))
}

func (c *MoMoClient) createCanonical(r *createRequest) string {
	return signature.Canonical(
		signature.Field{Key: "accessKey", Value: c.cfg.AccessKey},
		signature.Field{Key: "amount", Value: strconv.FormatInt(r.Amount, 10)},
		signature.Field{Key: "extraData", Value: r.ExtraData},
		signature.Field{Key: "ipnUrl", Value: r.IPNURL},
		signature.Field{Key: "orderId", Value: r.OrderID},
		signature.Field{Key: "orderInfo", Value: r.OrderInfo},
		signature.Field{Key: "partnerCode", Value: r.PartnerCode},
		signature.Field{Key: "redirectUrl", Value: r.RedirectURL},
		signature.Field{Key: "requestId", Value: r.RequestID},
		signature.Field{Key: "requestType", Value: r.RequestType},
	)
}

func (c *MoMoClient) notificationCanonical(n *domain.PaymentNotification) string {
	return signature.Canonical(
		signature.Field{Key: "accessKey", Value: c.cfg.AccessKey},
		signature.Field{Key: "amount", Value: strconv.FormatInt(n.Amount, 10)},
		signature.Field{Key: "extraData", Value: n.ExtraData},
		signature.Field{Key: "message", Value: n.Message},
		signature.Field{Key: "orderId", Value: n.OrderID},
		signature.Field{Key: "orderInfo", Value: n.OrderInfo},
		signature.Field{Key: "orderType", Value: n.OrderType},
		signature.Field{Key: "partnerCode", Value: c.cfg.PartnerCode},
		signature.Field{Key: "payType", Value: n.PayType},
		signature.Field{Key: "requestId", Value: n.RequestID},
		signature.Field{Key: "responseTime", Value: strconv.FormatInt(n.ResponseTime, 10)},
		signature.Field{Key: "resultCode", Value: strconv.FormatInt(n.ResultCode, 10)},
		signature.Field{Key: "transId", Value: strconv.FormatInt(n.TransID, 10)},
	)
}

func (c *MoMoClient) url(path string) string {
	return strings.TrimRight(c.cfg.Endpoint, "/") + "/" + path
}

// decodeResponse разбирает JSON ответ провайдера.
// MoMo отвечает JSON и при отказе (4xx), поэтому тело разбирается при любом статусе.
func decodeResponse(resp *http.Response, v interface{}) error {
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("%w: failed to read body: %v", domain.ErrProviderUnavailable, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		if resp.StatusCode >= http.StatusInternalServerError {
			return fmt.Errorf("%w: unexpected status code: %d", domain.ErrProviderUnavailable, resp.StatusCode)
		}
		return fmt.Errorf("%w: status %d: %v", domain.ErrProviderResponse, resp.StatusCode, err)
	}

	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}

// retryLogger направляет журнал retryablehttp в zap
type retryLogger struct {
	logger *zap.SugaredLogger
}

func (l *retryLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Errorw(msg, keysAndValues...)
}

func (l *retryLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Infow(msg, keysAndValues...)
}

func (l *retryLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debugw(msg, keysAndValues...)
}

func (l *retryLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warnw(msg, keysAndValues...)
}
