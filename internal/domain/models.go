package domain

import "time"

// OrderStatus представляет статус платежного заказа
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusFailed    OrderStatus = "FAILED"
)

// IsFinal сообщает, является ли статус терминальным
func (s OrderStatus) IsFinal() bool {
	return s == OrderStatusCompleted || s == OrderStatusFailed
}

// Channel канал, по которому пришло уведомление о результате платежа
type Channel string

const (
	ChannelRedirect Channel = "redirect" // возврат пользователя из кошелька
	ChannelIPN      Channel = "ipn"      // серверное уведомление провайдера
	ChannelSweep    Channel = "sweep"    // фоновая сверка
)

// ReconcileOutcome результат обработки уведомления
type ReconcileOutcome string

const (
	ReconcileCompleted ReconcileOutcome = "completed"
	ReconcileFailed    ReconcileOutcome = "failed"
	ReconcileDuplicate ReconcileOutcome = "duplicate"
	ReconcileIgnored   ReconcileOutcome = "ignored"
)

// Коды результата MoMo
const (
	ResultCodeSuccess int64 = 0
)

// inProgressCodes коды, после которых заказ остается в ожидании
var inProgressCodes = map[int64]struct{}{
	1000: {}, // транзакция создана, ждет подтверждения пользователем
	7000: {}, // транзакция обрабатывается
	7002: {}, // транзакция обрабатывается провайдером платежного инструмента
	9000: {}, // транзакция авторизована
}

// IsInProgressCode сообщает, что код не является окончательным
func IsInProgressCode(code int64) bool {
	_, ok := inProgressCodes[code]
	return ok
}

// IsProviderErrorCode сообщает об ошибке самого провайдера (коды 1..999).
// Такие коды не говорят ничего о результате оплаты.
func IsProviderErrorCode(code int64) bool {
	return code > 0 && code < 1000
}

// Order представляет заказ на пополнение баланса монетами.
// PaidTransID заполняется, когда оплата подтверждена провайдером,
// но монеты еще не зачислены; TransID только при переходе в COMPLETED.
type Order struct {
	ID          string      `json:"order_id"`
	RequestID   string      `json:"-"`
	AccountID   int64       `json:"-"`
	Units       int64       `json:"units"`
	Amount      int64       `json:"amount"`
	Description string      `json:"description"`
	Status      OrderStatus `json:"status"`
	ResultCode  *int64      `json:"result_code,omitempty"`
	PaidTransID *int64      `json:"-"`
	TransID     *int64      `json:"trans_id,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// Balance баланс монет счета
type Balance struct {
	AccountID int64 `json:"account_id"`
	Current   int64 `json:"current"`
}

// PaymentPayload непрозрачные данные, которые провайдер возвращает без изменений (extraData)
type PaymentPayload struct {
	AccountID int64 `json:"accountId"`
	Units     int64 `json:"units"`
}

// PaymentIntent данные заказа для создания платежа у провайдера
type PaymentIntent struct {
	OrderID   string
	RequestID string
	Amount    int64
	OrderInfo string
	ExtraData string
}

// PaymentResponse подтверждение создания платежа от MoMo
type PaymentResponse struct {
	PartnerCode  string `json:"partnerCode"`
	OrderID      string `json:"orderId"`
	RequestID    string `json:"requestId"`
	Amount       int64  `json:"amount"`
	ResponseTime int64  `json:"responseTime"`
	Message      string `json:"message"`
	ResultCode   int64  `json:"resultCode"`
	PayURL       string `json:"payUrl"`
	Deeplink     string `json:"deeplink,omitempty"`
	QRCodeURL    string `json:"qrCodeUrl,omitempty"`
}

// PaymentStatus ответ MoMo на запрос статуса транзакции
type PaymentStatus struct {
	PartnerCode  string `json:"partnerCode"`
	OrderID      string `json:"orderId"`
	RequestID    string `json:"requestId"`
	ExtraData    string `json:"extraData"`
	Amount       int64  `json:"amount"`
	TransID      int64  `json:"transId"`
	PayType      string `json:"payType"`
	ResultCode   int64  `json:"resultCode"`
	Message      string `json:"message"`
	ResponseTime int64  `json:"responseTime"`
}

// PaymentNotification уведомление о результате оплаты.
// Одинаково для обоих каналов: query-параметры redirect и JSON тело IPN.
type PaymentNotification struct {
	PartnerCode  string `json:"partnerCode"`
	OrderID      string `json:"orderId"`
	RequestID    string `json:"requestId"`
	Amount       int64  `json:"amount"`
	OrderInfo    string `json:"orderInfo"`
	OrderType    string `json:"orderType"`
	TransID      int64  `json:"transId"`
	ResultCode   int64  `json:"resultCode"`
	Message      string `json:"message"`
	PayType      string `json:"payType"`
	ResponseTime int64  `json:"responseTime"`
	ExtraData    string `json:"extraData"`
	Signature    string `json:"signature"`
}

// AuditEvent запись журнала сверки
type AuditEvent struct {
	OrderID    string    `json:"order_id"`
	Channel    Channel   `json:"channel"`
	Outcome    string    `json:"outcome"`
	ResultCode int64     `json:"result_code"`
	TransID    int64     `json:"trans_id"`
	Amount     int64     `json:"amount"`
	Reason     string    `json:"reason,omitempty"`
	RecordedAt time.Time `json:"recorded_at"`
}
