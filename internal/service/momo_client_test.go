package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/avc/coin-payments/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testMoMoConfig(endpoint string) MoMoConfig {
	return MoMoConfig{
		Endpoint:     endpoint,
		PartnerCode:  "MOMO",
		AccessKey:    "F8BBA842ECF85",
		SecretKey:    "K951B6PE1waDMi640xX08PD3vg6EkVlz",
		RedirectURL:  "http://localhost/return",
		IPNURL:       "http://localhost/ipn",
		RequestType:  "captureWallet",
		Lang:         "vi",
		Timeout:      2 * time.Second,
		QueryRetries: 2,
	}
}

func newTestMoMoClient(endpoint string) *MoMoClient {
	c := NewMoMoClient(testMoMoConfig(endpoint), zap.NewNop())
	c.queryClient.RetryWaitMin = time.Millisecond
	c.queryClient.RetryWaitMax = 5 * time.Millisecond
	return c
}

func testIntent() *domain.PaymentIntent {
	return &domain.PaymentIntent{
		OrderID:   "7-1",
		RequestID: "req-1",
		Amount:    20000,
		OrderInfo: "Buy 100 coins",
		ExtraData: "eyJhY2NvdW50SWQiOjcsInVuaXRzIjoxMDB9",
	}
}

func TestMoMoClient_CreatePayment(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/create", r.URL.Path)
			assert.Equal(t, http.MethodPost, r.Method)

			var req createRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "MOMO", req.PartnerCode)
			assert.Equal(t, "captureWallet", req.RequestType)
			assert.Equal(t, "vi", req.Lang)
			assert.Equal(t, int64(20000), req.Amount)
			// Подпись по порядку полей запроса создания
			assert.Equal(t, "8cc7979100d14f6d4f64075bfb82f8d22579c14131e08650f668b5ca79293cef", req.Signature)

			json.NewEncoder(w).Encode(map[string]any{
				"partnerCode":  "MOMO",
				"orderId":      req.OrderID,
				"requestId":    req.RequestID,
				"amount":       req.Amount,
				"responseTime": 1700000000000,
				"message":      "Successful.",
				"resultCode":   0,
				"payUrl":       "https://test-payment.momo.vn/pay/7-1",
			})
		}))
		defer server.Close()

		resp, err := newTestMoMoClient(server.URL).CreatePayment(ctx, testIntent())
		require.NoError(t, err)
		assert.Equal(t, int64(0), resp.ResultCode)
		assert.Equal(t, "https://test-payment.momo.vn/pay/7-1", resp.PayURL)
		assert.Equal(t, "7-1", resp.OrderID)
	})

	t.Run("Rejected", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]any{
				"orderId":    "7-1",
				"resultCode": 22,
				"message":    "Amount out of range",
			})
		}))
		defer server.Close()

		resp, err := newTestMoMoClient(server.URL).CreatePayment(ctx, testIntent())
		require.NoError(t, err)
		assert.Equal(t, int64(22), resp.ResultCode)
		assert.Equal(t, "Amount out of range", resp.Message)
	})

	t.Run("Transport failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		_, err := newTestMoMoClient(server.URL).CreatePayment(ctx, testIntent())
		assert.ErrorIs(t, err, domain.ErrProviderUnavailable)
	})

	t.Run("Create is not retried", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("<html>bad gateway</html>"))
		}))
		defer server.Close()

		_, err := newTestMoMoClient(server.URL).CreatePayment(ctx, testIntent())
		assert.ErrorIs(t, err, domain.ErrProviderUnavailable)
		assert.Equal(t, int32(1), calls.Load())
	})

	tests := []struct {
		name string
		body string
	}{
		{name: "Malformed JSON", body: `{"resultCode":`},
		{name: "Missing resultCode", body: `{"orderId":"7-1","amount":20000,"payUrl":"https://pay"}`},
		{name: "Foreign order", body: `{"orderId":"8-1","amount":20000,"resultCode":0,"payUrl":"https://pay"}`},
		{name: "Amount differs", body: `{"orderId":"7-1","amount":1,"resultCode":0,"payUrl":"https://pay"}`},
		{name: "Missing payUrl", body: `{"orderId":"7-1","amount":20000,"resultCode":0}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			resp, err := newTestMoMoClient(server.URL).CreatePayment(ctx, testIntent())
			assert.ErrorIs(t, err, domain.ErrProviderResponse)
			assert.Nil(t, resp)
		})
	}
}

func TestMoMoClient_QueryPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("Success after retry", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/query", r.URL.Path)
			if calls.Add(1) == 1 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}

			var req queryRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "7-1", req.OrderID)
			assert.NotEmpty(t, req.RequestID)
			assert.Len(t, req.Signature, 64)

			json.NewEncoder(w).Encode(map[string]any{
				"partnerCode": "MOMO",
				"orderId":     "7-1",
				"requestId":   req.RequestID,
				"extraData":   "eyJhY2NvdW50SWQiOjcsInVuaXRzIjoxMDB9",
				"amount":      20000,
				"transId":     4088878653,
				"payType":     "qr",
				"resultCode":  0,
				"message":     "Successful.",
			})
		}))
		defer server.Close()

		status, err := newTestMoMoClient(server.URL).QueryPayment(ctx, "7-1")
		require.NoError(t, err)
		assert.Equal(t, int32(2), calls.Load())
		assert.Equal(t, int64(0), status.ResultCode)
		assert.Equal(t, int64(4088878653), status.TransID)
		assert.Equal(t, int64(20000), status.Amount)
	})

	t.Run("Gives up", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		_, err := newTestMoMoClient(server.URL).QueryPayment(ctx, "7-1")
		assert.ErrorIs(t, err, domain.ErrProviderUnavailable)
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("Pending payment", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"orderId":"7-1","resultCode":1000,"message":"Pending"}`))
		}))
		defer server.Close()

		status, err := newTestMoMoClient(server.URL).QueryPayment(ctx, "7-1")
		require.NoError(t, err)
		assert.Equal(t, int64(1000), status.ResultCode)
	})

	t.Run("Foreign order", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"orderId":"8-1","resultCode":0,"amount":20000,"transId":1}`))
		}))
		defer server.Close()

		_, err := newTestMoMoClient(server.URL).QueryPayment(ctx, "7-1")
		assert.ErrorIs(t, err, domain.ErrProviderResponse)
	})

	t.Run("Success without transId", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"orderId":"7-1","resultCode":0,"amount":20000}`))
		}))
		defer server.Close()

		_, err := newTestMoMoClient(server.URL).QueryPayment(ctx, "7-1")
		assert.ErrorIs(t, err, domain.ErrProviderResponse)
	})
}

func testNotification() *domain.PaymentNotification {
	return &domain.PaymentNotification{
		PartnerCode:  "MOMO",
		OrderID:      "7-1",
		RequestID:    "req-1",
		Amount:       20000,
		OrderInfo:    "Buy 100 coins",
		OrderType:    "momo_wallet",
		TransID:      4088878653,
		ResultCode:   0,
		Message:      "Successful.",
		PayType:      "qr",
		ResponseTime: 1700000000000,
		ExtraData:    "eyJhY2NvdW50SWQiOjcsInVuaXRzIjoxMDB9",
		Signature:    "6a3cae4af72427584964db71049c01be5931d063cad236be311ecdd57dac7756",
	}
}

func TestMoMoClient_VerifyNotification(t *testing.T) {
	c := newTestMoMoClient("http://unused")

	t.Run("Valid", func(t *testing.T) {
		assert.True(t, c.VerifyNotification(testNotification()))
	})

	t.Run("SignNotification matches provider", func(t *testing.T) {
		n := testNotification()
		assert.Equal(t, n.Signature, c.SignNotification(n))
	})

	t.Run("Nil", func(t *testing.T) {
		assert.False(t, c.VerifyNotification(nil))
	})

	t.Run("Foreign partner", func(t *testing.T) {
		n := testNotification()
		n.PartnerCode = "OTHER"
		assert.False(t, c.VerifyNotification(n))
	})

	tamper := map[string]func(n *domain.PaymentNotification){
		"amount":       func(n *domain.PaymentNotification) { n.Amount++ },
		"orderId":      func(n *domain.PaymentNotification) { n.OrderID = "7-2" },
		"requestId":    func(n *domain.PaymentNotification) { n.RequestID = "req-2" },
		"orderInfo":    func(n *domain.PaymentNotification) { n.OrderInfo += " " },
		"orderType":    func(n *domain.PaymentNotification) { n.OrderType = "other" },
		"transId":      func(n *domain.PaymentNotification) { n.TransID++ },
		"resultCode":   func(n *domain.PaymentNotification) { n.ResultCode = 1006 },
		"message":      func(n *domain.PaymentNotification) { n.Message = "Failed" },
		"payType":      func(n *domain.PaymentNotification) { n.PayType = "napas" },
		"responseTime": func(n *domain.PaymentNotification) { n.ResponseTime++ },
		"extraData":    func(n *domain.PaymentNotification) { n.ExtraData = "" },
		"signature":    func(n *domain.PaymentNotification) { n.Signature = "" },
	}
	for field, fn := range tamper {
		t.Run("Tampered "+field, func(t *testing.T) {
			n := testNotification()
			fn(n)
			assert.False(t, c.VerifyNotification(n))
		})
	}
}
