package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(context.Context) error {
	return p.err
}

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name       string
		db         Pinger
		wantHealth int
		wantBody   string
		wantReady  int
	}{
		{name: "Database ok", db: stubPinger{}, wantHealth: http.StatusOK, wantBody: `{"status":"ok","database":"ok"}`, wantReady: http.StatusOK},
		{name: "Database down", db: stubPinger{err: errors.New("refused")}, wantHealth: http.StatusServiceUnavailable, wantBody: `{"status":"degraded","database":"unavailable"}`, wantReady: http.StatusServiceUnavailable},
		{name: "Memory storage", db: nil, wantHealth: http.StatusOK, wantBody: `{"status":"ok","database":"memory"}`, wantReady: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHealthHandler(tt.db, zap.NewNop())

			w := httptest.NewRecorder()
			handler.Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))
			assert.Equal(t, tt.wantHealth, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())

			w = httptest.NewRecorder()
			handler.Ready(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
			assert.Equal(t, tt.wantReady, w.Code)
		})
	}
}
