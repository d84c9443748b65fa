package logging

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Level(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, New("order-svc", "debug").Logger.GetLevel())
	assert.Equal(t, logrus.InfoLevel, New("order-svc", "loud").Logger.GetLevel())
	assert.Equal(t, "order-svc", New("order-svc", "info").Data["service"])
}

func TestMiddleware_LogsStatusAndPath(t *testing.T) {
	logger, hook := test.NewNullLogger()

	handler := Middleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/orders?limit=5", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Len(t, hook.AllEntries(), 1)
	entry := hook.LastEntry()
	assert.Equal(t, "/api/orders?limit=5", entry.Message)
	assert.Equal(t, http.StatusTeapot, entry.Data["status"])
	assert.Equal(t, http.MethodGet, entry.Data["method"])
}
