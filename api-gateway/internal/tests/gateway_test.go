package tests

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"foodcart/api-gateway/internal/gateway"
	"foodcart/api-gateway/internal/mocks"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newGateway(t *testing.T, client gateway.HTTPClient) *gateway.Gateway {
	t.Helper()
	logger, _ := logtest.NewNullLogger()
	return gateway.NewGateway(gateway.Config{
		OrderSvcURL:   "http://order-svc",
		ManagerSvcURL: "http://manager-svc",
	}, client, logger)
}

func jsonResponse(body string) *http.Response {
	resp := &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
	resp.Header.Set("Content-Type", "application/json")
	return resp
}

func TestGateway_HealthCheck(t *testing.T) {
	gw := newGateway(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	gw.SetupRoutes().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "api-gateway", body["service"])
}

func TestGateway_RouteHandler(t *testing.T) {
	tests := []struct {
		name    string
		method  string
		path    string
		wantURL string
	}{
		{name: "manager orders", method: http.MethodGet, path: "/api/manager/orders", wantURL: "http://manager-svc/api/manager/orders"},
		{name: "manager login", method: http.MethodPost, path: "/api/manager/login", wantURL: "http://manager-svc/api/manager/login"},
		{name: "intake", method: http.MethodPost, path: "/api/order", wantURL: "http://order-svc/api/order"},
		{name: "products with query", method: http.MethodGet, path: "/api/products?featured=true", wantURL: "http://order-svc/api/products?featured=true"},
		{name: "qrcode", method: http.MethodGet, path: "/api/orders/4/qrcode", wantURL: "http://order-svc/api/orders/4/qrcode"},
		{name: "prefix lookalike", method: http.MethodGet, path: "/api/managers", wantURL: "http://order-svc/api/managers"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockClient := mocks.NewHTTPClient(t)
			mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
				return req.URL.String() == testCase.wantURL &&
					req.Method == testCase.method &&
					req.Header.Get("Authorization") == "Bearer t"
			})).Return(jsonResponse(`{"ok":true}`), nil).Once()

			req := httptest.NewRequest(testCase.method, testCase.path, nil)
			req.Header.Set("Authorization", "Bearer t")
			rr := httptest.NewRecorder()
			newGateway(t, mockClient).RouteHandler(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.JSONEq(t, `{"ok":true}`, rr.Body.String())
		})
	}
}

func TestGateway_RouteHandler_UpstreamStatusPassedThrough(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	resp := jsonResponse(`{"errors":{"products":"this list may not be empty"}}`)
	resp.StatusCode = http.StatusBadRequest
	mockClient.On("Do", mock.Anything).Return(resp, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/order", strings.NewReader(`{"products":[]}`))
	rr := httptest.NewRecorder()
	newGateway(t, mockClient).RouteHandler(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "products")
}

func TestGateway_RouteHandler_UnknownRoute(t *testing.T) {
	gw := newGateway(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/unknown", nil)
	rr := httptest.NewRecorder()
	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGateway_RouteHandler_ProxyError(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	mockClient.On("Do", mock.Anything).Return(nil, errors.New("connection failed")).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/restaurants", nil)
	rr := httptest.NewRecorder()
	newGateway(t, mockClient).RouteHandler(rr, req)

	assert.Equal(t, http.StatusBadGateway, rr.Code)
}
