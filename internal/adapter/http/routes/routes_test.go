package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"clictopay_gateway/internal/adapter/http/middleware"
	"clictopay_gateway/internal/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func serve(r *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestNewRouter_InvalidDefaultEnvironment(t *testing.T) {
	if _, err := NewRouter(&config.Config{DefaultEnvironment: "staging"}, zap.NewNop()); err == nil {
		t.Fatalf("expected error for invalid default environment")
	}
}

func TestNewRouter_MockMode(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r, err := NewRouter(&config.Config{DefaultEnvironment: "test", PaymentGatewayMock: true}, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("ping", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/v1/ping", "", nil)
		if w.Code != http.StatusOK || w.Body.String() != `{"message":"pong"}` {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
		if w.Header().Get(middleware.RequestIDHeader) == "" {
			t.Fatalf("expected request id header")
		}
	})

	t.Run("info", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/v1/info", "", map[string]string{"Authorization": "Bearer live_123"})
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if w.Code != http.StatusOK || body["mode"] != "live" {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
		if envs := body["environments"].([]any); len(envs) != 2 {
			t.Fatalf("expected both environments in mock mode: %s", w.Body.String())
		}
	})

	t.Run("register", func(t *testing.T) {
		w := serve(r, http.MethodPost, "/v1/payments/register", `{"orderNumber":"87654321","amount":100,"returnUrl":"https://example.com/finish.html"}`, nil)
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if w.Code != http.StatusOK || body["orderId"] == "" || body["environment"] != "test" {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("swagger document", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/swagger/doc.json", "", nil)
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "ClicToPay Payment API") {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), `"/payments/register"`) {
			t.Fatalf("expected payment routes in swagger document")
		}
	})

	t.Run("invalid environment header", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/v1/payments/status?orderId=1", "", map[string]string{middleware.EnvironmentHeader: "staging"})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestNewRouter_ClicToPayRoundTrip(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var (
		mu       sync.Mutex
		gotQuery url.Values
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		gotQuery = r.URL.Query()
		mu.Unlock()
		switch r.URL.Path {
		case "/payment/rest/register.do":
			fmt.Fprint(w, `{"errorCode":"1","errorMessage":"Commander avec ce numéro a déjà été traité."}`)
		case "/payment/rest/getOrderStatus.do":
			fmt.Fprint(w, `{"errorCode":"0","errorMessage":"Success","OrderStatus":2,"OrderNumber":"12345","Pan":"411111**1111","amount":100}`)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	cfg := &config.Config{
		DefaultEnvironment: "test",
		ClicToPay: config.ClicToPayConfig{
			Test:           config.Credentials{Login: "merchant", Password: "secret", Endpoint: srv.URL + "/payment/rest/"},
			TimeoutSeconds: 5,
		},
	}
	r, err := NewRouter(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("status", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/v1/payments/status?orderId=order123", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "deposited" || body["paid"] != true {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		mu.Lock()
		query := gotQuery
		mu.Unlock()
		if query.Get("userName") != "merchant" || query.Get("currency") != "788" || query.Get("orderId") != "order123" {
			t.Fatalf("unexpected gateway query: %v", query)
		}
	})

	t.Run("gateway rejection", func(t *testing.T) {
		w := serve(r, http.MethodPost, "/v1/payments/register", `{"orderNumber":"87654321","amount":100,"returnUrl":"https://example.com"}`, nil)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("transport failure", func(t *testing.T) {
		w := serve(r, http.MethodPost, "/v1/payments/cancel", `{"orderId":"order123"}`, nil)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("live not configured", func(t *testing.T) {
		w := serve(r, http.MethodPost, "/v1/payments/cancel", `{"orderId":"order123"}`, map[string]string{middleware.EnvironmentHeader: "live"})
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("validation before any call", func(t *testing.T) {
		w := serve(r, http.MethodPost, "/v1/payments/deposit", `{"orderId":"order123","amount":-5}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})
}
