package clictopay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	TestEndpoint = "https://test.clictopay.com/payment/rest/"
	LiveEndpoint = "https://ipay.clictopay.com/payment/rest/"

	// Language and Currency are sent on every call. 788 is the ISO 4217 code of the Tunisian dinar.
	Language = "fr"
	Currency = 788

	defaultTimeout = 60 * time.Second
)

var errEmptyBody = errors.New("empty response body")

// HTTPClient is the transport used by the Gateway. *http.Client satisfies it.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type operation struct {
	name string
	path string
}

var (
	opRegister       = operation{name: "register", path: "register.do"}
	opPreAuthorize   = operation{name: "pre_authorize", path: "registerPreAuth.do"}
	opDeposit        = operation{name: "deposit", path: "deposit.do"}
	opCancel         = operation{name: "cancel", path: "reverse.do"}
	opRefund         = operation{name: "refund", path: "refund.do"}
	opStatus         = operation{name: "status", path: "getOrderStatus.do"}
	opExtendedStatus = operation{name: "extended_status", path: "getOrderStatusExtended.do"}
)

type request interface {
	Validate() error
}

// Gateway calls the ClicToPay REST API with one merchant's credentials.
// It holds no mutable state and can be shared between goroutines.
type Gateway struct {
	login      string
	password   string
	endpoint   string
	httpClient HTTPClient
	logger     *zap.Logger
}

type Option func(*Gateway)

func WithHTTPClient(c HTTPClient) Option {
	return func(g *Gateway) {
		if c != nil {
			g.httpClient = c
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(g *Gateway) {
		if l != nil {
			g.logger = l
		}
	}
}

// New creates a Gateway targeting endpoint, which must end with "/".
func New(login, password, endpoint string, opts ...Option) *Gateway {
	g := &Gateway{
		login:      login,
		password:   password,
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NewForMode creates a Gateway on the test platform when testMode is set, on the live one otherwise.
func NewForMode(login, password string, testMode bool, opts ...Option) *Gateway {
	endpoint := LiveEndpoint
	if testMode {
		endpoint = TestEndpoint
	}
	return New(login, password, endpoint, opts...)
}

func (g *Gateway) Login() string {
	return g.login
}

func (g *Gateway) Endpoint() string {
	return g.endpoint
}

// Register creates an order and returns the URL of the payment page.
func (g *Gateway) Register(ctx context.Context, req Register) (*URLResponse, error) {
	resp := &URLResponse{}
	if err := g.call(ctx, opRegister, req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// PreAuthorize creates an order whose amount is held until Deposit is called.
func (g *Gateway) PreAuthorize(ctx context.Context, req PreAuthorize) (*URLResponse, error) {
	resp := &URLResponse{}
	if err := g.call(ctx, opPreAuthorize, req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (g *Gateway) Deposit(ctx context.Context, req Deposit) (*Response, error) {
	resp := &Response{}
	if err := g.call(ctx, opDeposit, req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (g *Gateway) Cancel(ctx context.Context, req Cancel) (*Response, error) {
	resp := &Response{}
	if err := g.call(ctx, opCancel, req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (g *Gateway) Refund(ctx context.Context, req Refund) (*Response, error) {
	resp := &Response{}
	if err := g.call(ctx, opRefund, req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (g *Gateway) Status(ctx context.Context, req Status) (*StatusResponse, error) {
	resp := &StatusResponse{}
	if err := g.call(ctx, opStatus, req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (g *Gateway) ExtendedStatus(ctx context.Context, req ExtendedStatus) (*ExtendedStatusResponse, error) {
	resp := &ExtendedStatusResponse{}
	if err := g.call(ctx, opExtendedStatus, req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (g *Gateway) call(ctx context.Context, op operation, req request, out result) error {
	if err := req.Validate(); err != nil {
		g.logger.Warn("clictopay_invalid_request", zap.String("operation", op.name), zap.Error(err))
		return err
	}

	params, err := encodeParams(req)
	if err != nil {
		return &ValidationError{Request: op.name, cause: err}
	}
	params.Set("userName", g.login)
	params.Set("password", g.password)
	params.Set("language", Language)
	params.Set("currency", fmt.Sprint(Currency))

	logger := g.logger.With(
		zap.String("operation", op.name),
		zap.String("uri", g.endpoint+op.path),
		zap.String("order_id", params.Get("orderId")),
		zap.String("order_number", params.Get("orderNumber")),
	)
	logger.Info("clictopay_request")

	start := time.Now()
	payload, status, err := g.get(ctx, g.endpoint+op.path+"?"+params.Encode())
	if err != nil {
		logger.Error("clictopay_communication_failed", zap.Int("http_status", status), zap.Duration("duration", time.Since(start)), zap.Error(err))
		return newCommunicationError(err)
	}

	if err := decodeResponse(payload, out); err != nil {
		logger.Warn("clictopay_error_response", zap.Int("http_status", status), zap.Duration("duration", time.Since(start)), zap.Error(err))
		return err
	}
	logger.Info("clictopay_response", zap.Int("http_status", status), zap.Duration("duration", time.Since(start)))
	return nil
}

func (g *Gateway) get(ctx context.Context, target string) (map[string]any, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, 0, scrubURLError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return nil, resp.StatusCode, fmt.Errorf("unexpected HTTP status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response body: %w", err)
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil, resp.StatusCode, errEmptyBody
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("decode response body: %w", err)
	}
	if payload == nil {
		return nil, resp.StatusCode, errEmptyBody
	}
	return payload, resp.StatusCode, nil
}

// scrubURLError drops the request URL, which carries the merchant password, from transport errors.
func scrubURLError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s: %w", strings.ToLower(urlErr.Op), urlErr.Err)
	}
	return err
}
