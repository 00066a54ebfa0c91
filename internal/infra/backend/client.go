package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"booking-portal/internal/observability/metrics"
	"booking-portal/internal/pkg/config"
	"booking-portal/internal/pkg/errs"
	"booking-portal/internal/pkg/patch"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("booking-portal.internal.infra.backend")

const (
	// TunnelBypassHeader skips the interstitial page of the tunnel the backend
	// is usually exposed through. It is sent on every call.
	TunnelBypassHeader = "ngrok-skip-browser-warning"

	contentTypeJSON = "application/json"
	contentTypeForm = "application/x-www-form-urlencoded"
)

// RequestOptions overrides the defaults of a single call. An empty Method
// means GET. Body is encoded as JSON when non-nil.
type RequestOptions struct {
	Method  string
	Body    any
	Headers map[string]string
}

// Client wraps every REST call the portal makes to the booking backend.
type Client struct {
	httpClient *http.Client
	baseURL    string
	metrics    *metrics.BackendMetrics
	logger     *slog.Logger
}

func NewClient(cfg config.APIConfig, m *metrics.BackendMetrics, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		metrics:    m,
		logger:     logger,
	}
}

// Request performs one JSON call. A 204 yields a nil body; any other 2xx
// body is returned verbatim. Failures are always *RequestError.
func (c *Client) Request(ctx context.Context, path string, opts RequestOptions) (json.RawMessage, error) {
	method := patch.CoalesceString(opts.Method, http.MethodGet)

	var body io.Reader
	if opts.Body != nil {
		payload, err := json.Marshal(opts.Body)
		if err != nil {
			return nil, errs.Wrap(err, "marshal request body")
		}
		body = bytes.NewReader(payload)
	}

	headers := http.Header{}
	headers.Set("Content-Type", contentTypeJSON)
	headers.Set(TunnelBypassHeader, "true")
	if token := TokenFrom(ctx); token != "" {
		headers.Set("Authorization", "Bearer "+token)
	}
	for k, v := range opts.Headers {
		headers.Set(k, v)
	}

	return c.send(ctx, method, path, body, headers)
}

func (c *Client) send(ctx context.Context, method, path string, body io.Reader, headers http.Header) (json.RawMessage, error) {
	ctx, span := tracer.Start(ctx, "backend.request")
	defer span.End()
	span.SetAttributes(
		attribute.String("http.method", method),
		attribute.String("backend.path", path),
	)

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, errs.Wrap(err, "build request")
	}
	req.Header = headers

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ObserveRequest(method, 0, time.Since(start).Seconds())
		span.RecordError(err)
		span.SetStatus(codes.Error, "backend unreachable")
		c.logger.WarnContext(ctx, "booking backend unreachable", "method", method, "path", path, "error", err)
		return nil, newUnreachableError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	c.metrics.ObserveRequest(method, resp.StatusCode, time.Since(start).Seconds())
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if err != nil {
		span.RecordError(err)
		return nil, newUnreachableError(errs.Wrap(err, "read response"))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		reqErr := newStatusError(resp.StatusCode, respBody)
		span.SetStatus(codes.Error, reqErr.Message)
		c.logger.WarnContext(ctx, "booking backend non-2xx response",
			"status", resp.StatusCode, "method", method, "path", path, "detail", reqErr.Message)
		return nil, reqErr
	}

	if resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(respBody)) == 0 {
		return nil, nil
	}
	if !json.Valid(respBody) {
		return nil, newMalformedError(resp.StatusCode, errs.New("response body is not JSON"))
	}
	return json.RawMessage(respBody), nil
}

func decodeInto[T any](raw json.RawMessage, err error) (T, error) {
	var out T
	if err != nil {
		return out, err
	}
	if len(raw) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, newMalformedError(http.StatusOK, errs.Wrap(err, "decode response"))
	}
	return out, nil
}
