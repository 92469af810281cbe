package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/ecotrack/internal/pkg/logger"
	nrpkg "github.com/piresc/ecotrack/internal/pkg/newrelic"
)

// DefaultTimeout for HTTP requests
const DefaultTimeout = 30 * time.Second

// Config configures a BasicAuthClient
type Config struct {
	BaseURL     string
	Username    string
	Password    string
	Timeout     time.Duration
	ServiceName string
}

// BasicAuthClient is a JSON HTTP client that authenticates every request with
// HTTP Basic credentials
type BasicAuthClient struct {
	httpClient  *nethttp.Client
	baseURL     string
	username    string
	password    string
	serviceName string
}

// NewBasicAuthClient creates a new client. A zero timeout uses DefaultTimeout.
func NewBasicAuthClient(config Config) *BasicAuthClient {
	timeout := config.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &BasicAuthClient{
		httpClient:  &nethttp.Client{Timeout: timeout},
		baseURL:     strings.TrimRight(config.BaseURL, "/"),
		username:    config.Username,
		password:    config.Password,
		serviceName: config.ServiceName,
	}
}

// PostJSON posts body as JSON to endpoint and decodes a 2xx response into
// result. Non-2xx responses yield *UpstreamError carrying the raw body.
func (c *BasicAuthClient) PostJSON(ctx context.Context, endpoint string, body interface{}, result interface{}) error {
	resp, err := c.doRequest(ctx, nethttp.MethodPost, endpoint, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.WarnCtx(ctx, "Upstream returned error status",
			logger.String("service", c.serviceName),
			logger.String("endpoint", endpoint),
			logger.Int("status_code", resp.StatusCode))
		return &UpstreamError{StatusCode: resp.StatusCode, Body: respBody}
	}

	if result == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}

func (c *BasicAuthClient) doRequest(ctx context.Context, method, endpoint string, body interface{}) (*nethttp.Response, error) {
	url := c.baseURL + endpoint

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := nethttp.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAccept, echo.MIMEApplicationJSON)
	if c.username != "" || c.password != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	logger.Debug("Making HTTP request",
		logger.String("method", method),
		logger.String("url", url),
		logger.String("service", c.serviceName))

	resp, err := nrpkg.InstrumentHTTPRequest(ctx, req, func() (*nethttp.Response, error) {
		return c.httpClient.Do(req)
	})
	if err != nil {
		logger.ErrorCtx(ctx, "HTTP request failed",
			logger.String("method", method),
			logger.String("url", url),
			logger.String("service", c.serviceName),
			logger.Err(err))
		return nil, fmt.Errorf("request failed: %w", err)
	}

	return resp, nil
}
