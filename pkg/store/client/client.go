package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/de-tools/field-atlas/pkg/models/domain"
	"github.com/de-tools/field-atlas/pkg/services/config"
	"github.com/rs/zerolog"
)

const (
	authHeader   = "X-Tableau-Auth"
	maxErrorBody = 512
)

// Client performs JSON calls against a single server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for cfg.ServerAddress. A nil httpClient gets one bounded by cfg.Timeout.
func New(cfg *config.Config, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		baseURL:    cfg.ServerAddress,
		httpClient: httpClient,
	}
}

type request struct {
	op     string
	method string
	path   []string
	token  string
	body   any
}

// do sends the request and decodes a JSON response into out when out is not nil.
func (c *Client) do(ctx context.Context, r request, out any) error {
	endpoint, err := url.JoinPath(c.baseURL, r.path...)
	if err != nil {
		return &domain.APIError{Op: r.op, Err: fmt.Errorf("%w: invalid server address: %w", domain.ErrConnectivity, err)}
	}

	logger := zerolog.Ctx(ctx).With().
		Str("op", r.op).
		Str("method", r.method).
		Str("url", endpoint).
		Logger()
	ctx = logger.WithContext(ctx)

	var payload io.Reader
	if r.body != nil {
		data, err := json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("%s: failed to encode request: %w", r.op, err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, endpoint, payload)
	if err != nil {
		return &domain.APIError{Op: r.op, Err: fmt.Errorf("%w: %w", domain.ErrConnectivity, err)}
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.token != "" {
		req.Header.Set(authHeader, r.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn().Err(err).Msg("request failed")
		return &domain.APIError{Op: r.op, Err: fmt.Errorf("%w: %w", domain.ErrConnectivity, err)}
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			logger.Warn().Err(err).Msg("failed to close response body")
		}
	}(resp.Body)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to read response")
		return &domain.APIError{Op: r.op, StatusCode: resp.StatusCode, Err: fmt.Errorf("%w: %w", domain.ErrConnectivity, err)}
	}

	logger.Debug().
		Int("status", resp.StatusCode).
		Int("bytes", len(body)).
		Msg("response received")

	if err := checkStatus(r.op, resp.StatusCode, body); err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return malformed(r.op, resp.StatusCode, err)
	}
	return nil
}

func checkStatus(op string, status int, body []byte) error {
	if status >= 200 && status < 300 {
		return nil
	}

	snippet := string(body)
	if len(snippet) > maxErrorBody {
		snippet = snippet[:maxErrorBody]
	}

	sentinel := domain.ErrMetadataFetch
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		sentinel = domain.ErrAuthentication
	}
	return &domain.APIError{Op: op, StatusCode: status, Body: snippet, Err: sentinel}
}

func malformed(op string, status int, cause error) error {
	return &domain.APIError{
		Op:         op,
		StatusCode: status,
		Err:        fmt.Errorf("%w: %w: %v", domain.ErrMetadataFetch, domain.ErrParse, cause),
	}
}
