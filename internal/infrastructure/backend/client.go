// Package backend implements the domain repository interfaces over the
// upstream POS REST API. The upstream owns all business data; this package is
// a typed HTTP boundary with no caching or retry of its own.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/sellora/pos-gateway/internal/config"
	"github.com/sellora/pos-gateway/pkg/apperror"
)

type tokenKey struct{}

// WithToken stores a bearer token on the context. The client attaches it to
// every request it issues from that context.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext returns the bearer token carried by ctx, if any.
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

// Client is the shared HTTP core for the per-resource API implementations.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates an upstream client from configuration.
func NewClient(cfg *config.UpstreamConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

// do issues one JSON request. A non-2xx response is normalized into a flat
// AppError carrying the upstream status and raw body text; a 2xx response is
// decoded into out when out is non-nil. An empty 2xx body with a non-nil out
// leaves out untouched, which callers treat as "no resource".
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return apperror.NewAppError(http.StatusInternalServerError, "encode request: "+err.Error())
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return apperror.NewAppError(http.StatusInternalServerError, "build request: "+err.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	if token := TokenFromContext(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return apperror.NewAppError(http.StatusBadGateway, err.Error())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperror.NewAppError(http.StatusBadGateway, "read response: "+err.Error())
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apperror.NewUpstreamError(resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return apperror.NewAppError(http.StatusBadGateway, "malformed upstream response: "+err.Error())
	}
	return nil
}
