// Package api is the typed client for the fraud API. Every request goes
// through an explicit middleware chain (bearer token, timing, unauthorized
// hook); every failure is normalized to *Error before it reaches callers;
// reads are cached by query key and retried with exponential backoff.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/gregjones/httpcache"

	"github.com/globobank/frauddesk/internal/models"
)

const (
	// DefaultTimeout bounds every request; expiry surfaces as a network error.
	DefaultTimeout = 30 * time.Second

	// DefaultFreshness is how long a cached read is served without refetching.
	DefaultFreshness = 5 * time.Minute
	// VolatileFreshness is the shorter window used for search results.
	VolatileFreshness = 2 * time.Minute
	// EvictAfter is how long an unused entry survives before eviction.
	EvictAfter = 10 * time.Minute

	maxReadAttempts = 3
)

// Config carries everything needed to construct a Client. Only BaseURL is
// required.
type Config struct {
	BaseURL string
	Timeout time.Duration

	// Tokens supplies the bearer token for outgoing requests.
	Tokens TokenSource
	// OnUnauthorized runs whenever the server answers 401.
	OnUnauthorized func()

	// Cache overrides the byte store backing the query cache; by default an
	// in-memory store is used. Pass a diskcache for persistence across runs.
	Cache httpcache.Cache

	// Transport overrides the underlying round tripper (tests).
	Transport http.RoundTripper
}

// Client is the remote data access layer.
type Client struct {
	base  *url.URL
	doer  Doer
	cache *QueryCache
}

// New builds a Client from the config.
func New(cfg Config) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", cfg.BaseURL, err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	httpClient := &http.Client{
		Timeout:   timeout,
		Transport: cfg.Transport,
	}

	return &Client{
		base: base,
		doer: Chain(httpClient,
			Timing(),
			BearerToken(cfg.Tokens),
			UnauthorizedHook(cfg.OnUnauthorized),
		),
		cache: NewQueryCache(cfg.Cache, EvictAfter),
	}, nil
}

// Cache exposes the query cache (tests and cache utilities).
func (c *Client) Cache() *QueryCache {
	return c.cache
}

// attempt performs one HTTP round trip and normalizes every failure.
func (c *Client) attempt(ctx context.Context, method, path string, query url.Values, body any) ([]byte, *Error) {
	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, unknownError(err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, unknownError(err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		// The request went out but no usable response came back; this
		// covers timeouts, refused connections and cancelled contexts.
		return nil, NetworkError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NetworkError(err)
	}

	if resp.StatusCode >= 400 {
		return nil, Classify(resp.StatusCode, data)
	}
	return data, nil
}

// read performs a cached read: a fresh cache hit short-circuits the
// network entirely; otherwise the request is retried up to three times
// with exponential backoff, skipping retries for client-error classes,
// and the payload is cached on success.
func (c *Client) read(ctx context.Context, key Key, freshFor time.Duration, method, path string, query url.Values, body any) ([]byte, error) {
	if payload, ok := c.cache.Get(key, freshFor); ok {
		return payload, nil
	}

	operation := func() ([]byte, error) {
		data, apiErr := c.attempt(ctx, method, path, query, body)
		if apiErr != nil {
			if !apiErr.Retryable() {
				return nil, backoff.Permanent(apiErr)
			}
			return nil, apiErr
		}
		return data, nil
	}

	data, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(maxReadAttempts),
	)
	if err != nil {
		return nil, normalize(err)
	}

	c.cache.Put(key, data)
	return data, nil
}

// write performs a mutating request. Writes are retried at most once, and
// only when the first attempt failed at the transport layer. On success
// every cache entry of the affected families is invalidated so the next
// read observes the change.
func (c *Client) write(ctx context.Context, method, path string, body any, families ...string) ([]byte, error) {
	data, apiErr := c.attempt(ctx, method, path, nil, body)
	if apiErr != nil && apiErr.Code == CodeNetworkError && ctx.Err() == nil {
		data, apiErr = c.attempt(ctx, method, path, nil, body)
	}
	if apiErr != nil {
		return nil, apiErr
	}

	for _, family := range families {
		c.cache.Invalidate(family)
	}
	return data, nil
}

// normalize guarantees callers receive *Error even when the retry
// machinery wraps the cause.
func normalize(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return unknownError(err)
}

// decodeEnvelope unpacks an enveloped payload into T plus its pagination.
func decodeEnvelope[T any](data []byte) (T, *models.Pagination, error) {
	var env models.Envelope[T]
	if err := json.Unmarshal(data, &env); err != nil {
		var zero T
		return zero, nil, unknownError(fmt.Errorf("malformed response body: %w", err))
	}
	return env.Data, env.Pagination, nil
}

// readEnveloped is the generic cached-read helper for enveloped resources.
func readEnveloped[T any](ctx context.Context, c *Client, key Key, freshFor time.Duration, method, path string, query url.Values, body any) (T, *models.Pagination, error) {
	data, err := c.read(ctx, key, freshFor, method, path, query, body)
	if err != nil {
		var zero T
		return zero, nil, err
	}
	return decodeEnvelope[T](data)
}

// writeEnveloped is the generic write helper for enveloped resources.
func writeEnveloped[T any](ctx context.Context, c *Client, method, path string, body any, families ...string) (T, error) {
	data, err := c.write(ctx, method, path, body, families...)
	if err != nil {
		var zero T
		return zero, err
	}
	result, _, err := decodeEnvelope[T](data)
	return result, err
}
