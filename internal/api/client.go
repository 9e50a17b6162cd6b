// Package api is the single point of egress for every resource service: a
// configured HTTP client that decorates requests with the session
// credential, unwraps the response envelope and turns failures into errors.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"edumart/internal/logger"
	"edumart/internal/metrics"
	"edumart/internal/session"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *session.Session
	limiter    *rate.Limiter
	group      singleflight.Group
	writes     atomic.Uint64
	stats      *metrics.ClientStats
}

type Option func(*Client)

// WithTransport replaces the underlying round tripper. Requests still pass
// through the logging transport.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.httpClient.Transport = logger.NewTransport(rt)
	}
}

// WithRateLimit caps outgoing requests per second; rps <= 0 disables it.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

func WithStats(stats *metrics.ClientStats) Option {
	return func(c *Client) {
		if stats != nil {
			c.stats = stats
		}
	}
}

func NewClient(baseURL string, timeout time.Duration, sess *session.Session, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: logger.NewTransport(nil),
		},
		session: sess,
		stats:   &metrics.ClientStats{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Stats() *metrics.ClientStats {
	return c.stats
}

func (c *Client) Get(ctx context.Context, path string, query *Query, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, payload, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, payload, out)
}

func (c *Client) Put(ctx context.Context, path string, payload, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, payload, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, query *Query, payload, out any) error {
	url := c.baseURL + path
	if q := query.Encode(); q != "" {
		url += "?" + q
	}

	var token string
	if c.session != nil {
		token = c.session.Token()
	}

	var (
		data json.RawMessage
		err  error
	)
	if method == http.MethodGet {
		data, err = c.sharedGet(ctx, url, token)
	} else {
		// reads issued after this write must not join a flight started before it
		defer c.writes.Add(1)
		data, err = c.roundTrip(ctx, method, url, token, payload)
	}
	if err != nil {
		return err
	}

	if out == nil || len(data) == 0 || string(data) == "null" {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %v", ErrDecodeEnvelope, err)
	}
	return nil
}

// sharedGet lets identical reads in flight at the same time share one round
// trip. The key carries the write epoch so a read never observes a snapshot
// taken before a write that completed ahead of it. The round trip runs
// detached from any single caller; each caller stops waiting on its own ctx.
func (c *Client) sharedGet(ctx context.Context, url, token string) (json.RawMessage, error) {
	key := strconv.FormatUint(c.writes.Load(), 10) + " " + token + " " + url
	var led bool
	ch := c.group.DoChan(key, func() (any, error) {
		led = true
		flightCtx, cancel := c.detach(ctx)
		defer cancel()
		return c.roundTrip(flightCtx, http.MethodGet, url, token, nil)
	})

	select {
	case res := <-ch:
		if res.Shared && !led {
			c.stats.Deduplicated.Inc()
		}
		if res.Err != nil {
			return nil, res.Err
		}
		data, _ := res.Val.(json.RawMessage)
		return data, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// detach keeps ctx values such as the request id but drops its
// cancellation, bounding the flight by the client timeout instead.
func (c *Client) detach(ctx context.Context) (context.Context, context.CancelFunc) {
	detached := context.WithoutCancel(ctx)
	if c.httpClient.Timeout > 0 {
		return context.WithTimeout(detached, c.httpClient.Timeout)
	}
	return context.WithCancel(detached)
}

func (c *Client) roundTrip(ctx context.Context, method, url, token string, payload any) (json.RawMessage, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "api"),
		zap.String("method", method),
		zap.String("url", url),
	)

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			log.Error("failed to marshal request", zap.Error(err))
			return nil, err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		log.Error("failed creating request", zap.Error(err))
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if h := session.BearerHeader(token); h != "" {
		req.Header.Set("Authorization", h)
	}

	c.stats.Requests.Inc()
	timer := metrics.StartTimer()
	resp, err := c.httpClient.Do(req)
	c.stats.Observe(timer.Duration())
	if err != nil {
		c.stats.Failures.Inc()
		log.Error("request failed", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.stats.Failures.Inc()
		log.Error("failed to read response body", zap.Error(err))
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var env envelope
	var decodeErr error
	if len(bytes.TrimSpace(raw)) > 0 {
		decodeErr = json.Unmarshal(raw, &env)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		c.stats.Failures.Inc()
		apiErr := &APIError{Status: resp.StatusCode, Message: env.Message, Errors: env.Errors}
		c.handleFailure(ctx, log, apiErr)
		return nil, apiErr
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}
	if decodeErr != nil {
		c.stats.Failures.Inc()
		log.Error("failed decoding envelope", zap.Error(decodeErr))
		return nil, fmt.Errorf("%w: %v", ErrDecodeEnvelope, decodeErr)
	}
	if !env.Success {
		c.stats.Failures.Inc()
		log.Warn("server reported failure", zap.String("message", env.Message))
		return nil, &APIError{Status: resp.StatusCode, Message: env.Message, Errors: env.Errors}
	}

	return env.Data, nil
}

func (c *Client) handleFailure(ctx context.Context, log *zap.Logger, apiErr *APIError) {
	switch {
	case apiErr.Status == http.StatusUnauthorized:
		c.stats.Unauthorized.Inc()
		log.Warn("authorization denied, ending session")
		if c.session != nil {
			// teardown must finish even if the caller's ctx is already done
			_ = c.session.Expire(context.WithoutCancel(ctx))
		}
	case apiErr.Status == http.StatusForbidden:
		log.Warn("access forbidden", zap.String("message", apiErr.Message))
	case apiErr.Status >= http.StatusInternalServerError:
		log.Error("server error", zap.Int("status", apiErr.Status), zap.String("message", apiErr.Message))
	default:
		log.Info("request rejected", zap.Int("status", apiErr.Status), zap.String("message", apiErr.Message))
	}
}
