package logger

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

const RequestIDHeader = "X-Request-ID"

// Transport tags every outgoing request with a request id and logs its outcome.
type Transport struct {
	Next http.RoundTripper
}

func NewTransport(next http.RoundTripper) *Transport {
	if next == nil {
		next = http.DefaultTransport
	}
	return &Transport{Next: next}
}

func (t *Transport) RoundTrip(r *http.Request) (*http.Response, error) {
	ctx, reqID := EnsureRequestID(r.Context())
	r = r.Clone(ctx)
	if r.Header.Get(RequestIDHeader) == "" {
		r.Header.Set(RequestIDHeader, reqID)
	}

	start := time.Now()
	log := FromCtx(ctx).With(
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)

	resp, err := t.Next.RoundTrip(r)
	if err != nil {
		log.Warn("outgoing request failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return nil, err
	}

	log.Debug("outgoing request",
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)
	return resp, nil
}
