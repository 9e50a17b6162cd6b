// Package session holds the client's credential and the signed-in user's
// profile. A Session is created once and handed to the transport client and
// the auth slice; it is the only cross-cutting mutable state in the client.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"edumart/internal/logger"
	"edumart/internal/storage"

	"go.uber.org/zap"
)

var ErrEmptyToken = errors.New("session token is empty")

type Session struct {
	store storage.Storage

	mu    sync.RWMutex
	token string
	user  json.RawMessage

	subMu  sync.Mutex
	subs   map[int]chan Event
	nextID int
}

func New(store storage.Storage) *Session {
	return &Session{
		store: store,
		subs:  make(map[int]chan Event),
	}
}

// Restore loads a previously persisted credential and profile.
func (s *Session) Restore(ctx context.Context) error {
	token, _, err := s.store.Get(ctx, storage.KeyToken)
	if err != nil {
		return fmt.Errorf("restore token: %w", err)
	}
	user, _, err := s.store.Get(ctx, storage.KeyUser)
	if err != nil {
		return fmt.Errorf("restore user: %w", err)
	}

	s.mu.Lock()
	s.token = token
	s.user = nil
	if token != "" && user != "" && json.Valid([]byte(user)) {
		s.user = json.RawMessage(user)
	}
	s.mu.Unlock()
	return nil
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the stored profile as raw JSON, nil when signed out.
func (s *Session) User() json.RawMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	out := make(json.RawMessage, len(s.user))
	copy(out, s.user)
	return out
}

// DecodeUser unmarshals the stored profile into out. It reports false when no
// profile is stored.
func (s *Session) DecodeUser(out any) (bool, error) {
	raw := s.User()
	if raw == nil {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// Start persists a new credential and profile and announces EventSignedIn.
func (s *Session) Start(ctx context.Context, token string, user any) error {
	if token == "" {
		return ErrEmptyToken
	}
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	if err := s.store.Set(ctx, storage.KeyToken, token); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	if err := s.store.Set(ctx, storage.KeyUser, string(raw)); err != nil {
		return fmt.Errorf("persist user: %w", err)
	}

	s.mu.Lock()
	s.token = token
	s.user = raw
	s.mu.Unlock()

	s.publish(Event{Kind: EventSignedIn, At: time.Now()})
	return nil
}

// SetUser replaces the stored profile, keeping the credential.
func (s *Session) SetUser(ctx context.Context, user any) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	if err := s.store.Set(ctx, storage.KeyUser, string(raw)); err != nil {
		return fmt.Errorf("persist user: %w", err)
	}
	s.mu.Lock()
	s.user = raw
	s.mu.Unlock()
	return nil
}

// End is an explicit logout.
func (s *Session) End(ctx context.Context) error {
	return s.teardown(ctx, EventSignedOut)
}

// Expire tears the session down after the server denied authorization.
func (s *Session) Expire(ctx context.Context) error {
	return s.teardown(ctx, EventUnauthorized)
}

func (s *Session) teardown(ctx context.Context, kind EventKind) error {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	// memory is cleared even when storage fails so no further request carries the token
	errToken := s.store.Delete(ctx, storage.KeyToken)
	errUser := s.store.Delete(ctx, storage.KeyUser)

	s.publish(Event{Kind: kind, At: time.Now()})

	if err := errors.Join(errToken, errUser); err != nil {
		logger.FromCtx(ctx).Error("failed to clear persisted session",
			zap.String("layer", "session"),
			zap.String("event", kind.String()),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// ExpiresAt reads the exp claim of the current token, if any.
func (s *Session) ExpiresAt() (time.Time, bool) {
	return TokenExpiry(s.Token())
}
