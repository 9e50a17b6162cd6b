package auth

import (
	"context"
	"fmt"

	"edumart/internal/logger"
	"edumart/internal/session"
	"edumart/internal/slice"

	"go.uber.org/zap"
)

type State struct {
	slice.Status
	User            *User
	Token           string
	IsAuthenticated bool
}

// Slice mirrors the signed-in user. The credential itself lives in the
// injected session; the slice keeps a copy for views.
type Slice struct {
	*slice.Base
	svc     Service
	session *session.Session
	state   State
}

// NewSlice seeds the state from whatever the session already holds.
func NewSlice(svc Service, sess *session.Session) *Slice {
	s := &Slice{Base: slice.NewBase("auth"), svc: svc, session: sess}
	s.syncFromSession()
	return s
}

func (s *Slice) State() State {
	var out State
	s.Read(func(st slice.Status) {
		out = s.state
		out.Status = st
		if s.state.User != nil {
			u := *s.state.User
			out.User = &u
		}
	})
	return out
}

func (s *Slice) IsAuthenticated() bool {
	var ok bool
	s.Read(func(slice.Status) { ok = s.state.IsAuthenticated })
	return ok
}

func (s *Slice) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	return slice.Run(ctx, s.Base, "session", func(ctx context.Context) (*LoginResponse, error) {
		resp, err := s.svc.Login(ctx, req)
		if err != nil {
			return nil, err
		}
		return resp, s.persist(ctx, resp)
	}, s.applySignIn)
}

func (s *Slice) Register(ctx context.Context, req RegisterRequest) (*LoginResponse, error) {
	return slice.Run(ctx, s.Base, "session", func(ctx context.Context) (*LoginResponse, error) {
		resp, err := s.svc.Register(ctx, req)
		if err != nil {
			return nil, err
		}
		return resp, s.persist(ctx, resp)
	}, s.applySignIn)
}

// LoadCurrentUser refreshes the profile of the signed-in user.
func (s *Slice) LoadCurrentUser(ctx context.Context) (*User, error) {
	return slice.Run(ctx, s.Base, "user", func(ctx context.Context) (*User, error) {
		if !s.session.Authenticated() {
			return nil, ErrNotAuthenticated
		}
		u, err := s.svc.Me(ctx)
		if err != nil {
			return nil, err
		}
		if err := s.session.SetUser(ctx, u); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedPersistSession, err)
		}
		return u, nil
	}, s.applyUser)
}

func (s *Slice) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*User, error) {
	return slice.Run(ctx, s.Base, "user", func(ctx context.Context) (*User, error) {
		u, err := s.svc.UpdateProfile(ctx, req)
		if err != nil {
			return nil, err
		}
		if err := s.session.SetUser(ctx, u); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedPersistSession, err)
		}
		return u, nil
	}, s.applyUser)
}

func (s *Slice) ChangePassword(ctx context.Context, req ChangePasswordRequest) (bool, error) {
	return slice.Run(ctx, s.Base, "", func(ctx context.Context) (bool, error) {
		return s.svc.ChangePassword(ctx, req)
	}, nil)
}

// Logout ends the session. Listeners of the session see EventSignedOut.
func (s *Slice) Logout(ctx context.Context) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "slice"),
		zap.String("method", "Logout"),
	)

	err := s.session.End(ctx)
	if err != nil {
		log.Warn("session teardown incomplete", zap.Error(err))
	}
	s.Reset()
	return err
}

// Reset clears the state and drops in-flight results.
func (s *Slice) Reset() {
	s.Base.Reset(func() { s.state = State{} })
}

// HandleSessionEvent keeps the slice in step with session teardown done
// elsewhere, e.g. by the transport on a 401.
func (s *Slice) HandleSessionEvent(ev session.Event) {
	switch ev.Kind {
	case session.EventSignedOut, session.EventUnauthorized:
		s.Reset()
	}
}

func (s *Slice) persist(ctx context.Context, resp *LoginResponse) error {
	if err := s.session.Start(ctx, resp.Token, resp.User); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedPersistSession, err)
	}
	return nil
}

func (s *Slice) applySignIn(resp *LoginResponse) {
	u := resp.User
	s.state.User = &u
	s.state.Token = resp.Token
	s.state.IsAuthenticated = true
}

func (s *Slice) applyUser(u *User) {
	cp := *u
	s.state.User = &cp
}

func (s *Slice) syncFromSession() {
	if s.session == nil || !s.session.Authenticated() {
		return
	}
	s.state.Token = s.session.Token()
	s.state.IsAuthenticated = true

	var u User
	if ok, err := s.session.DecodeUser(&u); err == nil && ok {
		s.state.User = &u
	}
}
