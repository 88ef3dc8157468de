// Package console is the application core: session bootstrap, fetch
// coordination, filtering, revenue aggregation and the refund workflow.
// It talks to the outside world only through the ports in ports.go.
package console

import (
	"context"
	"log/slog"
	"sync"

	"merchant-console/internal/auth"
)

// SessionState tracks the token bootstrap that gates every fetch.
type SessionState int

const (
	SessionLoading SessionState = iota
	SessionReady
	SessionFailed
)

// Session acquires the access token exactly once per activation. A failed
// session is only retried when the user re-invokes Start; there is no
// automatic retry.
type Session struct {
	tokens    auth.TokenSource
	presenter PresentationPort
	logger    *slog.Logger

	mu    sync.Mutex
	state SessionState
	token auth.Token
	err   error
}

func NewSession(tokens auth.TokenSource, presenter PresentationPort, logger *slog.Logger) *Session {
	return &Session{
		tokens:    tokens,
		presenter: presenter,
		logger:    logger,
		state:     SessionLoading,
	}
}

// Start performs the token acquisition. Calling Start on a ready session is
// a no-op; calling it on a failed session is the user's retry.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.state == SessionReady {
		s.mu.Unlock()
		return nil
	}
	s.state = SessionLoading
	s.err = nil
	s.mu.Unlock()

	token, err := s.tokens.Acquire(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.state = SessionFailed
		s.err = err
		s.logger.Error("token acquisition failed", "error", err)
		s.presenter.Notify(NoteError, "Could not sign in: "+err.Error())
		return err
	}

	s.state = SessionReady
	s.token = token
	s.logger.Info("session ready")
	return nil
}

func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Token returns the acquired token; ok is false unless the session is ready.
func (s *Session) Token() (auth.Token, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.state == SessionReady
}

func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
