package session

import (
	"context"
	"sync"
	"time"
)

// State is the session's authentication state.
type State int

const (
	// StateLoading is the initial state, before the stored token has been
	// validated against the server.
	StateLoading State = iota
	StateAuthenticated
	StateAnonymous
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateAuthenticated:
		return "authenticated"
	case StateAnonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

// signingOutWindow is how long the "is signing out" flag stays up after a
// deliberate sign-out, so navigation-dependent UI can tell it apart from a
// silently expired session.
const signingOutWindow = time.Second

// Session holds the client-side mirror of the current authenticated user.
// Expected failures (bad credentials, expired tokens) are returned as
// values, never panics, so the UI can render inline feedback.
type Session struct {
	mu         sync.Mutex
	api        *Client
	store      TokenStore
	state      State
	user       *User
	signingOut bool
}

// New creates a Session in the loading state. Call Init to resolve it.
func New(api *Client, store TokenStore) *Session {
	return &Session{api: api, store: store, state: StateLoading}
}

// Init validates any stored token against the server. Whatever happens —
// no token, unreadable store, network failure, rejected token — the
// session leaves the loading state: failures discard the stored token and
// land in anonymous.
func (s *Session) Init(ctx context.Context) {
	token, err := s.store.Load()
	if err != nil || token == "" {
		s.setAnonymous()
		return
	}

	user, err := s.api.Me(ctx, token)
	if err != nil {
		_ = s.store.Clear()
		s.setAnonymous()
		return
	}

	s.mu.Lock()
	s.state = StateAuthenticated
	s.user = user
	s.mu.Unlock()
}

// SignUp creates an account and transitions to authenticated on success.
// On failure the session keeps its current state and the error is returned
// for inline display.
func (s *Session) SignUp(ctx context.Context, email, password string) (*User, error) {
	result, err := s.api.SignUp(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return s.adopt(result)
}

// SignIn authenticates and transitions to authenticated on success.
func (s *Session) SignIn(ctx context.Context, email, password string) (*User, error) {
	result, err := s.api.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return s.adopt(result)
}

// SignOut discards the stored token and transitions to anonymous
// immediately. The SigningOut flag stays up briefly so the UI can
// distinguish a deliberate sign-out from an expired session.
func (s *Session) SignOut() {
	_ = s.store.Clear()

	s.mu.Lock()
	s.state = StateAnonymous
	s.user = nil
	s.signingOut = true
	s.mu.Unlock()

	time.AfterFunc(signingOutWindow, func() {
		s.mu.Lock()
		s.signingOut = false
		s.mu.Unlock()
	})
}

// State returns the current session state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// CurrentUser returns the authenticated user, or nil.
func (s *Session) CurrentUser() *User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// SigningOut reports whether a deliberate sign-out happened within the
// last signingOutWindow.
func (s *Session) SigningOut() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.signingOut
}

func (s *Session) adopt(result *AuthResult) (*User, error) {
	if err := s.store.Save(result.Token); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.state = StateAuthenticated
	s.user = result.User
	s.mu.Unlock()
	return result.User, nil
}

func (s *Session) setAnonymous() {
	s.mu.Lock()
	s.state = StateAnonymous
	s.user = nil
	s.mu.Unlock()
}
