package client

import (
	"context"
	"errors"
	"net/http"

	"finvest_backend/internal/services/dto"
)

// SessionState is the client's view of its own authentication.
type SessionState int

const (
	// StateAnonymous: no credentials, or the server rejected them.
	StateAnonymous SessionState = iota
	// StateVerifying: stored credentials exist but the server has not
	// confirmed them yet. Protected flows must not run in this state.
	StateVerifying
	// StateAuthenticated: the server confirmed the token.
	StateAuthenticated
)

func (s SessionState) String() string {
	switch s {
	case StateVerifying:
		return "verifying"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}

// ErrNotAuthenticated signals that a protected flow was entered
// without a confirmed session; callers route the user to login.
var ErrNotAuthenticated = errors.New("not authenticated")

// Session drives the login lifecycle. A stored token is never trusted
// on presence alone: Open moves through Verifying and only a
// successful server probe lands in Authenticated.
type Session struct {
	api   *APIClient
	store CredentialStore

	state SessionState
	user  dto.AuthUser
}

func NewSession(api *APIClient, store CredentialStore) *Session {
	return &Session{
		api:   api,
		store: store,
		state: StateAnonymous,
	}
}

func (s *Session) State() SessionState {
	return s.state
}

// User returns the confirmed identity; the zero value while not
// authenticated.
func (s *Session) User() dto.AuthUser {
	return s.user
}

// Open restores the session from stored credentials. Missing
// credentials land in Anonymous immediately. Present credentials are
// probed against the server; a rejected token is cleared from the
// store so the next run does not retry it, while a transport failure
// or server fault keeps credentials and reports the error from the
// Verifying state.
func (s *Session) Open(ctx context.Context) error {
	creds, err := s.store.Load()
	if err != nil {
		if errors.Is(err, ErrNoCredentials) {
			s.toAnonymous()
			return nil
		}
		return err
	}

	s.state = StateVerifying
	s.api.SetToken(creds.Token)

	verified, err := s.api.Verify(ctx)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && isAuthRejection(apiErr) {
			// The server looked at the token and said no.
			_ = s.store.Clear()
			s.toAnonymous()
			return nil
		}
		// Anything else, a server fault included, is not a verdict on
		// the token: keep the credentials for the next attempt.
		return err
	}

	s.state = StateAuthenticated
	s.user = verified.User
	return nil
}

// Register creates an account and starts an authenticated session.
func (s *Session) Register(ctx context.Context, name, email, password string) error {
	resp, err := s.api.Register(ctx, name, email, password)
	if err != nil {
		return err
	}
	return s.establish(resp)
}

// Login starts an authenticated session with email and password.
func (s *Session) Login(ctx context.Context, email, password string) error {
	resp, err := s.api.Login(ctx, email, password)
	if err != nil {
		return err
	}
	return s.establish(resp)
}

// GoogleLogin starts an authenticated session from a Google credential.
func (s *Session) GoogleLogin(ctx context.Context, credential string) error {
	resp, err := s.api.GoogleLogin(ctx, credential)
	if err != nil {
		return err
	}
	return s.establish(resp)
}

// Logout clears the session locally. The token itself stays valid
// until expiry; there is no server-side revocation.
func (s *Session) Logout() error {
	err := s.store.Clear()
	s.toAnonymous()
	return err
}

// RequireAuthenticated gates protected flows.
func (s *Session) RequireAuthenticated() error {
	if s.state != StateAuthenticated {
		return ErrNotAuthenticated
	}
	return nil
}

func (s *Session) establish(resp *dto.AuthResponse) error {
	if err := s.store.Save(&Credentials{
		Token: resp.Token,
		ID:    resp.User.ID,
		Name:  resp.User.Name,
		Email: resp.User.Email,
	}); err != nil {
		return err
	}

	s.api.SetToken(resp.Token)
	s.state = StateAuthenticated
	s.user = resp.User
	return nil
}

func isAuthRejection(apiErr *APIError) bool {
	return apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden
}

func (s *Session) toAnonymous() {
	s.state = StateAnonymous
	s.user = dto.AuthUser{}
	s.api.SetToken("")
}
