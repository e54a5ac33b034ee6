package gauth

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"personal-assistant/pkg/log"
)

// Config wires a Manager.
type Config struct {
	OAuth  *oauth2.Config
	Store  Store
	Logger log.Logger
	// Authorizer is used when no usable token is cached. Nil disables the
	// interactive flow and Ensure fails with ErrAuthorizationRequired instead.
	Authorizer Authorizer
}

// Manager owns the credential bundle lifecycle for one OAuth client.
type Manager struct {
	oauth      *oauth2.Config
	store      Store
	authorizer Authorizer
	l          log.Logger
}

// NewManager creates a Manager.
func NewManager(cfg Config) *Manager {
	return &Manager{
		oauth:      cfg.OAuth,
		store:      cfg.Store,
		authorizer: cfg.Authorizer,
		l:          cfg.Logger,
	}
}

// LoadOAuthConfig reads an OAuth client secrets file ("installed" or "web").
func LoadOAuthConfig(path string, scopes ...string) (*oauth2.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read client secrets %s: %w", path, err)
	}
	cfg, err := google.ConfigFromJSON(data, scopes...)
	if err != nil {
		return nil, fmt.Errorf("invalid client secrets %s: %w", path, err)
	}
	return cfg, nil
}

// Ensure returns a token source backed by a usable credential bundle.
//
// A valid cached token is used as-is. An expired token with a refresh token is
// refreshed and re-persisted. Anything else runs the interactive flow.
func (m *Manager) Ensure(ctx context.Context) (oauth2.TokenSource, error) {
	creds, err := m.store.Load(ctx)
	switch {
	case err == nil:
	case errors.Is(err, ErrNoCredentials):
		m.l.Infof(ctx, "gauth.Ensure: no cached credentials")
	default:
		m.l.Warnf(ctx, "gauth.Ensure: ignoring unreadable credentials: %v", err)
		creds = Credentials{}
	}

	if creds.AccessToken != "" || creds.RefreshToken != "" {
		if !creds.HasScopes(m.oauth.Scopes) {
			m.l.Warnf(ctx, "gauth.Ensure: cached credentials lack required scopes, re-authorizing")
		} else if tok, ok := m.usable(ctx, creds); ok {
			return m.tokenSource(ctx, tok), nil
		}
	}

	return m.authorize(ctx)
}

// usable returns a valid token from creds, refreshing and persisting it when needed.
func (m *Manager) usable(ctx context.Context, creds Credentials) (*oauth2.Token, bool) {
	tok := creds.Token()
	if tok.Valid() {
		return tok, true
	}
	if tok.RefreshToken == "" {
		m.l.Infof(ctx, "gauth.Ensure: cached token expired without refresh token")
		return nil, false
	}

	refreshed, err := m.oauth.TokenSource(ctx, tok).Token()
	if err != nil {
		m.l.Warnf(ctx, "gauth.Ensure: token refresh failed: %v", err)
		return nil, false
	}
	if err := m.store.Save(ctx, FromToken(refreshed, m.oauth.Scopes)); err != nil {
		m.l.Warnf(ctx, "gauth.Ensure: failed to persist refreshed token: %v", err)
	}
	m.l.Infof(ctx, "gauth.Ensure: token refreshed")
	return refreshed, true
}

func (m *Manager) authorize(ctx context.Context) (oauth2.TokenSource, error) {
	if m.authorizer == nil {
		return nil, ErrAuthorizationRequired
	}

	tok, err := m.authorizer.Authorize(ctx, m.oauth)
	if err != nil {
		return nil, fmt.Errorf("authorization failed: %w", err)
	}
	if err := m.store.Save(ctx, FromToken(tok, m.oauth.Scopes)); err != nil {
		return nil, fmt.Errorf("failed to persist credentials: %w", err)
	}
	m.l.Infof(ctx, "gauth.Ensure: authorization complete")
	return m.tokenSource(ctx, tok), nil
}

// tokenSource refreshes tok on demand and persists every new access token.
func (m *Manager) tokenSource(ctx context.Context, tok *oauth2.Token) oauth2.TokenSource {
	ps := &persistingSource{
		base:   m.oauth.TokenSource(ctx, tok),
		store:  m.store,
		scopes: m.oauth.Scopes,
		l:      m.l,
		last:   tok.AccessToken,
	}
	return oauth2.ReuseTokenSource(tok, ps)
}

// persistingSource is safe for concurrent use.
type persistingSource struct {
	mu     sync.Mutex
	base   oauth2.TokenSource
	store  Store
	scopes []string
	l      log.Logger
	last   string
}

func (s *persistingSource) Token() (*oauth2.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tok, err := s.base.Token()
	if err != nil {
		return nil, err
	}
	if tok.AccessToken != s.last {
		ctx := context.Background()
		if err := s.store.Save(ctx, FromToken(tok, s.scopes)); err != nil {
			s.l.Warnf(ctx, "gauth: failed to persist refreshed token: %v", err)
		}
		s.last = tok.AccessToken
	}
	return tok, nil
}
