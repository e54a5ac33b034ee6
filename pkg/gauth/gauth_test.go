package gauth_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"personal-assistant/pkg/gauth"
	"personal-assistant/pkg/log"
)

const calendarScope = "https://www.googleapis.com/auth/calendar"

type tokenServer struct {
	*httptest.Server
	refreshes atomic.Int32
	exchanges atomic.Int32
	fail      atomic.Bool
}

func newTokenServer(t *testing.T) *tokenServer {
	t.Helper()
	ts := &tokenServer{}
	ts.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ts.fail.Load() {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"invalid_grant"}`))
			return
		}
		r.ParseForm()
		w.Header().Set("Content-Type", "application/json")
		switch r.Form.Get("grant_type") {
		case "refresh_token":
			ts.refreshes.Add(1)
			w.Write([]byte(`{"access_token":"refreshed-access","token_type":"Bearer","expires_in":3600}`))
		case "authorization_code":
			ts.exchanges.Add(1)
			w.Write([]byte(`{"access_token":"fresh-access","refresh_token":"fresh-refresh","token_type":"Bearer","expires_in":3600}`))
		default:
			w.WriteHeader(http.StatusBadRequest)
		}
	}))
	t.Cleanup(ts.Close)
	return ts
}

func (ts *tokenServer) oauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		Scopes:       []string{calendarScope},
		Endpoint: oauth2.Endpoint{
			AuthURL:   ts.URL + "/auth",
			TokenURL:  ts.URL + "/token",
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}

type stubAuthorizer struct {
	calls int
	tok   *oauth2.Token
	err   error
}

func (s *stubAuthorizer) Authorize(ctx context.Context, cfg *oauth2.Config) (*oauth2.Token, error) {
	s.calls++
	return s.tok, s.err
}

func writeCreds(t *testing.T, store *gauth.FileStore, creds gauth.Credentials) {
	t.Helper()
	require.NoError(t, store.Save(context.Background(), creds))
}

func TestFileStore(t *testing.T) {
	dir := t.TempDir()
	store := gauth.NewFileStore(filepath.Join(dir, "nested", "token.json"))

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, gauth.ErrNoCredentials)

	in := gauth.Credentials{
		AccessToken:  "a",
		TokenType:    "Bearer",
		RefreshToken: "r",
		Expiry:       time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
		Scopes:       []string{calendarScope},
	}
	writeCreds(t, store, in)

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	out, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, in.AccessToken, out.AccessToken)
	assert.Equal(t, in.RefreshToken, out.RefreshToken)
	assert.True(t, in.Expiry.Equal(out.Expiry))
	assert.Equal(t, in.Scopes, out.Scopes)
}

func TestFileStoreReadsPlainOAuthToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"access_token": "dummy", "token_type": "Bearer", "expiry": "2030-01-01T00:00:00Z"}`), 0600))

	creds, err := gauth.NewFileStore(path).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "dummy", creds.AccessToken)
	assert.True(t, creds.HasScopes([]string{calendarScope}), "legacy files carry no scopes")
}

func TestFileStoreCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"broken": true`), 0600))

	_, err := gauth.NewFileStore(path).Load(context.Background())
	require.Error(t, err)
	assert.False(t, errors.Is(err, gauth.ErrNoCredentials))
}

func TestEnsure_ValidTokenUsedAsIs(t *testing.T) {
	ts := newTokenServer(t)
	store := gauth.NewFileStore(filepath.Join(t.TempDir(), "token.json"))
	writeCreds(t, store, gauth.Credentials{
		AccessToken:  "cached",
		RefreshToken: "r",
		TokenType:    "Bearer",
		Expiry:       time.Now().Add(time.Hour),
	})
	auth := &stubAuthorizer{}

	m := gauth.NewManager(gauth.Config{OAuth: ts.oauthConfig(), Store: store, Logger: log.NewNop(), Authorizer: auth})
	src, err := m.Ensure(context.Background())
	require.NoError(t, err)

	tok, err := src.Token()
	require.NoError(t, err)
	assert.Equal(t, "cached", tok.AccessToken)
	assert.Zero(t, ts.refreshes.Load())
	assert.Zero(t, auth.calls)
}

func TestEnsure_ExpiredTokenRefreshedAndPersisted(t *testing.T) {
	ts := newTokenServer(t)
	store := gauth.NewFileStore(filepath.Join(t.TempDir(), "token.json"))
	writeCreds(t, store, gauth.Credentials{
		AccessToken:  "stale",
		RefreshToken: "keep-me",
		TokenType:    "Bearer",
		Expiry:       time.Now().Add(-time.Hour),
	})
	auth := &stubAuthorizer{}

	m := gauth.NewManager(gauth.Config{OAuth: ts.oauthConfig(), Store: store, Logger: log.NewNop(), Authorizer: auth})
	src, err := m.Ensure(context.Background())
	require.NoError(t, err)

	tok, err := src.Token()
	require.NoError(t, err)
	assert.Equal(t, "refreshed-access", tok.AccessToken)
	assert.EqualValues(t, 1, ts.refreshes.Load())
	assert.Zero(t, auth.calls)

	saved, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "refreshed-access", saved.AccessToken)
	assert.Equal(t, "keep-me", saved.RefreshToken, "refresh token survives a refresh that omits it")
	assert.Equal(t, []string{calendarScope}, saved.Scopes)
}

func TestEnsure_NoRefreshTokenRunsInteractiveFlow(t *testing.T) {
	ts := newTokenServer(t)
	store := gauth.NewFileStore(filepath.Join(t.TempDir(), "token.json"))
	writeCreds(t, store, gauth.Credentials{AccessToken: "stale", Expiry: time.Now().Add(-time.Hour)})
	auth := &stubAuthorizer{tok: &oauth2.Token{AccessToken: "new", RefreshToken: "nr", Expiry: time.Now().Add(time.Hour)}}

	m := gauth.NewManager(gauth.Config{OAuth: ts.oauthConfig(), Store: store, Logger: log.NewNop(), Authorizer: auth})
	src, err := m.Ensure(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, auth.calls)

	tok, err := src.Token()
	require.NoError(t, err)
	assert.Equal(t, "new", tok.AccessToken)

	saved, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "nr", saved.RefreshToken)
}

func TestEnsure_FailedRefreshFallsBackToAuthorization(t *testing.T) {
	ts := newTokenServer(t)
	ts.fail.Store(true)
	store := gauth.NewFileStore(filepath.Join(t.TempDir(), "token.json"))
	writeCreds(t, store, gauth.Credentials{AccessToken: "stale", RefreshToken: "revoked", Expiry: time.Now().Add(-time.Hour)})
	auth := &stubAuthorizer{tok: &oauth2.Token{AccessToken: "new", Expiry: time.Now().Add(time.Hour)}}

	m := gauth.NewManager(gauth.Config{OAuth: ts.oauthConfig(), Store: store, Logger: log.NewNop(), Authorizer: auth})
	_, err := m.Ensure(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, auth.calls)
}

func TestEnsure_MissingScopeReauthorizes(t *testing.T) {
	ts := newTokenServer(t)
	store := gauth.NewFileStore(filepath.Join(t.TempDir(), "token.json"))
	writeCreds(t, store, gauth.Credentials{
		AccessToken: "cached",
		Expiry:      time.Now().Add(time.Hour),
		Scopes:      []string{"https://www.googleapis.com/auth/tasks"},
	})
	auth := &stubAuthorizer{tok: &oauth2.Token{AccessToken: "new", Expiry: time.Now().Add(time.Hour)}}

	m := gauth.NewManager(gauth.Config{OAuth: ts.oauthConfig(), Store: store, Logger: log.NewNop(), Authorizer: auth})
	_, err := m.Ensure(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, auth.calls)
}

func TestEnsure_NoAuthorizer(t *testing.T) {
	ts := newTokenServer(t)
	store := gauth.NewFileStore(filepath.Join(t.TempDir(), "token.json"))

	m := gauth.NewManager(gauth.Config{OAuth: ts.oauthConfig(), Store: store, Logger: log.NewNop()})
	_, err := m.Ensure(context.Background())
	assert.ErrorIs(t, err, gauth.ErrAuthorizationRequired)
}

func TestTokenSource_ConcurrentRefreshPersistsOnce(t *testing.T) {
	ts := newTokenServer(t)
	store := gauth.NewFileStore(filepath.Join(t.TempDir(), "token.json"))
	auth := &stubAuthorizer{tok: &oauth2.Token{
		AccessToken:  "about-to-expire",
		RefreshToken: "r",
		TokenType:    "Bearer",
		Expiry:       time.Now().Add(-time.Minute),
	}}

	m := gauth.NewManager(gauth.Config{OAuth: ts.oauthConfig(), Store: store, Logger: log.NewNop(), Authorizer: auth})
	src, err := m.Ensure(context.Background())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tok, err := src.Token()
			assert.NoError(t, err)
			assert.Equal(t, "refreshed-access", tok.AccessToken)
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, ts.refreshes.Load())
	saved, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "refreshed-access", saved.AccessToken)
}

// urlCatcher captures the consent URL printed by LocalServerFlow.
type urlCatcher struct {
	ch chan string
}

func (u *urlCatcher) Write(p []byte) (int, error) {
	line := strings.TrimSpace(string(p))
	if strings.HasPrefix(line, "http") {
		u.ch <- line
	}
	return len(p), nil
}

func TestLocalServerFlow(t *testing.T) {
	ts := newTokenServer(t)
	catcher := &urlCatcher{ch: make(chan string, 1)}
	flow := &gauth.LocalServerFlow{Out: catcher, Timeout: 10 * time.Second}

	go func() {
		raw := <-catcher.ch
		authURL, err := url.Parse(raw)
		if err != nil {
			return
		}
		q := authURL.Query()
		if q.Get("access_type") != "offline" || q.Get("code_challenge") == "" {
			return
		}
		cb := q.Get("redirect_uri") + "?code=the-code&state=" + url.QueryEscape(q.Get("state"))
		resp, err := http.Get(cb)
		if err == nil {
			resp.Body.Close()
		}
	}()

	tok, err := flow.Authorize(context.Background(), ts.oauthConfig())
	require.NoError(t, err)
	assert.Equal(t, "fresh-access", tok.AccessToken)
	assert.Equal(t, "fresh-refresh", tok.RefreshToken)
	assert.EqualValues(t, 1, ts.exchanges.Load())
}

func TestLocalServerFlow_StateMismatch(t *testing.T) {
	ts := newTokenServer(t)
	catcher := &urlCatcher{ch: make(chan string, 1)}
	flow := &gauth.LocalServerFlow{Out: catcher, Timeout: 10 * time.Second}

	go func() {
		authURL, err := url.Parse(<-catcher.ch)
		if err != nil {
			return
		}
		resp, err := http.Get(authURL.Query().Get("redirect_uri") + "?code=x&state=forged")
		if err == nil {
			resp.Body.Close()
		}
	}()

	_, err := flow.Authorize(context.Background(), ts.oauthConfig())
	assert.ErrorIs(t, err, gauth.ErrStateMismatch)
}

func TestLocalServerFlow_ContextCancelled(t *testing.T) {
	ts := newTokenServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	flow := &gauth.LocalServerFlow{Timeout: time.Second}
	_, err := flow.Authorize(ctx, ts.oauthConfig())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoadOAuthConfig(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "credentials.json")
	require.NoError(t, os.WriteFile(good, []byte(`{
		"installed": {
			"client_id": "test-client-id.apps.googleusercontent.com",
			"client_secret": "test-secret",
			"auth_uri": "https://accounts.google.com/o/oauth2/auth",
			"token_uri": "https://oauth2.googleapis.com/token",
			"redirect_uris": ["http://localhost"]
		}
	}`), 0600))

	cfg, err := gauth.LoadOAuthConfig(good, calendarScope)
	require.NoError(t, err)
	assert.Equal(t, "test-client-id.apps.googleusercontent.com", cfg.ClientID)
	assert.Equal(t, []string{calendarScope}, cfg.Scopes)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"broken":true}`), 0600))
	_, err = gauth.LoadOAuthConfig(bad, calendarScope)
	assert.Error(t, err)

	_, err = gauth.LoadOAuthConfig(filepath.Join(dir, "missing.json"), calendarScope)
	assert.Error(t, err)
}
