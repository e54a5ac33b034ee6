package gauth

import (
	"context"
	"time"

	"golang.org/x/oauth2"
)

// Credentials is the persisted OAuth credential bundle. Its JSON layout is a
// superset of oauth2.Token, so token files written by other tools load as-is.
type Credentials struct {
	AccessToken  string    `json:"access_token"`
	TokenType    string    `json:"token_type,omitempty"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	Expiry       time.Time `json:"expiry,omitempty"`
	Scopes       []string  `json:"scopes,omitempty"`
}

// Token converts the bundle to an oauth2.Token.
func (c Credentials) Token() *oauth2.Token {
	return &oauth2.Token{
		AccessToken:  c.AccessToken,
		TokenType:    c.TokenType,
		RefreshToken: c.RefreshToken,
		Expiry:       c.Expiry,
	}
}

// HasScopes reports whether every scope in want was granted. A bundle without
// recorded scopes is assumed to cover them.
func (c Credentials) HasScopes(want []string) bool {
	if len(c.Scopes) == 0 {
		return true
	}
	granted := make(map[string]struct{}, len(c.Scopes))
	for _, s := range c.Scopes {
		granted[s] = struct{}{}
	}
	for _, s := range want {
		if _, ok := granted[s]; !ok {
			return false
		}
	}
	return true
}

// FromToken builds a bundle from tok, recording scopes.
func FromToken(tok *oauth2.Token, scopes []string) Credentials {
	return Credentials{
		AccessToken:  tok.AccessToken,
		TokenType:    tok.TokenType,
		RefreshToken: tok.RefreshToken,
		Expiry:       tok.Expiry,
		Scopes:       scopes,
	}
}

// Store loads and saves the credential bundle.
type Store interface {
	Load(ctx context.Context) (Credentials, error)
	Save(ctx context.Context, creds Credentials) error
}

// Authorizer obtains a fresh token from the resource owner.
type Authorizer interface {
	Authorize(ctx context.Context, cfg *oauth2.Config) (*oauth2.Token, error)
}
