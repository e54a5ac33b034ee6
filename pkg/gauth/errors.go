package gauth

import "errors"

var (
	ErrNoCredentials            = errors.New("no cached credentials")
	ErrAuthorizationRequired    = errors.New("interactive authorization required but disabled")
	ErrMissingAuthorizationCode = errors.New("no authorization code in callback")
	ErrStateMismatch            = errors.New("oauth state mismatch")
)
