package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"personal-assistant/pkg/gemini"
	"personal-assistant/pkg/openai"
)

var (
	// ErrAllProvidersFailed is returned when every attempted provider failed.
	// It wraps the last provider's error.
	ErrAllProvidersFailed = errors.New("all providers failed")

	// ErrNoProvidersConfigured is returned by a Manager without providers.
	ErrNoProvidersConfigured = errors.New("no providers configured")

	// ErrInvalidRequest is returned for a nil request or one without messages.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrProviderTimeout marks a call that ran out of time, either the
	// provider's HTTP timeout or the manager's global deadline.
	ErrProviderTimeout = errors.New("provider timeout")

	// ErrProviderRateLimited marks an HTTP 429 from a provider.
	ErrProviderRateLimited = errors.New("provider rate limited")
)

// ProviderError attributes an error to the provider that produced it.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// classifyError tags err with ErrProviderTimeout or ErrProviderRateLimited
// when it is one of those; other errors are returned unchanged.
func classifyError(err error) error {
	if err == nil || errors.Is(err, ErrProviderTimeout) || errors.Is(err, ErrProviderRateLimited) {
		return err
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrProviderTimeout, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %w", ErrProviderTimeout, err)
	}

	if statusCode(err) == http.StatusTooManyRequests {
		return fmt.Errorf("%w: %w", ErrProviderRateLimited, err)
	}
	return err
}

// statusCode extracts the HTTP status of a backend API error, or 0.
func statusCode(err error) int {
	var oaErr *openai.APIError
	if errors.As(err, &oaErr) {
		return oaErr.StatusCode
	}
	var gmErr *gemini.APIError
	if errors.As(err, &gmErr) {
		return gmErr.StatusCode
	}
	return 0
}
