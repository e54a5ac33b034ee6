package intent

import "context"

// UseCase defines the business logic interface for the intent domain.
type UseCase interface {
	// Parse classifies the text and extracts its named entities.
	Parse(ctx context.Context, input ParseInput) (ParseOutput, error)
}
