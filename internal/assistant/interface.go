package assistant

import "context"

// UseCase defines the business logic interface for the assistant domain.
type UseCase interface {
	// GenerateEmail drafts a professional email about the subject.
	GenerateEmail(ctx context.Context, input GenerateEmailInput) (GenerateEmailOutput, error)

	// GetSuggestions proposes useful actions for the given context.
	GetSuggestions(ctx context.Context, input SuggestionsInput) (SuggestionsOutput, error)
}
