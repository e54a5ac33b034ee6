package usecase

import (
	"context"
	"fmt"
	"strings"

	"personal-assistant/internal/assistant"
	"personal-assistant/pkg/llmprovider"
)

// GenerateEmail drafts an email body with the language model.
func (uc *implUseCase) GenerateEmail(ctx context.Context, input assistant.GenerateEmailInput) (assistant.GenerateEmailOutput, error) {
	text, provider, err := uc.generate(ctx, buildEmailPrompt(input.Subject, input.Context))
	if err != nil {
		uc.l.Errorf(ctx, "internal.assistant.usecase.GenerateEmail: %v", err)
		return assistant.GenerateEmailOutput{}, err
	}

	return assistant.GenerateEmailOutput{EmailBody: text, Provider: provider}, nil
}

// GetSuggestions asks the language model for actions that fit the context.
func (uc *implUseCase) GetSuggestions(ctx context.Context, input assistant.SuggestionsInput) (assistant.SuggestionsOutput, error) {
	text, provider, err := uc.generate(ctx, buildSuggestionsPrompt(input.Context))
	if err != nil {
		uc.l.Errorf(ctx, "internal.assistant.usecase.GetSuggestions: %v", err)
		return assistant.SuggestionsOutput{}, err
	}

	return assistant.SuggestionsOutput{Suggestions: text, Provider: provider}, nil
}

// generate returns the whitespace-trimmed completion for a single prompt.
func (uc *implUseCase) generate(ctx context.Context, prompt string) (string, string, error) {
	resp, err := uc.llm.GenerateContent(ctx, llmprovider.NewPrompt(prompt, uc.maxTokens))
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", assistant.ErrGeneration, err)
	}
	return strings.TrimSpace(resp.Text), resp.ProviderName, nil
}
