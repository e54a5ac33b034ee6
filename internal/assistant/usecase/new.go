package usecase

import (
	"context"

	"personal-assistant/internal/assistant"
	"personal-assistant/pkg/llmprovider"
	pkgLog "personal-assistant/pkg/log"
)

// DefaultMaxTokens caps the completion length when none is configured.
const DefaultMaxTokens = 150

// Generator is the subset of *llmprovider.Manager the use case needs.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

type implUseCase struct {
	l         pkgLog.Logger
	llm       Generator
	maxTokens int
}

// New creates a new assistant UseCase instance.
func New(l pkgLog.Logger, llm Generator, maxTokens int) assistant.UseCase {
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	return &implUseCase{
		l:         l,
		llm:       llm,
		maxTokens: maxTokens,
	}
}
