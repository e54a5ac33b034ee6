package usecase

import (
	"context"
	"fmt"

	"personal-assistant/internal/intent"
)

// Parse classifies the input by keyword and runs entity extraction over it.
func (uc *implUseCase) Parse(ctx context.Context, input intent.ParseInput) (intent.ParseOutput, error) {
	in := intent.Classify(input.Text)

	entities, err := uc.ner.Extract(ctx, input.Text)
	if err != nil {
		uc.l.Errorf(ctx, "internal.intent.usecase.Parse: extract entities: %v", err)
		return intent.ParseOutput{}, fmt.Errorf("%w: %v", intent.ErrEntityExtraction, err)
	}

	uc.l.Debugf(ctx, "internal.intent.usecase.Parse: intent=%q entities=%d", in, len(entities))

	return intent.ParseOutput{
		Intent:   in,
		Entities: entities,
	}, nil
}
