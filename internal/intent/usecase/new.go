package usecase

import (
	"personal-assistant/internal/intent"
	pkgLog "personal-assistant/pkg/log"
	"personal-assistant/pkg/ner"
)

type implUseCase struct {
	l   pkgLog.Logger
	ner ner.Extractor
}

// New creates a new intent UseCase instance.
func New(l pkgLog.Logger, extractor ner.Extractor) intent.UseCase {
	return &implUseCase{
		l:   l,
		ner: extractor,
	}
}
