package http

import (
	"github.com/gin-gonic/gin"

	"personal-assistant/internal/intent"
	"personal-assistant/pkg/log"
)

// Handler is the public interface for the intent HTTP delivery layer.
type Handler interface {
	ParseIntent(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc intent.UseCase
}

// New creates a new HTTP handler for the intent domain.
func New(l log.Logger, uc intent.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
