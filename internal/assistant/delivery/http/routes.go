package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(r gin.IRoutes, h Handler) {
	r.POST("/generate-email", h.GenerateEmail)
	r.POST("/get-suggestions", h.GetSuggestions)
}
