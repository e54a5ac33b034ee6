package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(r gin.IRoutes, h Handler) {
	r.POST("/add-event", h.AddEvent)
	r.POST("/set-reminder", h.SetReminder)
	r.GET("/view-upcoming-events", h.ViewUpcomingEvents)
	r.GET("/view-upcoming-events.ics", h.ExportUpcomingEvents)
}
