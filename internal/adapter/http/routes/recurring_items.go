package routes

import (
	"recurring_finance/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathRecurringItems = "/spaces/:space_id/recurring-items"
)

func addRecurringItemRoutes(rg *gin.RouterGroup, auth gin.HandlerFunc, h *handlers.RecurringItemHandler) {
	items := rg.Group(PathRecurringItems, auth)
	{
		items.POST("", h.CreateRecurringItem)
		items.GET("", h.ListRecurringItems)

		items.GET("/due", h.DueRecurringItems)
		items.GET("/summary", h.Summary)
		items.POST("/run-due", h.RunDue)

		items.GET("/:id", h.GetRecurringItem)
		items.PATCH("/:id", h.UpdateRecurringItem)
		items.DELETE("/:id", h.DeleteRecurringItem)
		items.POST("/:id/execute", h.MarkExecuted)
		items.POST("/:id/pause", h.PauseRecurringItem)
		items.POST("/:id/resume", h.ResumeRecurringItem)
		items.POST("/:id/reschedule", h.RescheduleRecurringItem)
	}
}
