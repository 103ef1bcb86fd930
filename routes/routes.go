package routes

import (
	"net/http"

	"salonkit/handlers"
	"salonkit/middleware"
	"salonkit/utils"

	"github.com/gin-gonic/gin"
)

// RegisterAvailabilityRoutes registers the read-side scheduling endpoints.
// Identity is optional here: anonymous visitors browse availability, but a
// signed-in caller gets the personalized (self-filtered) daily payload.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.Use(middleware.OptionalIdentity())
		api.GET("/calendar", hb.GetCalendarMetaHandler)
		api.GET("/slots", hb.GetDailySlotsHandler)
	}
}

// RegisterMenuRoutes registers menu browsing endpoints.
func RegisterMenuRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/menus")
	{
		api.Use(middleware.OptionalIdentity())
		api.GET("", hb.ListMenusHandler)
		api.GET("/:id", hb.GetMenuHandler)
	}
}

// RegisterReservationRoutes registers the booking write surface.
func RegisterReservationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reservations")
	{
		api.Use(middleware.RequireIdentity())
		api.POST("", hb.CreateReservationHandler)
		api.DELETE("/:id", hb.CancelReservationHandler)
	}
}

// RegisterShiftRoutes registers the schedule template write surface,
// restricted to managers.
func RegisterShiftRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/shifts")
	{
		api.Use(middleware.RequireIdentity(), middleware.RequireManage())
		api.PUT("/:staffId/:year/:month", hb.UpsertShiftHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint serving the
// monitor's latest snapshot. A degraded dependency flips the status code
// so load balancers can act on it.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		hs := utils.GetHealthStatus()
		code := http.StatusOK
		status := "ok"
		if !hs.Mongo || !hs.Redis {
			code = http.StatusServiceUnavailable
			status = "degraded"
		}
		c.JSON(code, gin.H{
			"status":    status,
			"mongo":     hs.Mongo,
			"redis":     hs.Redis,
			"checkedAt": hs.CheckedAt,
		})
	})
}
