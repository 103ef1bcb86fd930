package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"salonkit/middleware"
	"salonkit/services/availability"
	"salonkit/utils"

	"github.com/gin-gonic/gin"
)

func callerFromContext(c *gin.Context) availability.Caller {
	return availability.Caller{
		UserID:    c.GetString(middleware.CtxUserID),
		CanManage: c.GetBool(middleware.CtxCanManage),
	}
}

// availabilityErrorStatus maps engine error codes to HTTP statuses.
func availabilityErrorStatus(code string) int {
	switch code {
	case availability.CodeMenuNotFound:
		return http.StatusNotFound
	case availability.CodeMenuNotPublished:
		return http.StatusForbidden
	case availability.CodeInvalidYear, availability.CodeInvalidMonth, availability.CodeInvalidDate:
		return http.StatusBadRequest
	default:
		// archived / online-disabled / staff configuration problems
		return http.StatusUnprocessableEntity
	}
}

// GetCalendarMetaHandler serves a month of day summaries for a menu.
func (hb *HandlerBundle) GetCalendarMetaHandler(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_year", "year must be an integer")
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_month", "month must be an integer")
		return
	}

	req := availability.CalendarRequest{
		MenuID:   c.Query("menu_id"),
		StaffID:  c.Query("staff_id"),
		Year:     year,
		Month:    month,
		Timezone: c.Query("timezone"),
		Caller:   callerFromContext(c),
	}

	payload, err := hb.AvailabilitySvc.GetCalendarMeta(c.Request.Context(), req)
	if err != nil {
		respondAvailabilityError(c, err)
		return
	}
	c.JSON(http.StatusOK, payload)
}

// GetDailySlotsHandler serves the bookable windows of one date.
func (hb *HandlerBundle) GetDailySlotsHandler(c *gin.Context) {
	req := availability.DailySlotsRequest{
		MenuID:   c.Query("menu_id"),
		StaffID:  c.Query("staff_id"),
		Date:     c.Query("date"),
		Timezone: c.Query("timezone"),
		Caller:   callerFromContext(c),
	}

	payload, err := hb.AvailabilitySvc.GetDailySlots(c.Request.Context(), req)
	if err != nil {
		respondAvailabilityError(c, err)
		return
	}
	c.JSON(http.StatusOK, payload)
}

func respondAvailabilityError(c *gin.Context, err error) {
	var availErr *availability.Error
	if errors.As(err, &availErr) {
		utils.JSONError(c, availabilityErrorStatus(availErr.Code), availErr.Code, availErr.Message)
		return
	}
	utils.JSONError(c, http.StatusInternalServerError, "internal_error", "failed to compute availability")
}
