package handlers

import (
	"net/http"
	"strconv"

	"salonkit/models"
	"salonkit/utils"

	"github.com/gin-gonic/gin"
)

// UpsertShiftHandler replaces one staff member's monthly shift template.
// This is the persistence seam the provider's schedule editor writes into.
func (hb *HandlerBundle) UpsertShiftHandler(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_year", "year must be an integer")
		return
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		utils.JSONError(c, http.StatusBadRequest, "invalid_month", "month must be within [1, 12]")
		return
	}

	var input struct {
		Days map[int]models.DayRecord `json:"days" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_input", err.Error())
		return
	}

	entry := &models.ShiftEntry{
		StaffID: c.Param("staffId"),
		Year:    year,
		Month:   month,
		Days:    input.Days,
	}
	if err := hb.ShiftRepo.Upsert(c.Request.Context(), entry); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "internal_error", "failed to store shift template")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
