package handlers

import (
	"errors"
	"net/http"

	"salonkit/middleware"
	"salonkit/services/reservation"
	"salonkit/utils"

	"github.com/gin-gonic/gin"
)

func reservationErrorStatus(code string) int {
	switch code {
	case reservation.CodeMenuNotFound, reservation.CodeNotFound:
		return http.StatusNotFound
	case reservation.CodeInvalidTime:
		return http.StatusBadRequest
	case reservation.CodeForbidden:
		return http.StatusForbidden
	case reservation.CodeSlotTaken, reservation.CodeUserAlreadyBooked:
		return http.StatusConflict
	default:
		return http.StatusUnprocessableEntity
	}
}

// CreateReservationHandler books a window for the authenticated caller.
func (hb *HandlerBundle) CreateReservationHandler(c *gin.Context) {
	var input struct {
		MenuID   string `json:"menuId" binding:"required"`
		StaffID  string `json:"staffId" binding:"required"`
		Date     string `json:"date" binding:"required"`
		Start    string `json:"start" binding:"required"`
		Timezone string `json:"timezone"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_input", err.Error())
		return
	}

	booking, err := hb.ReservationSvc.Create(c.Request.Context(), reservation.CreateRequest{
		MenuID:   input.MenuID,
		StaffID:  input.StaffID,
		UserID:   c.GetString(middleware.CtxUserID),
		Date:     input.Date,
		Start:    input.Start,
		Timezone: input.Timezone,
	})
	if err != nil {
		respondReservationError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// CancelReservationHandler cancels a booking owned by the caller (or any
// booking, for managers).
func (hb *HandlerBundle) CancelReservationHandler(c *gin.Context) {
	caller := reservation.Caller{
		UserID:    c.GetString(middleware.CtxUserID),
		CanManage: c.GetBool(middleware.CtxCanManage),
	}
	if err := hb.ReservationSvc.Cancel(c.Request.Context(), c.Param("id"), caller); err != nil {
		respondReservationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

func respondReservationError(c *gin.Context, err error) {
	var resErr *reservation.Error
	if errors.As(err, &resErr) {
		utils.JSONError(c, reservationErrorStatus(resErr.Code), resErr.Code, resErr.Message)
		return
	}
	utils.JSONError(c, http.StatusInternalServerError, "internal_error", "failed to process reservation")
}
