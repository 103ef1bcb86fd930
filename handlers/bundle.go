package handlers

import (
	menuRepo "salonkit/database/repository/menu"
	shiftRepo "salonkit/database/repository/shift"
	"salonkit/services/availability"
	"salonkit/services/reservation"
)

// HandlerBundle groups the services handlers depend on, so routes can be
// registered against one wired object.
type HandlerBundle struct {
	AvailabilitySvc availability.AvailabilityService
	ReservationSvc  reservation.ReservationService
	MenuRepo        menuRepo.MenuRepository
	ShiftRepo       shiftRepo.ShiftRepository
}
