package reservation

import (
	"context"
	"time"

	bookingRepo "salonkit/database/repository/booking"
	menuRepo "salonkit/database/repository/menu"
	settingsRepo "salonkit/database/repository/settings"
	"salonkit/models"
)

// CreateRequest asks for a new reservation at a concrete window start.
type CreateRequest struct {
	MenuID   string
	StaffID  string
	UserID   string
	Date     string // "2006-01-02"
	Start    string // "HH:MM" in the request timezone
	Timezone string
}

// Caller identifies who is acting on a reservation.
type Caller struct {
	UserID    string
	CanManage bool
}

// ReservationService persists reservations. Slot computation is a
// best-effort availability hint; the overlap re-check here, immediately
// before the insert, is the authoritative double-booking guard.
type ReservationService interface {
	Create(ctx context.Context, req CreateRequest) (*models.Booking, error)
	Cancel(ctx context.Context, id string, caller Caller) error
}

// DefaultReservationService is the production implementation.
type DefaultReservationService struct {
	MenuRepo     menuRepo.MenuRepository
	BookingRepo  bookingRepo.BookingRepository
	SettingsRepo settingsRepo.SettingsRepository

	SiteTimezone            *time.Location
	EnforceStaffRestriction bool

	// Now allows tests to pin the clock; nil means time.Now.
	Now func() time.Time
}

func (s *DefaultReservationService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultReservationService) location(tz string) *time.Location {
	if tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	if s.SiteTimezone != nil {
		return s.SiteTimezone
	}
	return time.UTC
}
