package availability

import (
	"context"
	"time"

	bookingRepo "salonkit/database/repository/booking"
	menuRepo "salonkit/database/repository/menu"
	settingsRepo "salonkit/database/repository/settings"
	shiftRepo "salonkit/database/repository/shift"
	staffRepo "salonkit/database/repository/staff"
	"salonkit/models"
)

// Caller identifies who is asking. A zero Caller is an anonymous visitor.
type Caller struct {
	UserID string
	// CanManage marks holders of the manage-reservations capability;
	// they can see unpublished menus and never get personalized payloads.
	CanManage bool
}

// CalendarRequest asks for a month of day summaries.
type CalendarRequest struct {
	MenuID   string
	StaffID  string // optional; empty means auto-assign across eligible staff
	Year     int
	Month    int
	Timezone string // optional; invalid or empty degrades to the site zone
	Caller   Caller
}

// DailySlotsRequest asks for the bookable windows of one date.
type DailySlotsRequest struct {
	MenuID   string
	StaffID  string
	Date     string // "2006-01-02"
	Timezone string
	Caller   Caller
}

// AvailabilityService computes bookable windows and calendar summaries.
type AvailabilityService interface {
	GetCalendarMeta(ctx context.Context, req CalendarRequest) (*models.CalendarMeta, error)
	GetDailySlots(ctx context.Context, req DailySlotsRequest) (*models.DailySlots, error)
}

// DefaultAvailabilityService is the production implementation.
type DefaultAvailabilityService struct {
	MenuRepo     menuRepo.MenuRepository
	StaffRepo    staffRepo.StaffRepository
	ShiftRepo    shiftRepo.ShiftRepository
	BookingRepo  bookingRepo.BookingRepository
	SettingsRepo settingsRepo.SettingsRepository
	Cache        Cache

	// SiteTimezone is the fallback when the caller's timezone is absent
	// or unparsable. Defaults to UTC when nil.
	SiteTimezone *time.Location

	// EnforceStaffRestriction rejects explicit staff requests outside the
	// menu's eligible set. When false the request is honored anyway.
	EnforceStaffRestriction bool

	// Now allows tests to pin the clock; nil means time.Now. Deadline
	// cutoffs are always anchored to this server-side clock.
	Now func() time.Time
}

func (se *DefaultAvailabilityService) now() time.Time {
	if se.Now != nil {
		return se.Now()
	}
	return time.Now()
}

// location resolves the request timezone, degrading to the site default.
func (se *DefaultAvailabilityService) location(tz string) *time.Location {
	if tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	if se.SiteTimezone != nil {
		return se.SiteTimezone
	}
	return time.UTC
}
