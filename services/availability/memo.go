package availability

import (
	"context"
	"time"

	"salonkit/models"
)

type shiftKey struct {
	staffID string
	year    int
	month   int
}

type dayKey struct {
	ownerID string // staff id or user id depending on the map
	date    string // "2006-01-02"
}

// requestScope memoizes repository lookups for the lifetime of one engine
// invocation. Staff members sharing a month reuse the same template fetch;
// calendar runs reuse booking fetches across the collapsing and counting
// passes. Created at request start, discarded with the request.
type requestScope struct {
	shifts        map[shiftKey]*models.ShiftEntry
	staffBookings map[dayKey][]models.BookedInterval
	userBookings  map[dayKey][]models.BookedInterval
}

func newRequestScope() *requestScope {
	return &requestScope{
		shifts:        make(map[shiftKey]*models.ShiftEntry),
		staffBookings: make(map[dayKey][]models.BookedInterval),
		userBookings:  make(map[dayKey][]models.BookedInterval),
	}
}

func (se *DefaultAvailabilityService) shiftMonth(ctx context.Context, scope *requestScope, staffID string, year, month int) (*models.ShiftEntry, error) {
	key := shiftKey{staffID: staffID, year: year, month: month}
	if entry, ok := scope.shifts[key]; ok {
		return entry, nil
	}
	entry, err := se.ShiftRepo.GetMonth(ctx, staffID, year, month)
	if err != nil {
		return nil, err
	}
	scope.shifts[key] = entry
	return entry, nil
}

func (se *DefaultAvailabilityService) staffDayBookings(ctx context.Context, scope *requestScope, staffID string, dayStart time.Time) ([]models.BookedInterval, error) {
	key := dayKey{ownerID: staffID, date: dayStart.Format("2006-01-02")}
	if booked, ok := scope.staffBookings[key]; ok {
		return booked, nil
	}
	booked, err := se.BookingRepo.GetForStaffDate(ctx, staffID, dayStart)
	if err != nil {
		return nil, err
	}
	scope.staffBookings[key] = booked
	return booked, nil
}

func (se *DefaultAvailabilityService) userDayBookings(ctx context.Context, scope *requestScope, userID string, dayStart time.Time) ([]models.BookedInterval, error) {
	key := dayKey{ownerID: userID, date: dayStart.Format("2006-01-02")}
	if booked, ok := scope.userBookings[key]; ok {
		return booked, nil
	}
	booked, err := se.BookingRepo.GetForUserDate(ctx, userID, dayStart)
	if err != nil {
		return nil, err
	}
	scope.userBookings[key] = booked
	return booked, nil
}
