package reservation

import (
	"context"
	"fmt"
	"time"

	"salonkit/models"
	"salonkit/services/availability"
	"salonkit/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Create validates the request against the menu policy and persists the
// booking. The staff conflict check runs here again, on fresh data, because
// slot computation and booking creation are not covered by one transaction.
func (s *DefaultReservationService) Create(ctx context.Context, req CreateRequest) (*models.Booking, error) {
	menu, err := s.MenuRepo.GetByID(ctx, req.MenuID)
	if err != nil {
		return nil, fmt.Errorf("menu lookup: %w", err)
	}
	if menu == nil {
		return nil, NewError(CodeMenuNotFound, "menu not found")
	}
	if !menu.Published || menu.Archived || menu.OnlineDisabled {
		return nil, NewError(CodeMenuUnavailable, "menu is not open for online booking")
	}
	if req.StaffID == "" {
		return nil, NewError(CodeStaffNotAssigned, "a staff member must be selected")
	}
	if len(menu.EligibleStaffIDs()) > 0 && !menu.AllowsStaff(req.StaffID) && s.EnforceStaffRestriction {
		return nil, NewError(CodeStaffNotAssigned, "requested staff is not assigned to this menu")
	}

	settings, err := s.SettingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("settings lookup: %w", err)
	}
	policy := availability.ResolvePolicy(menu, settings)

	loc := s.location(req.Timezone)
	date, err := time.ParseInLocation("2006-01-02", req.Date, loc)
	if err != nil {
		return nil, NewError(CodeInvalidTime, "date must be YYYY-MM-DD")
	}
	startClock, err := models.ParseClockTime(req.Start)
	if err != nil || startClock >= models.EndOfDay {
		return nil, NewError(CodeInvalidTime, "start must be HH:MM")
	}

	serviceStart := startClock.OnDate(date.Year(), date.Month(), date.Day(), loc)
	serviceEnd := serviceStart.Add(time.Duration(policy.DurationMinutes) * time.Minute)
	totalEnd := serviceEnd.Add(time.Duration(policy.BufferMinutes) * time.Minute)

	if cutoff, ok := policy.DeadlineCutoff(s.now(), loc); ok && serviceStart.Before(cutoff) {
		return nil, NewError(CodeDeadlinePassed, "booking deadline for this window has passed")
	}

	// Authoritative guard: re-read the staff's bookings immediately
	// before insert and re-run the half-open overlap check.
	staffBooked, err := s.BookingRepo.GetForStaffDate(ctx, req.StaffID, date)
	if err != nil {
		return nil, fmt.Errorf("booking lookup: %w", err)
	}
	if overlapsAny(serviceStart, totalEnd, staffBooked) {
		return nil, NewError(CodeSlotTaken, "the requested window is no longer available")
	}

	if req.UserID != "" {
		userBooked, err := s.BookingRepo.GetForUserDate(ctx, req.UserID, date)
		if err != nil {
			return nil, fmt.Errorf("booking lookup: %w", err)
		}
		if overlapsAny(serviceStart, totalEnd, userBooked) {
			return nil, NewError(CodeUserAlreadyBooked, "you already hold a booking overlapping this window")
		}
	}

	status := models.BookingConfirmed
	if menu.RequiresConfirmation {
		status = models.BookingPending
	}

	booking := &models.Booking{
		ID:           uuid.New().String(),
		MenuID:       menu.ID,
		StaffID:      req.StaffID,
		UserID:       req.UserID,
		ServiceStart: serviceStart,
		ServiceEnd:   serviceEnd,
		TotalEnd:     totalEnd,
		Status:       status,
		CreatedAt:    s.now(),
	}
	if err := s.BookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	utils.GetLogger().Info("reservation created",
		zap.String("bookingID", booking.ID),
		zap.String("menuID", booking.MenuID),
		zap.String("staffID", booking.StaffID),
		zap.Time("serviceStart", booking.ServiceStart),
	)
	return booking, nil
}

// Cancel flips a booking to cancelled. Only the booking's owner or a
// manager may cancel.
func (s *DefaultReservationService) Cancel(ctx context.Context, id string, caller Caller) error {
	booking, err := s.BookingRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("booking lookup: %w", err)
	}
	if booking == nil {
		return NewError(CodeNotFound, "booking not found")
	}
	if !caller.CanManage && booking.UserID != caller.UserID {
		return NewError(CodeForbidden, "not allowed to cancel this booking")
	}
	if booking.Status == models.BookingCancelled {
		return nil
	}
	return s.BookingRepo.UpdateStatus(ctx, id, models.BookingCancelled)
}

func overlapsAny(start, end time.Time, booked []models.BookedInterval) bool {
	for _, b := range booked {
		if start.Before(b.End) && end.After(b.Start) {
			return true
		}
	}
	return false
}
