package availability

import (
	"context"
	"encoding/json"
	"time"

	"salonkit/models"
	"salonkit/utils"

	"go.uber.org/zap"
)

// GetDailySlots computes the bookable windows for one date. Payloads are
// cached briefly, except for the personalized path: an authenticated
// non-manager who already holds bookings that day gets a fresh payload
// with their own windows filtered out, and that view is never cached
// because it would leak into other callers' responses.
func (se *DefaultAvailabilityService) GetDailySlots(ctx context.Context, req DailySlotsRequest) (*models.DailySlots, error) {
	res, err := se.resolveRequest(ctx, req.MenuID, req.StaffID, req.Timezone, req.Caller)
	if err != nil {
		return nil, err
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, res.loc)
	if err != nil {
		return nil, NewError(CodeInvalidDate, "date must be YYYY-MM-DD")
	}
	if date.Year() < minYear || date.Year() > maxYear {
		return nil, NewError(CodeInvalidDate, "date out of supported range")
	}

	scope := newRequestScope()
	logger := utils.GetLogger()

	// Personalized path: caller's own bookings hide matching windows.
	var userBooked []models.BookedInterval
	personalized := false
	if req.Caller.UserID != "" && !req.Caller.CanManage {
		userBooked, err = se.userDayBookings(ctx, scope, req.Caller.UserID, date)
		if err != nil {
			return nil, err
		}
		personalized = len(userBooked) > 0
	}

	key := cacheKey("daily", res.menu.ID, res.staffIDs, req.Date, res.tzName)
	if !personalized && se.Cache != nil {
		if data, ok := se.Cache.Get(ctx, key); ok {
			var cached models.DailySlots
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
			logger.Warn("discarding undecodable daily cache entry", zap.String("key", key))
		}
	}

	var cutoff *time.Time
	if c, ok := res.policy.DeadlineCutoff(se.now(), res.loc); ok {
		cutoff = &c
	}

	slots, err := se.generateSlotsForDate(
		ctx, scope, res.menu, res.policy, res.staff,
		date.Year(), date.Month(), date.Day(), res.loc,
		res.staffPreferred, cutoff,
	)
	if err != nil {
		return nil, err
	}

	if personalized {
		slots = filterUserBooked(slots, userBooked)
	}
	if slots == nil {
		slots = []models.Slot{}
	}

	payload := &models.DailySlots{
		Date:        req.Date,
		Timezone:    res.tzName,
		Slots:       slots,
		GeneratedAt: se.now(),
	}

	if !personalized && se.Cache != nil {
		if data, err := json.Marshal(payload); err == nil {
			se.Cache.Set(ctx, key, data, dailyTTL)
		}
	}
	return payload, nil
}

// filterUserBooked removes windows overlapping the caller's own bookings.
// This is distinct from the staff-level conflict filter: it stops a user
// from booking themselves into two different staff members' identical
// windows.
func filterUserBooked(slots []models.Slot, booked []models.BookedInterval) []models.Slot {
	out := slots[:0]
	for _, s := range slots {
		if hasConflict(s.Start, s.End, booked) {
			continue
		}
		out = append(out, s)
	}
	return out
}
