package availability

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"sort"
	"time"

	"salonkit/models"
)

// staffSlotID is stable across requests for the same staff member and
// window start, so a client can re-identify a slot it saw earlier.
func staffSlotID(staffID string, start time.Time) string {
	sum := sha1.Sum([]byte(fmt.Sprintf("%s|%d", staffID, start.Unix())))
	return hex.EncodeToString(sum[:])[:16]
}

// autoSlotID identifies a collapsed auto-assign bucket by its window and
// the menu it was computed for.
func autoSlotID(menuID string, start, end time.Time) string {
	sum := sha1.Sum([]byte(fmt.Sprintf("%s|%d|%d", menuID, start.Unix(), end.Unix())))
	return hex.EncodeToString(sum[:])[:16]
}

// generateSlotsForDate runs the window sweep per staff member and either
// returns per-staff slots (when a specific staff member was requested) or
// collapses identical windows across staff into auto-assign buckets.
func (se *DefaultAvailabilityService) generateSlotsForDate(
	ctx context.Context,
	scope *requestScope,
	menu *models.Menu,
	policy MenuPolicy,
	staff []models.Staff,
	year int, month time.Month, day int,
	loc *time.Location,
	staffPreferred bool,
	cutoff *time.Time,
) ([]models.Slot, error) {
	date := time.Date(year, month, day, 0, 0, 0, 0, loc)

	// The day-type restriction is checked against the weekday in the
	// target timezone, before any per-staff work.
	if !policy.AllowsWeekday(date.Weekday()) {
		return nil, nil
	}

	var tagged []models.Slot
	for _, member := range staff {
		entry, err := se.shiftMonth(ctx, scope, member.ID, year, int(month))
		if err != nil {
			return nil, err
		}
		if entry == nil {
			// No template registered: zero slots for this staff.
			continue
		}
		record := entry.Day(day)
		if !models.IsWorkingStatus(record.Status) {
			continue
		}

		booked, err := se.staffDayBookings(ctx, scope, member.ID, date)
		if err != nil {
			return nil, err
		}

		windows := generateWindows(
			record.Intervals,
			year, month, day, loc,
			policy.TotalBlockMinutes, policy.DurationMinutes, policy.StepMinutes,
			cutoff, booked,
		)

		snapshot := member.Snapshot()
		for i, w := range windows {
			tagged = append(tagged, models.Slot{
				ID:                   staffSlotID(member.ID, w.start),
				Start:                w.start,
				End:                  w.end,
				ServiceEnd:           w.serviceEnd,
				Staff:                &snapshot,
				Capacity:             1,
				Remaining:            1,
				IsLastSlotOfDay:      i == len(windows)-1,
				RequiresConfirmation: policy.RequiresConfirmation,
			})
		}
	}

	if staffPreferred {
		sort.SliceStable(tagged, func(i, j int) bool {
			return tagged[i].Start.Before(tagged[j].Start)
		})
		return tagged, nil
	}

	return collapseSlots(menu.ID, tagged), nil
}

// collapseSlots groups per-staff slots by their exact (start, end) window
// and synthesizes one auto-assign slot per group. The caller sees "any of
// N staff" without learning which staff produced the window.
func collapseSlots(menuID string, tagged []models.Slot) []models.Slot {
	type windowKey struct {
		start int64
		end   int64
	}

	groups := make(map[windowKey]*models.Slot)
	var order []windowKey

	for _, s := range tagged {
		key := windowKey{start: s.Start.Unix(), end: s.End.Unix()}
		bucket, ok := groups[key]
		if !ok {
			collapsed := models.Slot{
				ID:                   autoSlotID(menuID, s.Start, s.End),
				Start:                s.Start,
				End:                  s.End,
				ServiceEnd:           s.ServiceEnd,
				AutoAssign:           true,
				IsLastSlotOfDay:      s.IsLastSlotOfDay,
				RequiresConfirmation: s.RequiresConfirmation,
			}
			groups[key] = &collapsed
			order = append(order, key)
			bucket = &collapsed
		}
		// Flags are OR-combined across contributors.
		bucket.IsLastSlotOfDay = bucket.IsLastSlotOfDay || s.IsLastSlotOfDay
		bucket.RequiresConfirmation = bucket.RequiresConfirmation || s.RequiresConfirmation
		if s.Staff != nil && !containsID(bucket.AssignableStaffIDs, s.Staff.ID) {
			bucket.AssignableStaffIDs = append(bucket.AssignableStaffIDs, s.Staff.ID)
		}
	}

	out := make([]models.Slot, 0, len(order))
	for _, key := range order {
		bucket := groups[key]
		bucket.Capacity = len(bucket.AssignableStaffIDs)
		bucket.Remaining = bucket.Capacity
		out = append(out, *bucket)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start.Before(out[j].Start)
	})
	return out
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
