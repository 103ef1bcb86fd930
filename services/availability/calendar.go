package availability

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"salonkit/models"
	"salonkit/utils"

	"go.uber.org/zap"
)

// GetCalendarMeta computes a month of day summaries: per-day slot counts,
// first available window, and the aggregated shift status label.
func (se *DefaultAvailabilityService) GetCalendarMeta(ctx context.Context, req CalendarRequest) (*models.CalendarMeta, error) {
	res, err := se.resolveRequest(ctx, req.MenuID, req.StaffID, req.Timezone, req.Caller)
	if err != nil {
		return nil, err
	}

	if req.Year < minYear || req.Year > maxYear {
		return nil, NewError(CodeInvalidYear, fmt.Sprintf("year must be within [%d, %d]", minYear, maxYear))
	}
	if req.Month < 1 || req.Month > 12 {
		return nil, NewError(CodeInvalidMonth, "month must be within [1, 12]")
	}

	monthKey := fmt.Sprintf("%04d-%02d", req.Year, req.Month)
	key := cacheKey("calendar", res.menu.ID, res.staffIDs, monthKey, res.tzName)
	if se.Cache != nil {
		if data, ok := se.Cache.Get(ctx, key); ok {
			var cached models.CalendarMeta
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
			utils.GetLogger().Warn("discarding undecodable calendar cache entry", zap.String("key", key))
		}
	}

	scope := newRequestScope()
	month := time.Month(req.Month)

	var cutoff *time.Time
	if c, ok := res.policy.DeadlineCutoff(se.now(), res.loc); ok {
		cutoff = &c
	}

	daysInMonth := time.Date(req.Year, month, 1, 0, 0, 0, 0, res.loc).AddDate(0, 1, -1).Day()
	days := make([]models.DaySummary, 0, daysInMonth)

	for day := 1; day <= daysInMonth; day++ {
		slots, err := se.generateSlotsForDate(
			ctx, scope, res.menu, res.policy, res.staff,
			req.Year, month, day, res.loc,
			res.staffPreferred, cutoff,
		)
		if err != nil {
			return nil, err
		}

		status, err := se.resolveDayStatus(ctx, scope, res.staffIDs, req.Year, month, day)
		if err != nil {
			return nil, err
		}
		label := dayStatusLabel(status)

		summary := models.DaySummary{
			Date:           fmt.Sprintf("%04d-%02d-%02d", req.Year, req.Month, day),
			AvailableSlots: len(slots),
			Status:         label,
			IsHoliday:      isHolidayLabel(label),
			IsDisabled:     len(slots) == 0,
		}
		if len(slots) > 0 {
			summary.FirstAvailable = slots[0].Start.In(res.loc).Format("15:04")
		}
		if status == models.DayStatusUnavailable && len(slots) == 0 {
			summary.Notes = append(summary.Notes, "shift not registered")
		}
		days = append(days, summary)
	}

	payload := &models.CalendarMeta{
		Year:        req.Year,
		Month:       req.Month,
		Timezone:    res.tzName,
		Days:        days,
		GeneratedAt: se.now(),
	}

	if se.Cache != nil {
		if data, err := json.Marshal(payload); err == nil {
			se.Cache.Set(ctx, key, data, calendarTTL)
		}
	}
	return payload, nil
}
