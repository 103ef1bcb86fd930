package availability

import (
	"context"
	"time"

	"salonkit/models"
)

// resolveDayStatus aggregates per-staff day statuses into one calendar
// status. A staff member with no registered template for the month
// contributes nothing. No contributions at all means unavailable. When
// staff disagree, "open" wins if any staff is working; otherwise the first
// status encountered is kept. That tie-break mirrors the long-standing
// behavior clients depend on, so it is preserved as-is.
func (se *DefaultAvailabilityService) resolveDayStatus(ctx context.Context, scope *requestScope, staffIDs []string, year int, month time.Month, day int) (string, error) {
	var distinct []string
	seen := make(map[string]struct{})

	for _, staffID := range staffIDs {
		entry, err := se.shiftMonth(ctx, scope, staffID, year, int(month))
		if err != nil {
			return "", err
		}
		if entry == nil {
			continue
		}
		status := entry.Day(day).Status
		if _, ok := seen[status]; ok {
			continue
		}
		seen[status] = struct{}{}
		distinct = append(distinct, status)
	}

	switch len(distinct) {
	case 0:
		return models.DayStatusUnavailable, nil
	case 1:
		return distinct[0], nil
	}
	if _, ok := seen[models.DayStatusOpen]; ok {
		return models.DayStatusOpen, nil
	}
	return distinct[0], nil
}

// dayStatusLabel maps a raw aggregated status to its presentation label.
func dayStatusLabel(status string) string {
	switch status {
	case models.DayStatusRegularHoliday:
		return models.DayLabelHoliday
	case models.DayStatusTemporaryOpen:
		return models.DayLabelSpecialOpen
	case models.DayStatusTemporaryClosed:
		return models.DayLabelSpecialClose
	case models.DayStatusUnavailable:
		return models.DayLabelOff
	default:
		return models.DayLabelNormal
	}
}

// closedDayLabels mark the calendar cell as a holiday.
func isHolidayLabel(label string) bool {
	return label == models.DayLabelHoliday || label == models.DayLabelOff || label == models.DayLabelSpecialClose
}
