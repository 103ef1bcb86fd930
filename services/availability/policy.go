package availability

import (
	"time"

	"salonkit/models"
)

// defaultDurationMinutes applies when a menu leaves its duration unset.
const defaultDurationMinutes = 60

// MenuPolicy is the effective scheduling policy for one menu after
// provider-wide defaults have been applied.
type MenuPolicy struct {
	DurationMinutes      int
	BufferMinutes        int
	TotalBlockMinutes    int // max(duration+buffer, step)
	DeadlineHours        int
	StepMinutes          int
	DayTypeRestriction   string
	RequiresConfirmation bool
}

// ResolvePolicy derives the effective policy for a menu. Defaults must
// already be normalized; they are passed in explicitly rather than read
// from ambient state.
func ResolvePolicy(menu *models.Menu, defaults models.SchedulingSettings) MenuPolicy {
	duration := menu.DurationMinutes
	if duration <= 0 {
		duration = defaultDurationMinutes
	}

	buffer := defaults.BufferMinutes
	if menu.BufferMinutes != nil {
		buffer = *menu.BufferMinutes
	}
	if buffer < 0 {
		buffer = 0
	}

	deadline := defaults.DeadlineHours
	if menu.DeadlineHours != nil {
		deadline = *menu.DeadlineHours
	}
	if deadline < 0 {
		deadline = 0
	}

	block := duration + buffer
	if block < defaults.SlotStepMinutes {
		block = defaults.SlotStepMinutes
	}

	return MenuPolicy{
		DurationMinutes:      duration,
		BufferMinutes:        buffer,
		TotalBlockMinutes:    block,
		DeadlineHours:        deadline,
		StepMinutes:          defaults.SlotStepMinutes,
		DayTypeRestriction:   menu.NormalizedDayType(),
		RequiresConfirmation: menu.RequiresConfirmation,
	}
}

// DeadlineCutoff computes the earliest bookable instant. It is anchored to
// the server clock (so a client cannot move it by lying about local time)
// and then rendered in the request's target zone for comparison against
// slot instants. The second return is false when no deadline applies.
func (p MenuPolicy) DeadlineCutoff(now time.Time, loc *time.Location) (time.Time, bool) {
	if p.DeadlineHours <= 0 {
		return time.Time{}, false
	}
	return now.Add(time.Duration(p.DeadlineHours) * time.Hour).In(loc), true
}

// AllowsWeekday applies the menu's day-type restriction to a weekday
// computed in the target timezone.
func (p MenuPolicy) AllowsWeekday(wd time.Weekday) bool {
	weekend := wd == time.Saturday || wd == time.Sunday
	switch p.DayTypeRestriction {
	case models.DayTypeWeekend:
		return weekend
	case models.DayTypeWeekday:
		return !weekend
	default:
		return true
	}
}
