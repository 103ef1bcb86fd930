package availability

import (
	"time"

	"salonkit/models"
)

// window is a candidate bookable span before it is tagged into a slot.
type window struct {
	start      time.Time
	end        time.Time // start + total block (service + buffer)
	serviceEnd time.Time // start + pure service duration
}

// hasConflict reports whether [start, end) overlaps any booked interval.
// Intervals are half-open, so a window ending exactly when a booking
// starts does not conflict.
func hasConflict(start, end time.Time, booked []models.BookedInterval) bool {
	for _, b := range booked {
		if start.Before(b.End) && end.After(b.Start) {
			return true
		}
	}
	return false
}

// generateWindows sweeps discretized start positions across one staff
// member's working intervals for a single date. A cursor advances in step
// increments; each position is kept only if the full block fits inside the
// working interval, clears the deadline cutoff, and has no booking
// conflict. Windows are never truncated to fit: a block that would poke
// past the interval end stops the walk.
func generateWindows(
	intervals []models.WorkingInterval,
	year int, month time.Month, day int,
	loc *time.Location,
	blockMinutes, serviceMinutes, stepMinutes int,
	cutoff *time.Time,
	booked []models.BookedInterval,
) []window {
	block := time.Duration(blockMinutes) * time.Minute
	service := time.Duration(serviceMinutes) * time.Minute
	step := time.Duration(stepMinutes) * time.Minute

	var out []window
	for _, iv := range models.SanitizeIntervals(intervals) {
		ivStart := iv.Start.OnDate(year, month, day, loc)
		ivEnd := iv.End.OnDate(year, month, day, loc)

		for cursor := ivStart; ; cursor = cursor.Add(step) {
			if !cursor.Before(ivEnd) {
				break
			}
			end := cursor.Add(block)
			if end.After(ivEnd) {
				break
			}
			// The cutoff is exclusive on the early side: a window
			// starting exactly at the cutoff is bookable.
			if cutoff != nil && cursor.Before(*cutoff) {
				continue
			}
			if hasConflict(cursor, end, booked) {
				continue
			}
			out = append(out, window{
				start:      cursor,
				end:        end,
				serviceEnd: cursor.Add(service),
			})
		}
	}
	return out
}
