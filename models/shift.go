package models

// Day statuses a staff member's shift template can carry.
const (
	DayStatusOpen            = "open"
	DayStatusRegularHoliday  = "regular_holiday"
	DayStatusTemporaryOpen   = "temporary_open"
	DayStatusTemporaryClosed = "temporary_closed"
	DayStatusUnavailable     = "unavailable"
)

// WorkingInterval is one contiguous working span within a day. End may be
// the 24:00 sentinel.
type WorkingInterval struct {
	Start ClockTime `bson:"start" json:"start"`
	End   ClockTime `bson:"end" json:"end"`
}

// DayRecord describes one staff member's availability template for a single
// day of a month.
type DayRecord struct {
	Status    string            `bson:"status" json:"status"`
	Intervals []WorkingInterval `bson:"intervals,omitempty" json:"intervals,omitempty"`
}

// ShiftEntry is one staff member's template for a whole month, keyed by
// day-of-month (1..31).
type ShiftEntry struct {
	StaffID string            `bson:"staffId" json:"staffId"`
	Year    int               `bson:"year" json:"year"`
	Month   int               `bson:"month" json:"month"`
	Days    map[int]DayRecord `bson:"days" json:"days"`
}

// IsWorkingStatus reports whether a day status permits slot generation.
func IsWorkingStatus(status string) bool {
	return status == DayStatusOpen || status == DayStatusTemporaryOpen
}

// Day returns the record for a day of month. Absent days degrade to an
// open record with no intervals, which yields zero slots.
func (e *ShiftEntry) Day(day int) DayRecord {
	if e == nil || e.Days == nil {
		return DayRecord{Status: DayStatusOpen}
	}
	rec, ok := e.Days[day]
	if !ok {
		return DayRecord{Status: DayStatusOpen}
	}
	return rec
}

// SanitizeIntervals drops intervals with out-of-range or reversed bounds.
// Bad rows are silently removed rather than surfaced as errors.
func SanitizeIntervals(intervals []WorkingInterval) []WorkingInterval {
	var out []WorkingInterval
	for _, iv := range intervals {
		if !iv.Start.Valid() || !iv.End.Valid() {
			continue
		}
		if iv.End <= iv.Start {
			continue
		}
		out = append(out, iv)
	}
	return out
}
