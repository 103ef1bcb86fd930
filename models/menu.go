package models

// Day-type restrictions a menu may impose on bookable dates.
const (
	DayTypeNone    = "none"
	DayTypeWeekend = "weekend"
	DayTypeWeekday = "weekday"
)

// Menu is a bookable service definition. The scheduling engine treats it as
// read-only; providers edit menus through their own surface.
type Menu struct {
	ID                   string   `bson:"id" json:"id"`
	Name                 string   `bson:"name" json:"name"`
	DurationMinutes      int      `bson:"durationMinutes" json:"durationMinutes"` // 0 means unset; engine defaults to 60
	BufferMinutes        *int     `bson:"bufferMinutes,omitempty" json:"bufferMinutes,omitempty"`
	DeadlineHours        *int     `bson:"deadlineHours,omitempty" json:"deadlineHours,omitempty"`
	Price                float64  `bson:"price" json:"price"`
	StaffIDs             []string `bson:"staffIds" json:"staffIds"`
	Archived             bool     `bson:"archived" json:"archived"`
	OnlineDisabled       bool     `bson:"onlineDisabled" json:"onlineDisabled"`
	Published            bool     `bson:"published" json:"published"`
	RequiresConfirmation bool     `bson:"requiresConfirmation" json:"requiresConfirmation"`
	DayTypeRestriction   string   `bson:"dayTypeRestriction" json:"dayTypeRestriction"`
}

// NormalizedDayType maps unknown restriction values to none.
func (m *Menu) NormalizedDayType() string {
	switch m.DayTypeRestriction {
	case DayTypeWeekend, DayTypeWeekday:
		return m.DayTypeRestriction
	default:
		return DayTypeNone
	}
}

// EligibleStaffIDs returns the menu's staff set with duplicates removed,
// preserving order.
func (m *Menu) EligibleStaffIDs() []string {
	seen := make(map[string]struct{}, len(m.StaffIDs))
	var out []string
	for _, id := range m.StaffIDs {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// AllowsStaff reports whether the given staff id is in the eligible set.
// An empty set allows nobody implicitly; callers decide how to treat it.
func (m *Menu) AllowsStaff(staffID string) bool {
	for _, id := range m.StaffIDs {
		if id == staffID {
			return true
		}
	}
	return false
}
