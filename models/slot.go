package models

import "time"

// Slot is a computed bookable window. It is never persisted. Staff is nil
// for auto-assign buckets, in which case AssignableStaffIDs lists the
// contributors and Capacity counts them.
type Slot struct {
	ID                   string         `json:"id"`
	Start                time.Time      `json:"start"`
	End                  time.Time      `json:"end"`        // full block including buffer
	ServiceEnd           time.Time      `json:"serviceEnd"` // start + pure service duration
	Staff                *StaffSnapshot `json:"staff,omitempty"`
	AssignableStaffIDs   []string       `json:"assignableStaffIds,omitempty"`
	Capacity             int            `json:"capacity"`
	Remaining            int            `json:"remaining"`
	IsLastSlotOfDay      bool           `json:"isLastSlotOfDay"`
	RequiresConfirmation bool           `json:"requiresConfirmation"`
	AutoAssign           bool           `json:"autoAssign"`
}
