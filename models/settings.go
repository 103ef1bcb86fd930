package models

// SchedulingSettings are the provider-wide scheduling defaults. Menus may
// override buffer and deadline per service.
type SchedulingSettings struct {
	SlotStepMinutes int `bson:"slotStepMinutes" json:"slotStepMinutes"`
	DeadlineHours   int `bson:"deadlineHours" json:"deadlineHours"`
	BufferMinutes   int `bson:"bufferMinutes" json:"bufferMinutes"`
}

// allowed slot step granularities; anything else falls back to 10.
var validSlotSteps = map[int]struct{}{10: {}, 15: {}, 20: {}, 30: {}, 60: {}}

// Normalized returns a copy with the step restricted to the supported set
// and negative defaults clamped to zero.
func (s SchedulingSettings) Normalized() SchedulingSettings {
	if _, ok := validSlotSteps[s.SlotStepMinutes]; !ok {
		s.SlotStepMinutes = 10
	}
	if s.DeadlineHours < 0 {
		s.DeadlineHours = 0
	}
	if s.BufferMinutes < 0 {
		s.BufferMinutes = 0
	}
	return s
}
