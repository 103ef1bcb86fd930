package models

import "time"

// Presentation labels for aggregated day statuses.
const (
	DayLabelNormal       = "normal"
	DayLabelHoliday      = "holiday"
	DayLabelSpecialOpen  = "special_open"
	DayLabelSpecialClose = "special_close"
	DayLabelOff          = "off"
)

// DaySummary is one calendar cell.
type DaySummary struct {
	Date           string   `json:"date"` // "2006-01-02"
	AvailableSlots int      `json:"availableSlots"`
	FirstAvailable string   `json:"firstAvailable,omitempty"` // "HH:MM" of first bookable window
	Status         string   `json:"status"`                   // presentation label
	IsHoliday      bool     `json:"isHoliday"`
	IsDisabled     bool     `json:"isDisabled"`
	Notes          []string `json:"notes,omitempty"`
}

// CalendarMeta is the month payload returned by the calendar endpoint.
type CalendarMeta struct {
	Year        int          `json:"year"`
	Month       int          `json:"month"`
	Timezone    string       `json:"timezone"`
	Days        []DaySummary `json:"days"`
	GeneratedAt time.Time    `json:"generatedAt"`
}

// DailySlots is the payload returned by the daily slots endpoint.
type DailySlots struct {
	Date        string    `json:"date"`
	Timezone    string    `json:"timezone"`
	Slots       []Slot    `json:"slots"`
	GeneratedAt time.Time `json:"generatedAt"`
}
