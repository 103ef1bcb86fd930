package models

import "time"

// Booking statuses.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
	BookingNoShow    = "no_show"
)

// Booking is a persisted reservation. For conflict purposes it occupies
// [ServiceStart, max(TotalEnd, ServiceEnd)); TotalEnd includes the
// after-service buffer.
type Booking struct {
	ID           string    `bson:"id" json:"id"`
	MenuID       string    `bson:"menuId" json:"menuId"`
	StaffID      string    `bson:"staffId" json:"staffId"`
	UserID       string    `bson:"userId" json:"userId"`
	ServiceStart time.Time `bson:"serviceStart" json:"serviceStart"`
	ServiceEnd   time.Time `bson:"serviceEnd" json:"serviceEnd"`
	TotalEnd     time.Time `bson:"totalEnd" json:"totalEnd"`
	Status       string    `bson:"status" json:"status"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

// Blocks reports whether this booking occupies its window for conflict
// checks. Cancelled and no-show bookings never block new reservations.
func (b *Booking) Blocks() bool {
	return b.Status != BookingCancelled && b.Status != BookingNoShow
}

// ConflictEnd is the end instant used for overlap checks.
func (b *Booking) ConflictEnd() time.Time {
	if b.TotalEnd.After(b.ServiceEnd) {
		return b.TotalEnd
	}
	return b.ServiceEnd
}

// BookedInterval is the slim projection the availability engine works with.
type BookedInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}
