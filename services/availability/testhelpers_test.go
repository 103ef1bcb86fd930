package availability

import (
	"context"
	"fmt"
	"time"

	"salonkit/models"
)

// In-memory repository fakes. Call counters let tests assert memoization
// and cache behavior.

type fakeMenuRepo struct {
	menus map[string]*models.Menu
}

func (f *fakeMenuRepo) GetByID(_ context.Context, id string) (*models.Menu, error) {
	return f.menus[id], nil
}

func (f *fakeMenuRepo) List(_ context.Context, publishedOnly bool) ([]models.Menu, error) {
	var out []models.Menu
	for _, m := range f.menus {
		if publishedOnly && (!m.Published || m.Archived) {
			continue
		}
		out = append(out, *m)
	}
	return out, nil
}

type fakeStaffRepo struct {
	staff map[string]models.Staff
}

func (f *fakeStaffRepo) GetByID(_ context.Context, id string) (*models.Staff, error) {
	if s, ok := f.staff[id]; ok {
		return &s, nil
	}
	return nil, nil
}

func (f *fakeStaffRepo) GetByIDs(_ context.Context, ids []string) ([]models.Staff, error) {
	var out []models.Staff
	for _, id := range ids {
		if s, ok := f.staff[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeShiftRepo struct {
	entries map[string]*models.ShiftEntry
	calls   int
}

func shiftFakeKey(staffID string, year, month int) string {
	return fmt.Sprintf("%s|%d|%d", staffID, year, month)
}

func (f *fakeShiftRepo) GetMonth(_ context.Context, staffID string, year, month int) (*models.ShiftEntry, error) {
	f.calls++
	return f.entries[shiftFakeKey(staffID, year, month)], nil
}

func (f *fakeShiftRepo) Upsert(_ context.Context, entry *models.ShiftEntry) error {
	f.entries[shiftFakeKey(entry.StaffID, entry.Year, entry.Month)] = entry
	return nil
}

type fakeBookingRepo struct {
	staffBooked map[string][]models.BookedInterval // staffID|date
	userBooked  map[string][]models.BookedInterval // userID|date
	staffCalls  int
}

func bookedFakeKey(ownerID string, dayStart time.Time) string {
	return ownerID + "|" + dayStart.Format("2006-01-02")
}

func (f *fakeBookingRepo) GetForStaffDate(_ context.Context, staffID string, dayStart time.Time) ([]models.BookedInterval, error) {
	f.staffCalls++
	return f.staffBooked[bookedFakeKey(staffID, dayStart)], nil
}

func (f *fakeBookingRepo) GetForUserDate(_ context.Context, userID string, dayStart time.Time) ([]models.BookedInterval, error) {
	return f.userBooked[bookedFakeKey(userID, dayStart)], nil
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ string) (*models.Booking, error) {
	return nil, nil
}

func (f *fakeBookingRepo) Create(_ context.Context, _ *models.Booking) error { return nil }

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, _, _ string) error { return nil }

type fakeSettingsRepo struct {
	settings models.SchedulingSettings
}

func (f *fakeSettingsRepo) Get(_ context.Context) (models.SchedulingSettings, error) {
	return f.settings.Normalized(), nil
}

type fakeCache struct {
	data map[string][]byte
	gets int
	hits int
	sets int
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string][]byte)}
}

func (f *fakeCache) Get(_ context.Context, key string) ([]byte, bool) {
	f.gets++
	data, ok := f.data[key]
	if ok {
		f.hits++
	}
	return data, ok
}

func (f *fakeCache) Set(_ context.Context, key string, value []byte, _ time.Duration) {
	f.sets++
	f.data[key] = value
}

// testEngine bundles the engine with its fakes for assertion access.
type testEngine struct {
	svc      *DefaultAvailabilityService
	menus    *fakeMenuRepo
	staff    *fakeStaffRepo
	shifts   *fakeShiftRepo
	bookings *fakeBookingRepo
	cache    *fakeCache
}

func newTestEngine() *testEngine {
	te := &testEngine{
		menus:    &fakeMenuRepo{menus: make(map[string]*models.Menu)},
		staff:    &fakeStaffRepo{staff: make(map[string]models.Staff)},
		shifts:   &fakeShiftRepo{entries: make(map[string]*models.ShiftEntry)},
		bookings: &fakeBookingRepo{staffBooked: map[string][]models.BookedInterval{}, userBooked: map[string][]models.BookedInterval{}},
		cache:    newFakeCache(),
	}
	te.svc = &DefaultAvailabilityService{
		MenuRepo:                te.menus,
		StaffRepo:               te.staff,
		ShiftRepo:               te.shifts,
		BookingRepo:             te.bookings,
		SettingsRepo:            &fakeSettingsRepo{settings: models.SchedulingSettings{SlotStepMinutes: 10}},
		Cache:                   te.cache,
		SiteTimezone:            time.UTC,
		EnforceStaffRestriction: true,
		// Pinned well before the test dates so no deadline interferes
		// unless a test sets one explicitly.
		Now: func() time.Time { return time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC) },
	}
	return te
}

func mustClock(s string) models.ClockTime {
	c, err := models.ParseClockTime(s)
	if err != nil {
		panic(err)
	}
	return c
}

func openDay(intervals ...models.WorkingInterval) models.DayRecord {
	return models.DayRecord{Status: models.DayStatusOpen, Intervals: intervals}
}

func span(start, end string) models.WorkingInterval {
	return models.WorkingInterval{Start: mustClock(start), End: mustClock(end)}
}

// addStaffWithShift registers a staff member with the same day record for
// the given days of 2026-09.
func (te *testEngine) addStaffWithShift(id, name string, record models.DayRecord, days ...int) {
	te.staff.staff[id] = models.Staff{ID: id, Name: name}
	entry := &models.ShiftEntry{StaffID: id, Year: 2026, Month: 9, Days: map[int]models.DayRecord{}}
	for _, d := range days {
		entry.Days[d] = record
	}
	te.shifts.entries[shiftFakeKey(id, 2026, 9)] = entry
}

func utcTime(day, hour, min int) time.Time {
	return time.Date(2026, 9, day, hour, min, 0, 0, time.UTC)
}
