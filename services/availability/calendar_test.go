package availability

import (
	"context"
	"testing"

	"salonkit/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func calendarReq(menuID, staffID string) CalendarRequest {
	return CalendarRequest{MenuID: menuID, StaffID: staffID, Year: 2026, Month: 9, Timezone: "UTC"}
}

func TestGetCalendarMeta_Validation(t *testing.T) {
	te := newTestEngine()
	te.menus.menus["m1"] = publishedMenu("m1", "s1")

	tests := []struct {
		name     string
		year     int
		month    int
		wantCode string
	}{
		{"year below range", 1999, 9, CodeInvalidYear},
		{"year above range", 2101, 9, CodeInvalidYear},
		{"month zero", 2026, 0, CodeInvalidMonth},
		{"month thirteen", 2026, 13, CodeInvalidMonth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := calendarReq("m1", "")
			req.Year, req.Month = tt.year, tt.month
			_, err := te.svc.GetCalendarMeta(context.Background(), req)
			require.Error(t, err)
			var availErr *Error
			require.ErrorAs(t, err, &availErr)
			assert.Equal(t, tt.wantCode, availErr.Code)
		})
	}
}

func TestGetCalendarMeta_MenuCheckedBeforeRange(t *testing.T) {
	te := newTestEngine()

	// Menu problems win over range problems when both apply.
	req := calendarReq("nope", "")
	req.Year = 1999
	_, err := te.svc.GetCalendarMeta(context.Background(), req)
	require.Error(t, err)
	var availErr *Error
	require.ErrorAs(t, err, &availErr)
	assert.Equal(t, CodeMenuNotFound, availErr.Code)
}

func TestGetCalendarMeta_DaySummaries(t *testing.T) {
	te := newTestEngine()
	te.svc.SettingsRepo = &fakeSettingsRepo{settings: models.SchedulingSettings{SlotStepMinutes: 60}}
	te.menus.menus["m1"] = publishedMenu("m1", "s1")

	te.staff.staff["s1"] = models.Staff{ID: "s1", Name: "Aiko"}
	entry := &models.ShiftEntry{StaffID: "s1", Year: 2026, Month: 9, Days: map[int]models.DayRecord{
		1: openDay(span("10:00", "14:00")),
		2: {Status: models.DayStatusRegularHoliday},
		3: {Status: models.DayStatusTemporaryOpen, Intervals: []models.WorkingInterval{span("09:00", "10:00")}},
		4: {Status: models.DayStatusTemporaryClosed},
	}}
	te.shifts.entries[shiftFakeKey("s1", 2026, 9)] = entry

	meta, err := te.svc.GetCalendarMeta(context.Background(), calendarReq("m1", ""))
	require.NoError(t, err)
	assert.Equal(t, 2026, meta.Year)
	assert.Equal(t, 9, meta.Month)
	assert.Equal(t, "UTC", meta.Timezone)
	require.Len(t, meta.Days, 30)

	day1 := meta.Days[0]
	assert.Equal(t, "2026-09-01", day1.Date)
	assert.Equal(t, 4, day1.AvailableSlots)
	assert.Equal(t, "10:00", day1.FirstAvailable)
	assert.Equal(t, models.DayLabelNormal, day1.Status)
	assert.False(t, day1.IsHoliday)
	assert.False(t, day1.IsDisabled)
	assert.Empty(t, day1.Notes)

	day2 := meta.Days[1]
	assert.Equal(t, 0, day2.AvailableSlots)
	assert.Equal(t, models.DayLabelHoliday, day2.Status)
	assert.True(t, day2.IsHoliday)
	assert.True(t, day2.IsDisabled)
	assert.Empty(t, day2.FirstAvailable)

	day3 := meta.Days[2]
	assert.Equal(t, 1, day3.AvailableSlots)
	assert.Equal(t, models.DayLabelSpecialOpen, day3.Status)
	assert.False(t, day3.IsHoliday)

	day4 := meta.Days[3]
	assert.Equal(t, models.DayLabelSpecialClose, day4.Status)
	assert.True(t, day4.IsHoliday)
	assert.True(t, day4.IsDisabled)

	// Day 5 has no record at all: the monthly sheet exists, so the day
	// defaults to open but carries no working intervals.
	day5 := meta.Days[4]
	assert.Equal(t, models.DayLabelNormal, day5.Status)
	assert.Equal(t, 0, day5.AvailableSlots)
	assert.True(t, day5.IsDisabled)
}

func TestGetCalendarMeta_MissingShiftSheetIsUnavailable(t *testing.T) {
	te := newTestEngine()
	te.menus.menus["m1"] = publishedMenu("m1", "s1")
	te.staff.staff["s1"] = models.Staff{ID: "s1", Name: "Aiko"}
	// No shift entry registered for 2026-09 at all.

	meta, err := te.svc.GetCalendarMeta(context.Background(), calendarReq("m1", ""))
	require.NoError(t, err)
	for _, d := range meta.Days {
		assert.Equal(t, models.DayLabelOff, d.Status)
		assert.True(t, d.IsDisabled)
		assert.Contains(t, d.Notes, "shift not registered")
	}
}

func TestGetCalendarMeta_ShiftFetchedOncePerStaff(t *testing.T) {
	te := newTestEngine()
	te.menus.menus["m1"] = publishedMenu("m1", "s1", "s2")
	te.addStaffWithShift("s1", "Aiko", openDay(span("09:00", "12:00")), 1, 2, 3, 4, 5)
	te.addStaffWithShift("s2", "Ben", openDay(span("09:00", "12:00")), 10, 11)

	_, err := te.svc.GetCalendarMeta(context.Background(), calendarReq("m1", ""))
	require.NoError(t, err)
	// 30 generated days reuse one monthly fetch per staff member.
	assert.Equal(t, 2, te.shifts.calls)
}

func TestGetCalendarMeta_SecondCallServedFromCache(t *testing.T) {
	te := newTestEngine()
	te.menus.menus["m1"] = publishedMenu("m1", "s1")
	te.addStaffWithShift("s1", "Aiko", openDay(span("09:00", "12:00")), 2)

	_, err := te.svc.GetCalendarMeta(context.Background(), calendarReq("m1", ""))
	require.NoError(t, err)
	require.Equal(t, 1, te.cache.sets)
	shiftCalls := te.shifts.calls

	meta, err := te.svc.GetCalendarMeta(context.Background(), calendarReq("m1", ""))
	require.NoError(t, err)
	assert.Equal(t, 1, te.cache.hits)
	assert.Equal(t, shiftCalls, te.shifts.calls, "cached call must not hit the shift repository")
	assert.Len(t, meta.Days, 30)
}

func TestGetCalendarMeta_CacheKeySeparatesStaffAndZone(t *testing.T) {
	te := newTestEngine()
	te.menus.menus["m1"] = publishedMenu("m1", "s1", "s2")
	te.addStaffWithShift("s1", "Aiko", openDay(span("09:00", "12:00")), 2)
	te.addStaffWithShift("s2", "Ben", openDay(span("09:00", "12:00")), 2)

	_, err := te.svc.GetCalendarMeta(context.Background(), calendarReq("m1", ""))
	require.NoError(t, err)
	_, err = te.svc.GetCalendarMeta(context.Background(), calendarReq("m1", "s1"))
	require.NoError(t, err)

	tokyo := calendarReq("m1", "")
	tokyo.Timezone = "Asia/Tokyo"
	_, err = te.svc.GetCalendarMeta(context.Background(), tokyo)
	require.NoError(t, err)

	assert.Equal(t, 3, te.cache.sets, "each staff selection and timezone caches separately")
	assert.Zero(t, te.cache.hits)
}

func TestGetCalendarMeta_DeadlineHidesEarlySlots(t *testing.T) {
	te := newTestEngine()
	te.svc.SettingsRepo = &fakeSettingsRepo{settings: models.SchedulingSettings{SlotStepMinutes: 60}}
	menu := publishedMenu("m1", "s1")
	menu.DeadlineHours = intPtr(24)
	te.menus.menus["m1"] = menu
	te.addStaffWithShift("s1", "Aiko", openDay(span("09:00", "12:00")), 1, 2)

	// Now is pinned at 2026-09-01 08:00 UTC, so the cutoff lands at
	// 2026-09-02 08:00 UTC: day 1 is fully past it, day 2 unaffected.
	meta, err := te.svc.GetCalendarMeta(context.Background(), calendarReq("m1", ""))
	require.NoError(t, err)
	assert.Equal(t, 0, meta.Days[0].AvailableSlots)
	assert.True(t, meta.Days[0].IsDisabled)
	assert.Equal(t, 3, meta.Days[1].AvailableSlots)
}
