package reservation

import (
	"context"
	"testing"
	"time"

	"salonkit/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

type fakeMenuRepo struct {
	menus map[string]*models.Menu
}

func (f *fakeMenuRepo) GetByID(_ context.Context, id string) (*models.Menu, error) {
	return f.menus[id], nil
}

func (f *fakeMenuRepo) List(_ context.Context, _ bool) ([]models.Menu, error) {
	return nil, nil
}

type fakeBookingRepo struct {
	staffBooked map[string][]models.BookedInterval
	userBooked  map[string][]models.BookedInterval
	byID        map[string]*models.Booking
	created     []*models.Booking
	statuses    map[string]string
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{
		staffBooked: map[string][]models.BookedInterval{},
		userBooked:  map[string][]models.BookedInterval{},
		byID:        map[string]*models.Booking{},
		statuses:    map[string]string{},
	}
}

func bookedKey(ownerID string, dayStart time.Time) string {
	return ownerID + "|" + dayStart.Format("2006-01-02")
}

func (f *fakeBookingRepo) GetForStaffDate(_ context.Context, staffID string, dayStart time.Time) ([]models.BookedInterval, error) {
	return f.staffBooked[bookedKey(staffID, dayStart)], nil
}

func (f *fakeBookingRepo) GetForUserDate(_ context.Context, userID string, dayStart time.Time) ([]models.BookedInterval, error) {
	return f.userBooked[bookedKey(userID, dayStart)], nil
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	return f.byID[id], nil
}

func (f *fakeBookingRepo) Create(_ context.Context, b *models.Booking) error {
	f.created = append(f.created, b)
	f.byID[b.ID] = b
	return nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id, status string) error {
	f.statuses[id] = status
	return nil
}

type fakeSettingsRepo struct {
	settings models.SchedulingSettings
}

func (f *fakeSettingsRepo) Get(_ context.Context) (models.SchedulingSettings, error) {
	return f.settings.Normalized(), nil
}

func testService(bookings *fakeBookingRepo, menus map[string]*models.Menu) *DefaultReservationService {
	return &DefaultReservationService{
		MenuRepo:                &fakeMenuRepo{menus: menus},
		BookingRepo:             bookings,
		SettingsRepo:            &fakeSettingsRepo{settings: models.SchedulingSettings{SlotStepMinutes: 10}},
		SiteTimezone:            time.UTC,
		EnforceStaffRestriction: true,
		Now:                     func() time.Time { return time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC) },
	}
}

func cutMenu() *models.Menu {
	return &models.Menu{
		ID:              "m1",
		Name:            "Cut",
		DurationMinutes: 60,
		BufferMinutes:   intPtr(10),
		DeadlineHours:   intPtr(0),
		StaffIDs:        []string{"s1"},
		Published:       true,
	}
}

func createReq() CreateRequest {
	return CreateRequest{MenuID: "m1", StaffID: "s1", UserID: "u1", Date: "2026-09-02", Start: "10:00", Timezone: "UTC"}
}

func TestCreate_Confirmed(t *testing.T) {
	bookings := newFakeBookingRepo()
	svc := testService(bookings, map[string]*models.Menu{"m1": cutMenu()})

	booking, err := svc.Create(context.Background(), createReq())
	require.NoError(t, err)
	require.NotNil(t, booking)

	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, models.BookingConfirmed, booking.Status)
	assert.Equal(t, time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC), booking.ServiceStart)
	assert.Equal(t, time.Date(2026, 9, 2, 11, 0, 0, 0, time.UTC), booking.ServiceEnd)
	assert.Equal(t, time.Date(2026, 9, 2, 11, 10, 0, 0, time.UTC), booking.TotalEnd)
	require.Len(t, bookings.created, 1)
}

func TestCreate_PendingWhenConfirmationRequired(t *testing.T) {
	menu := cutMenu()
	menu.RequiresConfirmation = true
	bookings := newFakeBookingRepo()
	svc := testService(bookings, map[string]*models.Menu{"m1": menu})

	booking, err := svc.Create(context.Background(), createReq())
	require.NoError(t, err)
	assert.Equal(t, models.BookingPending, booking.Status)
}

func TestCreate_Rejections(t *testing.T) {
	archived := cutMenu()
	archived.ID = "archived"
	archived.Archived = true

	deadline := cutMenu()
	deadline.ID = "deadline"
	deadline.DeadlineHours = intPtr(48) // cutoff 2026-09-03 08:00

	menus := map[string]*models.Menu{
		"m1":       cutMenu(),
		"archived": archived,
		"deadline": deadline,
	}

	tests := []struct {
		name     string
		mutate   func(r *CreateRequest)
		wantCode string
	}{
		{"unknown menu", func(r *CreateRequest) { r.MenuID = "nope" }, CodeMenuNotFound},
		{"archived menu", func(r *CreateRequest) { r.MenuID = "archived" }, CodeMenuUnavailable},
		{"no staff selected", func(r *CreateRequest) { r.StaffID = "" }, CodeStaffNotAssigned},
		{"staff outside eligible set", func(r *CreateRequest) { r.StaffID = "s9" }, CodeStaffNotAssigned},
		{"garbage date", func(r *CreateRequest) { r.Date = "02-09-2026" }, CodeInvalidTime},
		{"garbage start", func(r *CreateRequest) { r.Start = "25:99" }, CodeInvalidTime},
		{"midnight sentinel start", func(r *CreateRequest) { r.Start = "24:00" }, CodeInvalidTime},
		{"past the deadline", func(r *CreateRequest) { r.MenuID = "deadline" }, CodeDeadlinePassed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := testService(newFakeBookingRepo(), menus)
			req := createReq()
			tt.mutate(&req)
			_, err := svc.Create(context.Background(), req)
			require.Error(t, err)
			var resErr *Error
			require.ErrorAs(t, err, &resErr)
			assert.Equal(t, tt.wantCode, resErr.Code)
		})
	}
}

func TestCreate_RestrictionEnforcementDisabled(t *testing.T) {
	bookings := newFakeBookingRepo()
	svc := testService(bookings, map[string]*models.Menu{"m1": cutMenu()})
	svc.EnforceStaffRestriction = false

	req := createReq()
	req.StaffID = "s9"
	_, err := svc.Create(context.Background(), req)
	assert.NoError(t, err)
}

func TestCreate_SlotTaken(t *testing.T) {
	bookings := newFakeBookingRepo()
	day := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	// A prior booking ends 10:30; the requested 10:00-11:10 block
	// overlaps its tail.
	bookings.staffBooked[bookedKey("s1", day)] = []models.BookedInterval{
		{Start: time.Date(2026, 9, 2, 9, 30, 0, 0, time.UTC), End: time.Date(2026, 9, 2, 10, 30, 0, 0, time.UTC)},
	}
	svc := testService(bookings, map[string]*models.Menu{"m1": cutMenu()})

	_, err := svc.Create(context.Background(), createReq())
	var resErr *Error
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, CodeSlotTaken, resErr.Code)
	assert.Empty(t, bookings.created)
}

func TestCreate_BackToBackWindowsDoNotCollide(t *testing.T) {
	bookings := newFakeBookingRepo()
	day := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	// The prior block ends exactly when the new one starts. Half-open
	// intervals make shared boundaries legal.
	bookings.staffBooked[bookedKey("s1", day)] = []models.BookedInterval{
		{Start: time.Date(2026, 9, 2, 8, 50, 0, 0, time.UTC), End: time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC)},
	}
	svc := testService(bookings, map[string]*models.Menu{"m1": cutMenu()})

	_, err := svc.Create(context.Background(), createReq())
	assert.NoError(t, err)
}

func TestCreate_UserAlreadyBooked(t *testing.T) {
	bookings := newFakeBookingRepo()
	day := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	bookings.userBooked[bookedKey("u1", day)] = []models.BookedInterval{
		{Start: time.Date(2026, 9, 2, 10, 30, 0, 0, time.UTC), End: time.Date(2026, 9, 2, 11, 30, 0, 0, time.UTC)},
	}
	svc := testService(bookings, map[string]*models.Menu{"m1": cutMenu()})

	_, err := svc.Create(context.Background(), createReq())
	var resErr *Error
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, CodeUserAlreadyBooked, resErr.Code)
}

func TestCancel(t *testing.T) {
	bookings := newFakeBookingRepo()
	bookings.byID["b1"] = &models.Booking{ID: "b1", UserID: "u1", Status: models.BookingConfirmed}
	bookings.byID["b2"] = &models.Booking{ID: "b2", UserID: "u1", Status: models.BookingCancelled}
	svc := testService(bookings, map[string]*models.Menu{})

	t.Run("owner cancels", func(t *testing.T) {
		err := svc.Cancel(context.Background(), "b1", Caller{UserID: "u1"})
		require.NoError(t, err)
		assert.Equal(t, models.BookingCancelled, bookings.statuses["b1"])
	})

	t.Run("manager cancels someone else's booking", func(t *testing.T) {
		err := svc.Cancel(context.Background(), "b1", Caller{UserID: "mgr", CanManage: true})
		assert.NoError(t, err)
	})

	t.Run("stranger is rejected", func(t *testing.T) {
		err := svc.Cancel(context.Background(), "b1", Caller{UserID: "u2"})
		var resErr *Error
		require.ErrorAs(t, err, &resErr)
		assert.Equal(t, CodeForbidden, resErr.Code)
	})

	t.Run("unknown booking", func(t *testing.T) {
		err := svc.Cancel(context.Background(), "nope", Caller{UserID: "u1"})
		var resErr *Error
		require.ErrorAs(t, err, &resErr)
		assert.Equal(t, CodeNotFound, resErr.Code)
	})

	t.Run("cancelling twice is a no-op", func(t *testing.T) {
		err := svc.Cancel(context.Background(), "b2", Caller{UserID: "u1"})
		require.NoError(t, err)
		_, updated := bookings.statuses["b2"]
		assert.False(t, updated)
	})
}
