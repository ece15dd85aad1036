package scheduling

import (
	"context"
	"errors"
	"testing"
	"time"

	"stylebook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStylistRepo struct {
	byUserID map[string]*models.Stylist
	err      error
}

func (f *fakeStylistRepo) Create(ctx context.Context, s *models.Stylist) error { return nil }
func (f *fakeStylistRepo) GetByID(ctx context.Context, id string) (*models.Stylist, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeStylistRepo) GetByUserID(ctx context.Context, userID string) (*models.Stylist, error) {
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.byUserID[userID]
	if !ok {
		return nil, errors.New("stylist not found")
	}
	return s, nil
}
func (f *fakeStylistRepo) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Stylist, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeStylistRepo) UpdateWorkingHours(ctx context.Context, id string, hours models.WorkingHours) error {
	return nil
}
func (f *fakeStylistRepo) List(ctx context.Context) ([]models.Stylist, error) { return nil, nil }
func (f *fakeStylistRepo) Delete(ctx context.Context, id string) error        { return nil }

type fakeSalonRepo struct {
	byID map[string]*models.Salon
}

func (f *fakeSalonRepo) Create(ctx context.Context, s *models.Salon) error { return nil }
func (f *fakeSalonRepo) GetByID(ctx context.Context, id string) (*models.Salon, error) {
	s, ok := f.byID[id]
	if !ok {
		return nil, errors.New("salon not found")
	}
	return s, nil
}
func (f *fakeSalonRepo) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Salon, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeSalonRepo) UpdateOpeningHours(ctx context.Context, id string, hours []models.OpeningHours) error {
	return nil
}
func (f *fakeSalonRepo) List(ctx context.Context) ([]models.Salon, error) { return nil, nil }
func (f *fakeSalonRepo) Delete(ctx context.Context, id string) error      { return nil }

type fakeBookingQueryRepo struct {
	fakeBookingRepoBase
	byDate map[string][]models.Booking
	err    error
}

func (f *fakeBookingQueryRepo) GetByProviderAndDate(ctx context.Context, kind models.ProviderKind, providerID, date string, statuses []models.BookingStatus) ([]models.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Booking
	for _, b := range f.byDate[date] {
		for _, st := range statuses {
			if b.Status == st {
				out = append(out, b)
				break
			}
		}
	}
	return out, nil
}

// fakeBookingRepoBase stubs the parts of BookingRepository availability
// never touches.
type fakeBookingRepoBase struct{}

func (fakeBookingRepoBase) Create(ctx context.Context, b *models.Booking) error { return nil }
func (fakeBookingRepoBase) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	return nil, errors.New("not implemented")
}
func (fakeBookingRepoBase) Delete(ctx context.Context, id string) error { return nil }
func (fakeBookingRepoBase) UpdateStatusIfActive(ctx context.Context, id string, to models.BookingStatus) (*models.Booking, error) {
	return nil, errors.New("not implemented")
}
func (fakeBookingRepoBase) MarkRejected(ctx context.Context, id string, at time.Time, reason string) (bool, error) {
	return false, errors.New("not implemented")
}
func (fakeBookingRepoBase) GetByClientID(ctx context.Context, userID string) ([]models.Booking, error) {
	return nil, nil
}
func (fakeBookingRepoBase) GetByStylistID(ctx context.Context, stylistID string) ([]models.Booking, error) {
	return nil, nil
}
func (fakeBookingRepoBase) GetBySalonID(ctx context.Context, salonID string) ([]models.Booking, error) {
	return nil, nil
}
func (fakeBookingRepoBase) ListByStatus(ctx context.Context, statuses []models.BookingStatus) ([]models.Booking, error) {
	return nil, nil
}
func (fakeBookingRepoBase) EnsureIndexes(ctx context.Context) error { return nil }

func mondayStylist(userID string) *models.Stylist {
	return &models.Stylist{
		ID:     "sty-1",
		UserID: userID,
		WorkingHours: models.WorkingHours{
			Days: []string{"Monday", "Wednesday"},
			TimeSlots: []models.TimeWindow{
				{Start: 9 * 60, End: 17 * 60},
				{Start: 10 * 60, End: 14 * 60},
			},
		},
	}
}

func TestGetAvailableSlots_StylistOpenDay(t *testing.T) {
	svc := &DefaultAvailabilityService{
		Stylists: &fakeStylistRepo{byUserID: map[string]*models.Stylist{"u1": mondayStylist("u1")}},
		Bookings: &fakeBookingQueryRepo{},
	}

	// 2026-08-24 is a Monday.
	res, err := svc.GetAvailableSlots(context.Background(), models.KindStylist, "u1", "2026-08-24", 60)
	require.NoError(t, err)

	assert.True(t, res.Available)
	assert.Equal(t, []string{"Monday", "Wednesday"}, res.WorkingDays)
	assert.Len(t, res.Slots, 8)
	assert.Equal(t, "09:00", res.Slots[0])
	assert.Equal(t, "16:00", res.Slots[7])
}

func TestGetAvailableSlots_StylistClosedDay(t *testing.T) {
	svc := &DefaultAvailabilityService{
		Stylists: &fakeStylistRepo{byUserID: map[string]*models.Stylist{"u1": mondayStylist("u1")}},
		Bookings: &fakeBookingQueryRepo{},
	}

	// 2026-08-25 is a Tuesday, not in the stylist's configured days.
	res, err := svc.GetAvailableSlots(context.Background(), models.KindStylist, "u1", "2026-08-25", 60)
	require.NoError(t, err)

	assert.False(t, res.Available)
	assert.Equal(t, []string{"Monday", "Wednesday"}, res.WorkingDays)
	assert.Empty(t, res.Slots)
	assert.NotNil(t, res.Slots)
}

func TestGetAvailableSlots_BookingsBlockSlots(t *testing.T) {
	bookings := &fakeBookingQueryRepo{
		byDate: map[string][]models.Booking{
			"2026-08-24": {
				{StylistID: "u1", Date: "2026-08-24", Start: 10 * 60, End: 11 * 60, Status: models.StatusConfirmed},
				{StylistID: "u1", Date: "2026-08-24", Start: 12 * 60, End: 13 * 60, Status: models.StatusRejected},
			},
		},
	}
	svc := &DefaultAvailabilityService{
		Stylists: &fakeStylistRepo{byUserID: map[string]*models.Stylist{"u1": mondayStylist("u1")}},
		Bookings: bookings,
	}

	res, err := svc.GetAvailableSlots(context.Background(), models.KindStylist, "u1", "2026-08-24", 60)
	require.NoError(t, err)

	assert.NotContains(t, res.Slots, "10:00")
	// The rejected booking does not block its window.
	assert.Contains(t, res.Slots, "12:00")
}

func TestGetAvailableSlots_OpenDayNothingFits(t *testing.T) {
	svc := &DefaultAvailabilityService{
		Stylists: &fakeStylistRepo{byUserID: map[string]*models.Stylist{"u1": mondayStylist("u1")}},
		Bookings: &fakeBookingQueryRepo{},
	}

	// 2026-08-26 is a Wednesday: 10:00-14:00 window, 5h service never fits.
	res, err := svc.GetAvailableSlots(context.Background(), models.KindStylist, "u1", "2026-08-26", 300)
	require.NoError(t, err)

	assert.True(t, res.Available)
	assert.Empty(t, res.Slots)
}

func TestGetAvailableSlots_SalonSchedule(t *testing.T) {
	salon := &models.Salon{
		ID: "sal-1",
		OpeningHours: []models.OpeningHours{
			{Day: 1, Start: 9 * 60, End: 12 * 60},  // Monday
			{Day: 6, Start: 10 * 60, End: 16 * 60}, // Saturday
		},
	}
	svc := &DefaultAvailabilityService{
		Salons:   &fakeSalonRepo{byID: map[string]*models.Salon{"sal-1": salon}},
		Bookings: &fakeBookingQueryRepo{},
	}

	res, err := svc.GetAvailableSlots(context.Background(), models.KindSalon, "sal-1", "2026-08-24", 60)
	require.NoError(t, err)

	assert.True(t, res.Available)
	assert.Equal(t, []string{"Monday", "Saturday"}, res.WorkingDays)
	assert.Equal(t, []string{"09:00", "10:00", "11:00"}, res.Slots)
}

func TestGetAvailableSlots_StoreFailurePropagates(t *testing.T) {
	svc := &DefaultAvailabilityService{
		Stylists: &fakeStylistRepo{byUserID: map[string]*models.Stylist{"u1": mondayStylist("u1")}},
		Bookings: &fakeBookingQueryRepo{err: errors.New("connection reset")},
	}

	_, err := svc.GetAvailableSlots(context.Background(), models.KindStylist, "u1", "2026-08-24", 60)
	assert.Error(t, err)
}

func TestResolveSchedule_InvalidInputs(t *testing.T) {
	svc := &DefaultAvailabilityService{
		Stylists: &fakeStylistRepo{},
		Salons:   &fakeSalonRepo{},
	}

	_, _, err := svc.ResolveSchedule(context.Background(), models.KindStylist, "u1", "24/08/2026")
	assert.Error(t, err)

	_, _, err = svc.ResolveSchedule(context.Background(), "BARBER", "x", "2026-08-24")
	assert.Error(t, err)
}
