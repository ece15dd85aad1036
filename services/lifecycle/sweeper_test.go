package lifecycle

import (
	"context"
	"errors"
	"testing"
	"time"

	"stylebook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBookingRepo is an in-memory BookingRepository covering what the
// lifecycle engine touches.
type fakeBookingRepo struct {
	bookings map[string]*models.Booking
	failIDs  map[string]bool
	listErr  error
}

func newFakeBookingRepo(bookings ...*models.Booking) *fakeBookingRepo {
	m := make(map[string]*models.Booking, len(bookings))
	for _, b := range bookings {
		m[b.ID] = b
	}
	return &fakeBookingRepo{bookings: m, failIDs: map[string]bool{}}
}

func (f *fakeBookingRepo) Create(ctx context.Context, b *models.Booking) error { return nil }
func (f *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, errors.New("booking not found")
	}
	return b, nil
}
func (f *fakeBookingRepo) Delete(ctx context.Context, id string) error { return nil }
func (f *fakeBookingRepo) UpdateStatusIfActive(ctx context.Context, id string, to models.BookingStatus) (*models.Booking, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeBookingRepo) MarkRejected(ctx context.Context, id string, at time.Time, reason string) (bool, error) {
	if f.failIDs[id] {
		return false, errors.New("write failed")
	}
	b, ok := f.bookings[id]
	if !ok {
		return false, errors.New("booking not found")
	}
	if b.Status != models.StatusPending && b.Status != models.StatusConfirmed {
		return false, nil
	}
	b.Status = models.StatusRejected
	b.RejectedAt = &at
	b.RejectionReason = reason
	return true, nil
}
func (f *fakeBookingRepo) GetByProviderAndDate(ctx context.Context, kind models.ProviderKind, providerID, date string, statuses []models.BookingStatus) ([]models.Booking, error) {
	return nil, nil
}
func (f *fakeBookingRepo) GetByClientID(ctx context.Context, userID string) ([]models.Booking, error) {
	return nil, nil
}
func (f *fakeBookingRepo) GetByStylistID(ctx context.Context, stylistID string) ([]models.Booking, error) {
	return nil, nil
}
func (f *fakeBookingRepo) GetBySalonID(ctx context.Context, salonID string) ([]models.Booking, error) {
	return nil, nil
}
func (f *fakeBookingRepo) ListByStatus(ctx context.Context, statuses []models.BookingStatus) ([]models.Booking, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.Booking
	for _, b := range f.bookings {
		for _, st := range statuses {
			if b.Status == st {
				out = append(out, *b)
				break
			}
		}
	}
	return out, nil
}
func (f *fakeBookingRepo) EnsureIndexes(ctx context.Context) error { return nil }

type fakeEnqueuer struct {
	payloads []models.AutoRejectPayload
	err      error
}

func (f *fakeEnqueuer) EnqueueAutoReject(ctx context.Context, p models.AutoRejectPayload) error {
	if f.err != nil {
		return f.err
	}
	f.payloads = append(f.payloads, p)
	return nil
}

func TestSweep_RejectsAndCountsByReason(t *testing.T) {
	repo := newFakeBookingRepo(
		// Date passed.
		&models.Booking{ID: "b1", UserID: "u1", Date: "2026-08-20", Start: 9 * 60, Status: models.StatusPending, CreatedAt: testNow.Add(-time.Hour)},
		// Time passed today.
		&models.Booking{ID: "b2", UserID: "u2", Date: "2026-08-24", Start: 9 * 60, Status: models.StatusConfirmed, CreatedAt: testNow.Add(-time.Hour)},
		// Overdue pending.
		&models.Booking{ID: "b3", UserID: "u3", Date: "2026-08-30", Start: 9 * 60, Status: models.StatusPending, CreatedAt: testNow.Add(-50 * time.Hour)},
		// Healthy.
		&models.Booking{ID: "b4", UserID: "u4", Date: "2026-08-30", Start: 9 * 60, Status: models.StatusPending, CreatedAt: testNow.Add(-time.Hour)},
	)
	enq := &fakeEnqueuer{}
	svc := &DefaultLifecycleService{Repo: repo, Tasks: enq, Policy: DefaultPolicy()}

	res, err := svc.Sweep(context.Background(), testNow)
	require.NoError(t, err)

	assert.Equal(t, 4, res.Total)
	assert.Equal(t, 3, res.Rejected)
	assert.Equal(t, 1, res.Reasons.DatePassed)
	assert.Equal(t, 1, res.Reasons.TimePassed)
	assert.Equal(t, 1, res.Reasons.Overdue)

	assert.Equal(t, models.StatusRejected, repo.bookings["b1"].Status)
	assert.Equal(t, ReasonDatePassed, repo.bookings["b1"].RejectionReason)
	assert.NotNil(t, repo.bookings["b1"].RejectedAt)
	assert.Equal(t, models.StatusPending, repo.bookings["b4"].Status)

	assert.Len(t, enq.payloads, 3)
}

func TestSweep_PerRecordFailureContinues(t *testing.T) {
	repo := newFakeBookingRepo(
		&models.Booking{ID: "b1", UserID: "u1", Date: "2026-08-20", Start: 9 * 60, Status: models.StatusPending, CreatedAt: testNow.Add(-time.Hour)},
		&models.Booking{ID: "b2", UserID: "u2", Date: "2026-08-20", Start: 9 * 60, Status: models.StatusPending, CreatedAt: testNow.Add(-time.Hour)},
	)
	repo.failIDs["b1"] = true
	svc := &DefaultLifecycleService{Repo: repo, Policy: DefaultPolicy()}

	res, err := svc.Sweep(context.Background(), testNow)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Rejected)
	assert.Equal(t, models.StatusRejected, repo.bookings["b2"].Status)
	assert.Equal(t, models.StatusPending, repo.bookings["b1"].Status)
}

func TestSweep_ListFailureAborts(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.listErr = errors.New("store down")
	svc := &DefaultLifecycleService{Repo: repo, Policy: DefaultPolicy()}

	_, err := svc.Sweep(context.Background(), testNow)
	assert.Error(t, err)
}

func TestSweep_Idempotent(t *testing.T) {
	repo := newFakeBookingRepo(
		&models.Booking{ID: "b1", UserID: "u1", Date: "2026-08-20", Start: 9 * 60, Status: models.StatusPending, CreatedAt: testNow.Add(-time.Hour)},
	)
	svc := &DefaultLifecycleService{Repo: repo, Policy: DefaultPolicy()}

	first, err := svc.Sweep(context.Background(), testNow)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Rejected)

	second, err := svc.Sweep(context.Background(), testNow)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Rejected)
	assert.Equal(t, 0, second.Total)
}

func TestCheckOne_RejectsMatch(t *testing.T) {
	repo := newFakeBookingRepo(
		&models.Booking{ID: "b1", UserID: "u1", Date: "2026-08-24", Start: 9 * 60, Status: models.StatusPending, CreatedAt: testNow.Add(-time.Hour)},
	)
	enq := &fakeEnqueuer{}
	svc := &DefaultLifecycleService{Repo: repo, Tasks: enq, Policy: DefaultPolicy()}

	applied, err := svc.CheckOne(context.Background(), "b1", testNow)
	require.NoError(t, err)

	assert.True(t, applied)
	assert.Equal(t, models.StatusRejected, repo.bookings["b1"].Status)
	require.Len(t, enq.payloads, 1)
	assert.Equal(t, "b1", enq.payloads[0].BookingID)
	assert.Equal(t, "09:00", enq.payloads[0].StartTime)
}

func TestCheckOne_HealthyBookingUntouched(t *testing.T) {
	repo := newFakeBookingRepo(
		&models.Booking{ID: "b1", UserID: "u1", Date: "2026-08-30", Start: 9 * 60, Status: models.StatusPending, CreatedAt: testNow.Add(-time.Hour)},
	)
	svc := &DefaultLifecycleService{Repo: repo, Policy: DefaultPolicy()}

	applied, err := svc.CheckOne(context.Background(), "b1", testNow)
	require.NoError(t, err)

	assert.False(t, applied)
	assert.Equal(t, models.StatusPending, repo.bookings["b1"].Status)
}

func TestCheckOne_UnknownBookingErrors(t *testing.T) {
	svc := &DefaultLifecycleService{Repo: newFakeBookingRepo(), Policy: DefaultPolicy()}

	_, err := svc.CheckOne(context.Background(), "missing", testNow)
	assert.Error(t, err)
}

func TestSweep_EnqueueFailureDoesNotAbort(t *testing.T) {
	repo := newFakeBookingRepo(
		&models.Booking{ID: "b1", UserID: "u1", Date: "2026-08-20", Start: 9 * 60, Status: models.StatusPending, CreatedAt: testNow.Add(-time.Hour)},
	)
	svc := &DefaultLifecycleService{Repo: repo, Tasks: &fakeEnqueuer{err: errors.New("queue down")}, Policy: DefaultPolicy()}

	res, err := svc.Sweep(context.Background(), testNow)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Rejected)
}
