package lifecycle

import (
	"testing"
	"time"

	"stylebook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountdownFor_FreshBooking(t *testing.T) {
	b := pendingBooking("2026-08-30", 9*60, testNow.Add(-2*time.Hour))

	c := CountdownFor(b, testNow, DefaultPolicy())
	require.NotNil(t, c)

	// 46h remaining.
	assert.Equal(t, 1, c.Days)
	assert.Equal(t, 22, c.Hours)
	assert.Equal(t, 0, c.Minutes)
	assert.Equal(t, int64(46*3600), c.TotalSeconds)
	assert.False(t, c.Expired)
	assert.False(t, c.WillExpireSoon)
}

func TestCountdownFor_ExpiringSoon(t *testing.T) {
	b := pendingBooking("2026-08-30", 9*60, testNow.Add(-30*time.Hour))

	c := CountdownFor(b, testNow, DefaultPolicy())
	require.NotNil(t, c)

	assert.Equal(t, 0, c.Days)
	assert.Equal(t, 18, c.Hours)
	assert.True(t, c.WillExpireSoon)
	assert.False(t, c.Expired)
}

func TestCountdownFor_Expired(t *testing.T) {
	b := pendingBooking("2026-08-30", 9*60, testNow.Add(-50*time.Hour))

	c := CountdownFor(b, testNow, DefaultPolicy())
	require.NotNil(t, c)

	assert.True(t, c.Expired)
	assert.True(t, c.WillExpireSoon)
	assert.Equal(t, int64(0), c.TotalSeconds)
	assert.Equal(t, 0, c.Days)
	assert.Equal(t, 0, c.Hours)
	assert.Equal(t, 0, c.Minutes)
}

func TestCountdownFor_ExactWindowBoundary(t *testing.T) {
	p := DefaultPolicy()
	b := pendingBooking("2026-08-30", 9*60, testNow.Add(-p.ResponseWindow))

	// At exactly zero remaining the window is not over yet, matching the
	// strict comparison Classify uses for the overdue check.
	c := CountdownFor(b, testNow, p)
	require.NotNil(t, c)
	assert.False(t, c.Expired)
	assert.Equal(t, int64(0), c.TotalSeconds)
	assert.False(t, Classify(b, testNow, p).ShouldReject)

	c = CountdownFor(b, testNow.Add(time.Second), p)
	require.NotNil(t, c)
	assert.True(t, c.Expired)
	assert.True(t, Classify(b, testNow.Add(time.Second), p).ShouldReject)
}

func TestCountdownFor_NonPendingHasNoCountdown(t *testing.T) {
	for _, st := range []models.BookingStatus{models.StatusConfirmed, models.StatusCompleted, models.StatusRejected, models.StatusCancelled} {
		b := pendingBooking("2026-08-30", 9*60, testNow.Add(-2*time.Hour))
		b.Status = st
		assert.Nil(t, CountdownFor(b, testNow, DefaultPolicy()))
	}
	assert.Nil(t, CountdownFor(nil, testNow, DefaultPolicy()))
}

func TestTimeRemaining_Monotone(t *testing.T) {
	b := pendingBooking("2026-08-30", 9*60, testNow.Add(-47*time.Hour))
	p := DefaultPolicy()

	r1 := TimeRemaining(b, testNow, p)
	r2 := TimeRemaining(b, testNow.Add(30*time.Minute), p)
	r3 := TimeRemaining(b, testNow.Add(5*time.Hour), p)

	assert.Equal(t, time.Hour, r1)
	assert.Equal(t, 30*time.Minute, r2)
	assert.Equal(t, time.Duration(0), r3)
	assert.GreaterOrEqual(t, r1, r2)
	assert.GreaterOrEqual(t, r2, r3)
}

func TestCountdownFor_MinutesDecomposition(t *testing.T) {
	// 1 day, 3 hours, 45 minutes remaining.
	remaining := 24*time.Hour + 3*time.Hour + 45*time.Minute
	b := pendingBooking("2026-08-30", 9*60, testNow.Add(remaining-DefaultPolicy().ResponseWindow))

	c := CountdownFor(b, testNow, DefaultPolicy())
	require.NotNil(t, c)

	assert.Equal(t, 1, c.Days)
	assert.Equal(t, 3, c.Hours)
	assert.Equal(t, 45, c.Minutes)
}
