package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStatus(t *testing.T) {
	assert.Equal(t, StatusPending, NormalizeStatus("pending"))
	assert.Equal(t, StatusConfirmed, NormalizeStatus(" Confirmed "))
	assert.Equal(t, StatusRejected, NormalizeStatus("REJECTED"))

	unknown := NormalizeStatus("snoozed")
	assert.Equal(t, BookingStatus("SNOOZED"), unknown)
	assert.False(t, unknown.IsValid())
}

func TestStatusTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
}

func TestProviderRef(t *testing.T) {
	b := &Booking{StylistID: "u-9"}
	kind, id := b.ProviderRef()
	assert.Equal(t, KindStylist, kind)
	assert.Equal(t, "u-9", id)

	b = &Booking{SalonID: "sal-1"}
	kind, id = b.ProviderRef()
	assert.Equal(t, KindSalon, kind)
	assert.Equal(t, "sal-1", id)
}

func TestBusyIntervalOverlaps(t *testing.T) {
	iv := BusyInterval{Start: 10 * 60, End: 11 * 60}

	assert.True(t, iv.Overlaps(10*60+30, 11*60+30))
	assert.True(t, iv.Overlaps(9*60+30, 10*60+30))
	assert.True(t, iv.Overlaps(9*60, 12*60)) // fully covers
	assert.True(t, iv.Overlaps(10*60+15, 10*60+45))

	// Half-open: touching endpoints do not conflict.
	assert.False(t, iv.Overlaps(9*60, 10*60))
	assert.False(t, iv.Overlaps(11*60, 12*60))
}
