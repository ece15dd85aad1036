package scheduling

import (
	"testing"

	"stylebook/models"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlots_FullDayNoBookings(t *testing.T) {
	schedule := &models.DaySchedule{Start: 9 * 60, End: 17 * 60}

	slots := GenerateSlots(schedule, nil, 60, 60)

	// 09:00 through 16:00; a 60-minute slot at 16:00 ends exactly at close.
	assert.Len(t, slots, 8)
	assert.Equal(t, 9*60, slots[0])
	assert.Equal(t, 16*60, slots[len(slots)-1])
}

func TestGenerateSlots_ExcludesBookedWindow(t *testing.T) {
	schedule := &models.DaySchedule{Start: 9 * 60, End: 17 * 60}
	busy := []models.BusyInterval{{Start: 10 * 60, End: 11 * 60}}

	slots := GenerateSlots(schedule, busy, 60, 60)

	assert.Len(t, slots, 7)
	assert.NotContains(t, slots, 10*60)
	assert.Contains(t, slots, 9*60)
	assert.Contains(t, slots, 11*60)
}

func TestGenerateSlots_TouchingIntervalsDoNotConflict(t *testing.T) {
	schedule := &models.DaySchedule{Start: 9 * 60, End: 12 * 60}
	// Booking 10:00-11:00. A slot ending at exactly 10:00 and one starting
	// at exactly 11:00 are both fine.
	busy := []models.BusyInterval{{Start: 10 * 60, End: 11 * 60}}

	slots := GenerateSlots(schedule, busy, 60, 60)

	assert.Equal(t, []int{9 * 60, 11 * 60}, slots)
}

func TestGenerateSlots_DurationLongerThanWindow(t *testing.T) {
	schedule := &models.DaySchedule{Start: 9 * 60, End: 10 * 60}

	slots := GenerateSlots(schedule, nil, 90, 60)

	assert.Empty(t, slots)
}

func TestGenerateSlots_TailSlotTooShort(t *testing.T) {
	// 09:00-16:30 with 60-minute service: last fitting start is 15:00,
	// because 16:00+60 would run past close.
	schedule := &models.DaySchedule{Start: 9 * 60, End: 16*60 + 30}

	slots := GenerateSlots(schedule, nil, 60, 60)

	assert.Equal(t, 15*60, slots[len(slots)-1])
}

func TestGenerateSlots_StepSmallerThanDuration(t *testing.T) {
	schedule := &models.DaySchedule{Start: 9 * 60, End: 11 * 60}

	slots := GenerateSlots(schedule, nil, 60, 30)

	// Starts every 30 minutes as long as a full hour still fits.
	assert.Equal(t, []int{9 * 60, 9*60 + 30, 10 * 60}, slots)
}

func TestGenerateSlots_NilScheduleAndBadInput(t *testing.T) {
	assert.Nil(t, GenerateSlots(nil, nil, 60, 60))
	assert.Nil(t, GenerateSlots(&models.DaySchedule{Start: 540, End: 1020}, nil, 0, 60))
}

func TestGenerateSlots_LongBookingBlocksSpannedTicks(t *testing.T) {
	schedule := &models.DaySchedule{Start: 9 * 60, End: 13 * 60}
	// 10:00-12:00 booking removes the 10:00 and 11:00 ticks.
	busy := []models.BusyInterval{{Start: 10 * 60, End: 12 * 60}}

	slots := GenerateSlots(schedule, busy, 60, 60)

	assert.Equal(t, []int{9 * 60, 12 * 60}, slots)
}
