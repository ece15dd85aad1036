// File: services/scheduling/slots.go
package scheduling

import "stylebook/models"

// GenerateSlots walks the working window at fixed wall-clock steps and
// emits every start time from which the requested duration fits before
// closing and overlaps no busy interval. Slots are generated at regular
// ticks, not packed back-to-back after each booking. The overlap test is
// strictly half-open: a candidate ending exactly when a booking starts
// does not conflict. Pure function, no I/O.
func GenerateSlots(schedule *models.DaySchedule, busy []models.BusyInterval, durationMinutes, stepMinutes int) []int {
	if schedule == nil || durationMinutes <= 0 {
		return nil
	}
	if stepMinutes <= 0 {
		stepMinutes = DefaultStepMinutes
	}

	var slots []int
	for cursor := schedule.Start; cursor < schedule.End; cursor += stepMinutes {
		candidateEnd := cursor + durationMinutes
		if candidateEnd > schedule.End {
			// Nothing later can fit either.
			break
		}
		if overlapsAny(busy, cursor, candidateEnd) {
			continue
		}
		slots = append(slots, cursor)
	}
	return slots
}

func overlapsAny(busy []models.BusyInterval, start, end int) bool {
	for _, iv := range busy {
		if iv.Overlaps(start, end) {
			return true
		}
	}
	return false
}
