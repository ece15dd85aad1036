package models

// AvailableSlotsResult is the outcome of a slot-availability query.
// Available distinguishes "provider is closed this day" (false) from
// "open but nothing fits" (true with empty Slots). Slots carries the
// bookable start times as "HH:MM" strings; the end time is implied by
// the requested duration. WorkingDays lists the provider's configured
// weekday names for client-side calendar rendering.
type AvailableSlotsResult struct {
	Available   bool     `json:"available"`
	WorkingDays []string `json:"workingDays"`
	Slots       []string `json:"slots"`
}
