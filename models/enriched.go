package models

// EnrichedBooking is the API read view of a booking: the stored record
// plus the catalog/provider summaries the client would otherwise fetch
// separately, and the live countdown for pending bookings.
type EnrichedBooking struct {
	Booking
	Service   *ServiceSummary `json:"service,omitempty"`
	Stylist   *StylistSummary `json:"stylist,omitempty"`
	Salon     *SalonSummary   `json:"salon,omitempty"`
	Countdown *Countdown      `json:"countdown,omitempty"`
}
