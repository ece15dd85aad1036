package models

// AutoRejectPayload is the task payload queued when a booking is
// auto-rejected, consumed by the push-notification worker.
type AutoRejectPayload struct {
	BookingID string `json:"bookingId"`
	UserID    string `json:"userId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	Reason    string `json:"reason"`
}
