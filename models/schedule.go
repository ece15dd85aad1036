package models

// ProviderKind distinguishes the two bookable provider types.
type ProviderKind string

const (
	KindStylist ProviderKind = "STYLIST"
	KindSalon   ProviderKind = "SALON"
)

// TimeWindow is an open/close window in minutes from midnight.
type TimeWindow struct {
	Start int `bson:"start" json:"start"`
	End   int `bson:"end" json:"end"`
}

// DaySchedule is the resolved working window for a provider on one
// calendar date. A nil *DaySchedule means the provider is not configured
// to work that day; that is a valid empty result, not an error.
type DaySchedule struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// WorkingHours is a stylist's weekly configuration: Days holds weekday
// names ("Monday".."Sunday") and TimeSlots the paired windows, index for
// index. Days absent from the list are closed.
type WorkingHours struct {
	Days      []string     `bson:"days" json:"days"`
	TimeSlots []TimeWindow `bson:"timeSlots" json:"timeSlots"`
}

// OpeningHours is one weekday entry of a salon's opening schedule,
// keyed by weekday number (0 = Sunday, matching time.Weekday).
type OpeningHours struct {
	Day   int `bson:"day" json:"day"`
	Start int `bson:"start" json:"start"`
	End   int `bson:"end" json:"end"`
}
