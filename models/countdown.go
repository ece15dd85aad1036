package models

// Countdown is the read-side projection of the time a pending booking has
// left before automatic rejection. Derived on every read, never persisted.
type Countdown struct {
	Days           int   `json:"days"`
	Hours          int   `json:"hours"`
	Minutes        int   `json:"minutes"`
	TotalSeconds   int64 `json:"totalSeconds"`
	Expired        bool  `json:"expired"`
	WillExpireSoon bool  `json:"willExpireSoon"` // less than 24h remaining
}

// CountdownStats aggregates countdown state over a user's pending bookings.
type CountdownStats struct {
	Total                int   `json:"total"`
	ExpiringSoon         int   `json:"expiringSoon"`         // less than 24h
	Critical             int   `json:"critical"`             // less than 6h
	AverageTimeRemaining int64 `json:"averageTimeRemaining"` // milliseconds
}

// SweepReasons breaks a sweep's rejections down by cause.
type SweepReasons struct {
	DatePassed int `json:"datePassed"`
	TimePassed int `json:"timePassed"`
	Overdue    int `json:"overdue"`
}

// SweepResult summarises one full pass of the rejection sweeper.
type SweepResult struct {
	Rejected int          `json:"rejected"`
	Total    int          `json:"total"`
	Reasons  SweepReasons `json:"reasons"`
}
