package domain

import "time"

// Event represents a calendar entry
type Event struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Location  string    `json:"location,omitempty"`
	StartsAt  time.Time `json:"starts_at"`
	EndsAt    time.Time `json:"ends_at"`
	AllDay    bool      `json:"all_day,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OverlapsDay reports whether the event touches the calendar day that
// starts at dayStart (local midnight, 24h span)
func (e Event) OverlapsDay(dayStart time.Time) bool {
	dayEnd := dayStart.AddDate(0, 0, 1)
	return e.StartsAt.Before(dayEnd) && e.EndsAt.After(dayStart)
}
