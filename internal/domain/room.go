package domain

import "time"

// Room represents a bookable meeting room
type Room struct {
	ID        int64
	Name      string
	Building  string
	Floor     string
	Capacity  int
	Equipment []string // названия оборудования ("โปรเจคเตอร์", "TV", ...)
	ImageURL  *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasCapacityFor returns true if the room fits the given number of attendees
// Capacity is advisory: bookings above capacity are allowed but logged
func (r *Room) HasCapacityFor(attendees int) bool {
	return attendees <= r.Capacity
}
