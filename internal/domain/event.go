package domain

import "time"

// Event is one entry in the community event catalogue. Event registrations
// reference it and denormalize Name and StartsAt at creation time.
type Event struct {
	ID          string
	Name        string
	Description string
	Location    string
	StartsAt    time.Time
	Capacity    int
	CreatedAt   time.Time
}
