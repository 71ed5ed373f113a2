package domain

import "time"

// Client is a rental customer (typically an event organizer). Clients are
// soft-deleted: Active=false hides them from default listings but keeps
// every rental and device-ownership reference intact.
type Client struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	CodeSportmaniacs *int64    `json:"codeSportmaniacs,omitempty"`
	Email            *string   `json:"email,omitempty"`
	Phone            *string   `json:"phone,omitempty"`
	Notes            string    `json:"notes,omitempty"`
	Active           bool      `json:"active"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
