package model

import "time"

// Client is a customer record owned by the user who created it.
// This is a pure domain model with no database-specific dependencies or tags.
// CreatedBy and TeamID are set once at creation and never changed by updates.
type Client struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	TeamID      string    `json:"team_id"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`

	// CreatedByEmail is populated by list/detail queries via a join on users.
	// It is a display value only and is never written back.
	CreatedByEmail string `json:"created_by_email,omitempty"`
}
