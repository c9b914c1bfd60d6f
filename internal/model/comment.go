package model

import "time"

// Comment is a free-text note attached to a client. Comments are created
// through the client detail endpoints and are never edited or deleted.
type Comment struct {
	ID        string    `json:"id"`
	Body      string    `json:"body"`
	ClientID  string    `json:"client_id"`
	TeamID    string    `json:"team_id"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}
