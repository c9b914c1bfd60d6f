package model

import "time"

// User is an authenticated account. New records created by a user are
// attributed to the user's active team.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	ActiveTeamID string    `json:"active_team_id"`
	CreatedAt    time.Time `json:"created_at"`
}
