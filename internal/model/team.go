package model

import "time"

// Team groups records created by its members. Modeled minimally: membership
// management is out of scope, every user gets a personal team at signup.
type Team struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
