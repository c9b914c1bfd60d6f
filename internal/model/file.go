package model

import "time"

// File is an attachment uploaded for a client. The payload lives in object
// storage under StoragePath; this row only carries the metadata.
type File struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename"`
	StoragePath string    `json:"storage_path"`
	Size        int64     `json:"size"`
	ContentType string    `json:"content_type"`
	ClientID    string    `json:"client_id"`
	TeamID      string    `json:"team_id"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}
