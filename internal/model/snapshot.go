package model

import "time"

// TreeSnapshot describes a folder tree export stored in object storage.
type TreeSnapshot struct {
	Name        string    `json:"name"`
	Key         string    `json:"key"`
	URL         string    `json:"url"`
	FolderCount int       `json:"folder_count"`
	Size        int64     `json:"size"`
	CreatedAt   time.Time `json:"created_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}
