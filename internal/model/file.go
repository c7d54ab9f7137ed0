package model

import "time"

// File is the metadata of a stored file. Content is not kept by this service.
type File struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Path      string    `json:"path"`
	FolderID  *int64    `json:"folder_id"`
	Extension *string   `json:"extension"`
	Size      int64     `json:"size"`
	MimeType  *string   `json:"mime_type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FileVersion is reserved for file versioning; no operation reads or writes it yet.
type FileVersion struct {
	ID        int64     `json:"id"`
	FileID    int64     `json:"file_id"`
	Version   int       `json:"version"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

// ExtensionStat aggregates files sharing one extension.
type ExtensionStat struct {
	Extension string `json:"extension"`
	Count     int64  `json:"count"`
	TotalSize int64  `json:"total_size"`
}

// StorageStats summarizes the size of all files.
type StorageStats struct {
	TotalSize   int64           `json:"total_size"`
	TotalFiles  int64           `json:"total_files"`
	ByExtension []ExtensionStat `json:"by_extension"`
}
