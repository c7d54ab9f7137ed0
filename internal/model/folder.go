package model

import "time"

// Folder is a node in the folder hierarchy.
// Root folders have a nil ParentID. Path is kept in sync by the application, not the database.
type Folder struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Path      string    `json:"path"`
	ParentID  *int64    `json:"parent_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FolderNode is a folder with its nested subfolders, as returned by the tree endpoint.
type FolderNode struct {
	Folder
	Children []*FolderNode `json:"children"`
}

// FolderContents lists the direct children of a folder.
type FolderContents struct {
	Folders []Folder `json:"folders"`
	Files   []File   `json:"files"`
}
