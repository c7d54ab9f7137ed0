package repository

import (
	"context"

	"github.com/chairulsabri/backend-windows-explorer/internal/model"
)

// FileCreate holds the fields of a new file.
type FileCreate struct {
	Name      string
	Path      string
	FolderID  *int64
	Extension *string
	Size      int64
	MimeType  *string
}

// FileUpdate holds the fields of a partial update.
type FileUpdate struct {
	Name      *string
	Path      *string
	FolderID  model.Nullable[int64]
	Extension model.Nullable[string]
	Size      *int64
	MimeType  model.Nullable[string]
}

// Empty reports whether the update changes nothing.
func (u FileUpdate) Empty() bool {
	return u.Name == nil && u.Path == nil && u.Size == nil &&
		!u.FolderID.Present && !u.Extension.Present && !u.MimeType.Present
}

// StatsExtensionLimit caps the per-extension breakdown of StorageStats.
const StatsExtensionLimit = 10

// FileRepository defines data access for files.
// Lookups of a missing id return sql.ErrNoRows.
type FileRepository interface {
	List(ctx context.Context, q ListQuery) (*PageResult[model.File], error)

	// ListByFolder returns the files directly inside folderID ordered by name.
	ListByFolder(ctx context.Context, folderID int64) ([]model.File, error)

	// ListByExtension returns the files with the given extension ordered by name.
	ListByExtension(ctx context.Context, extension string) ([]model.File, error)

	FindByID(ctx context.Context, id int64) (*model.File, error)

	Create(ctx context.Context, in FileCreate) (*model.File, error)

	// Update applies the supplied fields and returns the stored record.
	// An empty update returns the current record unchanged.
	Update(ctx context.Context, id int64, in FileUpdate) (*model.File, error)

	Delete(ctx context.Context, id int64) (bool, error)

	// Move sets folder_id and path of a file.
	Move(ctx context.Context, id int64, folderID *int64, path string) (*model.File, error)

	// RepathUnder replaces oldPrefix with newPrefix in the path of every file inside folderID or its subfolders.
	RepathUnder(ctx context.Context, folderID int64, oldPrefix, newPrefix string) (int64, error)

	// Stats aggregates sizes over all files.
	Stats(ctx context.Context) (*model.StorageStats, error)
}
