package repository

import (
	"context"

	"github.com/chairulsabri/backend-windows-explorer/internal/model"
)

// FolderCreate holds the fields of a new folder.
type FolderCreate struct {
	Name     string
	Path     string
	ParentID *int64
}

// FolderUpdate holds the fields of a partial update. Nil pointers and absent Nullables are left unchanged.
type FolderUpdate struct {
	Name     *string
	Path     *string
	ParentID model.Nullable[int64]
}

// Empty reports whether the update changes nothing.
func (u FolderUpdate) Empty() bool {
	return u.Name == nil && u.Path == nil && !u.ParentID.Present
}

// FolderRepository defines data access for folders.
// Lookups of a missing id return sql.ErrNoRows.
type FolderRepository interface {
	// List returns one page of folders matching q and the total number of matches.
	List(ctx context.Context, q ListQuery) (*PageResult[model.Folder], error)

	// ListAll returns every folder ordered by path, then id.
	ListAll(ctx context.Context) ([]model.Folder, error)

	// ListChildren returns the direct subfolders of parentID ordered by name.
	ListChildren(ctx context.Context, parentID int64) ([]model.Folder, error)

	FindByID(ctx context.Context, id int64) (*model.Folder, error)

	Create(ctx context.Context, in FolderCreate) (*model.Folder, error)

	// Update applies the supplied fields and returns the stored record.
	// An empty update returns the current record unchanged.
	Update(ctx context.Context, id int64, in FolderUpdate) (*model.Folder, error)

	// Delete removes a folder; subfolders and files go with it through the foreign keys.
	// It reports whether a row was removed.
	Delete(ctx context.Context, id int64) (bool, error)

	// Reparent sets parent_id and path of a single folder.
	Reparent(ctx context.Context, id int64, parentID *int64, path string) (*model.Folder, error)

	// RepathDescendants replaces oldPrefix with newPrefix in the path of every folder below id.
	RepathDescendants(ctx context.Context, id int64, oldPrefix, newPrefix string) (int64, error)
}
