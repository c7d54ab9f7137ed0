package postgres

import (
	"context"
	"database/sql"

	"github.com/chairulsabri/backend-windows-explorer/internal/model"
	"github.com/chairulsabri/backend-windows-explorer/internal/repository"
)

const folderColumns = "id, name, path, parent_id, created_at, updated_at"

var folderList = listSpec{
	table:         "folders",
	columns:       folderColumns,
	searchColumns: []string{"name", "path"},
	sortColumns:   repository.FolderSortColumns,
}

// FolderPostgres is a PostgreSQL implementation of repository.FolderRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type FolderPostgres struct {
	db *sql.DB
}

// NewFolderPostgres creates a new FolderPostgres repository.
func NewFolderPostgres(db *sql.DB) *FolderPostgres {
	return &FolderPostgres{db: db}
}

var _ repository.FolderRepository = (*FolderPostgres)(nil)

func scanFolder(row rowScanner) (model.Folder, error) {
	var f model.Folder
	var parentID sql.NullInt64
	if err := row.Scan(
		&f.ID,
		&f.Name,
		&f.Path,
		&parentID,
		&f.CreatedAt,
		&f.UpdatedAt,
	); err != nil {
		return model.Folder{}, err
	}
	f.ParentID = int64Ptr(parentID)
	return f, nil
}

func (r *FolderPostgres) queryOne(ctx context.Context, q string, args ...any) (*model.Folder, error) {
	f, err := scanFolder(executor(ctx, r.db).QueryRowContext(ctx, q, args...))
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FolderPostgres) queryMany(ctx context.Context, q string, args ...any) ([]model.Folder, error) {
	rows, err := executor(ctx, r.db).QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanFolder)
}

// List returns one page of folders and the total number of matches.
func (r *FolderPostgres) List(ctx context.Context, q repository.ListQuery) (*repository.PageResult[model.Folder], error) {
	return listPage(ctx, executor(ctx, r.db), folderList, q, scanFolder)
}

// ListAll returns every folder ordered by path so siblings keep a stable order in the tree.
func (r *FolderPostgres) ListAll(ctx context.Context) ([]model.Folder, error) {
	const q = `
		SELECT ` + folderColumns + `
		FROM folders
		ORDER BY path ASC, id ASC
	`
	return r.queryMany(ctx, q)
}

// ListChildren returns the direct subfolders of parentID.
func (r *FolderPostgres) ListChildren(ctx context.Context, parentID int64) ([]model.Folder, error) {
	const q = `
		SELECT ` + folderColumns + `
		FROM folders
		WHERE parent_id = $1
		ORDER BY name ASC, id ASC
	`
	return r.queryMany(ctx, q, parentID)
}

// FindByID fetches a single folder by its ID.
func (r *FolderPostgres) FindByID(ctx context.Context, id int64) (*model.Folder, error) {
	const q = `
		SELECT ` + folderColumns + `
		FROM folders
		WHERE id = $1
	`
	return r.queryOne(ctx, q, id)
}

// Create inserts a new folder row and returns the stored record.
func (r *FolderPostgres) Create(ctx context.Context, in repository.FolderCreate) (*model.Folder, error) {
	const q = `
		INSERT INTO folders (name, path, parent_id)
		VALUES ($1, $2, $3)
		RETURNING ` + folderColumns
	f, err := r.queryOne(ctx, q, in.Name, in.Path, nullInt64(in.ParentID))
	if err != nil {
		return nil, mapWriteError(err)
	}
	return f, nil
}

// Update writes only the supplied fields.
func (r *FolderPostgres) Update(ctx context.Context, id int64, in repository.FolderUpdate) (*model.Folder, error) {
	if in.Empty() {
		return r.FindByID(ctx, id)
	}

	var set setClause
	if in.Name != nil {
		set.add("name", *in.Name)
	}
	if in.Path != nil {
		set.add("path", *in.Path)
	}
	if in.ParentID.Present {
		set.add("parent_id", nullInt64(in.ParentID.Value))
	}

	q, args := set.sql("folders", folderColumns, id)
	f, err := r.queryOne(ctx, q, args...)
	if err != nil {
		return nil, mapWriteError(err)
	}
	return f, nil
}

// Delete removes a folder by ID and reports whether a row was removed.
func (r *FolderPostgres) Delete(ctx context.Context, id int64) (bool, error) {
	const q = `DELETE FROM folders WHERE id = $1`
	res, err := executor(ctx, r.db).ExecContext(ctx, q, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Reparent moves a single folder under parentID with the given path.
func (r *FolderPostgres) Reparent(ctx context.Context, id int64, parentID *int64, path string) (*model.Folder, error) {
	const q = `
		UPDATE folders
		SET parent_id = $1, path = $2, updated_at = now()
		WHERE id = $3
		RETURNING ` + folderColumns
	f, err := r.queryOne(ctx, q, nullInt64(parentID), path, id)
	if err != nil {
		return nil, mapWriteError(err)
	}
	return f, nil
}

// RepathDescendants rewrites the path prefix of every folder in the subtree below id.
// Membership follows parent_id; folders whose path does not carry oldPrefix are left untouched.
func (r *FolderPostgres) RepathDescendants(ctx context.Context, id int64, oldPrefix, newPrefix string) (int64, error) {
	const q = `
		WITH RECURSIVE subtree AS (
			SELECT id FROM folders WHERE parent_id = $1
			UNION
			SELECT f.id FROM folders f JOIN subtree s ON f.parent_id = s.id
		)
		UPDATE folders
		SET path = $3 || substr(path, length($2) + 1), updated_at = now()
		WHERE id IN (SELECT id FROM subtree)
		  AND left(path, length($2)) = $2
	`
	res, err := executor(ctx, r.db).ExecContext(ctx, q, id, oldPrefix, newPrefix)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
