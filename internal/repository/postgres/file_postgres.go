package postgres

import (
	"context"
	"database/sql"

	"github.com/chairulsabri/backend-windows-explorer/internal/model"
	"github.com/chairulsabri/backend-windows-explorer/internal/repository"
)

const fileColumns = "id, name, path, folder_id, extension, size, mime_type, created_at, updated_at"

var fileList = listSpec{
	table:         "files",
	columns:       fileColumns,
	searchColumns: []string{"name", "path", "extension"},
	sortColumns:   repository.FileSortColumns,
}

// FilePostgres is a PostgreSQL implementation of repository.FileRepository.
type FilePostgres struct {
	db *sql.DB
}

// NewFilePostgres creates a new FilePostgres repository.
func NewFilePostgres(db *sql.DB) *FilePostgres {
	return &FilePostgres{db: db}
}

var _ repository.FileRepository = (*FilePostgres)(nil)

func scanFile(row rowScanner) (model.File, error) {
	var f model.File
	var folderID sql.NullInt64
	var ext, mime sql.NullString
	if err := row.Scan(
		&f.ID,
		&f.Name,
		&f.Path,
		&folderID,
		&ext,
		&f.Size,
		&mime,
		&f.CreatedAt,
		&f.UpdatedAt,
	); err != nil {
		return model.File{}, err
	}
	f.FolderID = int64Ptr(folderID)
	f.Extension = stringPtr(ext)
	f.MimeType = stringPtr(mime)
	return f, nil
}

func (r *FilePostgres) queryOne(ctx context.Context, q string, args ...any) (*model.File, error) {
	f, err := scanFile(executor(ctx, r.db).QueryRowContext(ctx, q, args...))
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FilePostgres) queryMany(ctx context.Context, q string, args ...any) ([]model.File, error) {
	rows, err := executor(ctx, r.db).QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanFile)
}

// List returns one page of files and the total number of matches.
func (r *FilePostgres) List(ctx context.Context, q repository.ListQuery) (*repository.PageResult[model.File], error) {
	return listPage(ctx, executor(ctx, r.db), fileList, q, scanFile)
}

// ListByFolder returns the files directly inside folderID.
func (r *FilePostgres) ListByFolder(ctx context.Context, folderID int64) ([]model.File, error) {
	const q = `
		SELECT ` + fileColumns + `
		FROM files
		WHERE folder_id = $1
		ORDER BY name ASC, id ASC
	`
	return r.queryMany(ctx, q, folderID)
}

// ListByExtension returns the files with the given extension.
func (r *FilePostgres) ListByExtension(ctx context.Context, extension string) ([]model.File, error) {
	const q = `
		SELECT ` + fileColumns + `
		FROM files
		WHERE extension = $1
		ORDER BY name ASC, id ASC
	`
	return r.queryMany(ctx, q, extension)
}

// FindByID fetches a single file by its ID.
func (r *FilePostgres) FindByID(ctx context.Context, id int64) (*model.File, error) {
	const q = `
		SELECT ` + fileColumns + `
		FROM files
		WHERE id = $1
	`
	return r.queryOne(ctx, q, id)
}

// Create inserts a new file row and returns the stored record.
func (r *FilePostgres) Create(ctx context.Context, in repository.FileCreate) (*model.File, error) {
	const q = `
		INSERT INTO files (name, path, folder_id, extension, size, mime_type)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + fileColumns
	f, err := r.queryOne(ctx, q,
		in.Name,
		in.Path,
		nullInt64(in.FolderID),
		nullString(in.Extension),
		in.Size,
		nullString(in.MimeType),
	)
	if err != nil {
		return nil, mapWriteError(err)
	}
	return f, nil
}

// Update writes only the supplied fields.
func (r *FilePostgres) Update(ctx context.Context, id int64, in repository.FileUpdate) (*model.File, error) {
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
	if in.FolderID.Present {
		set.add("folder_id", nullInt64(in.FolderID.Value))
	}
	if in.Extension.Present {
		set.add("extension", nullString(in.Extension.Value))
	}
	if in.Size != nil {
		set.add("size", *in.Size)
	}
	if in.MimeType.Present {
		set.add("mime_type", nullString(in.MimeType.Value))
	}

	q, args := set.sql("files", fileColumns, id)
	f, err := r.queryOne(ctx, q, args...)
	if err != nil {
		return nil, mapWriteError(err)
	}
	return f, nil
}

// Delete removes a file by ID and reports whether a row was removed.
func (r *FilePostgres) Delete(ctx context.Context, id int64) (bool, error) {
	const q = `DELETE FROM files WHERE id = $1`
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

// Move sets the folder and path of a file.
func (r *FilePostgres) Move(ctx context.Context, id int64, folderID *int64, path string) (*model.File, error) {
	const q = `
		UPDATE files
		SET folder_id = $1, path = $2, updated_at = now()
		WHERE id = $3
		RETURNING ` + fileColumns
	f, err := r.queryOne(ctx, q, nullInt64(folderID), path, id)
	if err != nil {
		return nil, mapWriteError(err)
	}
	return f, nil
}

// RepathUnder rewrites the path prefix of every file in folderID and its subfolders.
func (r *FilePostgres) RepathUnder(ctx context.Context, folderID int64, oldPrefix, newPrefix string) (int64, error) {
	const q = `
		WITH RECURSIVE subtree AS (
			SELECT id FROM folders WHERE id = $1
			UNION
			SELECT f.id FROM folders f JOIN subtree s ON f.parent_id = s.id
		)
		UPDATE files
		SET path = $3 || substr(path, length($2) + 1), updated_at = now()
		WHERE folder_id IN (SELECT id FROM subtree)
		  AND left(path, length($2)) = $2
	`
	res, err := executor(ctx, r.db).ExecContext(ctx, q, folderID, oldPrefix, newPrefix)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Stats returns total size and count plus the largest extensions by total size.
func (r *FilePostgres) Stats(ctx context.Context) (*model.StorageStats, error) {
	db := executor(ctx, r.db)

	const qTotal = `SELECT COALESCE(SUM(size), 0)::bigint, COUNT(*) FROM files`
	var stats model.StorageStats
	if err := db.QueryRowContext(ctx, qTotal).Scan(&stats.TotalSize, &stats.TotalFiles); err != nil {
		return nil, err
	}

	const qByExt = `
		SELECT extension, COUNT(*) AS count, COALESCE(SUM(size), 0)::bigint AS total_size
		FROM files
		WHERE extension IS NOT NULL
		GROUP BY extension
		ORDER BY total_size DESC, extension ASC
		LIMIT $1
	`
	rows, err := db.QueryContext(ctx, qByExt, repository.StatsExtensionLimit)
	if err != nil {
		return nil, err
	}
	byExt, err := collect(rows, func(row rowScanner) (model.ExtensionStat, error) {
		var s model.ExtensionStat
		err := row.Scan(&s.Extension, &s.Count, &s.TotalSize)
		return s, err
	})
	if err != nil {
		return nil, err
	}
	stats.ByExtension = byExt
	return &stats, nil
}
