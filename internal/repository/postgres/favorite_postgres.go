package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/chairulsabri/backend-windows-explorer/internal/model"
	"github.com/chairulsabri/backend-windows-explorer/internal/repository"
)

const favoriteColumns = "id, item_type, item_id, created_at"

// FavoritePostgres is a PostgreSQL implementation of repository.FavoriteRepository.
type FavoritePostgres struct {
	db *sql.DB
}

// NewFavoritePostgres creates a new FavoritePostgres repository.
func NewFavoritePostgres(db *sql.DB) *FavoritePostgres {
	return &FavoritePostgres{db: db}
}

var _ repository.FavoriteRepository = (*FavoritePostgres)(nil)

func scanFavorite(row rowScanner) (model.Favorite, error) {
	var f model.Favorite
	var itemType string
	if err := row.Scan(&f.ID, &itemType, &f.ItemID, &f.CreatedAt); err != nil {
		return model.Favorite{}, err
	}
	f.ItemType = model.ItemType(itemType)
	return f, nil
}

// ListResolved joins each favorite against the table its item type names.
func (r *FavoritePostgres) ListResolved(ctx context.Context) ([]model.FavoriteEntry, error) {
	const q = `
		SELECT
			f.id, f.item_type, f.item_id, f.created_at,
			fo.name, fo.path,
			fi.name, fi.path
		FROM favorites f
		LEFT JOIN folders fo ON f.item_type = 'folder' AND f.item_id = fo.id
		LEFT JOIN files fi ON f.item_type = 'file' AND f.item_id = fi.id
		ORDER BY f.created_at DESC, f.id DESC
	`
	rows, err := executor(ctx, r.db).QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanFavoriteEntry)
}

func scanFavoriteEntry(row rowScanner) (model.FavoriteEntry, error) {
	var e model.FavoriteEntry
	var itemType string
	var folderName, folderPath, fileName, filePath sql.NullString
	if err := row.Scan(
		&e.ID, &itemType, &e.ItemID, &e.CreatedAt,
		&folderName, &folderPath,
		&fileName, &filePath,
	); err != nil {
		return model.FavoriteEntry{}, err
	}

	t, err := model.ParseItemType(itemType)
	if err != nil {
		return model.FavoriteEntry{}, fmt.Errorf("favorite %d: %w", e.ID, err)
	}
	e.ItemType = t

	var name, path sql.NullString
	switch t {
	case model.ItemTypeFolder:
		name, path = folderName, folderPath
	case model.ItemTypeFile:
		name, path = fileName, filePath
	}
	e.Name = stringPtr(name)
	e.Path = stringPtr(path)
	e.Missing = !name.Valid
	return e, nil
}

// FindByRef returns the favorite pointing at ref.
func (r *FavoritePostgres) FindByRef(ctx context.Context, ref model.ItemRef) (*model.Favorite, error) {
	const q = `
		SELECT ` + favoriteColumns + `
		FROM favorites
		WHERE item_type = $1 AND item_id = $2
	`
	f, err := scanFavorite(executor(ctx, r.db).QueryRowContext(ctx, q, string(ref.Type), ref.ID))
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// Create inserts a favorite. A concurrent insert of the same ref leaves no row to return,
// which surfaces as sql.ErrNoRows.
func (r *FavoritePostgres) Create(ctx context.Context, ref model.ItemRef) (*model.Favorite, error) {
	const q = `
		INSERT INTO favorites (item_type, item_id)
		VALUES ($1, $2)
		ON CONFLICT (item_type, item_id) DO NOTHING
		RETURNING ` + favoriteColumns
	f, err := scanFavorite(executor(ctx, r.db).QueryRowContext(ctx, q, string(ref.Type), ref.ID))
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// Delete removes a favorite by ID and reports whether a row was removed.
func (r *FavoritePostgres) Delete(ctx context.Context, id int64) (bool, error) {
	const q = `DELETE FROM favorites WHERE id = $1`
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

// Exists reports whether ref is a favorite.
func (r *FavoritePostgres) Exists(ctx context.Context, ref model.ItemRef) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM favorites WHERE item_type = $1 AND item_id = $2)`
	var ok bool
	if err := executor(ctx, r.db).QueryRowContext(ctx, q, string(ref.Type), ref.ID).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}
