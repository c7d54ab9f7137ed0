package repository

import (
	"context"

	"github.com/chairulsabri/backend-windows-explorer/internal/model"
)

// FavoriteRepository defines data access for favorites.
type FavoriteRepository interface {
	// ListResolved returns all favorites, newest first, with the name and path of their targets.
	ListResolved(ctx context.Context) ([]model.FavoriteEntry, error)

	// FindByRef returns the favorite pointing at ref, or sql.ErrNoRows.
	FindByRef(ctx context.Context, ref model.ItemRef) (*model.Favorite, error)

	// Create inserts a favorite for ref. It returns sql.ErrNoRows when one already exists.
	Create(ctx context.Context, ref model.ItemRef) (*model.Favorite, error)

	Delete(ctx context.Context, id int64) (bool, error)

	Exists(ctx context.Context, ref model.ItemRef) (bool, error)
}
