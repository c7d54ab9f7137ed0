package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/chairulsabri/backend-windows-explorer/internal/model"
	"github.com/chairulsabri/backend-windows-explorer/internal/repository"
)

// FavoriteService defines the use cases for bookmarking files and folders.
type FavoriteService interface {
	// List returns all favorites, newest first, with their targets resolved.
	List(ctx context.Context) ([]model.FavoriteEntry, error)

	// Add bookmarks an item. Adding an item twice returns the existing favorite.
	Add(ctx context.Context, req AddFavoriteRequest) (*model.Favorite, error)

	// Remove deletes a favorite by its own id and reports whether it existed.
	Remove(ctx context.Context, id int64) (bool, error)

	IsFavorite(ctx context.Context, ref model.ItemRef) (bool, error)
}

type favoriteService struct {
	repo   repository.FavoriteRepository
	logger *slog.Logger
}

// NewFavoriteService constructs a new FavoriteService.
func NewFavoriteService(repo repository.FavoriteRepository, logger *slog.Logger) FavoriteService {
	return &favoriteService{repo: repo, logger: logger}
}

func (s *favoriteService) List(ctx context.Context) ([]model.FavoriteEntry, error) {
	entries, err := s.repo.ListResolved(ctx)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return entries, nil
}

func (s *favoriteService) Add(ctx context.Context, req AddFavoriteRequest) (*model.Favorite, error) {
	ref, err := req.Validate()
	if err != nil {
		return nil, err
	}

	existing, err := s.findByRef(ctx, ref)
	if err != nil || existing != nil {
		return existing, err
	}

	fav, err := s.repo.Create(ctx, ref)
	if errors.Is(err, sql.ErrNoRows) {
		// Lost a race with a concurrent add of the same item.
		existing, err = s.findByRef(ctx, ref)
		if err == nil && existing == nil {
			err = fmt.Errorf("favorite %s/%d vanished after conflicting insert", ref.Type, ref.ID)
		}
		return existing, err
	}
	if err != nil {
		return nil, fmt.Errorf("add favorite: %w", err)
	}
	s.logger.InfoContext(ctx, "favorite added", "id", fav.ID, "item_type", fav.ItemType, "item_id", fav.ItemID)
	return fav, nil
}

func (s *favoriteService) Remove(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("remove favorite: %w", err)
	}
	if deleted {
		s.logger.InfoContext(ctx, "favorite removed", "id", id)
	}
	return deleted, nil
}

func (s *favoriteService) IsFavorite(ctx context.Context, ref model.ItemRef) (bool, error) {
	if _, err := model.ParseItemType(string(ref.Type)); err != nil {
		return false, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	ok, err := s.repo.Exists(ctx, ref)
	if err != nil {
		return false, fmt.Errorf("check favorite: %w", err)
	}
	return ok, nil
}

// findByRef returns nil, nil when no favorite points at ref.
func (s *favoriteService) findByRef(ctx context.Context, ref model.ItemRef) (*model.Favorite, error) {
	fav, err := s.repo.FindByRef(ctx, ref)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find favorite: %w", err)
	}
	return fav, nil
}
