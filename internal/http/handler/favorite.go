package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/chairulsabri/backend-windows-explorer/internal/model"
	"github.com/chairulsabri/backend-windows-explorer/internal/service"
)

// ListFavorites returns all favorites with their targets resolved.
//
// @Summary List favorites
// @Tags favorites
// @Produce json
// @Success 200 {object} successPayload
// @Router /api/favorites [get]
func ListFavorites(svc service.FavoriteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		entries, err := svc.List(c.UserContext())
		if err != nil {
			return writeServiceError(c, err, "favorite")
		}
		return writeData(c, fiber.StatusOK, entries)
	}
}

// AddFavorite bookmarks a file or folder. Adding an item twice returns the existing favorite.
//
// @Summary Add favorite
// @Tags favorites
// @Accept json
// @Produce json
// @Param body body service.AddFavoriteRequest true "Item"
// @Success 201 {object} successPayload
// @Failure 400 {object} errorPayload
// @Router /api/favorites [post]
func AddFavorite(svc service.FavoriteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req service.AddFavoriteRequest
		if ok, err := parseBody(c, &req); !ok {
			return err
		}
		fav, err := svc.Add(c.UserContext(), req)
		if err != nil {
			return writeServiceError(c, err, "favorite")
		}
		return writeMessage(c, fiber.StatusCreated, fav, "Added to favorites")
	}
}

// RemoveFavorite deletes a favorite by its own id.
//
// @Summary Remove favorite
// @Tags favorites
// @Produce json
// @Param id path int true "Favorite ID"
// @Success 200 {object} successPayload
// @Failure 404 {object} errorPayload
// @Router /api/favorites/{id} [delete]
func RemoveFavorite(svc service.FavoriteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := parseID(c, "id")
		if !ok {
			return err
		}
		deleted, err := svc.Remove(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err, "favorite")
		}
		if !deleted {
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "favorite not found")
		}
		return writeMessage(c, fiber.StatusOK, nil, "Removed from favorites")
	}
}

// CheckFavorite reports whether an item is bookmarked.
//
// @Summary Check favorite
// @Tags favorites
// @Produce json
// @Param itemType path string true "file or folder"
// @Param itemId path int true "Item ID"
// @Success 200 {object} successPayload
// @Failure 400 {object} errorPayload
// @Router /api/favorites/check/{itemType}/{itemId} [get]
func CheckFavorite(svc service.FavoriteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		itemType, err := model.ParseItemType(c.Params("itemType"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ITEM_TYPE", "itemType must be file or folder")
		}
		itemID, err := strconv.ParseInt(c.Params("itemId"), 10, 64)
		if err != nil || itemID <= 0 {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid itemId format")
		}
		ok, err := svc.IsFavorite(c.UserContext(), model.ItemRef{Type: itemType, ID: itemID})
		if err != nil {
			return writeServiceError(c, err, "favorite")
		}
		return writeData(c, fiber.StatusOK, fiber.Map{"is_favorite": ok})
	}
}
