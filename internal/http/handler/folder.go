package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chairulsabri/backend-windows-explorer/internal/service"
)

// ListFolders returns a page of folders.
//
// @Summary List folders
// @Tags folders
// @Produce json
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Rows per page (default 10)"
// @Param search query string false "Substring of name or path"
// @Param sortBy query string false "id, name, path, parent_id, created_at, updated_at"
// @Param sortOrder query string false "ASC or DESC"
// @Success 200 {object} successPayload
// @Failure 400 {object} errorPayload
// @Router /api/folders [get]
func ListFolders(svc service.FolderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q, ok, err := parseListQuery(c)
		if !ok {
			return err
		}
		res, err := svc.List(c.UserContext(), q)
		if err != nil {
			return writeServiceError(c, err, "folder")
		}
		return writeList(c, res)
	}
}

// GetFolderTree returns the nested folder hierarchy.
//
// @Summary Folder tree
// @Tags folders
// @Produce json
// @Success 200 {object} successPayload
// @Router /api/folders/tree/all [get]
func GetFolderTree(svc service.FolderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tree, err := svc.Tree(c.UserContext())
		if err != nil {
			return writeServiceError(c, err, "folder")
		}
		return writeData(c, fiber.StatusOK, tree)
	}
}

// ExportFolderTree stores a snapshot of the tree in object storage.
//
// @Summary Export folder tree snapshot
// @Tags folders
// @Produce json
// @Success 201 {object} successPayload
// @Failure 503 {object} errorPayload
// @Router /api/folders/tree/snapshot [post]
func ExportFolderTree(svc service.SnapshotService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		snap, err := svc.Export(c.UserContext())
		if err != nil {
			return writeServiceError(c, err, "snapshot")
		}
		return writeMessage(c, fiber.StatusCreated, snap, "Snapshot exported successfully")
	}
}

// GetFolderTreeSnapshot streams a stored snapshot.
//
// @Summary Download folder tree snapshot
// @Tags folders
// @Produce json
// @Param name path string true "Snapshot name"
// @Success 200 {file} file
// @Failure 404 {object} errorPayload
// @Router /api/folders/tree/snapshot/{name} [get]
func GetFolderTreeSnapshot(svc service.SnapshotService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rc, info, err := svc.Open(c.UserContext(), c.Params("name"))
		if err != nil {
			return writeServiceError(c, err, "snapshot")
		}
		c.Type("json")
		return c.SendStream(rc, int(info.Size))
	}
}

// GetFolder returns one folder.
//
// @Summary Get folder
// @Tags folders
// @Produce json
// @Param id path int true "Folder ID"
// @Success 200 {object} successPayload
// @Failure 404 {object} errorPayload
// @Router /api/folders/{id} [get]
func GetFolder(svc service.FolderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := parseID(c, "id")
		if !ok {
			return err
		}
		f, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err, "folder")
		}
		return writeData(c, fiber.StatusOK, f)
	}
}

// GetFolderContents returns the direct subfolders and files of a folder.
//
// @Summary Folder contents
// @Tags folders
// @Produce json
// @Param id path int true "Folder ID"
// @Success 200 {object} successPayload
// @Failure 404 {object} errorPayload
// @Router /api/folders/{id}/contents [get]
func GetFolderContents(svc service.FolderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := parseID(c, "id")
		if !ok {
			return err
		}
		contents, err := svc.Contents(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err, "folder")
		}
		return writeData(c, fiber.StatusOK, contents)
	}
}

// CreateFolder creates a folder.
//
// @Summary Create folder
// @Tags folders
// @Accept json
// @Produce json
// @Param body body service.CreateFolderRequest true "Folder"
// @Success 201 {object} successPayload
// @Failure 400 {object} errorPayload
// @Router /api/folders [post]
func CreateFolder(svc service.FolderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req service.CreateFolderRequest
		if ok, err := parseBody(c, &req); !ok {
			return err
		}
		f, err := svc.Create(c.UserContext(), req)
		if err != nil {
			return writeServiceError(c, err, "folder")
		}
		return writeMessage(c, fiber.StatusCreated, f, "Folder created successfully")
	}
}

// UpdateFolder applies a partial update.
//
// @Summary Update folder
// @Tags folders
// @Accept json
// @Produce json
// @Param id path int true "Folder ID"
// @Param body body service.UpdateFolderRequest true "Fields to change"
// @Success 200 {object} successPayload
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /api/folders/{id} [put]
func UpdateFolder(svc service.FolderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := parseID(c, "id")
		if !ok {
			return err
		}
		var req service.UpdateFolderRequest
		if ok, err := parseBody(c, &req); !ok {
			return err
		}
		f, err := svc.Update(c.UserContext(), id, req)
		if err != nil {
			return writeServiceError(c, err, "folder")
		}
		return writeMessage(c, fiber.StatusOK, f, "Folder updated successfully")
	}
}

// MoveFolder re-parents a folder and repaths its subtree.
//
// @Summary Move folder
// @Tags folders
// @Accept json
// @Produce json
// @Param id path int true "Folder ID"
// @Param body body service.MoveFolderRequest true "New parent, null for top level"
// @Success 200 {object} successPayload
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /api/folders/{id}/move [post]
func MoveFolder(svc service.FolderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := parseID(c, "id")
		if !ok {
			return err
		}
		var req service.MoveFolderRequest
		if ok, err := parseBody(c, &req); !ok {
			return err
		}
		f, err := svc.Move(c.UserContext(), id, req)
		if err != nil {
			return writeServiceError(c, err, "folder")
		}
		return writeMessage(c, fiber.StatusOK, f, "Folder moved successfully")
	}
}

// DeleteFolder removes a folder with everything below it.
//
// @Summary Delete folder
// @Tags folders
// @Produce json
// @Param id path int true "Folder ID"
// @Success 200 {object} successPayload
// @Failure 404 {object} errorPayload
// @Router /api/folders/{id} [delete]
func DeleteFolder(svc service.FolderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := parseID(c, "id")
		if !ok {
			return err
		}
		deleted, err := svc.Delete(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err, "folder")
		}
		if !deleted {
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "folder not found")
		}
		return writeMessage(c, fiber.StatusOK, nil, "Folder deleted successfully")
	}
}
