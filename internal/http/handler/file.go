package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chairulsabri/backend-windows-explorer/internal/service"
)

// ListFiles returns a page of files.
//
// @Summary List files
// @Tags files
// @Produce json
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Rows per page (default 10)"
// @Param search query string false "Substring of name, path or extension"
// @Param sortBy query string false "id, name, path, folder_id, extension, size, mime_type, created_at, updated_at"
// @Param sortOrder query string false "ASC or DESC"
// @Success 200 {object} successPayload
// @Failure 400 {object} errorPayload
// @Router /api/files [get]
func ListFiles(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q, ok, err := parseListQuery(c)
		if !ok {
			return err
		}
		res, err := svc.List(c.UserContext(), q)
		if err != nil {
			return writeServiceError(c, err, "file")
		}
		return writeList(c, res)
	}
}

// GetStorageStats returns totals and the largest extensions.
//
// @Summary Storage statistics
// @Tags files
// @Produce json
// @Success 200 {object} successPayload
// @Router /api/files/stats/storage [get]
func GetStorageStats(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := svc.Stats(c.UserContext())
		if err != nil {
			return writeServiceError(c, err, "file")
		}
		return writeData(c, fiber.StatusOK, stats)
	}
}

// ListFilesByFolder returns the files directly inside a folder.
//
// @Summary Files in folder
// @Tags files
// @Produce json
// @Param folderId path int true "Folder ID"
// @Success 200 {object} successPayload
// @Router /api/files/folder/{folderId} [get]
func ListFilesByFolder(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		folderID, ok, err := parseID(c, "folderId")
		if !ok {
			return err
		}
		files, err := svc.ByFolder(c.UserContext(), folderID)
		if err != nil {
			return writeServiceError(c, err, "file")
		}
		return writeData(c, fiber.StatusOK, files)
	}
}

// ListFilesByExtension returns the files with an extension.
//
// @Summary Files by extension
// @Tags files
// @Produce json
// @Param extension path string true "Extension without dot"
// @Success 200 {object} successPayload
// @Router /api/files/extension/{extension} [get]
func ListFilesByExtension(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		files, err := svc.ByExtension(c.UserContext(), c.Params("extension"))
		if err != nil {
			return writeServiceError(c, err, "file")
		}
		return writeData(c, fiber.StatusOK, files)
	}
}

// GetFile returns one file.
//
// @Summary Get file
// @Tags files
// @Produce json
// @Param id path int true "File ID"
// @Success 200 {object} successPayload
// @Failure 404 {object} errorPayload
// @Router /api/files/{id} [get]
func GetFile(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := parseID(c, "id")
		if !ok {
			return err
		}
		f, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err, "file")
		}
		return writeData(c, fiber.StatusOK, f)
	}
}

// CreateFile records file metadata.
//
// @Summary Create file
// @Tags files
// @Accept json
// @Produce json
// @Param body body service.CreateFileRequest true "File"
// @Success 201 {object} successPayload
// @Failure 400 {object} errorPayload
// @Router /api/files [post]
func CreateFile(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req service.CreateFileRequest
		if ok, err := parseBody(c, &req); !ok {
			return err
		}
		f, err := svc.Create(c.UserContext(), req)
		if err != nil {
			return writeServiceError(c, err, "file")
		}
		return writeMessage(c, fiber.StatusCreated, f, "File created successfully")
	}
}

// UpdateFile applies a partial update.
//
// @Summary Update file
// @Tags files
// @Accept json
// @Produce json
// @Param id path int true "File ID"
// @Param body body service.UpdateFileRequest true "Fields to change"
// @Success 200 {object} successPayload
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /api/files/{id} [put]
func UpdateFile(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := parseID(c, "id")
		if !ok {
			return err
		}
		var req service.UpdateFileRequest
		if ok, err := parseBody(c, &req); !ok {
			return err
		}
		f, err := svc.Update(c.UserContext(), id, req)
		if err != nil {
			return writeServiceError(c, err, "file")
		}
		return writeMessage(c, fiber.StatusOK, f, "File updated successfully")
	}
}

// MoveFile puts a file into another folder.
//
// @Summary Move file
// @Tags files
// @Accept json
// @Produce json
// @Param id path int true "File ID"
// @Param body body service.MoveFileRequest true "Target folder, null to detach"
// @Success 200 {object} successPayload
// @Failure 404 {object} errorPayload
// @Router /api/files/{id}/move [post]
func MoveFile(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := parseID(c, "id")
		if !ok {
			return err
		}
		var req service.MoveFileRequest
		if ok, err := parseBody(c, &req); !ok {
			return err
		}
		f, err := svc.Move(c.UserContext(), id, req)
		if err != nil {
			return writeServiceError(c, err, "file")
		}
		return writeMessage(c, fiber.StatusOK, f, "File moved successfully")
	}
}

// DeleteFile removes a file record.
//
// @Summary Delete file
// @Tags files
// @Produce json
// @Param id path int true "File ID"
// @Success 200 {object} successPayload
// @Failure 404 {object} errorPayload
// @Router /api/files/{id} [delete]
func DeleteFile(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := parseID(c, "id")
		if !ok {
			return err
		}
		deleted, err := svc.Delete(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err, "file")
		}
		if !deleted {
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "file not found")
		}
		return writeMessage(c, fiber.StatusOK, nil, "File deleted successfully")
	}
}
