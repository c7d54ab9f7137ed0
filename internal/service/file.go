package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/chairulsabri/backend-windows-explorer/internal/model"
	"github.com/chairulsabri/backend-windows-explorer/internal/repository"
)

// FileService defines the use cases for file metadata.
type FileService interface {
	List(ctx context.Context, q repository.ListQuery) (*ListResult[model.File], error)

	Get(ctx context.Context, id int64) (*model.File, error)

	// ByFolder returns the files directly inside a folder, ordered by name.
	ByFolder(ctx context.Context, folderID int64) ([]model.File, error)

	// ByExtension returns the files with an extension, ordered by name. A leading dot is ignored.
	ByExtension(ctx context.Context, extension string) ([]model.File, error)

	Create(ctx context.Context, req CreateFileRequest) (*model.File, error)

	Update(ctx context.Context, id int64, req UpdateFileRequest) (*model.File, error)

	// Move puts a file into a folder and recomputes its path. A nil or unknown folder
	// detaches the file: folder_id becomes null and the path is the bare file name.
	Move(ctx context.Context, id int64, req MoveFileRequest) (*model.File, error)

	Delete(ctx context.Context, id int64) (bool, error)

	// Stats returns total size and count with a per-extension breakdown.
	Stats(ctx context.Context) (*model.StorageStats, error)
}

type fileService struct {
	files   repository.FileRepository
	folders repository.FolderRepository
	logger  *slog.Logger
}

// NewFileService constructs a new FileService.
func NewFileService(files repository.FileRepository, folders repository.FolderRepository, logger *slog.Logger) FileService {
	return &fileService{files: files, folders: folders, logger: logger}
}

func (s *fileService) List(ctx context.Context, q repository.ListQuery) (*ListResult[model.File], error) {
	q = q.Normalize()
	page, err := s.files.List(ctx, q)
	if err != nil {
		return nil, mapRepoError(err, "list files")
	}
	return newListResult(q, page), nil
}

func (s *fileService) Get(ctx context.Context, id int64) (*model.File, error) {
	f, err := s.files.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "get file")
	}
	return f, nil
}

func (s *fileService) ByFolder(ctx context.Context, folderID int64) ([]model.File, error) {
	files, err := s.files.ListByFolder(ctx, folderID)
	if err != nil {
		return nil, fmt.Errorf("list files by folder: %w", err)
	}
	return files, nil
}

func (s *fileService) ByExtension(ctx context.Context, extension string) ([]model.File, error) {
	ext := strings.TrimPrefix(strings.TrimSpace(extension), ".")
	if ext == "" {
		return nil, validationError("extension is required")
	}
	files, err := s.files.ListByExtension(ctx, ext)
	if err != nil {
		return nil, fmt.Errorf("list files by extension: %w", err)
	}
	return files, nil
}

func (s *fileService) Create(ctx context.Context, req CreateFileRequest) (*model.File, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	in := repository.FileCreate{
		Name:      req.Name,
		Path:      req.Path,
		FolderID:  req.FolderID,
		Extension: blankToNil(req.Extension),
		MimeType:  blankToNil(req.MimeType),
	}
	if req.Size != nil {
		in.Size = *req.Size
	}

	f, err := s.files.Create(ctx, in)
	if err != nil {
		return nil, mapRepoError(err, "create file")
	}
	s.logger.InfoContext(ctx, "file created", "id", f.ID, "path", f.Path, "size", f.Size)
	return f, nil
}

func (s *fileService) Update(ctx context.Context, id int64, req UpdateFileRequest) (*model.File, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	in := repository.FileUpdate{
		Name:      req.Name,
		Path:      req.Path,
		FolderID:  req.FolderID,
		Extension: blankToNull(req.Extension),
		Size:      req.Size,
		MimeType:  blankToNull(req.MimeType),
	}
	f, err := s.files.Update(ctx, id, in)
	if err != nil {
		return nil, mapRepoError(err, "update file")
	}
	if !in.Empty() {
		s.logger.InfoContext(ctx, "file updated", "id", id)
	}
	return f, nil
}

func (s *fileService) Move(ctx context.Context, id int64, req MoveFileRequest) (*model.File, error) {
	file, err := s.files.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "get file")
	}

	var target *model.Folder
	if req.FolderID != nil {
		target, err = s.folders.FindByID(ctx, *req.FolderID)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("get target folder: %w", err)
		}
		if target == nil {
			s.logger.WarnContext(ctx, "move target folder not found, detaching file", "id", id, "folder_id", *req.FolderID)
		}
	}

	var folderID *int64
	if target != nil {
		folderID = &target.ID
	}
	moved, err := s.files.Move(ctx, id, folderID, filePathIn(target, file.Name))
	if err != nil {
		return nil, mapRepoError(err, "move file")
	}
	s.logger.InfoContext(ctx, "file moved", "id", id, "from", file.Path, "to", moved.Path)
	return moved, nil
}

func (s *fileService) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.files.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete file: %w", err)
	}
	if deleted {
		s.logger.InfoContext(ctx, "file deleted", "id", id)
	}
	return deleted, nil
}

func (s *fileService) Stats(ctx context.Context) (*model.StorageStats, error) {
	stats, err := s.files.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("storage stats: %w", err)
	}
	if stats.ByExtension == nil {
		stats.ByExtension = []model.ExtensionStat{}
	}
	return stats, nil
}

func blankToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}

// blankToNull turns a supplied blank string into an explicit null.
func blankToNull(n model.Nullable[string]) model.Nullable[string] {
	if !n.Present {
		return n
	}
	return model.Nullable[string]{Present: true, Value: blankToNil(n.Value)}
}
