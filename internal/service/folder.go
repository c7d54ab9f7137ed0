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

// FolderService defines the use cases for browsing and reorganizing folders.
type FolderService interface {
	// List returns one page of folders filtered and sorted by q.
	List(ctx context.Context, q repository.ListQuery) (*ListResult[model.Folder], error)

	// Tree returns the whole hierarchy nested under its root folders.
	Tree(ctx context.Context) ([]*model.FolderNode, error)

	Get(ctx context.Context, id int64) (*model.Folder, error)

	// Contents returns the direct subfolders and files of a folder.
	Contents(ctx context.Context, id int64) (*model.FolderContents, error)

	Create(ctx context.Context, req CreateFolderRequest) (*model.Folder, error)

	// Update applies a partial update. Paths of descendants are not touched; use Move for that.
	Update(ctx context.Context, id int64, req UpdateFolderRequest) (*model.Folder, error)

	// Move re-parents a folder and rewrites the paths of everything below it in one transaction.
	Move(ctx context.Context, id int64, req MoveFolderRequest) (*model.Folder, error)

	// Delete removes a folder with its subfolders and files. It reports whether the folder existed.
	Delete(ctx context.Context, id int64) (bool, error)
}

type folderService struct {
	folders   repository.FolderRepository
	files     repository.FileRepository
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewFolderService constructs a new FolderService.
func NewFolderService(
	folders repository.FolderRepository,
	files repository.FileRepository,
	txManager repository.TransactionManager,
	logger *slog.Logger,
) FolderService {
	return &folderService{
		folders:   folders,
		files:     files,
		txManager: txManager,
		logger:    logger,
	}
}

func (s *folderService) List(ctx context.Context, q repository.ListQuery) (*ListResult[model.Folder], error) {
	q = q.Normalize()
	page, err := s.folders.List(ctx, q)
	if err != nil {
		return nil, mapRepoError(err, "list folders")
	}
	return newListResult(q, page), nil
}

func (s *folderService) Tree(ctx context.Context) ([]*model.FolderNode, error) {
	all, err := s.folders.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list all folders: %w", err)
	}
	return BuildFolderTree(all), nil
}

func (s *folderService) Get(ctx context.Context, id int64) (*model.Folder, error) {
	f, err := s.folders.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "get folder")
	}
	return f, nil
}

func (s *folderService) Contents(ctx context.Context, id int64) (*model.FolderContents, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	folders, err := s.folders.ListChildren(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list subfolders: %w", err)
	}
	files, err := s.files.ListByFolder(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list folder files: %w", err)
	}
	return &model.FolderContents{Folders: folders, Files: files}, nil
}

func (s *folderService) Create(ctx context.Context, req CreateFolderRequest) (*model.Folder, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	f, err := s.folders.Create(ctx, repository.FolderCreate{
		Name:     req.Name,
		Path:     req.Path,
		ParentID: req.ParentID,
	})
	if err != nil {
		return nil, mapRepoError(err, "create folder")
	}
	s.logger.InfoContext(ctx, "folder created", "id", f.ID, "path", f.Path)
	return f, nil
}

func (s *folderService) Update(ctx context.Context, id int64, req UpdateFolderRequest) (*model.Folder, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if req.ParentID.Value != nil {
		if _, err := s.validateNoCircularReference(ctx, id, *req.ParentID.Value); err != nil {
			return nil, err
		}
	}

	in := repository.FolderUpdate{Name: req.Name, Path: req.Path, ParentID: req.ParentID}
	f, err := s.folders.Update(ctx, id, in)
	if err != nil {
		return nil, mapRepoError(err, "update folder")
	}
	if !in.Empty() {
		s.logger.InfoContext(ctx, "folder updated", "id", id)
	}
	return f, nil
}

func (s *folderService) Move(ctx context.Context, id int64, req MoveFolderRequest) (*model.Folder, error) {
	var (
		moved         *model.Folder
		oldPath       string
		foldersMoved  int64
		filesRepathed int64
	)
	err := s.txManager.ExecTx(ctx, func(ctx context.Context) error {
		folder, err := s.folders.FindByID(ctx, id)
		if err != nil {
			return mapRepoError(err, "get folder")
		}
		oldPath = folder.Path

		var parent *model.Folder
		if req.ParentID != nil {
			parent, err = s.validateNoCircularReference(ctx, id, *req.ParentID)
			if err != nil {
				return err
			}
		}

		newPath := folderPathIn(parent, folder.Name)
		moved, err = s.folders.Reparent(ctx, id, req.ParentID, newPath)
		if err != nil {
			return mapRepoError(err, "reparent folder")
		}
		if newPath == oldPath {
			return nil
		}

		oldPrefix, newPrefix := subtreePrefix(oldPath), subtreePrefix(newPath)
		if foldersMoved, err = s.folders.RepathDescendants(ctx, id, oldPrefix, newPrefix); err != nil {
			return fmt.Errorf("repath subfolders: %w", err)
		}
		if filesRepathed, err = s.files.RepathUnder(ctx, id, oldPrefix, newPrefix); err != nil {
			return fmt.Errorf("repath files: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "folder moved",
		"id", id,
		"from", oldPath,
		"to", moved.Path,
		"subfolders", foldersMoved,
		"files", filesRepathed,
	)
	return moved, nil
}

func (s *folderService) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.folders.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete folder: %w", err)
	}
	if deleted {
		s.logger.InfoContext(ctx, "folder deleted", "id", id)
	}
	return deleted, nil
}

// validateNoCircularReference loads the new parent and walks its ancestors, rejecting a
// parent that is the folder itself or one of its descendants.
func (s *folderService) validateNoCircularReference(ctx context.Context, folderID, newParentID int64) (*model.Folder, error) {
	if folderID == newParentID {
		return nil, validationError("cannot move folder %d into itself", folderID)
	}

	parent, err := s.folders.FindByID(ctx, newParentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, validationError("parent folder %d does not exist", newParentID)
		}
		return nil, fmt.Errorf("get parent folder: %w", err)
	}

	seen := map[int64]bool{newParentID: true}
	current := parent
	for current.ParentID != nil {
		ancestorID := *current.ParentID
		if ancestorID == folderID {
			return nil, validationError("cannot move folder %d into its own descendant %d", folderID, newParentID)
		}
		if seen[ancestorID] {
			break
		}
		seen[ancestorID] = true

		next, err := s.folders.FindByID(ctx, ancestorID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				break
			}
			return nil, fmt.Errorf("get ancestor folder: %w", err)
		}
		current = next
	}
	return parent, nil
}
