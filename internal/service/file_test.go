package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/chairulsabri/backend-windows-explorer/internal/model"
	"github.com/chairulsabri/backend-windows-explorer/internal/repository"
	repoMocks "github.com/chairulsabri/backend-windows-explorer/internal/repository/mocks"
)

func newFileService(t *testing.T) (FileService, *repoMocks.MockFileRepository, *repoMocks.MockFolderRepository) {
	t.Helper()
	files := new(repoMocks.MockFileRepository)
	folders := new(repoMocks.MockFolderRepository)
	t.Cleanup(func() {
		files.AssertExpectations(t)
		folders.AssertExpectations(t)
	})
	return NewFileService(files, folders, discardLogger()), files, folders
}

func reportPDF() *model.File {
	return &model.File{
		ID:        1,
		Name:      "report.pdf",
		Path:      "/Documents/Work/report.pdf",
		FolderID:  int64p(5),
		Extension: strp("pdf"),
		Size:      2048576,
		MimeType:  strp("application/pdf"),
	}
}

func TestFileService_Move(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		req        MoveFileRequest
		setupMocks func(files *repoMocks.MockFileRepository, folders *repoMocks.MockFolderRepository)
		wantPath   string
		wantFolder *int64
		wantErr    error
	}{
		{
			name: "to null folder yields bare name",
			req:  MoveFileRequest{},
			setupMocks: func(files *repoMocks.MockFileRepository, folders *repoMocks.MockFolderRepository) {
				files.On("FindByID", ctx, int64(1)).Return(reportPDF(), nil)
				files.On("Move", ctx, int64(1), (*int64)(nil), "report.pdf").
					Return(&model.File{ID: 1, Name: "report.pdf", Path: "report.pdf"}, nil)
			},
			wantPath: "report.pdf",
		},
		{
			name: "to existing folder joins its path",
			req:  MoveFileRequest{FolderID: int64p(5)},
			setupMocks: func(files *repoMocks.MockFileRepository, folders *repoMocks.MockFolderRepository) {
				f := reportPDF()
				f.FolderID, f.Path = nil, "report.pdf"
				files.On("FindByID", ctx, int64(1)).Return(f, nil)
				work := folder(5, "Work", "/Documents/Work", int64p(2))
				folders.On("FindByID", ctx, int64(5)).Return(&work, nil)
				files.On("Move", ctx, int64(1), int64p(5), "/Documents/Work/report.pdf").Return(reportPDF(), nil)
			},
			wantPath:   "/Documents/Work/report.pdf",
			wantFolder: int64p(5),
		},
		{
			name: "to root folder does not double the separator",
			req:  MoveFileRequest{FolderID: int64p(1)},
			setupMocks: func(files *repoMocks.MockFileRepository, folders *repoMocks.MockFolderRepository) {
				files.On("FindByID", ctx, int64(1)).Return(reportPDF(), nil)
				root := folder(1, "Root", "/", nil)
				folders.On("FindByID", ctx, int64(1)).Return(&root, nil)
				files.On("Move", ctx, int64(1), int64p(1), "/report.pdf").
					Return(&model.File{ID: 1, Name: "report.pdf", Path: "/report.pdf", FolderID: int64p(1)}, nil)
			},
			wantPath:   "/report.pdf",
			wantFolder: int64p(1),
		},
		{
			name: "to missing folder behaves like null",
			req:  MoveFileRequest{FolderID: int64p(999)},
			setupMocks: func(files *repoMocks.MockFileRepository, folders *repoMocks.MockFolderRepository) {
				files.On("FindByID", ctx, int64(1)).Return(reportPDF(), nil)
				folders.On("FindByID", ctx, int64(999)).Return(nil, sql.ErrNoRows)
				files.On("Move", ctx, int64(1), (*int64)(nil), "report.pdf").
					Return(&model.File{ID: 1, Name: "report.pdf", Path: "report.pdf"}, nil)
			},
			wantPath: "report.pdf",
		},
		{
			name: "missing file",
			req:  MoveFileRequest{FolderID: int64p(5)},
			setupMocks: func(files *repoMocks.MockFileRepository, folders *repoMocks.MockFolderRepository) {
				files.On("FindByID", ctx, int64(1)).Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, files, folders := newFileService(t)
			tt.setupMocks(files, folders)

			got, err := svc.Move(ctx, 1, tt.req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				files.AssertNotCalled(t, "Move", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPath, got.Path)
			assert.Equal(t, tt.wantFolder, got.FolderID)
		})
	}
}

func TestFileService_MoveFolderLookupFailure(t *testing.T) {
	ctx := context.Background()
	svc, files, folders := newFileService(t)
	files.On("FindByID", ctx, int64(1)).Return(reportPDF(), nil)
	folders.On("FindByID", ctx, int64(5)).Return(nil, errors.New("connection reset"))

	_, err := svc.Move(ctx, 1, MoveFileRequest{FolderID: int64p(5)})

	assert.EqualError(t, err, "get target folder: connection reset")
	files.AssertNotCalled(t, "Move", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestFileService_Create(t *testing.T) {
	ctx := context.Background()
	svc, files, _ := newFileService(t)

	want := repository.FileCreate{Name: "notes.txt", Path: "/Documents/notes.txt", FolderID: int64p(2), Extension: strp("txt"), Size: 4096}
	files.On("Create", ctx, want).Return(&model.File{ID: 9, Name: "notes.txt", Path: "/Documents/notes.txt", Size: 4096}, nil)

	got, err := svc.Create(ctx, CreateFileRequest{
		Name:      "notes.txt",
		Path:      "/Documents/notes.txt",
		FolderID:  int64p(2),
		Extension: strp("txt"),
		Size:      int64p(4096),
		MimeType:  strp(""),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(9), got.ID)
}

func TestFileService_CreateDefaultsSize(t *testing.T) {
	ctx := context.Background()
	svc, files, _ := newFileService(t)
	files.On("Create", ctx, mock.MatchedBy(func(in repository.FileCreate) bool {
		return in.Size == 0 && in.Extension == nil && in.MimeType == nil
	})).Return(&model.File{ID: 10, Name: "empty", Path: "empty"}, nil)

	_, err := svc.Create(ctx, CreateFileRequest{Name: "empty", Path: "empty"})

	require.NoError(t, err)
}

func TestFileService_Update(t *testing.T) {
	ctx := context.Background()
	svc, files, _ := newFileService(t)
	in := repository.FileUpdate{Name: strp("final.pdf"), MimeType: model.Null[string]()}
	files.On("Update", ctx, int64(1), in).Return(&model.File{ID: 1, Name: "final.pdf"}, nil)
	files.On("Update", ctx, int64(404), mock.Anything).Return(nil, sql.ErrNoRows)
	blanked := repository.FileUpdate{Extension: model.Null[string](), MimeType: model.Null[string]()}
	files.On("Update", ctx, int64(2), blanked).Return(&model.File{ID: 2, Name: "notes"}, nil)

	got, err := svc.Update(ctx, 1, UpdateFileRequest{Name: strp("final.pdf"), MimeType: model.Null[string]()})
	require.NoError(t, err)
	assert.Equal(t, "final.pdf", got.Name)

	// Blank extension and MIME type are stored as null, same as on create.
	got, err = svc.Update(ctx, 2, UpdateFileRequest{Extension: model.Set(""), MimeType: model.Set("  ")})
	require.NoError(t, err)
	assert.Nil(t, got.Extension)
	files.AssertCalled(t, "Update", ctx, int64(2), blanked)

	_, err = svc.Update(ctx, 404, UpdateFileRequest{Name: strp("x")})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Update(ctx, 1, UpdateFileRequest{Size: int64p(-1)})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Update(ctx, 1, UpdateFileRequest{Extension: model.Set(strings.Repeat("x", 33))})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestFileService_ByExtension(t *testing.T) {
	ctx := context.Background()
	svc, files, _ := newFileService(t)
	files.On("ListByExtension", ctx, "pdf").Return([]model.File{*reportPDF()}, nil)

	got, err := svc.ByExtension(ctx, ".pdf")
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = svc.ByExtension(ctx, " ")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestFileService_List(t *testing.T) {
	ctx := context.Background()
	svc, files, _ := newFileService(t)
	files.On("List", ctx, mock.MatchedBy(func(q repository.ListQuery) bool {
		return q.Page == 3 && q.Limit == 10 && q.SortBy == "size" && q.SortOrder == repository.SortAsc
	})).Return(&repository.PageResult[model.File]{Items: make([]model.File, 5), Total: 25}, nil)

	res, err := svc.List(ctx, repository.ListQuery{Page: 3, Limit: 10, SortBy: "size", SortOrder: repository.SortAsc})

	require.NoError(t, err)
	assert.Len(t, res.Items, 5)
	assert.Equal(t, 3, res.Pagination.TotalPages)
}

func TestFileService_Stats(t *testing.T) {
	ctx := context.Background()
	svc, files, _ := newFileService(t)
	files.On("Stats", ctx).Return(&model.StorageStats{}, nil)

	stats, err := svc.Stats(ctx)

	require.NoError(t, err)
	assert.NotNil(t, stats.ByExtension)
	assert.Zero(t, stats.TotalFiles)
}

func TestFileService_Delete(t *testing.T) {
	ctx := context.Background()
	svc, files, _ := newFileService(t)
	files.On("Delete", ctx, int64(1)).Return(true, nil)
	files.On("Delete", ctx, int64(404)).Return(false, nil)

	deleted, err := svc.Delete(ctx, 1)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = svc.Delete(ctx, 404)
	require.NoError(t, err)
	assert.False(t, deleted)
}
