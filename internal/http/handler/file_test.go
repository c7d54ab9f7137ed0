package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/chairulsabri/backend-windows-explorer/internal/model"
	"github.com/chairulsabri/backend-windows-explorer/internal/repository"
	"github.com/chairulsabri/backend-windows-explorer/internal/service"
	serviceMocks "github.com/chairulsabri/backend-windows-explorer/internal/service/mocks"
)

func strp(s string) *string { return &s }

func newFileApp(svc service.FileService) *fiber.App {
	app := fiber.New()
	api := app.Group("/api/files")
	api.Get("/", ListFiles(svc))
	api.Get("/stats/storage", GetStorageStats(svc))
	api.Get("/folder/:folderId", ListFilesByFolder(svc))
	api.Get("/extension/:extension", ListFilesByExtension(svc))
	api.Get("/:id", GetFile(svc))
	api.Post("/", CreateFile(svc))
	api.Put("/:id", UpdateFile(svc))
	api.Post("/:id/move", MoveFile(svc))
	api.Delete("/:id", DeleteFile(svc))
	return app
}

func TestListFiles(t *testing.T) {
	mockSvc := new(serviceMocks.MockFileService)
	app := newFileApp(mockSvc)

	want := repository.ListQuery{SortBy: "size", SortOrder: repository.SortDesc}
	res := &service.ListResult[model.File]{
		Items:      []model.File{{ID: 1, Name: "report.pdf", Size: 2048576}},
		Pagination: repository.NewPagination(1, 10, 1),
	}
	mockSvc.On("List", anyCtx, want).Return(res, nil).Once()

	resp, _ := app.Test(newRequest(http.MethodGet, "/api/files?sortBy=size", ""))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var files []model.File
	env := decodeEnvelope(t, resp, &files)
	require.Len(t, files, 1)
	assert.Equal(t, int64(2048576), files[0].Size)
	assert.Equal(t, 1, env.Pagination.Total)
	mockSvc.AssertExpectations(t)

	t.Run("invalid page", func(t *testing.T) {
		resp, _ := app.Test(newRequest(http.MethodGet, "/api/files?page=two", ""))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_PAGE", decodeError(t, resp).Error.Code)
	})
}

func TestGetStorageStats(t *testing.T) {
	mockSvc := new(serviceMocks.MockFileService)
	app := newFileApp(mockSvc)

	stats := &model.StorageStats{
		TotalSize:  2052672,
		TotalFiles: 2,
		ByExtension: []model.ExtensionStat{
			{Extension: "pdf", Count: 1, TotalSize: 2048576},
			{Extension: "txt", Count: 1, TotalSize: 4096},
		},
	}
	mockSvc.On("Stats", anyCtx).Return(stats, nil).Once()

	resp, _ := app.Test(newRequest(http.MethodGet, "/api/files/stats/storage", ""))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var got model.StorageStats
	decodeEnvelope(t, resp, &got)
	assert.Equal(t, *stats, got)
	mockSvc.AssertExpectations(t)
}

func TestListFilesByFolder(t *testing.T) {
	mockSvc := new(serviceMocks.MockFileService)
	app := newFileApp(mockSvc)

	t.Run("success", func(t *testing.T) {
		mockSvc.On("ByFolder", anyCtx, int64(5)).Return([]model.File{{ID: 1, Name: "report.pdf"}}, nil).Once()

		resp, _ := app.Test(newRequest(http.MethodGet, "/api/files/folder/5", ""))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("invalid folder id", func(t *testing.T) {
		resp, _ := app.Test(newRequest(http.MethodGet, "/api/files/folder/0", ""))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_ID", decodeError(t, resp).Error.Code)
	})

	mockSvc.AssertExpectations(t)
}

func TestListFilesByExtension(t *testing.T) {
	mockSvc := new(serviceMocks.MockFileService)
	app := newFileApp(mockSvc)

	mockSvc.On("ByExtension", anyCtx, "pdf").Return([]model.File{}, nil).Once()

	resp, _ := app.Test(newRequest(http.MethodGet, "/api/files/extension/pdf", ""))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var files []model.File
	decodeEnvelope(t, resp, &files)
	assert.NotNil(t, files)
	assert.Empty(t, files)
	mockSvc.AssertExpectations(t)
}

func TestGetFile(t *testing.T) {
	mockSvc := new(serviceMocks.MockFileService)
	app := newFileApp(mockSvc)

	tests := []struct {
		name       string
		id         string
		setupMocks func()
		wantStatus int
		wantCode   string
	}{
		{
			name: "success",
			id:   "1",
			setupMocks: func() {
				mockSvc.On("Get", anyCtx, int64(1)).Return(&model.File{ID: 1, Name: "report.pdf", Extension: strp("pdf")}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "not found",
			id:   "99",
			setupMocks: func() {
				mockSvc.On("Get", anyCtx, int64(99)).Return(nil, service.ErrNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name:       "negative id",
			id:         "-3",
			setupMocks: func() {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_ID",
		},
		{
			name: "internal error",
			id:   "2",
			setupMocks: func() {
				mockSvc.On("Get", anyCtx, int64(2)).Return(nil, errors.New("connection reset")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()

			resp, _ := app.Test(newRequest(http.MethodGet, "/api/files/"+tt.id, ""))

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantCode != "" {
				body := decodeError(t, resp)
				assert.Equal(t, tt.wantCode, body.Error.Code)
				assert.NotContains(t, body.Error.Message, "connection reset")
			}
		})
	}

	mockSvc.AssertExpectations(t)
}

func TestCreateFile(t *testing.T) {
	mockSvc := new(serviceMocks.MockFileService)
	app := newFileApp(mockSvc)

	t.Run("success", func(t *testing.T) {
		req := service.CreateFileRequest{Name: "notes.txt", Path: "/Documents/notes.txt", FolderID: int64p(2), Extension: strp("txt")}
		mockSvc.On("Create", anyCtx, req).Return(&model.File{ID: 6, Name: "notes.txt", FolderID: int64p(2)}, nil).Once()

		resp, _ := app.Test(newRequest(http.MethodPost, "/api/files",
			`{"name":"notes.txt","path":"/Documents/notes.txt","folder_id":2,"extension":"txt"}`))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		var f model.File
		env := decodeEnvelope(t, resp, &f)
		assert.Equal(t, "File created successfully", env.Message)
		assert.Equal(t, int64(0), f.Size)
	})

	t.Run("negative size", func(t *testing.T) {
		mockSvc.On("Create", anyCtx, mock.MatchedBy(func(r service.CreateFileRequest) bool { return r.Size != nil && *r.Size < 0 })).
			Return(nil, fmt.Errorf("%w: size: must be no less than 0.", service.ErrValidation)).Once()

		resp, _ := app.Test(newRequest(http.MethodPost, "/api/files", `{"name":"a","path":"/a","size":-1}`))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	mockSvc.AssertExpectations(t)
}

func TestUpdateFile(t *testing.T) {
	mockSvc := new(serviceMocks.MockFileService)
	app := newFileApp(mockSvc)

	want := service.UpdateFileRequest{Size: int64p(10), MimeType: model.Null[string]()}
	mockSvc.On("Update", anyCtx, int64(3), want).Return(&model.File{ID: 3, Size: 10}, nil).Once()

	resp, _ := app.Test(newRequest(http.MethodPut, "/api/files/3", `{"size":10,"mime_type":null}`))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	mockSvc.AssertExpectations(t)
}

func TestMoveFile(t *testing.T) {
	mockSvc := new(serviceMocks.MockFileService)
	app := newFileApp(mockSvc)

	t.Run("to root", func(t *testing.T) {
		mockSvc.On("Move", anyCtx, int64(1), service.MoveFileRequest{}).
			Return(&model.File{ID: 1, Name: "report.pdf", Path: "report.pdf"}, nil).Once()

		resp, _ := app.Test(newRequest(http.MethodPost, "/api/files/1/move", `{"folder_id":null}`))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var f model.File
		decodeEnvelope(t, resp, &f)
		assert.Nil(t, f.FolderID)
		assert.Equal(t, "report.pdf", f.Path)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.On("Move", anyCtx, int64(404), service.MoveFileRequest{FolderID: int64p(2)}).
			Return(nil, service.ErrNotFound).Once()

		resp, _ := app.Test(newRequest(http.MethodPost, "/api/files/404/move", `{"folder_id":2}`))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "file not found", decodeError(t, resp).Error.Message)
	})

	mockSvc.AssertExpectations(t)
}

func TestDeleteFile(t *testing.T) {
	mockSvc := new(serviceMocks.MockFileService)
	app := newFileApp(mockSvc)

	mockSvc.On("Delete", anyCtx, int64(1)).Return(true, nil).Once()
	mockSvc.On("Delete", anyCtx, int64(2)).Return(false, nil).Once()

	resp, _ := app.Test(newRequest(http.MethodDelete, "/api/files/1", ""))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "File deleted successfully", decodeEnvelope(t, resp, nil).Message)

	resp, _ = app.Test(newRequest(http.MethodDelete, "/api/files/2", ""))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	mockSvc.AssertExpectations(t)
}
