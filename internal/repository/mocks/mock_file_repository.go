package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/chairulsabri/backend-windows-explorer/internal/model"
	"github.com/chairulsabri/backend-windows-explorer/internal/repository"
)

type MockFileRepository struct {
	mock.Mock
}

var _ repository.FileRepository = (*MockFileRepository)(nil)

func (m *MockFileRepository) List(ctx context.Context, q repository.ListQuery) (*repository.PageResult[model.File], error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.File]), args.Error(1)
}

func (m *MockFileRepository) ListByFolder(ctx context.Context, folderID int64) ([]model.File, error) {
	args := m.Called(ctx, folderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.File), args.Error(1)
}

func (m *MockFileRepository) ListByExtension(ctx context.Context, extension string) ([]model.File, error) {
	args := m.Called(ctx, extension)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.File), args.Error(1)
}

func (m *MockFileRepository) FindByID(ctx context.Context, id int64) (*model.File, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.File), args.Error(1)
}

func (m *MockFileRepository) Create(ctx context.Context, in repository.FileCreate) (*model.File, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.File), args.Error(1)
}

func (m *MockFileRepository) Update(ctx context.Context, id int64, in repository.FileUpdate) (*model.File, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.File), args.Error(1)
}

func (m *MockFileRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockFileRepository) Move(ctx context.Context, id int64, folderID *int64, path string) (*model.File, error) {
	args := m.Called(ctx, id, folderID, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.File), args.Error(1)
}

func (m *MockFileRepository) RepathUnder(ctx context.Context, folderID int64, oldPrefix, newPrefix string) (int64, error) {
	args := m.Called(ctx, folderID, oldPrefix, newPrefix)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFileRepository) Stats(ctx context.Context) (*model.StorageStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StorageStats), args.Error(1)
}
