package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/chairulsabri/backend-windows-explorer/internal/model"
	"github.com/chairulsabri/backend-windows-explorer/internal/repository"
)

type MockFolderRepository struct {
	mock.Mock
}

var _ repository.FolderRepository = (*MockFolderRepository)(nil)

func (m *MockFolderRepository) List(ctx context.Context, q repository.ListQuery) (*repository.PageResult[model.Folder], error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Folder]), args.Error(1)
}

func (m *MockFolderRepository) ListAll(ctx context.Context) ([]model.Folder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Folder), args.Error(1)
}

func (m *MockFolderRepository) ListChildren(ctx context.Context, parentID int64) ([]model.Folder, error) {
	args := m.Called(ctx, parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Folder), args.Error(1)
}

func (m *MockFolderRepository) FindByID(ctx context.Context, id int64) (*model.Folder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Folder), args.Error(1)
}

func (m *MockFolderRepository) Create(ctx context.Context, in repository.FolderCreate) (*model.Folder, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Folder), args.Error(1)
}

func (m *MockFolderRepository) Update(ctx context.Context, id int64, in repository.FolderUpdate) (*model.Folder, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Folder), args.Error(1)
}

func (m *MockFolderRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockFolderRepository) Reparent(ctx context.Context, id int64, parentID *int64, path string) (*model.Folder, error) {
	args := m.Called(ctx, id, parentID, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Folder), args.Error(1)
}

func (m *MockFolderRepository) RepathDescendants(ctx context.Context, id int64, oldPrefix, newPrefix string) (int64, error) {
	args := m.Called(ctx, id, oldPrefix, newPrefix)
	return args.Get(0).(int64), args.Error(1)
}
