package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/chairulsabri/backend-windows-explorer/internal/model"
	"github.com/chairulsabri/backend-windows-explorer/internal/repository"
	"github.com/chairulsabri/backend-windows-explorer/internal/service"
)

type MockFolderService struct {
	mock.Mock
}

var _ service.FolderService = (*MockFolderService)(nil)

func (m *MockFolderService) List(ctx context.Context, q repository.ListQuery) (*service.ListResult[model.Folder], error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult[model.Folder]), args.Error(1)
}

func (m *MockFolderService) Tree(ctx context.Context) ([]*model.FolderNode, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.FolderNode), args.Error(1)
}

func (m *MockFolderService) Get(ctx context.Context, id int64) (*model.Folder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Folder), args.Error(1)
}

func (m *MockFolderService) Contents(ctx context.Context, id int64) (*model.FolderContents, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FolderContents), args.Error(1)
}

func (m *MockFolderService) Create(ctx context.Context, req service.CreateFolderRequest) (*model.Folder, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Folder), args.Error(1)
}

func (m *MockFolderService) Update(ctx context.Context, id int64, req service.UpdateFolderRequest) (*model.Folder, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Folder), args.Error(1)
}

func (m *MockFolderService) Move(ctx context.Context, id int64, req service.MoveFolderRequest) (*model.Folder, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Folder), args.Error(1)
}

func (m *MockFolderService) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
