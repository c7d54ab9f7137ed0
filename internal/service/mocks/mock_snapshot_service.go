package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/chairulsabri/backend-windows-explorer/internal/model"
	"github.com/chairulsabri/backend-windows-explorer/internal/service"
	"github.com/chairulsabri/backend-windows-explorer/internal/storage"
)

type MockSnapshotService struct {
	mock.Mock
}

var _ service.SnapshotService = (*MockSnapshotService)(nil)

func (m *MockSnapshotService) Export(ctx context.Context) (*model.TreeSnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TreeSnapshot), args.Error(1)
}

func (m *MockSnapshotService) Open(ctx context.Context, name string) (io.ReadCloser, storage.ObjectInfo, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, storage.ObjectInfo{}, args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(storage.ObjectInfo), args.Error(2)
}
