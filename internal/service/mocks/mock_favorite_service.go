package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/chairulsabri/backend-windows-explorer/internal/model"
	"github.com/chairulsabri/backend-windows-explorer/internal/service"
)

type MockFavoriteService struct {
	mock.Mock
}

var _ service.FavoriteService = (*MockFavoriteService)(nil)

func (m *MockFavoriteService) List(ctx context.Context) ([]model.FavoriteEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FavoriteEntry), args.Error(1)
}

func (m *MockFavoriteService) Add(ctx context.Context, req service.AddFavoriteRequest) (*model.Favorite, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Favorite), args.Error(1)
}

func (m *MockFavoriteService) Remove(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavoriteService) IsFavorite(ctx context.Context, ref model.ItemRef) (bool, error) {
	args := m.Called(ctx, ref)
	return args.Bool(0), args.Error(1)
}
