package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/chairulsabri/backend-windows-explorer/internal/model"
	"github.com/chairulsabri/backend-windows-explorer/internal/repository"
)

type MockFavoriteRepository struct {
	mock.Mock
}

var _ repository.FavoriteRepository = (*MockFavoriteRepository)(nil)

func (m *MockFavoriteRepository) ListResolved(ctx context.Context) ([]model.FavoriteEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FavoriteEntry), args.Error(1)
}

func (m *MockFavoriteRepository) FindByRef(ctx context.Context, ref model.ItemRef) (*model.Favorite, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Favorite), args.Error(1)
}

func (m *MockFavoriteRepository) Create(ctx context.Context, ref model.ItemRef) (*model.Favorite, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Favorite), args.Error(1)
}

func (m *MockFavoriteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavoriteRepository) Exists(ctx context.Context, ref model.ItemRef) (bool, error) {
	args := m.Called(ctx, ref)
	return args.Bool(0), args.Error(1)
}
