package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/chairulsabri/backend-windows-explorer/internal/repository"
)

// MockTransactionManager runs fn inline with the caller's context unless an error is stubbed.
type MockTransactionManager struct {
	mock.Mock
}

var _ repository.TransactionManager = (*MockTransactionManager)(nil)

func (m *MockTransactionManager) ExecTx(ctx context.Context, fn repository.TxFn) error {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx)
}
