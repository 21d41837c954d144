package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"chequero/internal/domain"
)

// MockCreditRegistry is a mock implementation of port.CreditRegistry.
type MockCreditRegistry struct {
	mock.Mock
}

func (m *MockCreditRegistry) CheckCreditStatus(ctx context.Context, cuit string) *domain.CreditStatus {
	args := m.Called(ctx, cuit)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.CreditStatus)
}
