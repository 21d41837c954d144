package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockTaxRegistry is a mock implementation of port.TaxRegistry.
type MockTaxRegistry struct {
	mock.Mock
}

func (m *MockTaxRegistry) Denomination(ctx context.Context, cuit string) (string, error) {
	args := m.Called(ctx, cuit)
	return args.String(0), args.Error(1)
}
