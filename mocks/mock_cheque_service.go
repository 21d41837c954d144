package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"chequero/internal/domain"
	"chequero/internal/service"
)

// MockChequeService is a mock implementation of service.ChequeService.
type MockChequeService struct {
	mock.Mock
}

func (m *MockChequeService) ProcessDocument(ctx context.Context, input *service.ProcessDocumentInput) ([]domain.ChequeRecord, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChequeRecord), args.Error(1)
}

func (m *MockChequeService) CheckCredit(ctx context.Context, cuit string) (*domain.CreditStatus, error) {
	args := m.Called(ctx, cuit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreditStatus), args.Error(1)
}
