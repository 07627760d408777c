package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"mailtriage/internal/domain"
	"mailtriage/internal/service"
)

// MockUploadService is a mock implementation of service.UploadService.
type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) Ingest(ctx context.Context, input service.UploadInput) (*domain.ClassificationRequest, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClassificationRequest), args.Error(1)
}
