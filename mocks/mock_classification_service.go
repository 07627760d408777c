package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"mailtriage/internal/domain"
)

// MockClassificationService is a mock implementation of service.ClassificationService.
type MockClassificationService struct {
	mock.Mock
}

func (m *MockClassificationService) Classify(ctx context.Context, normalized string) domain.ClassificationOutcome {
	args := m.Called(ctx, normalized)
	return args.Get(0).(domain.ClassificationOutcome)
}
