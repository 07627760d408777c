package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"mailtriage/internal/domain"
)

// MockDraftService is a mock implementation of service.DraftService.
type MockDraftService struct {
	mock.Mock
}

func (m *MockDraftService) Draft(ctx context.Context, raw string, category domain.Category) domain.DraftOutcome {
	args := m.Called(ctx, raw, category)
	return args.Get(0).(domain.DraftOutcome)
}
