package mocks

import (
	"github.com/stretchr/testify/mock"

	"mailtriage/internal/domain"
)

// MockTextExtractor is a mock implementation of port.TextExtractor.
type MockTextExtractor struct {
	mock.Mock
}

func (m *MockTextExtractor) Extract(path, ext string) domain.ExtractionOutcome {
	args := m.Called(path, ext)
	return args.Get(0).(domain.ExtractionOutcome)
}
