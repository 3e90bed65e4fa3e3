package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"superclaims/internal/domain"
)

// MockTextExtractor is a mock implementation of port.TextExtractor.
type MockTextExtractor struct {
	mock.Mock
}

func (m *MockTextExtractor) Extract(ctx context.Context, filename string, content []byte) domain.ExtractionResult {
	args := m.Called(ctx, filename, content)
	return args.Get(0).(domain.ExtractionResult)
}
