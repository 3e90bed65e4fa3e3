package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockStructuredClient is a mock implementation of port.StructuredClient.
type MockStructuredClient struct {
	mock.Mock
}

func (m *MockStructuredClient) Call(ctx context.Context, prompt string) (map[string]any, error) {
	args := m.Called(ctx, prompt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}
