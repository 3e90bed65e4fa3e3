package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"superclaims/internal/domain"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendReviewNotification(ctx context.Context, claimID string, decision domain.ClaimDecision) error {
	args := m.Called(ctx, claimID, decision)
	return args.Error(0)
}
