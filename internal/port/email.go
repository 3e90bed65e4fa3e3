package port

import (
	"context"

	"superclaims/internal/domain"
)

// EmailSender defines the contract for reviewer notifications.
type EmailSender interface {
	SendReviewNotification(ctx context.Context, claimID string, decision domain.ClaimDecision) error
}
