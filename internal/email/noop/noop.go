package noop

import (
	"context"
	"log"

	"superclaims/internal/domain"
	"superclaims/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs review
// notifications to stdout.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendReviewNotification(_ context.Context, claimID string, decision domain.ClaimDecision) error {
	log.Printf("[NOOP EMAIL] claim %s flagged for manual review: %s", claimID, decision.Reason)
	return nil
}
