package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"path"

	"github.com/google/uuid"

	"superclaims/internal/config"
	"superclaims/internal/domain"
	"superclaims/internal/pipeline"
	"superclaims/internal/port"
)

// ClaimService defines the claim processing contract exposed to the
// transport layer.
type ClaimService interface {
	ProcessClaim(ctx context.Context, docs []domain.UploadedDocument) (*domain.ProcessResult, error)
}

type claimService struct {
	orchestrator *pipeline.Orchestrator
	storage      port.ObjectStorage
	email        port.EmailSender
	archive      config.ArchiveConfig
}

// NewClaimService creates a ClaimService on top of the pipeline
// orchestrator plus optional archival and notification collaborators.
func NewClaimService(
	orchestrator *pipeline.Orchestrator,
	storage port.ObjectStorage,
	email port.EmailSender,
	archive config.ArchiveConfig,
) ClaimService {
	return &claimService{
		orchestrator: orchestrator,
		storage:      storage,
		email:        email,
		archive:      archive,
	}
}

// ProcessClaim archives the raw uploads (best effort), runs the
// pipeline, and notifies the reviewer when the claim lands in manual
// review. Archive and notification failures never fail the claim.
func (s *claimService) ProcessClaim(ctx context.Context, docs []domain.UploadedDocument) (*domain.ProcessResult, error) {
	if len(docs) == 0 {
		return nil, domain.ErrEmptyBatch
	}

	claimID := uuid.New().String()
	s.archiveUploads(ctx, claimID, docs)

	result, err := s.orchestrator.Process(ctx, docs)
	if err != nil {
		return nil, fmt.Errorf("processing claim %s: %w", claimID, err)
	}

	log.Printf("claimService.ProcessClaim: claim %s decided: status=%s, missing=%d, discrepancies=%d",
		claimID, result.Decision.Status, len(result.Validation.MissingDocuments), len(result.Validation.Discrepancies))

	if result.Decision.Status == domain.ClaimStatusManualReview {
		if err := s.email.SendReviewNotification(ctx, claimID, result.Decision); err != nil {
			log.Printf("claimService.ProcessClaim: review notification for claim %s failed: %v", claimID, err)
		}
	}

	return result, nil
}

func (s *claimService) archiveUploads(ctx context.Context, claimID string, docs []domain.UploadedDocument) {
	if !s.archive.Enabled {
		return
	}
	for _, doc := range docs {
		_, err := s.storage.Upload(ctx, port.UploadInput{
			Bucket:      s.archive.Bucket,
			Key:         path.Join("claims", claimID, doc.Filename),
			Body:        bytes.NewReader(doc.Content),
			ContentType: "application/pdf",
			Size:        int64(len(doc.Content)),
		})
		if err != nil {
			log.Printf("claimService.archiveUploads: claim %s: archiving %s failed: %v", claimID, doc.Filename, err)
		}
	}
}
