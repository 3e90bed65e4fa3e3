package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"superclaims/internal/config"
	"superclaims/internal/domain"
	"superclaims/internal/llm/mockllm"
	"superclaims/internal/pipeline"
	"superclaims/internal/port"
	"superclaims/internal/service"
	"superclaims/mocks"
)

func textResult(s string) domain.ExtractionResult {
	return domain.ExtractionResult{Text: &s}
}

// completeClaimOrchestrator builds a pipeline whose three documents
// classify cleanly and validate as consistent.
func completeClaimOrchestrator() *pipeline.Orchestrator {
	texts := map[string]string{
		"bill.pdf":      "Good Health Hospital\nInvoice No: INV-1234\nTotal Amount: 12500",
		"discharge.pdf": "Discharge Date: 2025-10-20\nDiagnosis: Acute Appendicitis",
		"id.pdf":        "ID Number: ID9999\nDOB: 1980-01-01",
	}
	extractor := new(mocks.MockTextExtractor)
	for name, text := range texts {
		extractor.On("Extract", mock.Anything, name, mock.Anything).Return(textResult(text))
	}
	extractor.On("Extract", mock.Anything, mock.Anything, mock.Anything).Return(domain.ExtractionResult{}).Maybe()
	return pipeline.NewOrchestrator(extractor, mockllm.NewClient())
}

// unreadableClaimOrchestrator builds a pipeline where no document yields
// text, so every claim lands in manual review with missing documents.
func unreadableClaimOrchestrator() *pipeline.Orchestrator {
	extractor := new(mocks.MockTextExtractor)
	extractor.On("Extract", mock.Anything, mock.Anything, mock.Anything).Return(domain.ExtractionResult{})
	return pipeline.NewOrchestrator(extractor, mockllm.NewClient())
}

func claimDocs() []domain.UploadedDocument {
	return []domain.UploadedDocument{
		{Filename: "bill.pdf", Content: []byte("%PDF bill")},
		{Filename: "discharge.pdf", Content: []byte("%PDF discharge")},
		{Filename: "id.pdf", Content: []byte("%PDF id")},
	}
}

func TestProcessClaim_EmptyBatch(t *testing.T) {
	svc := service.NewClaimService(completeClaimOrchestrator(), new(mocks.MockObjectStorage), new(mocks.MockEmailSender), config.ArchiveConfig{})

	_, err := svc.ProcessClaim(context.Background(), nil)

	assert.ErrorIs(t, err, domain.ErrEmptyBatch)
}

func TestProcessClaim_ApprovedSendsNoNotification(t *testing.T) {
	email := new(mocks.MockEmailSender)
	svc := service.NewClaimService(completeClaimOrchestrator(), new(mocks.MockObjectStorage), email, config.ArchiveConfig{})

	result, err := svc.ProcessClaim(context.Background(), claimDocs())

	require.NoError(t, err)
	assert.Equal(t, domain.ClaimStatusApproved, result.Decision.Status)
	email.AssertNotCalled(t, "SendReviewNotification")
}

func TestProcessClaim_ManualReviewNotifiesReviewer(t *testing.T) {
	email := new(mocks.MockEmailSender)
	email.On("SendReviewNotification", mock.Anything, mock.Anything, mock.MatchedBy(func(d domain.ClaimDecision) bool {
		return d.Status == domain.ClaimStatusManualReview
	})).Return(nil).Once()

	svc := service.NewClaimService(unreadableClaimOrchestrator(), new(mocks.MockObjectStorage), email, config.ArchiveConfig{})
	result, err := svc.ProcessClaim(context.Background(), claimDocs())

	require.NoError(t, err)
	assert.Equal(t, domain.ClaimStatusManualReview, result.Decision.Status)
	email.AssertExpectations(t)
}

func TestProcessClaim_NotificationFailureIsNotFatal(t *testing.T) {
	email := new(mocks.MockEmailSender)
	email.On("SendReviewNotification", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("ses down"))

	svc := service.NewClaimService(unreadableClaimOrchestrator(), new(mocks.MockObjectStorage), email, config.ArchiveConfig{})
	result, err := svc.ProcessClaim(context.Background(), claimDocs())

	require.NoError(t, err)
	assert.Equal(t, domain.ClaimStatusManualReview, result.Decision.Status)
}

func TestProcessClaim_ArchivesUploadsWhenEnabled(t *testing.T) {
	storage := new(mocks.MockObjectStorage)
	storage.On("Upload", mock.Anything, mock.MatchedBy(func(in port.UploadInput) bool {
		return in.Bucket == "claims-archive" && strings.HasPrefix(in.Key, "claims/")
	})).Return(&port.UploadOutput{}, nil).Times(3)

	svc := service.NewClaimService(completeClaimOrchestrator(), storage, new(mocks.MockEmailSender), config.ArchiveConfig{
		Enabled: true,
		Bucket:  "claims-archive",
	})
	_, err := svc.ProcessClaim(context.Background(), claimDocs())

	require.NoError(t, err)
	storage.AssertExpectations(t)
}

func TestProcessClaim_ArchiveDisabledSkipsStorage(t *testing.T) {
	storage := new(mocks.MockObjectStorage)

	svc := service.NewClaimService(completeClaimOrchestrator(), storage, new(mocks.MockEmailSender), config.ArchiveConfig{})
	_, err := svc.ProcessClaim(context.Background(), claimDocs())

	require.NoError(t, err)
	storage.AssertNotCalled(t, "Upload")
}

func TestProcessClaim_ArchiveFailureIsNotFatal(t *testing.T) {
	storage := new(mocks.MockObjectStorage)
	storage.On("Upload", mock.Anything, mock.Anything).Return(nil, errors.New("s3 down"))

	svc := service.NewClaimService(completeClaimOrchestrator(), storage, new(mocks.MockEmailSender), config.ArchiveConfig{
		Enabled: true,
		Bucket:  "claims-archive",
	})
	result, err := svc.ProcessClaim(context.Background(), claimDocs())

	require.NoError(t, err)
	assert.Equal(t, domain.ClaimStatusApproved, result.Decision.Status)
}
