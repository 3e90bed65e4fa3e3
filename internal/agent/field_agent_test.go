package agent_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"superclaims/internal/agent"
	"superclaims/internal/domain"
	"superclaims/mocks"
)

func TestFieldAgent_Category(t *testing.T) {
	client := new(mocks.MockStructuredClient)

	assert.Equal(t, domain.CategoryBill, agent.NewBillAgent(client).Category())
	assert.Equal(t, domain.CategoryDischargeSummary, agent.NewDischargeAgent(client).Category())
	assert.Equal(t, domain.CategoryIDCard, agent.NewIDAgent(client).Category())
}

func TestFieldAgent_Extract(t *testing.T) {
	client := new(mocks.MockStructuredClient)
	client.On("Call", mock.Anything, mock.MatchedBy(func(prompt string) bool {
		return strings.Contains(prompt, "total_amount") &&
			strings.HasSuffix(prompt, "Document text:\nInvoice body")
	})).Return(map[string]any{"patient_name": "John Doe", "total_amount": float64(12500)}, nil)

	rec, err := agent.NewBillAgent(client).Extract(context.Background(), strPtr("Invoice body"))

	require.NoError(t, err)
	assert.Equal(t, "John Doe", rec["patient_name"])
	assert.Equal(t, float64(12500), rec["total_amount"])
	client.AssertExpectations(t)
}

func TestFieldAgent_ExtractPropagatesFailure(t *testing.T) {
	client := new(mocks.MockStructuredClient)
	client.On("Call", mock.Anything, mock.Anything).Return(nil, errors.New("model down"))

	_, err := agent.NewDischargeAgent(client).Extract(context.Background(), strPtr("text"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "extracting discharge_summary fields")
}

func TestFieldAgent_ExtractPassesRecordThrough(t *testing.T) {
	// Partial or even empty model output is passed along unvalidated.
	client := new(mocks.MockStructuredClient)
	client.On("Call", mock.Anything, mock.Anything).Return(map[string]any{}, nil)

	rec, err := agent.NewIDAgent(client).Extract(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, rec)
	assert.NotNil(t, rec)
}
