package agent

import (
	"context"
	"fmt"

	"superclaims/internal/domain"
	"superclaims/internal/port"
)

// FieldAgent runs the category-specific structured extraction for one
// document category. It passes the client's parsed mapping through
// unvalidated; field presence and types are the validator's concern.
type FieldAgent struct {
	category domain.Category
	prompt   string
	client   port.StructuredClient
}

// NewBillAgent creates the field agent for hospital bills.
func NewBillAgent(client port.StructuredClient) *FieldAgent {
	return &FieldAgent{category: domain.CategoryBill, prompt: billPrompt, client: client}
}

// NewDischargeAgent creates the field agent for discharge summaries.
func NewDischargeAgent(client port.StructuredClient) *FieldAgent {
	return &FieldAgent{category: domain.CategoryDischargeSummary, prompt: dischargePrompt, client: client}
}

// NewIDAgent creates the field agent for identity documents.
func NewIDAgent(client port.StructuredClient) *FieldAgent {
	return &FieldAgent{category: domain.CategoryIDCard, prompt: idCardPrompt, client: client}
}

// Category returns the document category this agent extracts.
func (a *FieldAgent) Category() domain.Category {
	return a.category
}

// Extract returns the structured record for a document's text. Unlike
// classification, a client failure propagates: the caller decides how
// to degrade that document.
func (a *FieldAgent) Extract(ctx context.Context, text *string) (domain.StructuredRecord, error) {
	out, err := a.client.Call(ctx, buildPrompt(a.prompt, text))
	if err != nil {
		return nil, fmt.Errorf("extracting %s fields: %w", a.category, err)
	}
	return domain.StructuredRecord(out), nil
}
