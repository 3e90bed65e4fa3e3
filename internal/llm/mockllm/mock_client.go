package mockllm

import (
	"context"
	"strings"

	"superclaims/internal/config"
	"superclaims/internal/port"
)

// Client is a deterministic StructuredClient for tests and keyless
// local runs. It routes on keywords in the prompt and returns canned
// records for a single consistent patient.
type Client struct{}

// NewClient creates a deterministic mock client.
func NewClient() *Client {
	return &Client{}
}

// Factory adapts NewClient to the provider registry signature.
func Factory(_ *config.LLMProviderConfig) (port.StructuredClient, error) {
	return NewClient(), nil
}

func (c *Client) Call(_ context.Context, prompt string) (map[string]any, error) {
	pl := strings.ToLower(prompt)

	switch {
	case strings.Contains(pl, "classify this pdf"):
		// Route on the document text only, not the instruction block,
		// which itself names every category.
		_, text, _ := strings.Cut(pl, "document text:")
		return map[string]any{"type": classify(text)}, nil
	case strings.Contains(pl, "hospital_name"):
		return map[string]any{
			"hospital_name":  "Good Health Hospital",
			"patient_name":   "John Doe",
			"invoice_number": "INV-1234",
			"date":           "2025-10-20",
			"total_amount":   float64(12500),
		}, nil
	case strings.Contains(pl, "discharge_date"):
		return map[string]any{
			"patient_name":    "John Doe",
			"discharge_date":  "2025-10-20",
			"diagnosis":       "Acute Appendicitis",
			"treating_doctor": "Dr. Smith",
		}, nil
	case strings.Contains(pl, "id_number"):
		return map[string]any{
			"name":      "John Doe",
			"id_number": "ID9999",
			"dob":       "1980-01-01",
		}, nil
	}
	return map[string]any{}, nil
}

func classify(text string) string {
	switch {
	case strings.Contains(text, "invoice") || strings.Contains(text, "total amount") || strings.Contains(text, "hospital"):
		return "bill"
	case strings.Contains(text, "discharge") || strings.Contains(text, "diagnosis"):
		return "discharge_summary"
	case strings.Contains(text, "id number") || strings.Contains(text, "dob"):
		return "id_card"
	}
	return "other"
}
