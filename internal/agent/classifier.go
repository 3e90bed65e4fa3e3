package agent

import (
	"context"
	"log"

	"superclaims/internal/domain"
	"superclaims/internal/port"
)

// Classifier assigns one category label to a document's extracted text.
type Classifier struct {
	client port.StructuredClient
}

// NewClassifier creates a classifier stage on top of a structured client.
func NewClassifier(client port.StructuredClient) *Classifier {
	return &Classifier{client: client}
}

// Classify returns the document's category. It never fails: a client
// error or a reply without a usable "type" field maps to CategoryOther.
func (c *Classifier) Classify(ctx context.Context, filename string, text *string) domain.Category {
	out, err := c.client.Call(ctx, buildPrompt(classifyPrompt, text))
	if err != nil {
		log.Printf("agent.Classifier: %s: classification failed, defaulting to other: %v", filename, err)
		return domain.CategoryOther
	}
	raw, _ := out["type"].(string)
	return domain.ParseCategory(raw)
}
