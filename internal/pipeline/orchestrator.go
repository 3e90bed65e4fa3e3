package pipeline

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"superclaims/internal/agent"
	"superclaims/internal/domain"
	"superclaims/internal/port"
	"superclaims/internal/validator"
)

// failedRecord replaces a document's structured record when its field
// extraction exhausted the model's retries.
func failedRecord() domain.StructuredRecord {
	return domain.StructuredRecord{"error": "extraction failed"}
}

// Orchestrator drives the per-document stages of one claim: text
// extraction, classification, category-specific field extraction, then
// cross-document validation and the final decision.
type Orchestrator struct {
	extractor  port.TextExtractor
	classifier *agent.Classifier
	agents     map[domain.Category]*agent.FieldAgent
	validator  *validator.CrossValidator
}

// NewOrchestrator wires the pipeline stages on top of a text extractor
// and a structured model client.
func NewOrchestrator(extractor port.TextExtractor, client port.StructuredClient) *Orchestrator {
	agents := map[domain.Category]*agent.FieldAgent{}
	for _, a := range []*agent.FieldAgent{
		agent.NewBillAgent(client),
		agent.NewDischargeAgent(client),
		agent.NewIDAgent(client),
	} {
		agents[a.Category()] = a
	}
	return &Orchestrator{
		extractor:  extractor,
		classifier: agent.NewClassifier(client),
		agents:     agents,
		validator:  validator.New(),
	}
}

// Process runs the full pipeline for one claim batch. Per-document
// failures degrade that document's output; they never abort the batch.
// The returned document order always matches the upload order.
func (o *Orchestrator) Process(ctx context.Context, docs []domain.UploadedDocument) (*domain.ProcessResult, error) {
	if len(docs) == 0 {
		return nil, domain.ErrEmptyBatch
	}

	texts := o.extractAll(ctx, docs)
	categories := o.classifyAll(ctx, docs, texts)
	structured := o.extractFieldsAll(ctx, docs, texts, categories)

	results := make([]domain.DocumentResult, len(docs))
	structuredByCategory := map[domain.Category]domain.StructuredRecord{}
	for i, doc := range docs {
		results[i] = domain.DocumentResult{
			Filename:       doc.Filename,
			Classification: categories[i],
			ExtractedText:  texts[i].Text,
			Structured:     structured[i],
		}
		// Last write wins when two uploads classify into the same
		// category; upload order decides.
		structuredByCategory[categories[i]] = structured[i]
	}

	validation := o.validator.Validate(structuredByCategory)
	decision := validator.Decide(validation)

	return &domain.ProcessResult{
		Documents:  results,
		Validation: validation,
		Decision:   decision,
	}, nil
}

// extractAll runs text extraction for every document concurrently and
// joins results back by input index. Extraction never errors; a bad
// document simply carries nil text forward.
func (o *Orchestrator) extractAll(ctx context.Context, docs []domain.UploadedDocument) []domain.ExtractionResult {
	texts := make([]domain.ExtractionResult, len(docs))
	g, gctx := errgroup.WithContext(ctx)
	for i, doc := range docs {
		g.Go(func() error {
			texts[i] = o.extractor.Extract(gctx, doc.Filename, doc.Content)
			return nil
		})
	}
	_ = g.Wait()
	return texts
}

// classifyAll classifies every document concurrently. Classification
// never errors; unusable model output defaults to CategoryOther.
func (o *Orchestrator) classifyAll(ctx context.Context, docs []domain.UploadedDocument, texts []domain.ExtractionResult) []domain.Category {
	categories := make([]domain.Category, len(docs))
	g, gctx := errgroup.WithContext(ctx)
	for i, doc := range docs {
		g.Go(func() error {
			categories[i] = o.classifier.Classify(gctx, doc.Filename, texts[i].Text)
			return nil
		})
	}
	_ = g.Wait()
	return categories
}

// extractFieldsAll dispatches each document to the field agent matching
// its category, concurrently across documents. Categories without an
// agent yield an empty record; a model failure fails only that document.
func (o *Orchestrator) extractFieldsAll(ctx context.Context, docs []domain.UploadedDocument, texts []domain.ExtractionResult, categories []domain.Category) []domain.StructuredRecord {
	structured := make([]domain.StructuredRecord, len(docs))
	g, gctx := errgroup.WithContext(ctx)
	for i, doc := range docs {
		fieldAgent, ok := o.agents[categories[i]]
		if !ok {
			structured[i] = domain.StructuredRecord{}
			continue
		}
		g.Go(func() error {
			rec, err := fieldAgent.Extract(gctx, texts[i].Text)
			if err != nil {
				log.Printf("pipeline.Orchestrator: %s: field extraction failed: %v", doc.Filename, err)
				structured[i] = failedRecord()
				return nil
			}
			structured[i] = rec
			return nil
		})
	}
	_ = g.Wait()
	return structured
}
