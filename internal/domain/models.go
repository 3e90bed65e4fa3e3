package domain

// UploadedDocument is one file received at the request boundary. It is
// immutable for the duration of a claim and owned by the pipeline.
type UploadedDocument struct {
	Filename string
	Content  []byte
}

// ExtractionResult is the outcome of text extraction for one document.
// A nil Text signals extraction failure; the pipeline degrades rather
// than aborts on it.
type ExtractionResult struct {
	Text *string
}

// StructuredRecord is the category-specific field mapping produced by a
// field-extraction agent. Values are whatever the model returned
// (string, float64, nil); agents do not validate them.
type StructuredRecord map[string]any

// DocumentResult is the public per-document projection returned to the
// caller. Immutable once built.
type DocumentResult struct {
	Filename       string           `json:"filename"`
	Classification Category         `json:"classification"`
	ExtractedText  *string          `json:"extracted_text"`
	Structured     StructuredRecord `json:"structured"`
}

// Discrepancy is a single cross-document inconsistency found during
// validation.
type Discrepancy struct {
	Kind    DiscrepancyKind `json:"type"`
	Details map[string]any  `json:"details"`
}

// ValidationResult aggregates the findings across a claim's structured
// records. Order is significant: missing documents follow the required
// set order, discrepancies accumulate in encounter order.
type ValidationResult struct {
	MissingDocuments []Category    `json:"missing_documents"`
	Discrepancies    []Discrepancy `json:"discrepancies"`
}

// ClaimDecision is the final status for a claim, derived purely from
// its ValidationResult.
type ClaimDecision struct {
	Status ClaimStatus `json:"status"`
	Reason string      `json:"reason"`
}

// ProcessResult is the aggregate output of one claim pipeline run.
type ProcessResult struct {
	Documents  []DocumentResult `json:"documents"`
	Validation ValidationResult `json:"validation"`
	Decision   ClaimDecision    `json:"claim_decision"`
}
