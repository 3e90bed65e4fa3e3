package port

import (
	"context"

	"superclaims/internal/domain"
)

// TextExtractor converts raw document bytes into plain text. It never
// returns an error: any internal failure degrades to a nil Text.
type TextExtractor interface {
	Extract(ctx context.Context, filename string, content []byte) domain.ExtractionResult
}
