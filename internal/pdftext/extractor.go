package pdftext

import (
	"bytes"
	"context"
	"io"
	"log"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"superclaims/internal/domain"
	"superclaims/internal/port"
)

// Extractor pulls best-effort plain text out of PDF bytes using pdfcpu.
// It implements port.TextExtractor and never fails outward: any parse
// problem degrades to a nil-text result.
type Extractor struct {
	conf *model.Configuration
}

// NewExtractor creates a PDF text extractor with relaxed validation, so
// slightly malformed uploads still yield text where possible.
func NewExtractor() port.TextExtractor {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &Extractor{conf: conf}
}

func (e *Extractor) Extract(_ context.Context, filename string, content []byte) domain.ExtractionResult {
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(content), e.conf)
	if err != nil {
		log.Printf("pdftext.Extractor: %s: unreadable pdf: %v", filename, err)
		return domain.ExtractionResult{}
	}

	var sb strings.Builder
	for page := 1; page <= ctx.PageCount; page++ {
		r, err := pdfcpu.ExtractPageContent(ctx, page)
		if err != nil || r == nil {
			continue
		}
		stream, err := io.ReadAll(r)
		if err != nil {
			continue
		}
		pageText := decodeTextOperators(stream)
		if pageText != "" {
			sb.WriteString(pageText)
			sb.WriteString("\n")
		}
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return domain.ExtractionResult{}
	}
	return domain.ExtractionResult{Text: &text}
}

// decodeTextOperators collects the literal string arguments of Tj/TJ/'
// text-showing operators from a page content stream. Hex strings and
// CID-encoded fonts are out of scope; absent text degrades to "".
func decodeTextOperators(stream []byte) string {
	var out []string
	var pending []string

	i := 0
	for i < len(stream) {
		switch stream[i] {
		case '(':
			s, next := readLiteralString(stream, i)
			pending = append(pending, s)
			i = next
		case 'T':
			if i+1 < len(stream) && (stream[i+1] == 'j' || stream[i+1] == 'J') {
				out = append(out, pending...)
				pending = pending[:0]
				i += 2
				continue
			}
			// Other T* operators (Td, Tm, Tf...) discard pending strings,
			// which belong to operands we do not render.
			pending = pending[:0]
			i++
		case '\'', '"':
			out = append(out, pending...)
			pending = pending[:0]
			i++
		default:
			i++
		}
	}

	return strings.Join(out, " ")
}

// readLiteralString reads a PDF literal string starting at the '(' at
// stream[start] and returns the decoded text plus the index after the
// closing ')'.
func readLiteralString(stream []byte, start int) (string, int) {
	var sb strings.Builder
	depth := 0
	i := start
	for i < len(stream) {
		c := stream[i]
		switch c {
		case '\\':
			if i+1 < len(stream) {
				switch stream[i+1] {
				case 'n':
					sb.WriteByte('\n')
				case 'r':
					sb.WriteByte('\r')
				case 't':
					sb.WriteByte('\t')
				case '(', ')', '\\':
					sb.WriteByte(stream[i+1])
				}
				i += 2
				continue
			}
			i++
		case '(':
			depth++
			if depth > 1 {
				sb.WriteByte(c)
			}
			i++
		case ')':
			depth--
			if depth == 0 {
				return sb.String(), i + 1
			}
			sb.WriteByte(c)
			i++
		default:
			sb.WriteByte(c)
			i++
		}
	}
	return sb.String(), i
}
