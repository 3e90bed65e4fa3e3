package pdftext

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract_UnreadableBytes(t *testing.T) {
	extractor := NewExtractor()

	cases := map[string][]byte{
		"empty":          nil,
		"not a pdf":      []byte("hello world"),
		"truncated pdf":  []byte("%PDF-1.7\n1 0 obj"),
		"binary garbage": {0x00, 0xff, 0x13, 0x37},
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			result := extractor.Extract(context.Background(), name+".pdf", content)
			assert.Nil(t, result.Text)
		})
	}
}

func TestDecodeTextOperators(t *testing.T) {
	t.Run("Tj operator", func(t *testing.T) {
		stream := []byte("BT /F1 12 Tf (Hospital Bill) Tj ET")
		assert.Equal(t, "Hospital Bill", decodeTextOperators(stream))
	})

	t.Run("TJ array operator", func(t *testing.T) {
		stream := []byte("BT [(Total) -250 (Amount:) -250 (12500)] TJ ET")
		assert.Equal(t, "Total Amount: 12500", decodeTextOperators(stream))
	})

	t.Run("quote operators", func(t *testing.T) {
		stream := []byte("BT (line one) ' (line two) \" ET")
		assert.Equal(t, "line one line two", decodeTextOperators(stream))
	})

	t.Run("positioning operands are not rendered", func(t *testing.T) {
		stream := []byte("BT (discard me) 1 0 0 1 50 700 Tm (keep me) Tj ET")
		assert.Equal(t, "keep me", decodeTextOperators(stream))
	})

	t.Run("no text operators", func(t *testing.T) {
		stream := []byte("q 1 0 0 1 0 0 cm /Im0 Do Q")
		assert.Equal(t, "", decodeTextOperators(stream))
	})
}

func TestReadLiteralString(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		s, next := readLiteralString([]byte("(John Doe) Tj"), 0)
		assert.Equal(t, "John Doe", s)
		assert.Equal(t, 10, next)
	})

	t.Run("escapes", func(t *testing.T) {
		s, _ := readLiteralString([]byte(`(a\(b\)c\\d\ne)`), 0)
		assert.Equal(t, "a(b)c\\d\ne", s)
	})

	t.Run("nested parens", func(t *testing.T) {
		s, _ := readLiteralString([]byte("(outer (inner) tail)"), 0)
		assert.Equal(t, "outer (inner) tail", s)
	})

	t.Run("unterminated", func(t *testing.T) {
		s, next := readLiteralString([]byte("(dangling"), 0)
		assert.Equal(t, "dangling", s)
		assert.Equal(t, 9, next)
	})
}
