package llm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"superclaims/internal/llm"
)

func TestDecodeObject_StrictJSON(t *testing.T) {
	out := llm.DecodeObject(`{"type":"bill","total_amount":12500}`)
	assert.Equal(t, "bill", out["type"])
	assert.Equal(t, float64(12500), out["total_amount"])
}

func TestDecodeObject_SubstringFallback(t *testing.T) {
	out := llm.DecodeObject("Sure! Here is the JSON you asked for:\n```json\n{\"type\": \"id_card\"}\n```")
	assert.Equal(t, map[string]any{"type": "id_card"}, out)
}

func TestDecodeObject_SubstringSpansLines(t *testing.T) {
	out := llm.DecodeObject("prefix {\"patient_name\":\n\"John Doe\"} suffix")
	assert.Equal(t, "John Doe", out["patient_name"])
}

func TestDecodeObject_GarbageDefaultsToEmpty(t *testing.T) {
	cases := map[string]string{
		"plain text":     "I could not find any data in the document.",
		"empty":          "",
		"unclosed brace": "{\"type\": \"bill\"",
		"json array":     `[1, 2, 3]`,
		"json null":      "null",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			out := llm.DecodeObject(raw)
			assert.NotNil(t, out)
			assert.Empty(t, out)
		})
	}
}

func TestDecodeObject_NestedObjects(t *testing.T) {
	out := llm.DecodeObject(`note {"details":{"expected":"John Doe"}} done`)
	details, ok := out["details"].(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, "John Doe", details["expected"])
}
