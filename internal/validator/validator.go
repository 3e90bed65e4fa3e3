package validator

import (
	"encoding/json"
	"strconv"
	"strings"

	"superclaims/internal/domain"
)

// nameFieldByCategory maps each required category to the record field
// that carries the patient's name.
var nameFieldByCategory = map[domain.Category]string{
	domain.CategoryBill:             "patient_name",
	domain.CategoryDischargeSummary: "patient_name",
	domain.CategoryIDCard:           "name",
}

// CrossValidator checks the aggregated structured records of one claim
// for missing required categories and field-level inconsistencies.
type CrossValidator struct{}

// New creates a CrossValidator.
func New() *CrossValidator {
	return &CrossValidator{}
}

// Validate runs the missing-document, name, and amount checks.
// Discrepancies accumulate in encounter order and are never removed.
func (v *CrossValidator) Validate(records map[domain.Category]domain.StructuredRecord) domain.ValidationResult {
	result := domain.ValidationResult{
		MissingDocuments: []domain.Category{},
		Discrepancies:    []domain.Discrepancy{},
	}

	for _, cat := range domain.RequiredCategories {
		if _, ok := records[cat]; !ok {
			result.MissingDocuments = append(result.MissingDocuments, cat)
		}
	}

	result.Discrepancies = append(result.Discrepancies, v.checkNames(records)...)
	result.Discrepancies = append(result.Discrepancies, v.checkAmount(records)...)

	return result
}

type nameSource struct {
	category domain.Category
	name     string
}

// checkNames compares the patient name across all present records. The
// first collected name, in required-category order, is authoritative;
// every later record that disagrees (case-insensitive, trimmed) emits
// one name_mismatch discrepancy.
func (v *CrossValidator) checkNames(records map[domain.Category]domain.StructuredRecord) []domain.Discrepancy {
	var sources []nameSource
	for _, cat := range domain.RequiredCategories {
		rec, ok := records[cat]
		if !ok {
			continue
		}
		if name, ok := rec[nameFieldByCategory[cat]].(string); ok && name != "" {
			sources = append(sources, nameSource{category: cat, name: name})
		}
	}
	if len(sources) < 2 {
		return nil
	}

	expected := sources[0].name
	canonical := canonicalName(expected)

	var out []domain.Discrepancy
	for _, src := range sources[1:] {
		if canonicalName(src.name) == canonical {
			continue
		}
		out = append(out, domain.Discrepancy{
			Kind: domain.DiscrepancyNameMismatch,
			Details: map[string]any{
				"expected":      expected,
				"mismatch_with": map[string]any{string(src.category): src.name},
			},
		})
	}
	return out
}

// checkAmount runs the bill total sanity check. It only fires when the
// bill carries a numeric total_amount and the discharge summary a
// non-empty discharge_date; anything else means no check performed.
func (v *CrossValidator) checkAmount(records map[domain.Category]domain.StructuredRecord) []domain.Discrepancy {
	bill, ok := records[domain.CategoryBill]
	if !ok {
		return nil
	}
	discharge, ok := records[domain.CategoryDischargeSummary]
	if !ok {
		return nil
	}

	total, ok := numericValue(bill["total_amount"])
	if !ok {
		return nil
	}
	if date, ok := discharge["discharge_date"].(string); !ok || date == "" {
		return nil
	}

	if total <= 0 {
		return []domain.Discrepancy{{
			Kind: domain.DiscrepancyAmountInvalid,
			Details: map[string]any{
				"bill_total": bill["total_amount"],
			},
		}}
	}
	return nil
}

func canonicalName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// numericValue coerces a model-supplied value into a float. JSON
// decoding yields float64; defensively parsed replies may carry
// json.Number, ints, or numeric strings.
func numericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	return 0, false
}
