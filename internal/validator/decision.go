package validator

import (
	"fmt"
	"strings"

	"superclaims/internal/domain"
)

const approvedReason = "All documents consistent"

// Decide maps a validation result to the final claim decision. Pure
// function; missing documents always dominate discrepancies.
func Decide(validation domain.ValidationResult) domain.ClaimDecision {
	if len(validation.MissingDocuments) > 0 {
		return domain.ClaimDecision{
			Status: domain.ClaimStatusManualReview,
			Reason: fmt.Sprintf("Missing documents: %s", joinCategories(validation.MissingDocuments)),
		}
	}
	if len(validation.Discrepancies) > 0 {
		return domain.ClaimDecision{
			Status: domain.ClaimStatusManualReview,
			Reason: fmt.Sprintf("Discrepancies found: %s", joinDiscrepancies(validation.Discrepancies)),
		}
	}
	return domain.ClaimDecision{
		Status: domain.ClaimStatusApproved,
		Reason: approvedReason,
	}
}

func joinCategories(cats []domain.Category) string {
	parts := make([]string, len(cats))
	for i, c := range cats {
		parts[i] = string(c)
	}
	return strings.Join(parts, ", ")
}

func joinDiscrepancies(ds []domain.Discrepancy) string {
	parts := make([]string, len(ds))
	for i, d := range ds {
		parts[i] = string(d.Kind)
	}
	return strings.Join(parts, ", ")
}
