package domain

// Category is the closed set of document classification labels.
type Category string

const (
	CategoryBill             Category = "bill"
	CategoryDischargeSummary Category = "discharge_summary"
	CategoryIDCard           Category = "id_card"
	CategoryPharmacyBill     Category = "pharmacy_bill"
	CategoryClaimForm        Category = "claim_form"
	CategoryOther            Category = "other"
)

// KnownCategories maps every recognized classifier label to its Category.
var KnownCategories = map[string]Category{
	"bill":              CategoryBill,
	"discharge_summary": CategoryDischargeSummary,
	"id_card":           CategoryIDCard,
	"pharmacy_bill":     CategoryPharmacyBill,
	"claim_form":        CategoryClaimForm,
	"other":             CategoryOther,
}

// RequiredCategories is the ordered set of categories a complete claim
// must contain. Validation iterates this order; the first record found
// in it is authoritative for the name cross-check.
var RequiredCategories = []Category{
	CategoryBill,
	CategoryDischargeSummary,
	CategoryIDCard,
}

// ParseCategory maps a raw classifier label to a Category, defaulting
// to CategoryOther for anything unrecognized.
func ParseCategory(raw string) Category {
	if c, ok := KnownCategories[raw]; ok {
		return c
	}
	return CategoryOther
}

// ClaimStatus is the final decision for a claim batch.
type ClaimStatus string

const (
	ClaimStatusApproved     ClaimStatus = "approved"
	ClaimStatusManualReview ClaimStatus = "manual_review"
)

// DiscrepancyKind identifies a cross-document validation finding.
type DiscrepancyKind string

const (
	DiscrepancyNameMismatch  DiscrepancyKind = "name_mismatch"
	DiscrepancyAmountInvalid DiscrepancyKind = "amount_invalid"
)

// FileType represents the allowed file types for upload.
type FileType string

const (
	FileTypePDF FileType = "pdf"
)

// AllowedExtensions maps file extensions (without dot) to FileType.
var AllowedExtensions = map[string]FileType{
	"pdf": FileTypePDF,
}

// AllowedContentTypes maps MIME content types back to FileType.
var AllowedContentTypes = map[string]FileType{
	"application/pdf": FileTypePDF,
}
