package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"superclaims/internal/domain"
)

func TestParseCategory(t *testing.T) {
	assert.Equal(t, domain.CategoryBill, domain.ParseCategory("bill"))
	assert.Equal(t, domain.CategoryDischargeSummary, domain.ParseCategory("discharge_summary"))
	assert.Equal(t, domain.CategoryPharmacyBill, domain.ParseCategory("pharmacy_bill"))
	assert.Equal(t, domain.CategoryOther, domain.ParseCategory("prescription"))
	assert.Equal(t, domain.CategoryOther, domain.ParseCategory(""))
	assert.Equal(t, domain.CategoryOther, domain.ParseCategory("Bill"))
}

func TestRequiredCategoriesOrder(t *testing.T) {
	assert.Equal(t, []domain.Category{
		domain.CategoryBill,
		domain.CategoryDischargeSummary,
		domain.CategoryIDCard,
	}, domain.RequiredCategories)
}
