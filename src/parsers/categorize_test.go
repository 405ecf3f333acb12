package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/username/finpulse/src/models"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		description string
		want        models.Category
	}{
		{"Office RENT March", models.CategoryRent},
		{"Monthly salary transfer", models.CategoryPayroll},
		{"Payroll run week 12", models.CategoryPayroll},
		{"Sales receipts", models.CategoryRevenue},
		{"Invoice #42", models.CategoryRevenue},
		{"Inventory restock", models.CategoryRevenue},
		{"Coffee supplies", models.CategoryUncategorized},
		{"", models.CategoryUncategorized},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, Categorize(tc.description), "description=%q", tc.description)
	}
}

// A description containing several trigger words resolves by priority order,
// not by which word appears first in the text.
func TestCategorizePriority(t *testing.T) {
	assert.Equal(t, models.CategoryRent, Categorize("payroll rent refund"))
	assert.Equal(t, models.CategoryPayroll, Categorize("sales team salary"))
}
