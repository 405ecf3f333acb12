package parsers

import (
	"strings"

	"github.com/username/finpulse/src/models"
)

// Categorize assigns a coarse category from the transaction description.
// The checks run in a fixed priority order and the first match wins, so a
// description containing several trigger words always resolves the same way.
func Categorize(description string) models.Category {
	desc := strings.ToLower(description)
	switch {
	case strings.Contains(desc, "rent"):
		return models.CategoryRent
	case strings.Contains(desc, "salary") || strings.Contains(desc, "payroll"):
		return models.CategoryPayroll
	case strings.Contains(desc, "sales") || strings.Contains(desc, "inv"):
		return models.CategoryRevenue
	default:
		return models.CategoryUncategorized
	}
}
