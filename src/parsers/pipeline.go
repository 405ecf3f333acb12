package parsers

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/username/finpulse/src/logger"
	"github.com/username/finpulse/src/models"
	"github.com/username/finpulse/src/security/validation"
	"github.com/username/finpulse/src/utils"
)

// Pipeline turns raw file bytes into categorized TransactionRecords:
// decode, normalize headers, then coerce each row. Structural problems
// (unparsable file, missing columns) abort the whole import; value-level
// problems in a row degrade to documented defaults and the row is still
// emitted. A ledger with a best-effort row beats a silently incomplete one.
type Pipeline struct {
	normalizer *Normalizer
	clock      func() time.Time
}

func NewPipeline(normalizer *Normalizer) *Pipeline {
	return &Pipeline{
		normalizer: normalizer,
		clock:      time.Now,
	}
}

// Run produces one TransactionRecord per data row of the decoded table.
func (p *Pipeline) Run(data []byte, filename string) ([]models.TransactionRecord, error) {
	table, err := Decode(data, filename)
	if err != nil {
		return nil, err
	}

	if err := p.normalizer.Normalize(table); err != nil {
		return nil, err
	}

	idx := columnIndex(table.Headers)
	sourceFile := strings.ToLower(filename)

	records := make([]models.TransactionRecord, 0, len(table.Rows))
	for _, row := range table.Rows {
		if emptyRow(row) {
			continue
		}
		records = append(records, p.coerceRow(idx, row, sourceFile))
	}
	return records, nil
}

// coerceRow never fails: a bad amount becomes 0.0 and a bad date becomes the
// ingestion timestamp. Income/Expense comes from the sign of the parsed
// amount; the stored amount is its absolute value.
func (p *Pipeline) coerceRow(idx map[string]int, row []string, sourceFile string) models.TransactionRecord {
	rawAmount := cellValue(row, idx, "amount")
	signed, err := parseAmount(rawAmount)
	if err != nil {
		if logger.L != nil {
			logger.L.Debug("Coercing unparsable amount to 0", "raw", rawAmount, "error", err)
		}
		signed = 0
	}

	txType := models.TypeExpense
	if signed > 0 {
		txType = models.TypeIncome
	}

	rawDate := cellValue(row, idx, "date")
	date, err := utils.ParseFlexibleDate(rawDate)
	if err != nil {
		if logger.L != nil {
			logger.L.Debug("Substituting ingestion time for unparsable date", "raw", rawDate, "error", err)
		}
		date = p.clock()
	}

	description := validation.StripUnprintable(strings.TrimSpace(cellValue(row, idx, "description")))
	if description == "" {
		description = "Unknown"
	}

	return models.TransactionRecord{
		Date:        date,
		Description: description,
		Amount:      math.Abs(signed),
		Type:        txType,
		Category:    Categorize(description),
		SourceFile:  sourceFile,
	}
}

// parseAmount strips thousands separators and currency symbols before the
// numeric conversion.
func parseAmount(raw string) (float64, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.ReplaceAll(cleaned, "$", "")
	if cleaned == "" {
		return 0, fmt.Errorf("empty amount")
	}
	return strconv.ParseFloat(cleaned, 64)
}

// columnIndex maps each header to its first occurrence.
func columnIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		if _, exists := idx[h]; !exists {
			idx[h] = i
		}
	}
	return idx
}

func cellValue(row []string, idx map[string]int, column string) string {
	i, ok := idx[column]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

func emptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
