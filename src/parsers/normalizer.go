package parsers

import (
	"regexp"
	"strings"
)

// requiredColumns is the canonical field set every import must provide,
// in the order they are reported when missing.
var requiredColumns = []string{"date", "description", "amount"}

// DefaultSynonyms returns the built-in header rename table. Callers may pass
// their own mapping to NewNormalizer; the map is treated as immutable
// configuration once handed over.
func DefaultSynonyms() map[string]string {
	return map[string]string{
		"txn_date":         "date",
		"transaction_date": "date",
		"desc":             "description",
		"narrative":        "description",
		"amt":              "amount",
		"value":            "amount",
	}
}

// Normalizer maps arbitrary column headers to the canonical field set.
type Normalizer struct {
	synonyms map[string]string
}

func NewNormalizer(synonyms map[string]string) *Normalizer {
	return &Normalizer{synonyms: synonyms}
}

var headerWhitespace = regexp.MustCompile(`\s+`)

func normalizeHeader(h string) string {
	return headerWhitespace.ReplaceAllString(strings.TrimSpace(strings.ToLower(h)), "_")
}

// Normalize rewrites the table headers into canonical form and verifies the
// required columns are all present. When the plain normalization leaves
// required columns missing, the synonym table is applied and the check is
// repeated; a MissingColumnsError names every field still absent.
func (n *Normalizer) Normalize(t *RawTable) error {
	for i, h := range t.Headers {
		t.Headers[i] = normalizeHeader(h)
	}

	missing := n.missingColumns(t.Headers)
	if len(missing) == 0 {
		return nil
	}

	for i, h := range t.Headers {
		if canonical, ok := n.synonyms[h]; ok {
			t.Headers[i] = canonical
		}
	}

	if missing = n.missingColumns(t.Headers); len(missing) > 0 {
		return &MissingColumnsError{Missing: missing}
	}
	return nil
}

func (n *Normalizer) missingColumns(headers []string) []string {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[h] = true
	}
	var missing []string
	for _, col := range requiredColumns {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	return missing
}
