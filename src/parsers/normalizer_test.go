package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCanonicalHeaders(t *testing.T) {
	n := NewNormalizer(DefaultSynonyms())
	table := &RawTable{Headers: []string{" Date ", "DESCRIPTION", "Amount"}}

	require.NoError(t, n.Normalize(table))
	assert.Equal(t, []string{"date", "description", "amount"}, table.Headers)
}

func TestNormalizeWhitespaceCollapse(t *testing.T) {
	n := NewNormalizer(DefaultSynonyms())
	table := &RawTable{Headers: []string{"Transaction  Date", "description", "amount"}}

	require.NoError(t, n.Normalize(table))
	assert.Equal(t, "date", table.Headers[0])
}

func TestNormalizeSynonyms(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
	}{
		{"txn_date variant", []string{"Txn Date", "Desc", "Amt"}},
		{"narrative and value", []string{"transaction_date", "Narrative", "Value"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n := NewNormalizer(DefaultSynonyms())
			table := &RawTable{Headers: tc.headers}

			require.NoError(t, n.Normalize(table))
			assert.Equal(t, []string{"date", "description", "amount"}, table.Headers)
		})
	}
}

func TestNormalizeReportsAllMissingColumns(t *testing.T) {
	n := NewNormalizer(DefaultSynonyms())
	table := &RawTable{Headers: []string{"reference", "memo"}}

	err := n.Normalize(table)
	require.Error(t, err)

	var missingErr *MissingColumnsError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, []string{"date", "description", "amount"}, missingErr.Missing)
}

func TestNormalizeReportsPartialMissing(t *testing.T) {
	n := NewNormalizer(DefaultSynonyms())
	table := &RawTable{Headers: []string{"date", "memo", "amount"}}

	err := n.Normalize(table)
	require.Error(t, err)

	var missingErr *MissingColumnsError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, []string{"description"}, missingErr.Missing)
	assert.Contains(t, missingErr.Error(), "description")
}

func TestNormalizeCustomSynonyms(t *testing.T) {
	n := NewNormalizer(map[string]string{"when": "date", "what": "description", "how_much": "amount"})
	table := &RawTable{Headers: []string{"When", "What", "How Much"}}

	require.NoError(t, n.Normalize(table))
	assert.Equal(t, []string{"date", "description", "amount"}, table.Headers)
}
