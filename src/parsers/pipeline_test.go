package parsers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/username/finpulse/src/models"
)

func newTestPipeline(now time.Time) *Pipeline {
	p := NewPipeline(NewNormalizer(DefaultSynonyms()))
	p.clock = func() time.Time { return now }
	return p
}

func TestPipelineRun(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	p := newTestPipeline(now)

	data := []byte("Txn Date,Desc,Amt\n" +
		"2024-01-15,Client invoice payment,\"$1,200.50\"\n" +
		"2024-01-20,Office rent,-1500\n")

	records, err := p.Run(data, "Ledger.CSV")
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), first.Date)
	assert.Equal(t, "Client invoice payment", first.Description)
	assert.Equal(t, 1200.50, first.Amount)
	assert.Equal(t, models.TypeIncome, first.Type)
	assert.Equal(t, models.CategoryRevenue, first.Category)
	assert.Equal(t, "ledger.csv", first.SourceFile)

	second := records[1]
	assert.Equal(t, 1500.0, second.Amount)
	assert.Equal(t, models.TypeExpense, second.Type)
	assert.Equal(t, models.CategoryRent, second.Category)
}

func TestPipelineCoercionDefaults(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	p := newTestPipeline(now)

	data := []byte("date,description,amount\n" +
		"not-a-date,,abc\n")

	records, err := p.Run(data, "messy.csv")
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, 0.0, rec.Amount, "unparsable amount coerces to zero")
	assert.Equal(t, models.TypeExpense, rec.Type, "zero amount is not income")
	assert.Equal(t, now, rec.Date, "unparsable date coerces to ingestion time")
	assert.Equal(t, "Unknown", rec.Description)
	assert.Equal(t, models.CategoryUncategorized, rec.Category)
}

func TestPipelineSkipsEmptyRows(t *testing.T) {
	p := newTestPipeline(time.Now())

	data := []byte("date,description,amount\n" +
		"2024-01-15,Sales,100\n" +
		",,\n" +
		"   ,  ,\n" +
		"2024-01-16,Rent,-50\n")

	records, err := p.Run(data, "gaps.csv")
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestPipelineNegativeAmountBecomesExpense(t *testing.T) {
	p := newTestPipeline(time.Now())

	data := []byte("date,description,amount\n2024-02-01,Payroll run,-8000\n")

	records, err := p.Run(data, "payroll.csv")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, models.TypeExpense, records[0].Type)
	assert.Equal(t, 8000.0, records[0].Amount, "stored amount is the absolute value")
}

func TestPipelineShortRow(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	p := newTestPipeline(now)

	data := []byte("date,description,amount\n2024-03-01,Rent\n")

	records, err := p.Run(data, "short.csv")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 0.0, records[0].Amount)
	assert.Equal(t, "Rent", records[0].Description)
}

func TestPipelineMissingColumnsAbort(t *testing.T) {
	p := newTestPipeline(time.Now())

	data := []byte("reference,memo\nX1,hello\n")

	_, err := p.Run(data, "bad.csv")
	var missingErr *MissingColumnsError
	require.ErrorAs(t, err, &missingErr)
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw     string
		want    float64
		wantErr bool
	}{
		{"1200.50", 1200.50, false},
		{"$1,200.50", 1200.50, false},
		{" -500 ", -500, false},
		{"", 0, true},
		{"abc", 0, true},
	}
	for _, tc := range tests {
		got, err := parseAmount(tc.raw)
		if tc.wantErr {
			assert.Error(t, err, "raw=%q", tc.raw)
			continue
		}
		require.NoError(t, err, "raw=%q", tc.raw)
		assert.Equal(t, tc.want, got, "raw=%q", tc.raw)
	}
}
