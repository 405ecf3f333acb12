package processors

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/username/finpulse/src/models"
)

func txAt(txType models.TransactionType, amount float64, year int, month time.Month, day int) models.TransactionRecord {
	return models.TransactionRecord{
		Date:   time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
		Type:   txType,
		Amount: amount,
	}
}

func TestTimeSeriesMonthlyBuckets(t *testing.T) {
	p := NewTimeSeriesProcessor()
	transactions := []models.TransactionRecord{
		txAt(models.TypeIncome, 100, 2024, time.January, 5),
		txAt(models.TypeIncome, 250.50, 2024, time.January, 20),
		txAt(models.TypeIncome, 75, 2024, time.March, 1),
		txAt(models.TypeExpense, 9999, 2024, time.February, 10),
	}

	points := p.Process(transactions)

	require.Len(t, points, 2)
	assert.Equal(t, models.TimeSeriesPoint{Name: "Jan", Value: 350.50}, points[0])
	assert.Equal(t, models.TimeSeriesPoint{Name: "Mar", Value: 75}, points[1])
}

func TestTimeSeriesDistinguishesYears(t *testing.T) {
	p := NewTimeSeriesProcessor()
	transactions := []models.TransactionRecord{
		txAt(models.TypeIncome, 100, 2024, time.June, 1),
		txAt(models.TypeIncome, 200, 2023, time.June, 1),
	}

	points := p.Process(transactions)

	// Same month number in different years stays in separate buckets,
	// ordered chronologically.
	require.Len(t, points, 2)
	assert.Equal(t, 200.0, points[0].Value)
	assert.Equal(t, 100.0, points[1].Value)
	assert.Equal(t, "Jun", points[0].Name)
	assert.Equal(t, "Jun", points[1].Name)
}

func TestTimeSeriesFallsBackToAllRecords(t *testing.T) {
	p := NewTimeSeriesProcessor()
	transactions := []models.TransactionRecord{
		txAt(models.TypeExpense, 400, 2024, time.April, 2),
		txAt(models.TypeExpense, 100, 2024, time.April, 9),
	}

	points := p.Process(transactions)

	require.Len(t, points, 1)
	assert.Equal(t, "Apr", points[0].Name)
	assert.Equal(t, 500.0, points[0].Value)
}

func TestTimeSeriesEmptyInput(t *testing.T) {
	p := NewTimeSeriesProcessor()

	points := p.Process(nil)

	assert.NotNil(t, points)
	assert.Empty(t, points)
}
