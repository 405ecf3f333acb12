package processors

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/username/finpulse/src/models"
)

func tx(txType models.TransactionType, amount float64) models.TransactionRecord {
	return models.TransactionRecord{
		Date:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Type:   txType,
		Amount: amount,
	}
}

func TestScoreNoData(t *testing.T) {
	p := NewScoreProcessor()

	result := p.Process(nil, string(models.IndustryRetail))

	assert.Equal(t, 0, result.OverallScore)
	assert.Equal(t, models.StatusNoData, result.Status)
	assert.Equal(t, []string{"Please upload financial data to begin analysis."}, result.Insights)
}

func TestScoreHealthyRetail(t *testing.T) {
	p := NewScoreProcessor()
	transactions := []models.TransactionRecord{
		tx(models.TypeIncome, 100000),
		tx(models.TypeExpense, 80000),
	}

	result := p.Process(transactions, string(models.IndustryRetail))

	// ratio 1.25 vs target 1.2 -> full 40; margin 0.20 vs 0.05 -> full 40;
	// scale 100k/1M -> 2. Composite 82.
	assert.Equal(t, 82, result.OverallScore)
	assert.Equal(t, 1.25, result.CurrentRatio)
	assert.Equal(t, 0.2, result.NetMargin)
	assert.Equal(t, 1.2, result.TargetBenchmark)
	assert.Equal(t, models.StatusHealthy, result.Status)
	assert.Empty(t, result.Insights)
}

func TestScoreAtRiskWithInsights(t *testing.T) {
	p := NewScoreProcessor()
	transactions := []models.TransactionRecord{
		tx(models.TypeIncome, 100),
		tx(models.TypeExpense, 100),
	}

	result := p.Process(transactions, string(models.IndustryManufacturing))

	// ratio 1.0 vs target 1.5, margin 0 vs 0.10: both components underperform.
	assert.Equal(t, models.StatusAtRisk, result.Status)
	require.Len(t, result.Insights, 2)
	assert.Contains(t, result.Insights[0], "liquidity is below")
	assert.Contains(t, result.Insights[0], "Manufacturing")
	assert.Contains(t, result.Insights[1], "margins are underperforming")
	assert.Contains(t, result.Insights[1], "Target: 10.0%.")
	assert.Equal(t, 26, result.OverallScore)
}

func TestScoreZeroExpenses(t *testing.T) {
	p := NewScoreProcessor()
	transactions := []models.TransactionRecord{
		tx(models.TypeIncome, 2.0),
	}

	result := p.Process(transactions, string(models.IndustryServices))

	// With no expenses the ratio falls back to the income magnitude.
	assert.Equal(t, 2.0, result.CurrentRatio)
	assert.Equal(t, models.StatusHealthy, result.Status)
	assert.Equal(t, 80, result.OverallScore)
}

func TestScoreUnknownIndustryFallsBackToServices(t *testing.T) {
	p := NewScoreProcessor()
	transactions := []models.TransactionRecord{
		tx(models.TypeIncome, 500),
		tx(models.TypeExpense, 400),
	}

	result := p.Process(transactions, "Underwater Basket Weaving")

	assert.Equal(t, 2.0, result.TargetBenchmark)
}

func TestScoreOnlyExpenses(t *testing.T) {
	p := NewScoreProcessor()
	transactions := []models.TransactionRecord{
		tx(models.TypeExpense, 5000),
	}

	result := p.Process(transactions, string(models.IndustryLogistics))

	assert.Equal(t, 0.0, result.CurrentRatio)
	assert.Equal(t, 0.0, result.NetMargin)
	assert.Equal(t, 0, result.OverallScore)
	assert.Equal(t, models.StatusAtRisk, result.Status)
}

func TestScoreBounded(t *testing.T) {
	p := NewScoreProcessor()
	transactions := []models.TransactionRecord{
		tx(models.TypeIncome, 50_000_000),
		tx(models.TypeExpense, 1),
	}

	result := p.Process(transactions, string(models.IndustryEcommerce))

	assert.GreaterOrEqual(t, result.OverallScore, 0)
	assert.LessOrEqual(t, result.OverallScore, 100)
	assert.Equal(t, 100, result.OverallScore)
}
