package processors

import (
	"fmt"

	"github.com/username/finpulse/src/models"
	"github.com/username/finpulse/src/utils"
)

// Composite score weights: 40% liquidity, 40% profitability, 20% scale.
// Fixed design constants, not tunable at runtime.
const (
	liquidityWeight = 40.0
	profitWeight    = 40.0
	scaleWeight     = 20.0

	// Scale component caps at $1M of income; beyond that a small business
	// earns the full scale score.
	scaleCapIncome = 1_000_000.0
)

// scoreProcessor implements the ScoreProcessor interface. It is deterministic
// and does no I/O; results are recomputed on demand and never stored as the
// source of truth.
type scoreProcessor struct{}

func NewScoreProcessor() ScoreProcessor {
	return &scoreProcessor{}
}

// Process aggregates the records into liquidity/profitability ratios, an
// industry-benchmarked composite score, and insight strings. An empty input
// is a normal, fully specified result with status "No Data", not an error.
func (p *scoreProcessor) Process(transactions []models.TransactionRecord, industry string) models.ScoreResult {
	if len(transactions) == 0 {
		return models.ScoreResult{
			OverallScore: 0,
			Status:       models.StatusNoData,
			Insights:     []string{"Please upload financial data to begin analysis."},
		}
	}

	var totalIncome, totalExpense float64
	for _, tx := range transactions {
		switch tx.Type {
		case models.TypeIncome:
			totalIncome += tx.Amount
		case models.TypeExpense:
			totalExpense += tx.Amount
		}
	}

	// Zero spend is treated as "fully liquid" up to the income magnitude
	// rather than dividing by zero.
	currentRatio := totalIncome
	if totalExpense > 0 {
		currentRatio = totalIncome / totalExpense
	}

	netMargin := 0.0
	if totalIncome > 0 {
		netMargin = (totalIncome - totalExpense) / totalIncome
	}

	target := models.BenchmarkFor(industry)

	status := models.StatusAtRisk
	if currentRatio >= target.CurrentRatio {
		status = models.StatusHealthy
	}

	liquidityScore := min(1.0, currentRatio/target.CurrentRatio) * liquidityWeight
	profitScore := 0.0
	if target.NetMargin > 0 {
		profitScore = min(1.0, netMargin/target.NetMargin) * profitWeight
	}
	scaleScore := min(1.0, totalIncome/scaleCapIncome) * scaleWeight
	overallScore := int(liquidityScore + profitScore + scaleScore)

	insights := []string{}
	if currentRatio < target.CurrentRatio {
		insights = append(insights, fmt.Sprintf("Your liquidity is below the %s industry benchmark (%.1f).", industry, target.CurrentRatio))
	}
	if netMargin < target.NetMargin {
		insights = append(insights, fmt.Sprintf("Operating margins are underperforming against peers. Target: %.1f%%.", target.NetMargin*100))
	}

	return models.ScoreResult{
		OverallScore:    overallScore,
		CurrentRatio:    utils.RoundFloat(currentRatio, 2),
		NetMargin:       utils.RoundFloat(netMargin, 4),
		TargetBenchmark: target.CurrentRatio,
		Status:          status,
		Insights:        insights,
	}
}
