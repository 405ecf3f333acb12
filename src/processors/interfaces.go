package processors

import (
	"github.com/username/finpulse/src/models"
)

// ScoreProcessor defines the interface for computing the composite financial
// health score from a business's transaction records.
type ScoreProcessor interface {
	Process(transactions []models.TransactionRecord, industry string) models.ScoreResult
}

// TimeSeriesProcessor defines the interface for producing the monthly income
// series used by the cash-flow chart.
type TimeSeriesProcessor interface {
	Process(transactions []models.TransactionRecord) []models.TimeSeriesPoint
}
