package processors

import (
	"sort"
	"time"

	"github.com/username/finpulse/src/models"
	"github.com/username/finpulse/src/utils"
)

// timeSeriesProcessor implements the TimeSeriesProcessor interface.
type timeSeriesProcessor struct{}

func NewTimeSeriesProcessor() TimeSeriesProcessor {
	return &timeSeriesProcessor{}
}

type monthKey struct {
	year  int
	month time.Month
}

// Process sums Income amounts into one bucket per calendar month, ordered
// chronologically. The same month number in different years stays in distinct
// buckets. When no Income records exist at all, the chart still needs a
// trajectory, so every record is summed instead.
func (p *timeSeriesProcessor) Process(transactions []models.TransactionRecord) []models.TimeSeriesPoint {
	if len(transactions) == 0 {
		return []models.TimeSeriesPoint{}
	}

	source := make([]models.TransactionRecord, 0, len(transactions))
	for _, tx := range transactions {
		if tx.Type == models.TypeIncome {
			source = append(source, tx)
		}
	}
	if len(source) == 0 {
		source = transactions
	}

	buckets := make(map[monthKey]float64)
	for _, tx := range source {
		key := monthKey{year: tx.Date.Year(), month: tx.Date.Month()}
		buckets[key] += tx.Amount
	}

	keys := make([]monthKey, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})

	points := make([]models.TimeSeriesPoint, 0, len(keys))
	for _, key := range keys {
		points = append(points, models.TimeSeriesPoint{
			Name:  key.month.String()[:3],
			Value: utils.RoundFloat(buckets[key], 2),
		})
	}
	return points
}
