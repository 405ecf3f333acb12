package models

import "time"

// TransactionType captures the polarity of a transaction. It is derived from
// the sign of the originally parsed amount, never from a column in the source
// file.
type TransactionType string

const (
	TypeIncome  TransactionType = "Income"
	TypeExpense TransactionType = "Expense"
)

// Category is the coarse bucket assigned by the substring categorizer.
type Category string

const (
	CategoryRent          Category = "Rent"
	CategoryPayroll       Category = "Payroll"
	CategoryRevenue       Category = "Revenue"
	CategoryUncategorized Category = "Uncategorized"
)

// TransactionRecord is the canonical unit produced by the ingestion pipeline.
// Amount is always >= 0; polarity lives exclusively in Type.
type TransactionRecord struct {
	ID          int64           `json:"id,omitempty"` // database primary key, 0 until stored
	BusinessID  string          `json:"business_id,omitempty"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      float64         `json:"amount"`
	Type        TransactionType `json:"type"`
	Category    Category        `json:"category"`
	SourceFile  string          `json:"source_file"` // provenance, audit only
}

// Health status values returned by the scoring engine. "No Data" is a normal
// result, not an error; callers must branch on Status rather than on a zero
// score.
const (
	StatusHealthy = "Healthy"
	StatusAtRisk  = "At Risk"
	StatusNoData  = "No Data"
)

// ScoreResult is recomputed on demand from a set of TransactionRecords and is
// never the source of truth.
type ScoreResult struct {
	OverallScore    int      `json:"overall_score"`
	CurrentRatio    float64  `json:"current_ratio"`
	NetMargin       float64  `json:"net_margin"`
	TargetBenchmark float64  `json:"target_benchmark"`
	Status          string   `json:"status"`
	Insights        []string `json:"insights"`
}

// TimeSeriesPoint is one calendar-month bucket of the income series.
type TimeSeriesPoint struct {
	Name  string  `json:"name"` // 3-letter month abbreviation
	Value float64 `json:"value"`
}
