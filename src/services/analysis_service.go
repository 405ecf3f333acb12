package services

import (
	"fmt"

	"github.com/patrickmn/go-cache"
	"github.com/username/finpulse/src/database"
	"github.com/username/finpulse/src/logger"
	"github.com/username/finpulse/src/model"
	"github.com/username/finpulse/src/models"
	"github.com/username/finpulse/src/processors"
)

type analysisServiceImpl struct {
	scoreProcessor  processors.ScoreProcessor
	seriesProcessor processors.TimeSeriesProcessor
	reportCache     *cache.Cache
}

func NewAnalysisService(
	scoreProcessor processors.ScoreProcessor,
	seriesProcessor processors.TimeSeriesProcessor,
	reportCache *cache.Cache,
) AnalysisService {
	return &analysisServiceImpl{
		scoreProcessor:  scoreProcessor,
		seriesProcessor: seriesProcessor,
		reportCache:     reportCache,
	}
}

// GetHealthScore computes the benchmarked health score for a business,
// serving from cache when the stored ledger has not changed.
func (s *analysisServiceImpl) GetHealthScore(businessID string) (*models.ScoreResult, error) {
	cacheKey := fmt.Sprintf(ckHealthScore, businessID)
	if cached, found := s.reportCache.Get(cacheKey); found {
		logger.L.Debug("Cache hit for GetHealthScore", "businessID", businessID)
		return cached.(*models.ScoreResult), nil
	}

	business, err := model.GetBusinessByID(database.DB, businessID)
	if err != nil {
		return nil, err
	}

	transactions, err := fetchBusinessTransactions(businessID)
	if err != nil {
		return nil, err
	}

	result := s.scoreProcessor.Process(transactions, business.Industry)
	s.reportCache.Set(cacheKey, &result, DefaultCacheExpiration)
	return &result, nil
}

// GetCashFlowSeries returns the monthly income series for charting.
func (s *analysisServiceImpl) GetCashFlowSeries(businessID string) ([]models.TimeSeriesPoint, error) {
	cacheKey := fmt.Sprintf(ckCashFlowSeries, businessID)
	if cached, found := s.reportCache.Get(cacheKey); found {
		logger.L.Debug("Cache hit for GetCashFlowSeries", "businessID", businessID)
		return cached.([]models.TimeSeriesPoint), nil
	}

	transactions, err := fetchBusinessTransactions(businessID)
	if err != nil {
		return nil, err
	}

	points := s.seriesProcessor.Process(transactions)
	s.reportCache.Set(cacheKey, points, DefaultCacheExpiration)
	return points, nil
}

func (s *analysisServiceImpl) GetTransactions(businessID string) ([]models.TransactionRecord, error) {
	return fetchBusinessTransactions(businessID)
}

// DeleteTransactions removes the whole stored ledger for a business and
// invalidates its cached analysis results.
func (s *analysisServiceImpl) DeleteTransactions(businessID string) error {
	_, err := database.DB.Exec(`DELETE FROM transactions WHERE business_id = ?`, businessID)
	if err != nil {
		return fmt.Errorf("error deleting transactions for business %s: %w", businessID, err)
	}
	s.reportCache.Delete(fmt.Sprintf(ckHealthScore, businessID))
	s.reportCache.Delete(fmt.Sprintf(ckCashFlowSeries, businessID))
	return nil
}

func fetchBusinessTransactions(businessID string) ([]models.TransactionRecord, error) {
	logger.L.Debug("Fetching transactions from DB", "businessID", businessID)
	rows, err := database.DB.Query(`SELECT id, business_id, date, description, amount, type, category, source_file FROM transactions WHERE business_id = ? ORDER BY date ASC, id ASC`, businessID)
	if err != nil {
		return nil, fmt.Errorf("error querying transactions for business %s: %w", businessID, err)
	}
	defer rows.Close()

	var transactions []models.TransactionRecord
	for rows.Next() {
		var tx models.TransactionRecord
		scanErr := rows.Scan(&tx.ID, &tx.BusinessID, &tx.Date, &tx.Description, &tx.Amount, &tx.Type, &tx.Category, &tx.SourceFile)
		if scanErr != nil {
			return nil, fmt.Errorf("error scanning transaction row for business %s: %w", businessID, scanErr)
		}
		transactions = append(transactions, tx)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over transaction rows for business %s: %w", businessID, err)
	}
	return transactions, nil
}
