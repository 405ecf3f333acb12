package services

import (
	"fmt"
	"io"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/username/finpulse/src/database"
	"github.com/username/finpulse/src/logger"
	"github.com/username/finpulse/src/parsers"
)

const (
	// Per-business caches for derived analysis results.
	ckHealthScore    = "res_health_score_business_%s"
	ckCashFlowSeries = "agg_cashflow_series_business_%s"

	DefaultCacheExpiration = 15 * time.Minute
	CacheCleanupInterval   = 30 * time.Minute
)

type uploadServiceImpl struct {
	pipeline    *parsers.Pipeline
	reportCache *cache.Cache
}

func NewUploadService(pipeline *parsers.Pipeline, reportCache *cache.Cache) UploadService {
	return &uploadServiceImpl{
		pipeline:    pipeline,
		reportCache: reportCache,
	}
}

// ProcessUpload runs the ingestion pipeline over the uploaded file and stores
// the resulting records for the business. Structural pipeline failures abort
// the whole upload; they are wrapped in ErrParsingFailed for the handler.
func (s *uploadServiceImpl) ProcessUpload(fileReader io.Reader, filename string, businessID string) (*UploadResult, error) {
	overallStartTime := time.Now()
	logger.L.Info("ProcessUpload START", "businessID", businessID, "filename", filename)

	data, err := io.ReadAll(fileReader)
	if err != nil {
		return nil, fmt.Errorf("error reading uploaded file: %w", err)
	}

	records, err := s.pipeline.Run(data, filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParsingFailed, err)
	}

	dbTx, err := database.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("error beginning database transaction: %w", err)
	}
	defer dbTx.Rollback()

	stmt, err := dbTx.Prepare(`INSERT INTO transactions (business_id, date, description, amount, type, category, source_file) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return nil, fmt.Errorf("error preparing insert statement: %w", err)
	}
	defer stmt.Close()

	for i := range records {
		records[i].BusinessID = businessID
		res, err := stmt.Exec(businessID, records[i].Date, records[i].Description, records[i].Amount, string(records[i].Type), string(records[i].Category), records[i].SourceFile)
		if err != nil {
			return nil, fmt.Errorf("error inserting transaction row %d: %w", i, err)
		}
		if id, idErr := res.LastInsertId(); idErr == nil {
			records[i].ID = id
		}
	}

	if err := dbTx.Commit(); err != nil {
		return nil, fmt.Errorf("error committing transactions: %w", err)
	}

	// Stored data changed; the next analysis request recomputes from the DB.
	s.InvalidateBusinessCache(businessID)

	logger.L.Info("ProcessUpload END", "businessID", businessID, "transactionCount", len(records), "duration", time.Since(overallStartTime))
	return &UploadResult{
		BusinessID:       businessID,
		TransactionCount: len(records),
		Transactions:     records,
	}, nil
}

// InvalidateBusinessCache clears all cached analysis results for a business,
// forcing a complete recalculation on the next request.
func (s *uploadServiceImpl) InvalidateBusinessCache(businessID string) {
	keysToDelete := []string{
		fmt.Sprintf(ckHealthScore, businessID),
		fmt.Sprintf(ckCashFlowSeries, businessID),
	}
	for _, key := range keysToDelete {
		s.reportCache.Delete(key)
	}
	logger.L.Debug("Invalidated analysis caches for business", "businessID", businessID)
}
