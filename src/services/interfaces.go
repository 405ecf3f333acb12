package services

import (
	"errors"
	"io"

	"github.com/username/finpulse/src/model"
	"github.com/username/finpulse/src/models"
)

// ErrParsingFailed wraps every ingestion failure surfaced by the upload
// service so handlers can map it to a 400 response.
var ErrParsingFailed = errors.New("file parsing failed")

// UploadResult summarizes one processed upload.
type UploadResult struct {
	BusinessID       string                     `json:"business_id"`
	TransactionCount int                        `json:"transaction_count"`
	Transactions     []models.TransactionRecord `json:"transactions"`
}

// UploadService defines the interface for the core upload processing logic.
type UploadService interface {
	ProcessUpload(fileReader io.Reader, filename string, businessID string) (*UploadResult, error)
	InvalidateBusinessCache(businessID string)
}

// AnalysisService exposes the derived views over a business's stored ledger.
type AnalysisService interface {
	GetHealthScore(businessID string) (*models.ScoreResult, error)
	GetCashFlowSeries(businessID string) ([]models.TimeSeriesPoint, error)
	GetTransactions(businessID string) ([]models.TransactionRecord, error)
	DeleteTransactions(businessID string) error
}

// BusinessService manages the businesses a user runs analyses for.
type BusinessService interface {
	CreateBusiness(userID int64, name, industry string) (*model.Business, error)
	GetBusiness(id string) (*model.Business, error)
	ListBusinesses(userID int64) ([]model.Business, error)
	UpdateIndustry(id, industry string) (*model.Business, error)
}
