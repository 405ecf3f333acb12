package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/username/finpulse/src/database"
	"github.com/username/finpulse/src/logger"
	"github.com/username/finpulse/src/model"
	"github.com/username/finpulse/src/models"
)

type businessServiceImpl struct {
	reportCache *cache.Cache
}

func NewBusinessService(reportCache *cache.Cache) BusinessService {
	return &businessServiceImpl{
		reportCache: reportCache,
	}
}

func (s *businessServiceImpl) CreateBusiness(userID int64, name, industry string) (*model.Business, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("business name is required")
	}
	if !models.KnownIndustry(industry) {
		// Unknown industries are benchmarked against Services; record them
		// as given so the choice is visible to the user.
		logger.L.Warn("Unknown industry, scoring will use the Services benchmark", "industry", industry)
	}

	business := &model.Business{
		ID:       uuid.NewString(),
		UserID:   userID,
		Name:     name,
		Industry: industry,
	}
	if err := business.CreateBusiness(database.DB); err != nil {
		return nil, fmt.Errorf("error creating business: %w", err)
	}
	logger.L.Info("Business created", "businessID", business.ID, "industry", industry)
	return business, nil
}

func (s *businessServiceImpl) GetBusiness(id string) (*model.Business, error) {
	return model.GetBusinessByID(database.DB, id)
}

func (s *businessServiceImpl) ListBusinesses(userID int64) ([]model.Business, error) {
	return model.GetBusinessesByUser(database.DB, userID)
}

func (s *businessServiceImpl) UpdateIndustry(id, industry string) (*model.Business, error) {
	business, err := model.GetBusinessByID(database.DB, id)
	if err != nil {
		return nil, err
	}
	if !models.KnownIndustry(industry) {
		logger.L.Warn("Unknown industry, scoring will use the Services benchmark", "industry", industry)
	}
	if err := business.UpdateIndustry(database.DB, industry); err != nil {
		return nil, fmt.Errorf("error updating industry for business %s: %w", id, err)
	}

	// The benchmark changed, so cached scores computed against the old
	// industry are stale.
	s.reportCache.Delete(fmt.Sprintf(ckHealthScore, id))
	s.reportCache.Delete(fmt.Sprintf(ckCashFlowSeries, id))
	logger.L.Debug("Invalidated analysis caches after industry update", "businessID", id)

	return business, nil
}
