package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/username/finpulse/src/logger"
	"github.com/username/finpulse/src/models"
	"github.com/username/finpulse/src/services"
	"github.com/username/finpulse/src/utils"
)

type AnalysisHandler struct {
	analysisService services.AnalysisService
	businessService services.BusinessService
}

func NewAnalysisHandler(analysisService services.AnalysisService, businessService services.BusinessService) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
		businessService: businessService,
	}
}

// HandleGetHealthScore serves the composite health score with ETag support so
// dashboard polling does not re-download an unchanged result.
func (h *AnalysisHandler) HandleGetHealthScore(w http.ResponseWriter, r *http.Request) {
	business, ok := requireOwnedBusiness(w, r, h.businessService)
	if !ok {
		return
	}

	score, err := h.analysisService.GetHealthScore(business.ID)
	if err != nil {
		logger.L.Error("Error computing health score", "businessID", business.ID, "error", err)
		utils.SendJSONError(w, fmt.Sprintf("Error computing health score for business %s: %v", business.ID, err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Cache-Control", "no-cache, private")

	currentETag, etagErr := utils.GenerateETag(score)
	if etagErr == nil && currentETag != "" {
		quotedETag := fmt.Sprintf("%q", currentETag)
		w.Header().Set("ETag", quotedETag)
		for _, clientETag := range strings.Split(r.Header.Get("If-None-Match"), ",") {
			if strings.TrimSpace(clientETag) == quotedETag {
				w.WriteHeader(http.StatusNotModified)
				return
			}
		}
	} else {
		logger.L.Warn("Proceeding without ETag check due to ETag generation error", "businessID", business.ID, "error", etagErr)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(score); err != nil {
		logger.L.Error("Error encoding health score response", "businessID", business.ID, "error", err)
	}
}

func (h *AnalysisHandler) HandleGetCashFlowSeries(w http.ResponseWriter, r *http.Request) {
	business, ok := requireOwnedBusiness(w, r, h.businessService)
	if !ok {
		return
	}

	points, err := h.analysisService.GetCashFlowSeries(business.ID)
	if err != nil {
		logger.L.Error("Error computing cash flow series", "businessID", business.ID, "error", err)
		utils.SendJSONError(w, fmt.Sprintf("Error computing cash flow series for business %s: %v", business.ID, err), http.StatusInternalServerError)
		return
	}
	if points == nil {
		points = []models.TimeSeriesPoint{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(points)
}

func (h *AnalysisHandler) HandleGetTransactions(w http.ResponseWriter, r *http.Request) {
	business, ok := requireOwnedBusiness(w, r, h.businessService)
	if !ok {
		return
	}

	transactions, err := h.analysisService.GetTransactions(business.ID)
	if err != nil {
		logger.L.Error("Error fetching transactions", "businessID", business.ID, "error", err)
		utils.SendJSONError(w, fmt.Sprintf("Error fetching transactions for business %s: %v", business.ID, err), http.StatusInternalServerError)
		return
	}
	if transactions == nil {
		transactions = []models.TransactionRecord{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(transactions)
}

func (h *AnalysisHandler) HandleDeleteTransactions(w http.ResponseWriter, r *http.Request) {
	business, ok := requireOwnedBusiness(w, r, h.businessService)
	if !ok {
		return
	}

	if err := h.analysisService.DeleteTransactions(business.ID); err != nil {
		logger.L.Error("Error deleting transactions", "businessID", business.ID, "error", err)
		utils.SendJSONError(w, fmt.Sprintf("Error deleting transactions for business %s: %v", business.ID, err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "all transactions deleted"})
}
