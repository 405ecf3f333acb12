package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/username/finpulse/src/logger"
	"github.com/username/finpulse/src/model"
	"github.com/username/finpulse/src/services"
	"github.com/username/finpulse/src/utils"
)

type BusinessHandler struct {
	businessService services.BusinessService
}

func NewBusinessHandler(businessService services.BusinessService) *BusinessHandler {
	return &BusinessHandler{
		businessService: businessService,
	}
}

// requireOwnedBusiness resolves the {businessID} path value and verifies the
// authenticated user owns it. A business owned by someone else reports "not
// found" rather than leaking its existence.
func requireOwnedBusiness(w http.ResponseWriter, r *http.Request, businessService services.BusinessService) (*model.Business, bool) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		utils.SendJSONError(w, "authentication required or user ID not found in context", http.StatusUnauthorized)
		return nil, false
	}

	businessID := r.PathValue("businessID")
	if businessID == "" {
		utils.SendJSONError(w, "business ID is required", http.StatusBadRequest)
		return nil, false
	}

	business, err := businessService.GetBusiness(businessID)
	if err != nil {
		if errors.Is(err, model.ErrBusinessNotFound) {
			utils.SendJSONError(w, "Business not found", http.StatusNotFound)
		} else {
			logger.L.Error("Error fetching business", "businessID", businessID, "error", err)
			utils.SendJSONError(w, "Error fetching business", http.StatusInternalServerError)
		}
		return nil, false
	}
	if business.UserID != userID {
		utils.SendJSONError(w, "Business not found", http.StatusNotFound)
		return nil, false
	}
	return business, true
}

type businessRequest struct {
	Name     string `json:"name"`
	Industry string `json:"industry"`
}

func (h *BusinessHandler) HandleCreateBusiness(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		utils.SendJSONError(w, "authentication required or user ID not found in context", http.StatusUnauthorized)
		return
	}

	var req businessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.SendJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	business, err := h.businessService.CreateBusiness(userID, req.Name, req.Industry)
	if err != nil {
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(business)
}

func (h *BusinessHandler) HandleListBusinesses(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		utils.SendJSONError(w, "authentication required or user ID not found in context", http.StatusUnauthorized)
		return
	}

	businesses, err := h.businessService.ListBusinesses(userID)
	if err != nil {
		logger.L.Error("Error listing businesses", "userID", userID, "error", err)
		utils.SendJSONError(w, "Error listing businesses", http.StatusInternalServerError)
		return
	}
	if businesses == nil {
		businesses = []model.Business{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(businesses)
}

func (h *BusinessHandler) HandleGetBusiness(w http.ResponseWriter, r *http.Request) {
	business, ok := requireOwnedBusiness(w, r, h.businessService)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(business)
}

func (h *BusinessHandler) HandleUpdateIndustry(w http.ResponseWriter, r *http.Request) {
	business, ok := requireOwnedBusiness(w, r, h.businessService)
	if !ok {
		return
	}

	var req struct {
		Industry string `json:"industry"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.SendJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	updated, err := h.businessService.UpdateIndustry(business.ID, req.Industry)
	if err != nil {
		logger.L.Error("Error updating industry", "businessID", business.ID, "error", err)
		utils.SendJSONError(w, "Error updating industry", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(updated)
}
