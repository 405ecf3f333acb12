package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/username/finpulse/src/config"
	"github.com/username/finpulse/src/logger"
	"github.com/username/finpulse/src/parsers"
	"github.com/username/finpulse/src/security/validation"
	"github.com/username/finpulse/src/services"
	"github.com/username/finpulse/src/utils"
)

type UploadHandler struct {
	uploadService   services.UploadService
	businessService services.BusinessService
}

func NewUploadHandler(uploadService services.UploadService, businessService services.BusinessService) *UploadHandler {
	return &UploadHandler{
		uploadService:   uploadService,
		businessService: businessService,
	}
}

func (h *UploadHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	business, ok := requireOwnedBusiness(w, r, h.businessService)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(config.Cfg.MaxUploadSizeBytes); err != nil {
		logger.L.Warn("Failed to parse multipart form or request too large", "businessID", business.ID, "error", err, "limit", config.Cfg.MaxUploadSizeBytes)
		utils.SendJSONError(w, fmt.Sprintf("Failed to parse form or request too large (max %d MB)", config.Cfg.MaxUploadSizeBytes/(1024*1024)), http.StatusBadRequest)
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		logger.L.Warn("Failed to retrieve file from request", "businessID", business.ID, "error", err)
		utils.SendJSONError(w, "Failed to retrieve file from request. Ensure 'file' field is used.", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if fileHeader.Size > config.Cfg.MaxUploadSizeBytes {
		logger.L.Warn("Uploaded file header reports size too large", "businessID", business.ID, "fileSize", fileHeader.Size, "limit", config.Cfg.MaxUploadSizeBytes)
		utils.SendJSONError(w, fmt.Sprintf("File too large, max %d MB (header check)", config.Cfg.MaxUploadSizeBytes/(1024*1024)), http.StatusBadRequest)
		return
	}

	clientContentType := fileHeader.Header.Get("Content-Type")
	if err := validation.ValidateClientContentType(clientContentType); err != nil {
		logger.L.Warn("Invalid client-declared file type", "businessID", business.ID, "contentType", clientContentType, "error", err)
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	detectedContentType, err := validation.ValidateFileContentByMagicBytes(file)
	if err != nil {
		logger.L.Warn("Server-side file content validation failed", "businessID", business.ID, "filename", fileHeader.Filename, "error", err)
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	logger.L.Info("Processing upload request", "businessID", business.ID, "filename", fileHeader.Filename, "clientType", clientContentType, "detectedType", detectedContentType)

	result, err := h.uploadService.ProcessUpload(file, fileHeader.Filename, business.ID)
	if err != nil {
		var missingCols *parsers.MissingColumnsError
		switch {
		case errors.As(err, &missingCols):
			logger.L.Warn("Upload rejected: required columns missing", "businessID", business.ID, "filename", fileHeader.Filename, "missing", missingCols.Missing)
			utils.SendJSONError(w, missingCols.Error(), http.StatusBadRequest)
		case errors.Is(err, parsers.ErrUnparsableFile):
			logger.L.Warn("Upload rejected: file unparsable", "businessID", business.ID, "filename", fileHeader.Filename)
			utils.SendJSONError(w, parsers.ErrUnparsableFile.Error(), http.StatusBadRequest)
		case errors.Is(err, services.ErrParsingFailed):
			logger.L.Warn("Upload processing failed during parsing", "businessID", business.ID, "filename", fileHeader.Filename, "error", err)
			utils.SendJSONError(w, fmt.Sprintf("Error parsing file: %v", err), http.StatusBadRequest)
		default:
			logger.L.Error("Internal error processing upload", "businessID", business.ID, "filename", fileHeader.Filename, "error", err)
			utils.SendJSONError(w, "An internal error occurred while processing the file. Please try again later.", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		logger.L.Error("Error encoding JSON response for upload result", "businessID", business.ID, "error", err)
	}
}
