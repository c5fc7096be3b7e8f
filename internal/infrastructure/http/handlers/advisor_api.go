// Package handlers provides HTTP handlers for the REST API
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/afyaplate/v1/internal/ports/inbound"
	"github.com/afyaplate/v1/pkg/errors"
)

// APIHandlers handles REST API requests
type APIHandlers struct {
	advisorService inbound.AdvisorService
	validate       *validator.Validate
	version        string
	logger         *zap.Logger
}

// NewAPIHandlers creates a new API handlers instance
func NewAPIHandlers(
	advisorService inbound.AdvisorService,
	version string,
	logger *zap.Logger,
) *APIHandlers {
	return &APIHandlers{
		advisorService: advisorService,
		validate:       validator.New(),
		version:        version,
		logger:         logger,
	}
}

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// Recommend handles POST /api/v1/recommendations
func (h *APIHandlers) Recommend(w http.ResponseWriter, r *http.Request) {
	var cmd inbound.RecommendCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		h.writeError(w, errors.NewBadRequestError("request body must be valid JSON"))
		return
	}

	if err := h.validate.Struct(cmd); err != nil {
		h.writeError(w, errors.NewValidationError(err.Error()))
		return
	}

	report, err := h.advisorService.Recommend(r.Context(), cmd)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    report,
		Message: "Recommendation generated successfully",
	})
}

// SubmitFeedback handles POST /api/v1/feedback
func (h *APIHandlers) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	var cmd inbound.SubmitFeedbackCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		h.writeError(w, errors.NewBadRequestError("request body must be valid JSON"))
		return
	}

	if err := h.validate.Struct(cmd); err != nil {
		h.writeError(w, errors.NewValidationError(err.Error()))
		return
	}

	dto, err := h.advisorService.SubmitFeedback(r.Context(), cmd)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, APIResponse{
		Success: true,
		Data:    dto,
		Message: "Feedback recorded successfully",
	})
}

// FeedbackMetrics handles GET /api/v1/feedback/metrics
func (h *APIHandlers) FeedbackMetrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.advisorService.FeedbackMetrics(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    metrics,
		Message: "Feedback metrics retrieved successfully",
	})
}

// HealthCheck handles GET /health
func (h *APIHandlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: map[string]interface{}{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
			"version":   h.version,
		},
		Message: "Service is healthy",
	})
}

// writeError maps application errors to HTTP responses
func (h *APIHandlers) writeError(w http.ResponseWriter, err error) {
	appErr, ok := err.(*errors.AppError)
	if !ok {
		h.logger.Error("Unhandled error", zap.Error(err))
		appErr = errors.NewInternalError("internal server error")
	}

	status := appErr.StatusCode()
	if status >= http.StatusInternalServerError {
		h.logger.Error("Request failed", zap.Error(appErr))
	}

	h.writeJSON(w, status, APIResponse{
		Success: false,
		Error:   appErr.Message,
	})
}

// writeJSON writes a JSON response
func (h *APIHandlers) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode JSON response", zap.Error(err))
	}
}
