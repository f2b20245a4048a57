package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/zatekoja/cpapmaskselector/internal/application/services"
	"github.com/zatekoja/cpapmaskselector/internal/domain/entities"
	"github.com/zatekoja/cpapmaskselector/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/cpapmaskselector/pkg/errors"
)

const maxRecommendBodyBytes = 64 << 10

// RecommendationService defines the recommendation operation used by the handler
type RecommendationService interface {
	Recommend(ctx context.Context, responses *entities.PatientResponses) (*services.RecommendationResult, error)
}

// RecommendationHandler serves mask recommendations
type RecommendationHandler struct {
	service RecommendationService
}

// NewRecommendationHandler creates a new recommendation handler
func NewRecommendationHandler(service RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{service: service}
}

type recommendResponse struct {
	Success        bool                     `json:"success"`
	ID             string                   `json:"id"`
	Cached         bool                     `json:"cached"`
	Recommendation *entities.Recommendation `json:"recommendation"`
}

type recommendFailure struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Recommend handles POST /api/recommend. The body is the questionnaire
// answers object; any subset of the fields is accepted.
func (h *RecommendationHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	responses, ok := decodeResponses(w, r)
	if !ok {
		return
	}

	result, err := h.service.Recommend(r.Context(), responses)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusBadRequest {
			respondWithError(w, status, errorMessage(err))
			return
		}
		observability.LoggerFromContext(r.Context()).Error().Err(err).Msg("Error calculating recommendation")
		respondWithJSON(w, status, recommendFailure{
			Success: false,
			Error:   "Failed to calculate recommendation",
			Message: errorMessage(err),
		})
		return
	}

	respondWithJSON(w, http.StatusOK, recommendResponse{
		Success:        true,
		ID:             result.ID,
		Cached:         result.Cached,
		Recommendation: result.Recommendation,
	})
}

// decodeResponses reads the answers object. An empty body or a JSON null
// yields a nil record, which the service rejects. On malformed input the
// error response is written and ok is false.
func decodeResponses(w http.ResponseWriter, r *http.Request) (responses *entities.PatientResponses, ok bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRecommendBodyBytes))
	if err != nil {
		respondWithError(w, http.StatusRequestEntityTooLarge, "Request body too large")
		return nil, false
	}
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, true
	}

	if err := json.Unmarshal(body, &responses); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}
	return responses, true
}

// errorMessage returns the caller-facing text of an error: the cause of an
// AppError when it has one, otherwise its message.
func errorMessage(err error) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Err != nil {
			return appErr.Err.Error()
		}
		return appErr.Message
	}
	return err.Error()
}
