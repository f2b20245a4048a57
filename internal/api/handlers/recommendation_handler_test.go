package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zatekoja/cpapmaskselector/internal/api/handlers"
	"github.com/zatekoja/cpapmaskselector/internal/application/catalog"
	"github.com/zatekoja/cpapmaskselector/internal/application/engine"
	"github.com/zatekoja/cpapmaskselector/internal/application/services"
	"github.com/zatekoja/cpapmaskselector/internal/domain/entities"
	apperrors "github.com/zatekoja/cpapmaskselector/pkg/errors"
)

type stubRecommendationService struct {
	received []*entities.PatientResponses
	result   *services.RecommendationResult
	err      error
}

func (s *stubRecommendationService) Recommend(ctx context.Context, responses *entities.PatientResponses) (*services.RecommendationResult, error) {
	s.received = append(s.received, responses)
	if responses == nil {
		return nil, apperrors.NewValidationError("No responses provided")
	}
	return s.result, s.err
}

func postRecommend(t *testing.T, handler *handlers.RecommendationHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/recommend", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.Recommend(w, req)
	return w
}

func TestRecommendationHandler_EmptyBody(t *testing.T) {
	for _, body := range []string{"", "  ", "null"} {
		service := &stubRecommendationService{}
		w := postRecommend(t, handlers.NewRecommendationHandler(service), body)

		assert.Equal(t, http.StatusBadRequest, w.Code, "body %q", body)
		assert.JSONEq(t, `{"error":"No responses provided"}`, w.Body.String())
		require.Len(t, service.received, 1)
		assert.Nil(t, service.received[0])
	}
}

func TestRecommendationHandler_MalformedBody(t *testing.T) {
	service := &stubRecommendationService{}
	w := postRecommend(t, handlers.NewRecommendationHandler(service), `{"breathing":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid request body"}`, w.Body.String())
	assert.Empty(t, service.received)
}

func TestRecommendationHandler_InternalFailure(t *testing.T) {
	service := &stubRecommendationService{
		err: apperrors.NewInternalError("Failed to calculate recommendation", errors.New("panic: bad catalog")),
	}
	w := postRecommend(t, handlers.NewRecommendationHandler(service), `{"breathing":"mixed"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"Failed to calculate recommendation","message":"panic: bad catalog"}`, w.Body.String())
}

func TestRecommendationHandler_Success(t *testing.T) {
	service := &stubRecommendationService{
		result: &services.RecommendationResult{
			ID:             "7d1f1c2e-0000-4000-8000-000000000001",
			Recommendation: &entities.Recommendation{MaskType: entities.CategoryNasalPillows, SuccessRate: "85-90%"},
		},
	}
	w := postRecommend(t, handlers.NewRecommendationHandler(service), `{"breathing":"nose_only","claustrophobic":true,"sleepPosition":"side"}`)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, service.received, 1)
	assert.Equal(t, entities.BreathingNoseOnly, service.received[0].Breathing)
	assert.True(t, service.received[0].Claustrophobic)
	assert.Equal(t, entities.SleepSide, service.received[0].SleepPosition)

	var body struct {
		Success        bool                    `json:"success"`
		ID             string                  `json:"id"`
		Recommendation entities.Recommendation `json:"recommendation"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, "7d1f1c2e-0000-4000-8000-000000000001", body.ID)
	assert.Equal(t, entities.CategoryNasalPillows, body.Recommendation.MaskType)
}

func TestRecommendationHandler_EndToEnd(t *testing.T) {
	c, err := catalog.New(catalog.Builtin())
	require.NoError(t, err)
	service := services.NewRecommendationService(engine.New(c), nil, time.Hour, nil)

	w := postRecommend(t, handlers.NewRecommendationHandler(service), `{"breathing":"mouth_only","eye":true}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))

	var rec entities.Recommendation
	require.NoError(t, json.Unmarshal(body["recommendation"], &rec))
	assert.NotEqual(t, entities.CategoryFullFace, rec.MaskType)
	require.NotEmpty(t, rec.SafetyFlags)
	assert.Equal(t, entities.SeverityCritical, rec.SafetyFlags[0].Severity)
	assert.Len(t, rec.AttachmentOptions, 6)
}
