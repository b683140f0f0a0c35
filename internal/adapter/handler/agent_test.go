package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/callsight/callsight/errors"
	"github.com/callsight/callsight/internal/domain/entities"
	pkgvalidator "github.com/callsight/callsight/pkg/validator"
)

type stubAgentService struct {
	analysis *entities.AgentAnalysis
	err      error
}

func (s *stubAgentService) Analyze(_ context.Context, _, _ string) (*entities.AgentAnalysis, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.analysis, nil
}

func (s *stubAgentService) ListInteractions(_ context.Context, limit int) ([]*entities.Interaction, error) {
	return []*entities.Interaction{}, nil
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = pkgvalidator.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func sampleAnalysis() *entities.AgentAnalysis {
	return &entities.AgentAnalysis{
		Summary:          "Customer John Smith contacted support.",
		KeyPoints:        []string{"point one", "point two", "point three", "point four"},
		RiskLevel:        entities.RiskLevelCritical,
		ChurnProbability: 85,
		RecommendedActions: []string{
			"🚨 Immediate: Assign to senior account manager",
			"📞 Schedule follow-up call within 24 hours",
			"📧 Send personalized follow-up email",
		},
	}
}

func TestAnalyze_Success(t *testing.T) {
	h := NewAgentHandler(&stubAgentService{analysis: sampleAnalysis()}, zap.NewNop())
	c, rec := newTestContext(t, http.MethodPost, "/v1/agent/analyze",
		`{"transcript": "I want a refund", "context": "customer_service"}`)

	require.NoError(t, h.Analyze(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Code int                     `json:"code"`
		Data *entities.AgentAnalysis `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int(errors.ErrorCode_HTTP_OK), resp.Code)
	assert.Equal(t, entities.RiskLevelCritical, resp.Data.RiskLevel)
}

func TestAnalyze_MissingTranscript(t *testing.T) {
	h := NewAgentHandler(&stubAgentService{analysis: sampleAnalysis()}, zap.NewNop())
	c, rec := newTestContext(t, http.MethodPost, "/v1/agent/analyze", `{"transcript": "   "}`)

	require.NoError(t, h.Analyze(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Code int `json:"code"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int(errors.ErrorCode_MISSING_TRANSCRIPT), resp.Code)
}

func TestAnalyze_InvalidContext(t *testing.T) {
	h := NewAgentHandler(&stubAgentService{analysis: sampleAnalysis()}, zap.NewNop())
	c, rec := newTestContext(t, http.MethodPost, "/v1/agent/analyze",
		`{"transcript": "hello", "context": "astrology"}`)

	require.NoError(t, h.Analyze(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Code int `json:"code"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int(errors.ErrorCode_INVALID_CONTEXT), resp.Code)
}

func TestAnalyze_ServiceFailure(t *testing.T) {
	h := NewAgentHandler(&stubAgentService{err: assert.AnError}, zap.NewNop())
	c, rec := newTestContext(t, http.MethodPost, "/v1/agent/analyze", `{"transcript": "hello"}`)

	require.NoError(t, h.Analyze(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestQuickSummary_ProjectsHeadlineFields(t *testing.T) {
	h := NewAgentHandler(&stubAgentService{analysis: sampleAnalysis()}, zap.NewNop())
	c, rec := newTestContext(t, http.MethodPost, "/v1/agent/quick-summary", `{"transcript": "I want a refund"}`)

	require.NoError(t, h.QuickSummary(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			Summary       string   `json:"summary"`
			RiskLevel     string   `json:"risk_level"`
			KeyPoints     []string `json:"key_points"`
			UrgentActions []string `json:"urgent_actions"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, entities.RiskLevelCritical, resp.Data.RiskLevel)
	// Only the first three key points survive the projection.
	assert.Len(t, resp.Data.KeyPoints, 3)
	// Only the siren action counts as urgent here.
	require.Len(t, resp.Data.UrgentActions, 1)
	assert.Contains(t, resp.Data.UrgentActions[0], "🚨")
}

func TestListInteractions_DefaultLimit(t *testing.T) {
	h := NewAgentHandler(&stubAgentService{analysis: sampleAnalysis()}, zap.NewNop())
	c, rec := newTestContext(t, http.MethodGet, "/v1/agent/interactions", "")

	require.NoError(t, h.ListInteractions(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
