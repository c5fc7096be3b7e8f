package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/afyaplate/v1/internal/application/advisor"
	"github.com/afyaplate/v1/internal/domain/catalog"
	"github.com/afyaplate/v1/internal/domain/mealplan"
	"github.com/afyaplate/v1/internal/infrastructure/config"
	"github.com/afyaplate/v1/internal/infrastructure/http/server"
	gormRepo "github.com/afyaplate/v1/internal/infrastructure/persistence/gorm"
	"github.com/afyaplate/v1/internal/infrastructure/persistence/memory"
	"github.com/afyaplate/v1/internal/infrastructure/persistence/sqlite"
)

// AdvisorAPITestSuite exercises the full HTTP stack against an in-memory
// database and cache, with the generative backend disabled.
type AdvisorAPITestSuite struct {
	suite.Suite
	api *httptest.Server
}

// SetupSuite wires the real service graph
func (suite *AdvisorAPITestSuite) SetupSuite() {
	logger := zap.NewNop()

	cfg, err := config.Load("")
	require.NoError(suite.T(), err)

	db, err := sqlite.SetupDatabase("", sqlite.ParseLogLevel("silent"))
	require.NoError(suite.T(), err)

	cat := catalog.New(logger)
	engine := mealplan.NewEngine(cat)
	service := advisor.NewAdvisorService(
		cat,
		engine,
		nil,
		memory.NewCacheRepository(),
		gormRepo.NewFeedbackRepository(db, logger),
		logger,
	)

	srv := server.NewServer(cfg, logger, service)
	suite.api = httptest.NewServer(srv.Handler())
}

// TearDownSuite stops the test server
func (suite *AdvisorAPITestSuite) TearDownSuite() {
	suite.api.Close()
}

func (suite *AdvisorAPITestSuite) postJSON(path string, payload any) *http.Response {
	body, err := json.Marshal(payload)
	require.NoError(suite.T(), err)

	resp, err := http.Post(suite.api.URL+path, "application/json", bytes.NewReader(body))
	require.NoError(suite.T(), err)
	return resp
}

func decodeEnvelope(t *testing.T, resp *http.Response) map[string]any {
	defer resp.Body.Close()
	var envelope map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return envelope
}

// TestHealthEndpoint tests the liveness endpoint
func (suite *AdvisorAPITestSuite) TestHealthEndpoint() {
	// Act
	resp, err := http.Get(suite.api.URL + "/health")
	require.NoError(suite.T(), err)

	// Assert
	assert.Equal(suite.T(), http.StatusOK, resp.StatusCode)
	envelope := decodeEnvelope(suite.T(), resp)
	assert.Equal(suite.T(), true, envelope["success"])
}

// TestRecommendationFlow tests the recommendation endpoint end to end
func (suite *AdvisorAPITestSuite) TestRecommendationFlow() {
	suite.Run("ValidRequest_ShouldReturnFullReport", func() {
		// Arrange
		payload := map[string]any{
			"age":              45,
			"weight_kg":        78.0,
			"height_m":         1.68,
			"blood_sugar_mg_dl": 135,
			"systolic":         140,
			"diastolic":        85,
			"diabetes_status":  "prediabetes",
			"location":         "nairobi",
		}

		// Act
		resp := suite.postJSON("/api/v1/recommendations", payload)

		// Assert
		assert.Equal(suite.T(), http.StatusOK, resp.StatusCode)
		envelope := decodeEnvelope(suite.T(), resp)
		require.Equal(suite.T(), true, envelope["success"])

		data, ok := envelope["data"].(map[string]any)
		require.True(suite.T(), ok)
		assert.Equal(suite.T(), "deterministic", data["source"])

		profile, ok := data["profile"].(map[string]any)
		require.True(suite.T(), ok)
		assert.Equal(suite.T(), 27.64, profile["bmi"])
		assert.Equal(suite.T(), "high_risk", profile["health_category"])
		assert.Equal(suite.T(), "central", profile["region"])

		recommendations, ok := data["recommendations"].(map[string]any)
		require.True(suite.T(), ok)
		assert.Contains(suite.T(), recommendations, "meal_plan")
		assert.Contains(suite.T(), recommendations, "portion_guidelines")
	})

	suite.Run("VeryHighAge_ShouldStillBeAccepted", func() {
		// Arrange
		payload := map[string]any{
			"age":               160,
			"weight_kg":         60.0,
			"height_m":          1.60,
			"blood_sugar_mg_dl": 90,
			"systolic":          110,
			"diastolic":         70,
			"diabetes_status":   "none",
			"location":          "kisumu",
		}

		// Act
		resp := suite.postJSON("/api/v1/recommendations", payload)

		// Assert
		assert.Equal(suite.T(), http.StatusOK, resp.StatusCode)
		envelope := decodeEnvelope(suite.T(), resp)
		assert.Equal(suite.T(), true, envelope["success"])
	})

	suite.Run("InvalidVitals_ShouldReturn400", func() {
		// Arrange
		payload := map[string]any{
			"age":       45,
			"weight_kg": -5,
			"height_m":  1.68,
		}

		// Act
		resp := suite.postJSON("/api/v1/recommendations", payload)

		// Assert
		assert.Equal(suite.T(), http.StatusBadRequest, resp.StatusCode)
		envelope := decodeEnvelope(suite.T(), resp)
		assert.Equal(suite.T(), false, envelope["success"])
	})

	suite.Run("MalformedJSON_ShouldReturn400", func() {
		// Act
		resp, err := http.Post(suite.api.URL+"/api/v1/recommendations",
			"application/json", bytes.NewReader([]byte("{not json")))
		require.NoError(suite.T(), err)

		// Assert
		defer resp.Body.Close()
		assert.Equal(suite.T(), http.StatusBadRequest, resp.StatusCode)
	})

	suite.Run("EmptyBody_ShouldFailValidation", func() {
		// Act
		resp := suite.postJSON("/api/v1/recommendations", map[string]any{})

		// Assert
		defer resp.Body.Close()
		assert.Equal(suite.T(), http.StatusBadRequest, resp.StatusCode)
	})
}

// TestFeedbackFlow tests feedback submission and metrics
func (suite *AdvisorAPITestSuite) TestFeedbackFlow() {
	// Arrange
	recommendationID := uuid.New().String()

	// Act
	resp := suite.postJSON("/api/v1/feedback", map[string]any{
		"recommendation_id": recommendationID,
		"rating":            5,
		"comments":          "clear and locally relevant",
	})

	// Assert
	assert.Equal(suite.T(), http.StatusCreated, resp.StatusCode)
	envelope := decodeEnvelope(suite.T(), resp)
	require.Equal(suite.T(), true, envelope["success"])

	// Act
	metricsResp, err := http.Get(suite.api.URL + "/api/v1/feedback/metrics")
	require.NoError(suite.T(), err)

	// Assert
	assert.Equal(suite.T(), http.StatusOK, metricsResp.StatusCode)
	metricsEnvelope := decodeEnvelope(suite.T(), metricsResp)
	data, ok := metricsEnvelope["data"].(map[string]any)
	require.True(suite.T(), ok)
	assert.GreaterOrEqual(suite.T(), data["total_sessions"].(float64), 1.0)

	// invalid rating is rejected before persistence
	badResp := suite.postJSON("/api/v1/feedback", map[string]any{
		"recommendation_id": recommendationID,
		"rating":            11,
	})
	defer badResp.Body.Close()
	assert.Equal(suite.T(), http.StatusBadRequest, badResp.StatusCode)
}

// TestAdvisorAPITestSuite runs the test suite
func TestAdvisorAPITestSuite(t *testing.T) {
	suite.Run(t, new(AdvisorAPITestSuite))
}
