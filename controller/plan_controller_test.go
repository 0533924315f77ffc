// api/controller/plan_controller_test.go
package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	testify_mock "github.com/stretchr/testify/mock"

	"github.com/aqari-dev/aqari/api/controller"
	aqari_errors "github.com/aqari-dev/aqari/api/errors"
	logger "github.com/aqari-dev/aqari/api/logging"
	"github.com/aqari-dev/aqari/api/model"
	"github.com/aqari-dev/aqari/api/test/mock"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	return r
}

func TestPlanController(t *testing.T) {
	// Initialize logger
	logger.InitLogger("../logging")
	defer logger.Sync()

	planService := new(mock.MockPlanService)
	planController := controller.NewPlanController(planService)
	router := setupRouter()
	api := router.Group("/")
	planController.RegisterRoutes(api)

	t.Run("ListPlans_Success", func(t *testing.T) {
		planService.On("ListPlans", testify_mock.Anything).
			Return([]model.Plan{{ID: "basic", NameEn: "Basic", NameAr: "الأساسية"}}, nil).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/plans", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var plans []model.Plan
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &plans))
		assert.Len(t, plans, 1)
		assert.Equal(t, "basic", plans[0].ID)
	})

	t.Run("GetPlan_Success", func(t *testing.T) {
		planService.On("GetPlan", testify_mock.Anything, "basic").
			Return(&model.Plan{ID: "basic", NameEn: "Basic", NameAr: "الأساسية"}, nil).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/plans/basic", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("GetPlan_Failure_NotFound", func(t *testing.T) {
		planService.On("GetPlan", testify_mock.Anything, "platinum").
			Return(nil, aqari_errors.ErrPlanNotFound).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/plans/platinum", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("ReplacePlans_Success", func(t *testing.T) {
		planService.On("ReplacePlans", testify_mock.Anything, testify_mock.Anything, testify_mock.Anything).
			Return(nil).Once()

		body := strings.NewReader(`[{"id":"solo","name_en":"Solo","name_ar":"فردية","price":29,"billing_cycle":"monthly"}]`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/plans", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("ReplacePlans_Failure_MalformedBody", func(t *testing.T) {
		body := strings.NewReader(`{"not":"a list"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/plans", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("FeaturesEnabled_Success", func(t *testing.T) {
		planService.On("FeaturesEnabled", testify_mock.Anything, "basic").
			Return([]string{"document_storage", "tenant_portal"}).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/plans/basic/features", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "tenant_portal")
	})

	t.Run("FeaturesEnabled_UnknownPlanAnswersEmpty", func(t *testing.T) {
		planService.On("FeaturesEnabled", testify_mock.Anything, "platinum").
			Return([]string{}).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/plans/platinum/features", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("ToggleFeature_Success", func(t *testing.T) {
		planService.On("ToggleFeature", testify_mock.Anything, "basic", "api_access", testify_mock.Anything).
			Return(nil).Once()
		planService.On("FeaturesEnabled", testify_mock.Anything, "basic").
			Return([]string{"api_access"}).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/plans/basic/features/api_access/toggle", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("EnableFeature_Success", func(t *testing.T) {
		planService.On("EnableFeature", testify_mock.Anything, "basic", "api_access", testify_mock.Anything).
			Return(nil).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/plans/basic/features/api_access", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("DisableFeature_Success", func(t *testing.T) {
		planService.On("DisableFeature", testify_mock.Anything, "basic", "api_access", testify_mock.Anything).
			Return(nil).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/plans/basic/features/api_access", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("SetAllFeatures_Success", func(t *testing.T) {
		planService.On("SetAllFeatures", testify_mock.Anything, "basic", true, testify_mock.Anything).
			Return(nil).Once()
		planService.On("FeaturesEnabled", testify_mock.Anything, "basic").
			Return([]string{"api_access", "tenant_portal"}).Once()

		body := strings.NewReader(`{"enabled":true}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/plans/basic/features", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("FeatureCatalogue_Success", func(t *testing.T) {
		planService.On("FeatureCatalogue", testify_mock.Anything).
			Return([]model.Feature{{ID: "api_access", NameEn: "API Access", NameAr: "واجهة برمجة التطبيقات"}}).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/plans/features", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("FeatureMatrix_Success", func(t *testing.T) {
		planService.On("FeatureMatrix", testify_mock.Anything).
			Return(model.FeatureMatrix{"basic": {"tenant_portal"}}).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/plans/matrix", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	planService.AssertExpectations(t)
}
