// api/controller/subscription_controller_test.go
package controller_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	testify_mock "github.com/stretchr/testify/mock"

	"github.com/aqari-dev/aqari/api/controller"
	aqari_errors "github.com/aqari-dev/aqari/api/errors"
	logger "github.com/aqari-dev/aqari/api/logging"
	"github.com/aqari-dev/aqari/api/model"
	"github.com/aqari-dev/aqari/api/test/mock"
)

func TestSubscriptionController(t *testing.T) {
	// Initialize logger
	logger.InitLogger("../logging")
	defer logger.Sync()

	subscriptionService := new(mock.MockSubscriptionService)
	subscriptionController := controller.NewSubscriptionController(subscriptionService)
	router := setupRouter()
	api := router.Group("/")
	subscriptionController.RegisterRoutes(api)

	now := time.Now()

	t.Run("AssignPlan_Success", func(t *testing.T) {
		subscriptionService.On("AssignPlan", testify_mock.Anything, "user-1", "basic").
			Return(&model.Subscription{
				ID:        "sub-1",
				UserID:    "user-1",
				PlanID:    "basic",
				Status:    model.SubscriptionActive,
				StartDate: now,
				EndDate:   now.Add(30 * 24 * time.Hour),
			}, nil).Once()

		body := strings.NewReader(`{"user_id":"user-1","plan_id":"basic"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/subscriptions", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("AssignPlan_Failure_UnknownPlan", func(t *testing.T) {
		subscriptionService.On("AssignPlan", testify_mock.Anything, "user-1", "platinum").
			Return(nil, aqari_errors.ErrPlanNotFound).Once()

		body := strings.NewReader(`{"user_id":"user-1","plan_id":"platinum"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/subscriptions", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("AssignPlan_Failure_MissingFields", func(t *testing.T) {
		body := strings.NewReader(`{"user_id":"user-1"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/subscriptions", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("GetSubscription_Success", func(t *testing.T) {
		subscriptionService.On("GetSubscription", testify_mock.Anything, "sub-1").
			Return(&model.Subscription{ID: "sub-1", UserID: "user-1", PlanID: "basic"}, nil).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/subscriptions/sub-1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("GetSubscription_Failure_NotFound", func(t *testing.T) {
		subscriptionService.On("GetSubscription", testify_mock.Anything, "missing").
			Return(nil, aqari_errors.ErrSubscriptionNotFound).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/subscriptions/missing", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("ListUserSubscriptions_Success", func(t *testing.T) {
		subscriptionService.On("ListUserSubscriptions", testify_mock.Anything, "user-1", 10, 0).
			Return([]*model.Subscription{{ID: "sub-1", UserID: "user-1", PlanID: "basic"}}, nil).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/users/user-1/subscriptions?limit=10&offset=0", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("CancelSubscription_Success", func(t *testing.T) {
		subscriptionService.On("CancelSubscription", testify_mock.Anything, "sub-1", testify_mock.Anything).
			Return(nil).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/subscriptions/sub-1/cancel", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("CancelSubscription_Failure_NotFound", func(t *testing.T) {
		subscriptionService.On("CancelSubscription", testify_mock.Anything, "missing", testify_mock.Anything).
			Return(aqari_errors.ErrSubscriptionNotFound).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/subscriptions/missing/cancel", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	subscriptionService.AssertExpectations(t)
}
