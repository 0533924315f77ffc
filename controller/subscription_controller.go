// api/controller/subscription_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	aqari_errors "github.com/aqari-dev/aqari/api/errors"
	"github.com/aqari-dev/aqari/api/service"
	"github.com/aqari-dev/aqari/api/util"
	helper_util "github.com/aqari-dev/aqari/api/util/helper"
)

type SubscriptionController struct {
	subscriptionService service.ISubscriptionService
}

func NewSubscriptionController(subscriptionService service.ISubscriptionService) *SubscriptionController {
	return &SubscriptionController{
		subscriptionService: subscriptionService,
	}
}

// RegisterRoutes registers the API routes for subscription assignments
func (sc *SubscriptionController) RegisterRoutes(r *gin.RouterGroup) {
	subscriptions := r.Group("/subscriptions")
	{
		subscriptions.POST("", sc.AssignPlan)
		subscriptions.GET("/:id", sc.GetSubscription)
		subscriptions.POST("/:id/cancel", sc.CancelSubscription)
	}
	r.GET("/users/:userId/subscriptions", sc.ListUserSubscriptions)
}

// AssignPlan endpoint creates a subscription binding a user to a plan
func (sc *SubscriptionController) AssignPlan(c *gin.Context) {
	var body struct {
		UserID string `json:"user_id" binding:"required"`
		PlanID string `json:"plan_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid subscription data", aqari_errors.ErrInvalidSubscriptionData)
		return
	}

	subscription, err := sc.subscriptionService.AssignPlan(c, body.UserID, body.PlanID)
	if err != nil {
		switch err {
		case aqari_errors.ErrPlanNotFound:
			util.RespondWithError(c, http.StatusNotFound, "Plan not found", err)
		case aqari_errors.ErrInvalidSubscriptionData:
			util.RespondWithError(c, http.StatusBadRequest, "Invalid subscription data", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to assign plan", aqari_errors.ErrInternalServer)
		}
		return
	}

	c.JSON(http.StatusCreated, subscription)
}

// GetSubscription endpoint
func (sc *SubscriptionController) GetSubscription(c *gin.Context) {
	subscription, err := sc.subscriptionService.GetSubscription(c, c.Param("id"))
	if err != nil {
		switch err {
		case aqari_errors.ErrSubscriptionNotFound:
			util.RespondWithError(c, http.StatusNotFound, "Subscription not found", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve subscription", aqari_errors.ErrInternalServer)
		}
		return
	}

	c.JSON(http.StatusOK, subscription)
}

// ListUserSubscriptions endpoint
func (sc *SubscriptionController) ListUserSubscriptions(c *gin.Context) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", aqari_errors.ErrInvalidPagination)
		return
	}

	subscriptions, err := sc.subscriptionService.ListUserSubscriptions(c, c.Param("userId"), limit, offset)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list subscriptions", aqari_errors.ErrInternalServer)
		return
	}

	c.JSON(http.StatusOK, subscriptions)
}

// CancelSubscription endpoint
func (sc *SubscriptionController) CancelSubscription(c *gin.Context) {
	updaterID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", aqari_errors.ErrUnauthorized)
		return
	}

	if err := sc.subscriptionService.CancelSubscription(c, c.Param("id"), updaterID); err != nil {
		switch err {
		case aqari_errors.ErrSubscriptionNotFound:
			util.RespondWithError(c, http.StatusNotFound, "Subscription not found", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to cancel subscription", aqari_errors.ErrInternalServer)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
