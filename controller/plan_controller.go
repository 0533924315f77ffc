// api/controller/plan_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	aqari_errors "github.com/aqari-dev/aqari/api/errors"
	"github.com/aqari-dev/aqari/api/model"
	"github.com/aqari-dev/aqari/api/service"
	"github.com/aqari-dev/aqari/api/util"
)

type PlanController struct {
	planService service.IPlanService
}

func NewPlanController(planService service.IPlanService) *PlanController {
	return &PlanController{
		planService: planService,
	}
}

// RegisterRoutes registers the API routes for plans and the feature matrix
func (pc *PlanController) RegisterRoutes(r *gin.RouterGroup) {
	plans := r.Group("/plans")
	{
		plans.GET("", pc.ListPlans)
		plans.PUT("", pc.ReplacePlans)
		plans.GET("/features", pc.FeatureCatalogue)
		plans.GET("/matrix", pc.FeatureMatrix)
		plans.GET("/:id", pc.GetPlan)
		plans.GET("/:id/features", pc.FeaturesEnabled)
		plans.POST("/:id/features/:featureId/toggle", pc.ToggleFeature)
		plans.PUT("/:id/features/:featureId", pc.EnableFeature)
		plans.DELETE("/:id/features/:featureId", pc.DisableFeature)
		plans.PUT("/:id/features", pc.SetAllFeatures)
	}
}

// ListPlans endpoint
func (pc *PlanController) ListPlans(c *gin.Context) {
	plans, err := pc.planService.ListPlans(c)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list plans", aqari_errors.ErrInternalServer)
		return
	}
	c.JSON(http.StatusOK, plans)
}

// ReplacePlans endpoint replaces the full plan list
func (pc *PlanController) ReplacePlans(c *gin.Context) {
	var plans []model.Plan
	if err := c.ShouldBindJSON(&plans); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid plan data", aqari_errors.ErrInvalidPlanData)
		return
	}
	updaterID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", aqari_errors.ErrUnauthorized)
		return
	}

	if err := pc.planService.ReplacePlans(c, plans, updaterID); err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to replace plans", err)
		return
	}

	c.JSON(http.StatusOK, plans)
}

// GetPlan endpoint
func (pc *PlanController) GetPlan(c *gin.Context) {
	plan, err := pc.planService.GetPlan(c, c.Param("id"))
	if err != nil {
		switch err {
		case aqari_errors.ErrPlanNotFound:
			util.RespondWithError(c, http.StatusNotFound, "Plan not found", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve plan", aqari_errors.ErrInternalServer)
		}
		return
	}

	c.JSON(http.StatusOK, plan)
}

// FeatureCatalogue endpoint
func (pc *PlanController) FeatureCatalogue(c *gin.Context) {
	c.JSON(http.StatusOK, pc.planService.FeatureCatalogue(c))
}

// FeatureMatrix endpoint
func (pc *PlanController) FeatureMatrix(c *gin.Context) {
	c.JSON(http.StatusOK, pc.planService.FeatureMatrix(c))
}

// FeaturesEnabled endpoint. Unknown plan IDs answer an empty set.
func (pc *PlanController) FeaturesEnabled(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"plan_id":  c.Param("id"),
		"features": pc.planService.FeaturesEnabled(c, c.Param("id")),
	})
}

// ToggleFeature endpoint
func (pc *PlanController) ToggleFeature(c *gin.Context) {
	updaterID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", aqari_errors.ErrUnauthorized)
		return
	}

	if err := pc.planService.ToggleFeature(c, c.Param("id"), c.Param("featureId"), updaterID); err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to toggle feature", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"plan_id":  c.Param("id"),
		"features": pc.planService.FeaturesEnabled(c, c.Param("id")),
	})
}

// EnableFeature endpoint
func (pc *PlanController) EnableFeature(c *gin.Context) {
	updaterID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", aqari_errors.ErrUnauthorized)
		return
	}

	if err := pc.planService.EnableFeature(c, c.Param("id"), c.Param("featureId"), updaterID); err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to enable feature", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DisableFeature endpoint
func (pc *PlanController) DisableFeature(c *gin.Context) {
	updaterID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", aqari_errors.ErrUnauthorized)
		return
	}

	if err := pc.planService.DisableFeature(c, c.Param("id"), c.Param("featureId"), updaterID); err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to disable feature", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// SetAllFeatures endpoint bulk-sets a plan's feature set
func (pc *PlanController) SetAllFeatures(c *gin.Context) {
	var body struct {
		Enabled bool `json:"enabled"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid request body", aqari_errors.ErrInvalidPlanData)
		return
	}
	updaterID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", aqari_errors.ErrUnauthorized)
		return
	}

	if err := pc.planService.SetAllFeatures(c, c.Param("id"), body.Enabled, updaterID); err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to set features", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"plan_id":  c.Param("id"),
		"features": pc.planService.FeaturesEnabled(c, c.Param("id")),
	})
}
