// api/controller/role_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	aqari_errors "github.com/aqari-dev/aqari/api/errors"
	"github.com/aqari-dev/aqari/api/model"
	"github.com/aqari-dev/aqari/api/policy"
	"github.com/aqari-dev/aqari/api/service"
	"github.com/aqari-dev/aqari/api/util"
)

type RoleController struct {
	roleService service.IRoleService
}

func NewRoleController(roleService service.IRoleService) *RoleController {
	return &RoleController{
		roleService: roleService,
	}
}

// RegisterRoutes registers the API routes for roles
func (rc *RoleController) RegisterRoutes(r *gin.RouterGroup) {
	roles := r.Group("/roles")
	{
		roles.GET("", rc.ListRoles)
		roles.GET("/groups", rc.RoleGroups)
		roles.GET("/:id", rc.GetRole)
		roles.GET("/:id/permissions", rc.GetPermissions)
		roles.GET("/:id/permissions/:flag", rc.CheckPermission)
		roles.GET("/:id/limits", rc.GetLimits)
	}
}

// ListRoles endpoint
func (rc *RoleController) ListRoles(c *gin.Context) {
	roles, err := rc.roleService.ListRoles(c)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list roles", aqari_errors.ErrInternalServer)
		return
	}
	c.JSON(http.StatusOK, roles)
}

// RoleGroups endpoint
func (rc *RoleController) RoleGroups(c *gin.Context) {
	c.JSON(http.StatusOK, rc.roleService.RoleGroups(c))
}

// GetRole endpoint
func (rc *RoleController) GetRole(c *gin.Context) {
	role := model.Role(c.Param("id"))

	roleConfig, err := rc.roleService.GetRole(c, role)
	if err != nil {
		switch err {
		case aqari_errors.ErrRoleNotFound:
			util.RespondWithError(c, http.StatusNotFound, "Role not found", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve role", aqari_errors.ErrInternalServer)
		}
		return
	}

	c.JSON(http.StatusOK, roleConfig)
}

// GetPermissions endpoint
func (rc *RoleController) GetPermissions(c *gin.Context) {
	role := model.Role(c.Param("id"))

	perms, err := rc.roleService.GetPermissions(c, role)
	if err != nil {
		switch err {
		case aqari_errors.ErrRoleNotFound:
			util.RespondWithError(c, http.StatusNotFound, "Role not found", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve permissions", aqari_errors.ErrInternalServer)
		}
		return
	}

	c.JSON(http.StatusOK, perms)
}

// CheckPermission endpoint. Unknown roles and flags answer allowed=false
// rather than an error, mirroring the deny-by-default evaluator.
func (rc *RoleController) CheckPermission(c *gin.Context) {
	role := model.Role(c.Param("id"))
	flag := model.Permission(c.Param("flag"))

	allowed := rc.roleService.CheckPermission(c, role, flag)
	c.JSON(http.StatusOK, gin.H{
		"role":       role,
		"permission": flag,
		"allowed":    allowed,
	})
}

// GetLimits endpoint returns the role's resource ceilings with the documented
// defaults applied.
func (rc *RoleController) GetLimits(c *gin.Context) {
	role := model.Role(c.Param("id"))

	c.JSON(http.StatusOK, gin.H{
		"role":           role,
		"max_properties": policy.MaxPropertiesOf(role),
		"max_units":      policy.MaxUnitsOf(role),
		"max_users":      policy.MaxUsersOf(role),
		"dashboard_path": policy.DashboardPathOf(role),
		"profile_path":   policy.ProfilePathOf(role),
	})
}
