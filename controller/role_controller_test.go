// api/controller/role_controller_test.go
package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aqari-dev/aqari/api/controller"
	logger "github.com/aqari-dev/aqari/api/logging"
	"github.com/aqari-dev/aqari/api/model"
	"github.com/aqari-dev/aqari/api/service"
)

// The role registry is compiled in, so these tests run against the real
// service rather than a mock.
func TestRoleController(t *testing.T) {
	// Initialize logger
	logger.InitLogger("../logging")
	defer logger.Sync()

	roleController := controller.NewRoleController(service.NewRoleService())
	router := setupRouter()
	api := router.Group("/")
	roleController.RegisterRoutes(api)

	t.Run("ListRoles_Success", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/roles", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var roles []model.RoleConfig
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &roles))
		assert.Len(t, roles, 16)
	})

	t.Run("GetRole_Success", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/roles/site_admin", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var rc model.RoleConfig
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rc))
		assert.Equal(t, "Site Administrator", rc.NameEn)
		assert.Equal(t, "مدير النظام", rc.NameAr)
	})

	t.Run("GetRole_Failure_NotFound", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/roles/superuser", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("GetPermissions_Success", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/roles/guest/permissions", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var perms map[string]bool
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &perms))
		assert.Len(t, perms, len(model.AllPermissions()))
		for flag, allowed := range perms {
			assert.False(t, allowed, "guest should not hold %s", flag)
		}
	})

	t.Run("CheckPermission_Allowed", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/roles/site_admin/permissions/access_admin", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"allowed":true`)
	})

	t.Run("CheckPermission_UnknownRoleDenied", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/roles/superuser/permissions/access_admin", nil)
		router.ServeHTTP(w, req)

		// Deny by default: an unknown role is a 200 with allowed=false, not an error.
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"allowed":false`)
	})

	t.Run("GetLimits_Success", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/roles/owner_basic/limits", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"max_properties":5`)
	})

	t.Run("GetLimits_UnknownRoleDefaults", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/roles/superuser/limits", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"max_properties":0`)
		assert.Contains(t, w.Body.String(), `"dashboard_path":"/dashboard"`)
	})

	t.Run("RoleGroups_Success", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/roles/groups", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var groups map[string][]model.Role
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &groups))
		assert.Len(t, groups, 3)
		assert.Contains(t, groups["basic"], model.RoleGuest)
	})
}
