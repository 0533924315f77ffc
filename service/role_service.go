// api/service/role_service.go
package service

import (
	"context"

	"go.uber.org/zap"

	aqari_errors "github.com/aqari-dev/aqari/api/errors"
	logger "github.com/aqari-dev/aqari/api/logging"
	"github.com/aqari-dev/aqari/api/model"
	"github.com/aqari-dev/aqari/api/policy"
)

// IRoleService defines the read-only interface for role operations. Roles are
// compiled-in configuration, so there are no mutation methods.
type IRoleService interface {
	GetRole(ctx context.Context, role model.Role) (*model.RoleConfig, error)
	ListRoles(ctx context.Context) ([]model.RoleConfig, error)
	GetPermissions(ctx context.Context, role model.Role) (model.PermissionSet, error)
	CheckPermission(ctx context.Context, role model.Role, flag model.Permission) bool
	RoleGroups(ctx context.Context) map[string][]model.Role
}

// RoleService answers role queries from the static registry.
type RoleService struct{}

var _ IRoleService = &RoleService{}

func NewRoleService() *RoleService {
	return &RoleService{}
}

// GetRole retrieves a role's static configuration
func (s *RoleService) GetRole(ctx context.Context, role model.Role) (*model.RoleConfig, error) {
	rc, ok := policy.LookupRole(role)
	if !ok {
		logger.Debug("Role not found in registry", zap.String("role", string(role)))
		return nil, aqari_errors.ErrRoleNotFound
	}
	return &rc, nil
}

// ListRoles retrieves all roles in registry order
func (s *RoleService) ListRoles(ctx context.Context) ([]model.RoleConfig, error) {
	return policy.ListRoles(), nil
}

// GetPermissions retrieves the exhaustive permission assignment of a role
func (s *RoleService) GetPermissions(ctx context.Context, role model.Role) (model.PermissionSet, error) {
	perms, ok := policy.PermissionsOf(role)
	if !ok {
		return nil, aqari_errors.ErrRoleNotFound
	}
	return perms, nil
}

// CheckPermission answers a single permission query, deny by default
func (s *RoleService) CheckPermission(ctx context.Context, role model.Role, flag model.Permission) bool {
	return policy.HasPermission(role, flag)
}

// RoleGroups returns the UI groupings of roles
func (s *RoleService) RoleGroups(ctx context.Context) map[string][]model.Role {
	return map[string][]model.Role{
		"basic":    model.BasicRoles,
		"advanced": model.AdvancedRoles,
		"service":  model.ServiceRoles,
	}
}
