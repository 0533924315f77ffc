// api/policy/evaluator.go

// Package policy is the role/permission and subscription feature-gating core.
// It answers "is X allowed for role/plan Y" and nothing more: authentication,
// session handling and enforcement belong to the callers.
//
// The single governing rule on the role side is deny by default. An unknown
// role, an unknown flag, or any combination of the two resolves to a safe
// answer (false, empty, zero, "/dashboard") and never to an error.
package policy

import "github.com/aqari-dev/aqari/api/model"

// DefaultDashboardPath is the route returned for roles the registry does not
// recognize.
const DefaultDashboardPath = "/dashboard"

// LookupRole returns the static configuration of a role. The second return is
// false for unrecognized roles; callers are expected to degrade gracefully.
func LookupRole(role model.Role) (model.RoleConfig, bool) {
	for _, rc := range roleTable {
		if rc.Role == role {
			return rc, true
		}
	}
	return model.RoleConfig{}, false
}

// ListRoles returns every role config in declaration order.
func ListRoles() []model.RoleConfig {
	out := make([]model.RoleConfig, len(roleTable))
	copy(out, roleTable)
	return out
}

// PermissionsOf returns the exhaustive permission assignment of a role.
func PermissionsOf(role model.Role) (model.PermissionSet, bool) {
	rc, ok := LookupRole(role)
	if !ok {
		return nil, false
	}
	return rc.Permissions, true
}

// HasPermission reports whether the role grants the flag. It returns false,
// never an error, when the role or the flag is unknown.
func HasPermission(role model.Role, flag model.Permission) bool {
	rc, ok := LookupRole(role)
	if !ok {
		return false
	}
	return rc.Permissions.Has(flag)
}

// DashboardPathOf returns the role's dashboard route, or DefaultDashboardPath
// for unknown roles.
func DashboardPathOf(role model.Role) string {
	rc, ok := LookupRole(role)
	if !ok {
		return DefaultDashboardPath
	}
	return rc.DashboardPath
}

// ProfilePathOf returns the role's profile route, or DefaultDashboardPath for
// unknown roles.
func ProfilePathOf(role model.Role) string {
	rc, ok := LookupRole(role)
	if !ok {
		return DefaultDashboardPath
	}
	return rc.ProfilePath
}

// NameOf returns the role's English display name, or "" for unknown roles.
func NameOf(role model.Role) string {
	rc, _ := LookupRole(role)
	return rc.NameEn
}

// NameArOf returns the role's Arabic display name, or "" for unknown roles.
func NameArOf(role model.Role) string {
	rc, _ := LookupRole(role)
	return rc.NameAr
}

// DescriptionOf returns the role's English description, or "" for unknown roles.
func DescriptionOf(role model.Role) string {
	rc, _ := LookupRole(role)
	return rc.DescriptionEn
}

// ColorOf returns the role's UI color, or "" for unknown roles.
func ColorOf(role model.Role) string {
	rc, _ := LookupRole(role)
	return rc.Color
}

// IconOf returns the role's UI icon, or "" for unknown roles.
func IconOf(role model.Role) string {
	rc, _ := LookupRole(role)
	return rc.Icon
}

// MaxPropertiesOf returns the role's property ceiling. A ceiling of 0 means
// the role has no access to this resource type; model.UnlimitedCeiling means
// no bound. Unknown roles and absent ceilings both collapse to 0.
func MaxPropertiesOf(role model.Role) int {
	rc, ok := LookupRole(role)
	if !ok || rc.MaxProperties == nil {
		return 0
	}
	return *rc.MaxProperties
}

// MaxUnitsOf returns the role's unit ceiling, with the same fallbacks as
// MaxPropertiesOf.
func MaxUnitsOf(role model.Role) int {
	rc, ok := LookupRole(role)
	if !ok || rc.MaxUnits == nil {
		return 0
	}
	return *rc.MaxUnits
}

// MaxUsersOf returns the role's sub-user ceiling, with the same fallbacks as
// MaxPropertiesOf.
func MaxUsersOf(role model.Role) int {
	rc, ok := LookupRole(role)
	if !ok || rc.MaxUsers == nil {
		return 0
	}
	return *rc.MaxUsers
}
