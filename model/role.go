// api/model/role.go
package model

// Role is a fixed category of platform user. The catalogue of roles is
// compiled in; there is no runtime API to define or edit a role.
type Role string

const (
	RoleGuest                 Role = "guest"
	RoleTenant                Role = "tenant"
	RoleOwnerBasic            Role = "owner_basic"
	RoleOwnerStandard         Role = "owner_standard"
	RoleOwnerPremium          Role = "owner_premium"
	RoleAgent                 Role = "agent"
	RolePropertyManager       Role = "property_manager"
	RoleCompany               Role = "company"
	RoleDeveloper             Role = "developer"
	RoleAuctionManager        Role = "auction_manager"
	RoleLegalAdvisor          Role = "legal_advisor"
	RoleAccountant            Role = "accountant"
	RoleMaintenanceSupervisor Role = "maintenance_supervisor"
	RoleSupportAgent          Role = "support_agent"
	RoleContentModerator      Role = "content_moderator"
	RoleSiteAdmin             Role = "site_admin"
)

// UnlimitedCeiling marks a resource ceiling with no upper bound. It is
// reserved for the site admin; every other role carries either a concrete
// ceiling or no ceiling at all (nil, meaning the resource type does not apply).
const UnlimitedCeiling = -1

// RoleConfig is the static configuration of a single role: bilingual display
// metadata, UI routes, resource ceilings, and the exhaustive permission
// assignment.
type RoleConfig struct {
	Role          Role          `json:"role"`
	NameEn        string        `json:"name_en"`
	NameAr        string        `json:"name_ar"`
	DescriptionEn string        `json:"description_en"`
	DescriptionAr string        `json:"description_ar"`
	DashboardPath string        `json:"dashboard_path"`
	ProfilePath   string        `json:"profile_path"`
	Color         string        `json:"color"`
	Icon          string        `json:"icon"`
	Features      []string      `json:"features"`
	MaxProperties *int          `json:"max_properties,omitempty"`
	MaxUnits      *int          `json:"max_units,omitempty"`
	MaxUsers      *int          `json:"max_users,omitempty"`
	Permissions   PermissionSet `json:"permissions"`
}

// Role groupings used by the UI for categorization. Membership carries no
// semantics beyond list order on screen.
var (
	BasicRoles = []Role{
		RoleGuest, RoleTenant, RoleOwnerBasic, RoleAgent,
	}

	AdvancedRoles = []Role{
		RoleOwnerStandard, RoleOwnerPremium, RolePropertyManager,
		RoleCompany, RoleDeveloper, RoleAuctionManager,
	}

	ServiceRoles = []Role{
		RoleLegalAdvisor, RoleAccountant, RoleMaintenanceSupervisor,
		RoleSupportAgent, RoleContentModerator,
	}
)
