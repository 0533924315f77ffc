// api/model/permission.go
package model

// Permission is a named boolean capability checked by calling code before
// performing a sensitive action. The set of permissions is fixed at compile
// time; there is no API to add or remove flags at runtime.
type Permission string

const (
	// Properties
	PermCreateProperty    Permission = "create_property"
	PermEditProperty      Permission = "edit_property"
	PermDeleteProperty    Permission = "delete_property"
	PermPublishProperty   Permission = "publish_property"
	PermViewAllProperties Permission = "view_all_properties"

	// Units
	PermCreateUnit   Permission = "create_unit"
	PermEditUnit     Permission = "edit_unit"
	PermDeleteUnit   Permission = "delete_unit"
	PermAssignTenant Permission = "assign_tenant"

	// Contracts
	PermCreateContract    Permission = "create_contract"
	PermEditContract      Permission = "edit_contract"
	PermTerminateContract Permission = "terminate_contract"
	PermViewContracts     Permission = "view_contracts"

	// Invoices
	PermCreateInvoice  Permission = "create_invoice"
	PermEditInvoice    Permission = "edit_invoice"
	PermDeleteInvoice  Permission = "delete_invoice"
	PermRecordPayment  Permission = "record_payment"
	PermExportInvoices Permission = "export_invoices"

	// Tasks
	PermCreateTask Permission = "create_task"
	PermAssignTask Permission = "assign_task"
	PermCloseTask  Permission = "close_task"

	// Users
	PermInviteUser     Permission = "invite_user"
	PermEditUser       Permission = "edit_user"
	PermDeleteUser     Permission = "delete_user"
	PermManageSubUsers Permission = "manage_sub_users"

	// Reports
	PermViewReports          Permission = "view_reports"
	PermExportReports        Permission = "export_reports"
	PermViewFinancialReports Permission = "view_financial_reports"

	// Settings
	PermEditSettings Permission = "edit_settings"
	PermManagePlans  Permission = "manage_plans"
	PermAccessAdmin  Permission = "access_admin"

	// Auctions
	PermCreateAuction  Permission = "create_auction"
	PermManageAuctions Permission = "manage_auctions"
	PermPlaceBid       Permission = "place_bid"

	// Legal
	PermCreateLegalCase  Permission = "create_legal_case"
	PermManageLegalCases Permission = "manage_legal_cases"
	PermViewLegalCases   Permission = "view_legal_cases"

	// General
	PermViewDashboard     Permission = "view_dashboard"
	PermUploadDocuments   Permission = "upload_documents"
	PermManageBookings    Permission = "manage_bookings"
	PermSendNotifications Permission = "send_notifications"
)

// allPermissions is the permission schema in declaration order. Every role
// config must assign an explicit value to each of these flags.
var allPermissions = []Permission{
	PermCreateProperty, PermEditProperty, PermDeleteProperty, PermPublishProperty, PermViewAllProperties,
	PermCreateUnit, PermEditUnit, PermDeleteUnit, PermAssignTenant,
	PermCreateContract, PermEditContract, PermTerminateContract, PermViewContracts,
	PermCreateInvoice, PermEditInvoice, PermDeleteInvoice, PermRecordPayment, PermExportInvoices,
	PermCreateTask, PermAssignTask, PermCloseTask,
	PermInviteUser, PermEditUser, PermDeleteUser, PermManageSubUsers,
	PermViewReports, PermExportReports, PermViewFinancialReports,
	PermEditSettings, PermManagePlans, PermAccessAdmin,
	PermCreateAuction, PermManageAuctions, PermPlaceBid,
	PermCreateLegalCase, PermManageLegalCases, PermViewLegalCases,
	PermViewDashboard, PermUploadDocuments, PermManageBookings, PermSendNotifications,
}

// AllPermissions returns the full permission schema in declaration order.
func AllPermissions() []Permission {
	out := make([]Permission, len(allPermissions))
	copy(out, allPermissions)
	return out
}

// KnownPermission reports whether flag is part of the permission schema.
func KnownPermission(flag Permission) bool {
	for _, p := range allPermissions {
		if p == flag {
			return true
		}
	}
	return false
}

// PermissionSet is an exhaustive assignment of every permission flag to an
// explicit grant. A missing key reads as false, but role configs are built so
// that every schema flag is present.
type PermissionSet map[Permission]bool

// Has reports whether the flag is granted. Unknown flags are denied.
func (s PermissionSet) Has(flag Permission) bool {
	return s[flag]
}
