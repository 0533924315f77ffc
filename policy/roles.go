// api/policy/roles.go
package policy

import "github.com/aqari-dev/aqari/api/model"

// grant builds a complete PermissionSet: every flag in the schema is present,
// defaulting to false, with the listed flags set to true. Role configs must
// always be built through grant or grantAll so the exhaustiveness invariant
// holds by construction.
func grant(granted ...model.Permission) model.PermissionSet {
	set := make(model.PermissionSet, len(model.AllPermissions()))
	for _, p := range model.AllPermissions() {
		set[p] = false
	}
	for _, p := range granted {
		set[p] = true
	}
	return set
}

// grantAll builds a PermissionSet with every flag granted. Site admin only.
func grantAll() model.PermissionSet {
	set := make(model.PermissionSet)
	for _, p := range model.AllPermissions() {
		set[p] = true
	}
	return set
}

func ceiling(n int) *int { return &n }

var unlimited = ceiling(model.UnlimitedCeiling)

// roleTable is the static role registry, in the order roles are presented in
// the UI. Roles are never redefined at runtime.
var roleTable = []model.RoleConfig{
	{
		Role:          model.RoleGuest,
		NameEn:        "Guest",
		NameAr:        "زائر",
		DescriptionEn: "Unregistered visitor browsing public listings",
		DescriptionAr: "زائر غير مسجل يتصفح الإعلانات العامة",
		DashboardPath: "/dashboard",
		ProfilePath:   "/dashboard",
		Color:         "#9CA3AF",
		Icon:          "user",
		Features:      []string{"Browse public listings", "Contact advertisers"},
		Permissions:   grant(),
	},
	{
		Role:          model.RoleTenant,
		NameEn:        "Tenant",
		NameAr:        "مستأجر",
		DescriptionEn: "Individual tenant renting a unit through the platform",
		DescriptionAr: "مستأجر فرد يستأجر وحدة عبر المنصة",
		DashboardPath: "/dashboard/tenant",
		ProfilePath:   "/profile/tenant",
		Color:         "#10B981",
		Icon:          "key",
		Features:      []string{"View contracts and invoices", "Submit maintenance requests", "Upload documents"},
		Permissions: grant(
			model.PermViewDashboard,
			model.PermViewContracts,
			model.PermCreateTask,
			model.PermUploadDocuments,
		),
	},
	{
		Role:          model.RoleOwnerBasic,
		NameEn:        "Basic Landlord",
		NameAr:        "مالك أساسي",
		DescriptionEn: "Landlord with a small portfolio managed directly",
		DescriptionAr: "مالك عقارات بمحفظة صغيرة يديرها بنفسه",
		DashboardPath: "/dashboard/owner",
		ProfilePath:   "/profile/owner",
		Color:         "#3B82F6",
		Icon:          "home",
		Features:      []string{"Up to 5 properties", "Contracts and invoicing", "Maintenance tasks"},
		MaxProperties: ceiling(5),
		MaxUnits:      ceiling(25),
		MaxUsers:      ceiling(1),
		Permissions: grant(
			model.PermViewDashboard,
			model.PermCreateProperty,
			model.PermEditProperty,
			model.PermCreateUnit,
			model.PermEditUnit,
			model.PermCreateContract,
			model.PermEditContract,
			model.PermViewContracts,
			model.PermCreateInvoice,
			model.PermEditInvoice,
			model.PermCreateTask,
			model.PermCloseTask,
			model.PermViewReports,
			model.PermUploadDocuments,
		),
	},
	{
		Role:          model.RoleOwnerStandard,
		NameEn:        "Standard Landlord",
		NameAr:        "مالك قياسي",
		DescriptionEn: "Landlord with a mid-size portfolio and payment tracking",
		DescriptionAr: "مالك عقارات بمحفظة متوسطة مع تتبع المدفوعات",
		DashboardPath: "/dashboard/owner",
		ProfilePath:   "/profile/owner",
		Color:         "#2563EB",
		Icon:          "home",
		Features:      []string{"Up to 15 properties", "Listing publication", "Payment recording", "Booking management"},
		MaxProperties: ceiling(15),
		MaxUnits:      ceiling(100),
		MaxUsers:      ceiling(3),
		Permissions: grant(
			model.PermViewDashboard,
			model.PermCreateProperty,
			model.PermEditProperty,
			model.PermDeleteProperty,
			model.PermPublishProperty,
			model.PermCreateUnit,
			model.PermEditUnit,
			model.PermDeleteUnit,
			model.PermAssignTenant,
			model.PermCreateContract,
			model.PermEditContract,
			model.PermTerminateContract,
			model.PermViewContracts,
			model.PermCreateInvoice,
			model.PermEditInvoice,
			model.PermRecordPayment,
			model.PermExportInvoices,
			model.PermCreateTask,
			model.PermAssignTask,
			model.PermCloseTask,
			model.PermViewReports,
			model.PermUploadDocuments,
			model.PermManageBookings,
		),
	},
	{
		Role:          model.RoleOwnerPremium,
		NameEn:        "Premium Landlord",
		NameAr:        "مالك مميز",
		DescriptionEn: "Landlord with a large portfolio, sub-users and full reporting",
		DescriptionAr: "مالك عقارات بمحفظة كبيرة مع مستخدمين فرعيين وتقارير كاملة",
		DashboardPath: "/dashboard/owner",
		ProfilePath:   "/profile/owner",
		Color:         "#1D4ED8",
		Icon:          "building",
		Features:      []string{"Up to 50 properties", "Sub-user accounts", "Financial reports", "Auction bidding"},
		MaxProperties: ceiling(50),
		MaxUnits:      ceiling(400),
		MaxUsers:      ceiling(10),
		Permissions: grant(
			model.PermViewDashboard,
			model.PermCreateProperty,
			model.PermEditProperty,
			model.PermDeleteProperty,
			model.PermPublishProperty,
			model.PermCreateUnit,
			model.PermEditUnit,
			model.PermDeleteUnit,
			model.PermAssignTenant,
			model.PermCreateContract,
			model.PermEditContract,
			model.PermTerminateContract,
			model.PermViewContracts,
			model.PermCreateInvoice,
			model.PermEditInvoice,
			model.PermDeleteInvoice,
			model.PermRecordPayment,
			model.PermExportInvoices,
			model.PermCreateTask,
			model.PermAssignTask,
			model.PermCloseTask,
			model.PermManageSubUsers,
			model.PermViewReports,
			model.PermExportReports,
			model.PermViewFinancialReports,
			model.PermPlaceBid,
			model.PermViewLegalCases,
			model.PermUploadDocuments,
			model.PermManageBookings,
		),
	},
	{
		Role:          model.RoleAgent,
		NameEn:        "Real Estate Agent",
		NameAr:        "وسيط عقاري",
		DescriptionEn: "Licensed broker marketing properties on behalf of owners",
		DescriptionAr: "وسيط مرخص يسوّق العقارات نيابة عن الملاك",
		DashboardPath: "/dashboard/agent",
		ProfilePath:   "/profile/agent",
		Color:         "#F59E0B",
		Icon:          "briefcase",
		Features:      []string{"Up to 30 listings", "Listing publication", "Booking management", "Auction bidding"},
		MaxProperties: ceiling(30),
		MaxUnits:      ceiling(150),
		MaxUsers:      ceiling(1),
		Permissions: grant(
			model.PermViewDashboard,
			model.PermCreateProperty,
			model.PermEditProperty,
			model.PermPublishProperty,
			model.PermCreateUnit,
			model.PermEditUnit,
			model.PermViewContracts,
			model.PermViewReports,
			model.PermPlaceBid,
			model.PermUploadDocuments,
			model.PermManageBookings,
		),
	},
	{
		Role:          model.RolePropertyManager,
		NameEn:        "Property Manager",
		NameAr:        "مدير أملاك",
		DescriptionEn: "Professional manager operating portfolios for multiple owners",
		DescriptionAr: "مدير محترف يشغّل محافظ عقارية لعدة ملاك",
		DashboardPath: "/dashboard/manager",
		ProfilePath:   "/profile/manager",
		Color:         "#0891B2",
		Icon:          "clipboard",
		Features:      []string{"Up to 200 properties", "Full operations suite", "Sub-user accounts", "Report export"},
		MaxProperties: ceiling(200),
		MaxUnits:      ceiling(2000),
		MaxUsers:      ceiling(15),
		Permissions: grant(
			model.PermViewDashboard,
			model.PermCreateProperty,
			model.PermEditProperty,
			model.PermDeleteProperty,
			model.PermPublishProperty,
			model.PermViewAllProperties,
			model.PermCreateUnit,
			model.PermEditUnit,
			model.PermDeleteUnit,
			model.PermAssignTenant,
			model.PermCreateContract,
			model.PermEditContract,
			model.PermTerminateContract,
			model.PermViewContracts,
			model.PermCreateInvoice,
			model.PermEditInvoice,
			model.PermDeleteInvoice,
			model.PermRecordPayment,
			model.PermExportInvoices,
			model.PermCreateTask,
			model.PermAssignTask,
			model.PermCloseTask,
			model.PermManageSubUsers,
			model.PermViewReports,
			model.PermExportReports,
			model.PermUploadDocuments,
			model.PermManageBookings,
			model.PermSendNotifications,
		),
	},
	{
		Role:          model.RoleCompany,
		NameEn:        "Property Company",
		NameAr:        "شركة عقارية",
		DescriptionEn: "Company account with team management and financial reporting",
		DescriptionAr: "حساب شركة مع إدارة فريق العمل والتقارير المالية",
		DashboardPath: "/dashboard/company",
		ProfilePath:   "/profile/company",
		Color:         "#4F46E5",
		Icon:          "building-office",
		Features:      []string{"Up to 300 properties", "Team accounts", "Financial reports", "Invoice export"},
		MaxProperties: ceiling(300),
		MaxUnits:      ceiling(3000),
		MaxUsers:      ceiling(25),
		Permissions: grant(
			model.PermViewDashboard,
			model.PermCreateProperty,
			model.PermEditProperty,
			model.PermDeleteProperty,
			model.PermPublishProperty,
			model.PermViewAllProperties,
			model.PermCreateUnit,
			model.PermEditUnit,
			model.PermDeleteUnit,
			model.PermAssignTenant,
			model.PermCreateContract,
			model.PermEditContract,
			model.PermTerminateContract,
			model.PermViewContracts,
			model.PermCreateInvoice,
			model.PermEditInvoice,
			model.PermDeleteInvoice,
			model.PermRecordPayment,
			model.PermExportInvoices,
			model.PermCreateTask,
			model.PermAssignTask,
			model.PermCloseTask,
			model.PermInviteUser,
			model.PermEditUser,
			model.PermManageSubUsers,
			model.PermViewReports,
			model.PermExportReports,
			model.PermViewFinancialReports,
			model.PermUploadDocuments,
			model.PermManageBookings,
			model.PermSendNotifications,
		),
	},
	{
		Role:          model.RoleDeveloper,
		NameEn:        "Real Estate Developer",
		NameAr:        "مطور عقاري",
		DescriptionEn: "Developer marketing off-plan projects and large unit inventories",
		DescriptionAr: "مطور يسوّق مشاريع على الخارطة ومخزونات وحدات كبيرة",
		DashboardPath: "/dashboard/developer",
		ProfilePath:   "/profile/developer",
		Color:         "#7C3AED",
		Icon:          "crane",
		Features:      []string{"Up to 100 projects", "Large unit inventories", "Booking management", "Report export"},
		MaxProperties: ceiling(100),
		MaxUnits:      ceiling(5000),
		MaxUsers:      ceiling(20),
		Permissions: grant(
			model.PermViewDashboard,
			model.PermCreateProperty,
			model.PermEditProperty,
			model.PermPublishProperty,
			model.PermCreateUnit,
			model.PermEditUnit,
			model.PermDeleteUnit,
			model.PermCreateContract,
			model.PermViewContracts,
			model.PermCreateInvoice,
			model.PermViewReports,
			model.PermExportReports,
			model.PermManageSubUsers,
			model.PermUploadDocuments,
			model.PermManageBookings,
			model.PermSendNotifications,
		),
	},
	{
		Role:          model.RoleAuctionManager,
		NameEn:        "Auction Manager",
		NameAr:        "مدير مزادات",
		DescriptionEn: "Operator of property auctions hosted on the platform",
		DescriptionAr: "مشغّل مزادات العقارات المقامة على المنصة",
		DashboardPath: "/dashboard/auctions",
		ProfilePath:   "/profile/auctions",
		Color:         "#DC2626",
		Icon:          "gavel",
		Features:      []string{"Create and run auctions", "Bidder management", "Auction reports"},
		MaxUsers:      ceiling(5),
		Permissions: grant(
			model.PermViewDashboard,
			model.PermCreateAuction,
			model.PermManageAuctions,
			model.PermPlaceBid,
			model.PermViewAllProperties,
			model.PermViewReports,
			model.PermExportReports,
			model.PermSendNotifications,
		),
	},
	{
		Role:          model.RoleLegalAdvisor,
		NameEn:        "Legal Advisor",
		NameAr:        "مستشار قانوني",
		DescriptionEn: "Counsel handling rental disputes and legal cases",
		DescriptionAr: "مستشار يتولى نزاعات الإيجار والقضايا القانونية",
		DashboardPath: "/dashboard/legal",
		ProfilePath:   "/profile/legal",
		Color:         "#374151",
		Icon:          "scale",
		Features:      []string{"Legal case management", "Contract review"},
		Permissions: grant(
			model.PermViewDashboard,
			model.PermCreateLegalCase,
			model.PermManageLegalCases,
			model.PermViewLegalCases,
			model.PermViewContracts,
			model.PermUploadDocuments,
		),
	},
	{
		Role:          model.RoleAccountant,
		NameEn:        "Accountant",
		NameAr:        "محاسب",
		DescriptionEn: "Finance staff managing invoices and payments",
		DescriptionAr: "موظف مالي يدير الفواتير والمدفوعات",
		DashboardPath: "/dashboard/finance",
		ProfilePath:   "/profile/finance",
		Color:         "#059669",
		Icon:          "calculator",
		Features:      []string{"Invoicing and payments", "Financial reports", "Invoice export"},
		Permissions: grant(
			model.PermViewDashboard,
			model.PermCreateInvoice,
			model.PermEditInvoice,
			model.PermRecordPayment,
			model.PermExportInvoices,
			model.PermViewReports,
			model.PermExportReports,
			model.PermViewFinancialReports,
		),
	},
	{
		Role:          model.RoleMaintenanceSupervisor,
		NameEn:        "Maintenance Supervisor",
		NameAr:        "مشرف صيانة",
		DescriptionEn: "Supervisor dispatching and closing maintenance tasks",
		DescriptionAr: "مشرف يوزع مهام الصيانة ويغلقها",
		DashboardPath: "/dashboard/maintenance",
		ProfilePath:   "/profile/maintenance",
		Color:         "#B45309",
		Icon:          "wrench",
		Features:      []string{"Task dispatching", "Work order tracking"},
		Permissions: grant(
			model.PermViewDashboard,
			model.PermCreateTask,
			model.PermAssignTask,
			model.PermCloseTask,
			model.PermUploadDocuments,
		),
	},
	{
		Role:          model.RoleSupportAgent,
		NameEn:        "Support Agent",
		NameAr:        "موظف دعم",
		DescriptionEn: "Customer support staff assisting platform users",
		DescriptionAr: "موظف دعم يساعد مستخدمي المنصة",
		DashboardPath: "/dashboard/support",
		ProfilePath:   "/profile/support",
		Color:         "#0EA5E9",
		Icon:          "headset",
		Features:      []string{"View user accounts", "Send notifications"},
		Permissions: grant(
			model.PermViewDashboard,
			model.PermViewAllProperties,
			model.PermViewContracts,
			model.PermSendNotifications,
		),
	},
	{
		Role:          model.RoleContentModerator,
		NameEn:        "Content Moderator",
		NameAr:        "مشرف محتوى",
		DescriptionEn: "Moderator reviewing and unpublishing listings",
		DescriptionAr: "مشرف يراجع الإعلانات ويوقف نشرها",
		DashboardPath: "/dashboard/moderation",
		ProfilePath:   "/profile/moderation",
		Color:         "#E11D48",
		Icon:          "shield",
		Features:      []string{"Listing review", "Content takedown"},
		Permissions: grant(
			model.PermViewDashboard,
			model.PermViewAllProperties,
			model.PermEditProperty,
			model.PermPublishProperty,
			model.PermDeleteProperty,
		),
	},
	{
		Role:          model.RoleSiteAdmin,
		NameEn:        "Site Administrator",
		NameAr:        "مدير النظام",
		DescriptionEn: "Platform administrator with unrestricted access",
		DescriptionAr: "مدير المنصة بصلاحيات غير مقيدة",
		DashboardPath: "/dashboard/admin",
		ProfilePath:   "/profile/admin",
		Color:         "#111827",
		Icon:          "crown",
		Features:      []string{"Full platform access", "Plan management", "User administration"},
		MaxProperties: unlimited,
		MaxUnits:      unlimited,
		MaxUsers:      unlimited,
		Permissions:   grantAll(),
	},
}
