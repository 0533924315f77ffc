// api/policy/plans.go
package policy

import "github.com/aqari-dev/aqari/api/model"

// defaultPlans is the compiled-in plan set. It is the fallback whenever the
// durable store has no plan list (or holds one that cannot be decoded), and it
// is persisted lazily the first time the store loads.
func defaultPlans() []model.Plan {
	return []model.Plan{
		{
			ID:            "basic",
			NameEn:        "Basic",
			NameAr:        "الأساسية",
			Price:         99,
			BillingCycle:  "monthly",
			MaxProperties: 3,
			MaxUnits:      15,
			MaxBookings:   10,
			MaxUsers:      1,
			StorageGB:     1,
			Priority:      1,
			Color:         "#6B7280",
			FeaturesEn: []string{
				"Up to 3 properties",
				"Tenant portal",
				"Document storage",
			},
			FeaturesAr: []string{
				"حتى 3 عقارات",
				"بوابة المستأجر",
				"تخزين المستندات",
			},
		},
		{
			ID:            "standard",
			NameEn:        "Standard",
			NameAr:        "القياسية",
			Price:         249,
			BillingCycle:  "monthly",
			MaxProperties: 10,
			MaxUnits:      60,
			MaxBookings:   50,
			MaxUsers:      3,
			StorageGB:     5,
			Priority:      2,
			Color:         "#2563EB",
			FeaturesEn: []string{
				"Up to 10 properties",
				"Report export",
				"Maintenance management",
				"SMS notifications",
			},
			FeaturesAr: []string{
				"حتى 10 عقارات",
				"تصدير التقارير",
				"إدارة الصيانة",
				"إشعارات الرسائل النصية",
			},
		},
		{
			ID:            "premium",
			NameEn:        "Premium",
			NameAr:        "المميزة",
			Price:         599,
			BillingCycle:  "monthly",
			MaxProperties: 50,
			MaxUnits:      300,
			MaxBookings:   250,
			MaxUsers:      10,
			StorageGB:     25,
			Priority:      3,
			Color:         "#D97706",
			FeaturesEn: []string{
				"Up to 50 properties",
				"Advanced analytics",
				"Auction access",
				"Online payments",
				"Priority support",
			},
			FeaturesAr: []string{
				"حتى 50 عقاراً",
				"تحليلات متقدمة",
				"الوصول إلى المزادات",
				"المدفوعات الإلكترونية",
				"دعم ذو أولوية",
			},
		},
		{
			ID:            "enterprise",
			NameEn:        "Enterprise",
			NameAr:        "المؤسسات",
			Price:         1499,
			BillingCycle:  "yearly",
			MaxProperties: 500,
			MaxUnits:      5000,
			MaxBookings:   2500,
			MaxUsers:      50,
			StorageGB:     100,
			Priority:      4,
			Color:         "#7C3AED",
			FeaturesEn: []string{
				"Up to 500 properties",
				"Legal case management",
				"API access",
				"Custom branding",
				"Email campaigns",
			},
			FeaturesAr: []string{
				"حتى 500 عقار",
				"إدارة القضايا القانونية",
				"واجهة برمجة التطبيقات",
				"علامة تجارية مخصصة",
				"حملات البريد الإلكتروني",
			},
		},
	}
}

// defaultFeatureMatrix seeds each default plan with its default feature set.
func defaultFeatureMatrix() model.FeatureMatrix {
	return model.FeatureMatrix{
		"basic": {
			"tenant_portal",
			"document_storage",
		},
		"standard": {
			"tenant_portal",
			"document_storage",
			"export_reports",
			"maintenance_module",
			"sms_notifications",
		},
		"premium": {
			"tenant_portal",
			"document_storage",
			"export_reports",
			"maintenance_module",
			"sms_notifications",
			"advanced_analytics",
			"auction_access",
			"online_payments",
			"priority_support",
		},
		"enterprise": {
			"tenant_portal",
			"document_storage",
			"export_reports",
			"maintenance_module",
			"sms_notifications",
			"advanced_analytics",
			"auction_access",
			"online_payments",
			"priority_support",
			"financial_statements",
			"legal_module",
			"api_access",
			"custom_branding",
			"bulk_import",
			"email_campaigns",
		},
	}
}
