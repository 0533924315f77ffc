// api/policy/features.go
package policy

import "github.com/aqari-dev/aqari/api/model"

// featureCatalogue is the fixed vocabulary of subscription features. Plans
// pick from this list; unknown feature IDs never enter the feature matrix.
var featureCatalogue = []model.Feature{
	{ID: "export_reports", NameEn: "Export reports", NameAr: "تصدير التقارير", Group: "reports"},
	{ID: "advanced_analytics", NameEn: "Advanced analytics", NameAr: "تحليلات متقدمة", Group: "reports"},
	{ID: "financial_statements", NameEn: "Financial statements", NameAr: "القوائم المالية", Group: "reports"},
	{ID: "auction_access", NameEn: "Auction access", NameAr: "الوصول إلى المزادات", Group: "auctions"},
	{ID: "legal_module", NameEn: "Legal case management", NameAr: "إدارة القضايا القانونية", Group: "legal"},
	{ID: "maintenance_module", NameEn: "Maintenance management", NameAr: "إدارة الصيانة", Group: "operations"},
	{ID: "api_access", NameEn: "API access", NameAr: "واجهة برمجة التطبيقات", Group: "platform"},
	{ID: "priority_support", NameEn: "Priority support", NameAr: "دعم ذو أولوية", Group: "platform"},
	{ID: "custom_branding", NameEn: "Custom branding", NameAr: "علامة تجارية مخصصة", Group: "platform"},
	{ID: "bulk_import", NameEn: "Bulk import", NameAr: "استيراد جماعي", Group: "platform"},
	{ID: "sms_notifications", NameEn: "SMS notifications", NameAr: "إشعارات الرسائل النصية", Group: "messaging"},
	{ID: "email_campaigns", NameEn: "Email campaigns", NameAr: "حملات البريد الإلكتروني", Group: "messaging"},
	{ID: "online_payments", NameEn: "Online payments", NameAr: "المدفوعات الإلكترونية", Group: "billing"},
	{ID: "tenant_portal", NameEn: "Tenant portal", NameAr: "بوابة المستأجر", Group: "operations"},
	{ID: "document_storage", NameEn: "Document storage", NameAr: "تخزين المستندات", Group: "operations"},
}

// FeatureCatalogue returns the feature vocabulary in declaration order.
func FeatureCatalogue() []model.Feature {
	out := make([]model.Feature, len(featureCatalogue))
	copy(out, featureCatalogue)
	return out
}

// FeatureIDs returns the IDs of every feature in the catalogue.
func FeatureIDs() []string {
	ids := make([]string, len(featureCatalogue))
	for i, f := range featureCatalogue {
		ids[i] = f.ID
	}
	return ids
}

// KnownFeature reports whether id is part of the feature catalogue.
func KnownFeature(id string) bool {
	for _, f := range featureCatalogue {
		if f.ID == id {
			return true
		}
	}
	return false
}
