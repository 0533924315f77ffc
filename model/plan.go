// api/model/plan.go
package model

// Plan is a subscription tier. A small default set is compiled in; an
// administrator may replace the whole list at runtime through the policy
// store. FeaturesAr and FeaturesEn are parallel lists and must stay
// index-aligned when edited.
type Plan struct {
	ID            string   `json:"id"`
	NameEn        string   `json:"name_en"`
	NameAr        string   `json:"name_ar"`
	Price         float64  `json:"price"`
	BillingCycle  string   `json:"billing_cycle"` // "monthly" or "yearly"
	MaxProperties int      `json:"max_properties"`
	MaxUnits      int      `json:"max_units"`
	MaxBookings   int      `json:"max_bookings"`
	MaxUsers      int      `json:"max_users"`
	StorageGB     int      `json:"storage_gb"`
	Priority      int      `json:"priority"`
	Color         string   `json:"color"`
	FeaturesAr    []string `json:"features_ar"`
	FeaturesEn    []string `json:"features_en"`
}

// FeatureMatrix maps a plan ID to the feature IDs enabled for that plan.
// An absent plan entry means zero features enabled, never an error.
type FeatureMatrix map[string][]string
