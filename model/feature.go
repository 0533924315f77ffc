// api/model/feature.go
package model

// Feature is a named capability toggle gated per subscription plan rather
// than per role. The catalogue of features is fixed at compile time; which
// plans enable which features is edited at runtime.
type Feature struct {
	ID     string `json:"id"`
	NameEn string `json:"name_en"`
	NameAr string `json:"name_ar"`
	Group  string `json:"group"`
}
