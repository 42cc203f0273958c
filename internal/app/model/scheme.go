package model

// SchemeCatalogEntry is static reference data describing a government
// support scheme. The catalog is read-only configuration, not user data.
type SchemeCatalogEntry struct {
	ID          string   `json:"id"`
	SchemeName  string   `json:"schemeName"`
	Description string   `json:"description"`
	Eligibility []string `json:"eligibility"`
	Benefits    []string `json:"benefits"`
	Documents   []string `json:"documents"`
}

// DocumentMeta describes one accepted compliance document type.
type DocumentMeta struct {
	Label  string `json:"label"`
	Format string `json:"format"`
	Why    string `json:"why"`
}

// SchemeCatalog is the static scheme reference data served to the guidance
// and recommendation presentation layers.
var SchemeCatalog = []SchemeCatalogEntry{
	{
		ID:          "startup_india_seed_fund",
		SchemeName:  "Startup India Seed Fund Scheme (SISFS)",
		Description: "Early-stage funding support for eligible startups.",
		Eligibility: []string{"DPIIT recognized startup", "Early-stage innovation focus"},
		Benefits:    []string{"Seed grant support", "Prototype and market entry support"},
		Documents:   []string{"aadhar_card", "pan_card", "dpiit_certificate", "bank_statement", "itr_2_years"},
	},
	{
		ID:          "cgtmse_credit_guarantee",
		SchemeName:  "CGTMSE Credit Guarantee",
		Description: "Collateral-free credit support for MSME units.",
		Eligibility: []string{"MSME profile", "Valid Udyam details"},
		Benefits:    []string{"Credit guarantee", "Improved loan accessibility"},
		Documents:   []string{"aadhar_card", "pan_card", "udyam_certificate", "bank_statement", "gst_certificate"},
	},
	{
		ID:          "stand_up_india",
		SchemeName:  "Stand-Up India",
		Description: "Support for SC/ST and women-led enterprises.",
		Eligibility: []string{"Women-led or SC/ST-led enterprise"},
		Benefits:    []string{"Bank-linked loan support", "Enterprise support"},
		Documents:   []string{"aadhar_card", "pan_card", "business_registration", "bank_statement"},
	},
}

// DocumentCatalog maps each document type to its presentation metadata.
var DocumentCatalog = map[string]DocumentMeta{
	"aadhar_card":           {Label: "Aadhar Card", Format: "PDF/JPG/PNG", Why: "Identity proof of applicant"},
	"pan_card":              {Label: "PAN Card", Format: "PDF/JPG/PNG", Why: "Tax identity and compliance validation"},
	"dpiit_certificate":     {Label: "DPIIT Certificate", Format: "PDF/JPG/PNG", Why: "Startup recognition verification"},
	"udyam_certificate":     {Label: "Udyam Registration Certificate", Format: "PDF/JPG/PNG", Why: "MSME status verification"},
	"gst_certificate":       {Label: "GST Certificate", Format: "PDF/JPG/PNG", Why: "GST compliance check"},
	"business_registration": {Label: "Business Registration Certificate", Format: "PDF/JPG/PNG", Why: "Legal entity validation"},
	"bank_statement":        {Label: "Bank Statement", Format: "PDF/JPG/PNG", Why: "Financial credibility check"},
	"itr_2_years":           {Label: "ITR for Last 2 Years", Format: "PDF/JPG/PNG", Why: "Income and tax filing history verification"},
}

// SchemeByID returns the catalog entry with the given id, or nil.
func SchemeByID(id string) *SchemeCatalogEntry {
	for i := range SchemeCatalog {
		if SchemeCatalog[i].ID == id {
			return &SchemeCatalog[i]
		}
	}
	return nil
}
