package service

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/udyogsetu/udyogsetu-backend/internal/app/model"
	"github.com/udyogsetu/udyogsetu-backend/pkg/util"
)

// FlexBool accepts the loose boolean encodings the onboarding form sends:
// true, "true", 1 and "1" are true, everything else is false.
type FlexBool bool

func (b *FlexBool) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		*b = false
		return nil
	}
	switch v := raw.(type) {
	case bool:
		*b = FlexBool(v)
	case string:
		*b = v == "true" || v == "1"
	case float64:
		*b = v == 1
	default:
		*b = false
	}
	return nil
}

// FlexNumber accepts a JSON number or a numeric string. Absent, null and
// unparsable values leave Valid false so the range checks can report them.
type FlexNumber struct {
	Value float64
	Valid bool
}

func (n *FlexNumber) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	switch v := raw.(type) {
	case float64:
		n.Value, n.Valid = v, true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err == nil && !math.IsNaN(parsed) && !math.IsInf(parsed, 0) {
			n.Value, n.Valid = parsed, true
		}
	}
	return nil
}

// IsInt reports whether the number is a valid integer value.
func (n FlexNumber) IsInt() bool {
	return n.Valid && n.Value == math.Trunc(n.Value)
}

// ProfileInput is the raw submitted shape of a business profile. Parsing is
// lenient; ValidateProfileInput is where every rule is enforced.
type ProfileInput struct {
	BusinessType    string `json:"businessType"`
	LegalEntityType string `json:"legalEntityType"`
	BusinessName    string `json:"businessName"`
	OwnerName       string `json:"ownerName"`
	Gender          string `json:"gender"`

	PAN     string `json:"pan"`
	Mobile  string `json:"mobile"`
	State   string `json:"state"`
	City    string `json:"city"`
	Pincode string `json:"pincode"`

	Sector      string `json:"sector"`
	PrimaryNeed string `json:"primaryNeed"`
	Website     string `json:"website"`

	YearOfIncorporation FlexNumber `json:"yearOfIncorporation"`
	EmployeeCount       FlexNumber `json:"employeeCount"`
	AnnualTurnoverLakhs FlexNumber `json:"annualTurnoverLakhs"`
	FundingNeedLakhs    FlexNumber `json:"fundingNeedLakhs"`
	FounderShareholding FlexNumber `json:"founderShareholding"`

	HasGst      FlexBool `json:"hasGst"`
	GSTIN       string   `json:"gstin"`
	UdyamNumber string   `json:"udyamNumber"`
	DpiitNumber string   `json:"dpiitNumber"`

	WomenLed            FlexBool `json:"womenLed"`
	ScstLed             FlexBool `json:"scstLed"`
	DifferentlyAbledLed FlexBool `json:"differentlyAbledLed"`
	ExportFocus         FlexBool `json:"exportFocus"`
	HasIp               FlexBool `json:"hasIp"`
}

func containsString(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}

// ValidateProfileInput normalizes the submitted fields and runs every
// profile rule, accumulating all violations in one pass. It never stops at
// the first failure and never returns an error. The normalized profile is
// best-effort and only meaningful when the violation list is empty.
func ValidateProfileInput(in ProfileInput) ([]string, model.BusinessProfile) {
	errs := []string{}
	currentYear := time.Now().Year()

	businessType := strings.ToLower(strings.TrimSpace(in.BusinessType))
	legalEntityType := strings.ToLower(strings.TrimSpace(in.LegalEntityType))
	businessName := strings.TrimSpace(in.BusinessName)
	ownerName := strings.TrimSpace(in.OwnerName)
	gender := strings.ToLower(strings.TrimSpace(in.Gender))
	pan := strings.ToUpper(strings.TrimSpace(in.PAN))
	mobile := strings.TrimSpace(in.Mobile)
	state := strings.TrimSpace(in.State)
	city := strings.TrimSpace(in.City)
	pincode := strings.TrimSpace(in.Pincode)
	sector := strings.ToLower(strings.TrimSpace(in.Sector))
	primaryNeed := strings.ToLower(strings.TrimSpace(in.PrimaryNeed))
	website := strings.TrimSpace(in.Website)
	gstin := strings.ToUpper(strings.TrimSpace(in.GSTIN))
	udyamNumber := strings.ToUpper(strings.TrimSpace(in.UdyamNumber))
	dpiitNumber := strings.ToUpper(strings.TrimSpace(in.DpiitNumber))

	if !containsString(model.AllowedBusinessTypes, businessType) {
		errs = append(errs, "Business type must be Startup or MSME.")
	}
	if !containsString(model.AllowedEntityTypes, legalEntityType) {
		errs = append(errs, "Legal entity type is required.")
	}
	if utf8.RuneCountInString(businessName) < 3 {
		errs = append(errs, "Business name is required (minimum 3 characters).")
	}
	if utf8.RuneCountInString(ownerName) < 3 {
		errs = append(errs, "Founder/Owner name is required (minimum 3 characters).")
	}
	if !containsString(model.AllowedGenders, gender) {
		errs = append(errs, "Gender is required.")
	}
	if !util.IsValidPAN(pan) {
		errs = append(errs, "PAN format is invalid. Use ABCDE1234F.")
	}
	if !util.IsValidMobile(mobile) {
		errs = append(errs, "Mobile must be a 10-digit number.")
	}
	if state == "" {
		errs = append(errs, "State is required.")
	}
	if city == "" {
		errs = append(errs, "City is required.")
	}
	if !util.IsValidPincode(pincode) {
		errs = append(errs, "Pincode must be 6 digits.")
	}
	if !containsString(model.AllowedSectors, sector) {
		errs = append(errs, "Sector selection is required.")
	}
	if !containsString(model.AllowedPrimaryNeeds, primaryNeed) {
		errs = append(errs, "Primary need selection is required.")
	}
	if !in.YearOfIncorporation.IsInt() || in.YearOfIncorporation.Value < 1900 || in.YearOfIncorporation.Value > float64(currentYear) {
		errs = append(errs, "Year of incorporation is invalid.")
	}
	if !in.EmployeeCount.IsInt() || in.EmployeeCount.Value < 1 || in.EmployeeCount.Value > 100000 {
		errs = append(errs, "Employee count must be between 1 and 100000.")
	}
	if !in.AnnualTurnoverLakhs.Valid || in.AnnualTurnoverLakhs.Value < 0 {
		errs = append(errs, "Annual turnover (in lakhs) must be 0 or more.")
	}
	if !in.FundingNeedLakhs.Valid || in.FundingNeedLakhs.Value < 0 {
		errs = append(errs, "Funding requirement (in lakhs) must be 0 or more.")
	}
	if !in.FounderShareholding.Valid || in.FounderShareholding.Value < 0 || in.FounderShareholding.Value > 100 {
		errs = append(errs, "Founder shareholding must be between 0 and 100.")
	}
	if !util.IsValidWebsite(website) {
		errs = append(errs, "Website URL is invalid. Use http:// or https://")
	}
	if bool(in.HasGst) && !util.IsValidGSTIN(gstin) {
		errs = append(errs, "GSTIN is required and must be valid when GST is applicable.")
	}
	if businessType == "msme" && !util.IsValidUdyam(udyamNumber) {
		errs = append(errs, "Udyam number is required for MSME and must match UDYAM-XX-00-0000000.")
	}
	if businessType == "startup" && !util.IsValidDPIIT(dpiitNumber) {
		errs = append(errs, "DPIIT number is required for Startup and must match DPIIT123456.")
	}

	// Cross-field normalization: identifiers that do not apply to the
	// classification are always stored empty, whatever was submitted.
	normalizedGstin := gstin
	if !bool(in.HasGst) {
		normalizedGstin = ""
	}
	normalizedUdyam := udyamNumber
	if businessType != "msme" {
		normalizedUdyam = ""
	}
	normalizedDpiit := dpiitNumber
	if businessType != "startup" {
		normalizedDpiit = ""
	}

	profile := model.BusinessProfile{
		BusinessType:        businessType,
		LegalEntityType:     legalEntityType,
		BusinessName:        businessName,
		OwnerName:           ownerName,
		Gender:              gender,
		PAN:                 pan,
		Mobile:              mobile,
		State:               state,
		City:                city,
		Pincode:             pincode,
		Sector:              sector,
		PrimaryNeed:         primaryNeed,
		Website:             website,
		YearOfIncorporation: int(in.YearOfIncorporation.Value),
		EmployeeCount:       int(in.EmployeeCount.Value),
		AnnualTurnoverLakhs: in.AnnualTurnoverLakhs.Value,
		FundingNeedLakhs:    in.FundingNeedLakhs.Value,
		FounderShareholding: in.FounderShareholding.Value,
		HasGst:              bool(in.HasGst),
		GSTIN:               normalizedGstin,
		UdyamNumber:         normalizedUdyam,
		DpiitNumber:         normalizedDpiit,
		WomenLed:            bool(in.WomenLed),
		ScstLed:             bool(in.ScstLed),
		DifferentlyAbledLed: bool(in.DifferentlyAbledLed),
		ExportFocus:         bool(in.ExportFocus),
		HasIp:               bool(in.HasIp),
	}

	return errs, profile
}

// ProfileRequirements describes the accepted enums and format rules,
// served to the onboarding form.
func ProfileRequirements() map[string]interface{} {
	return map[string]interface{}{
		"businessTypes": model.AllowedBusinessTypes,
		"genders":       model.AllowedGenders,
		"entityTypes":   model.AllowedEntityTypes,
		"sectors":       model.AllowedSectors,
		"primaryNeeds":  model.AllowedPrimaryNeeds,
		"rules": map[string]interface{}{
			"pan":          "Format: ABCDE1234F",
			"gstin":        "Required only if GST registered. Format: 22AAAAA0000A1Z5",
			"udyamNumber":  "Required for MSME. Format: UDYAM-XX-00-0000000",
			"dpiitNumber":  "Required for Startup. Format: DPIIT123456",
			"mobile":       "10 digits",
			"pincode":      "6 digits",
			"updateAnytime": true,
			"uniqueKeys":   []string{"pan", "gstin", "udyamNumber", "dpiitNumber"},
		},
	}
}
