package model

import (
	"time"

	"gorm.io/gorm"
)

// Enumerated profile fields. The validators in the service layer check
// submitted values against these sets.
var (
	AllowedBusinessTypes = []string{"startup", "msme"}
	AllowedGenders       = []string{"male", "female", "other", "prefer_not_to_say"}
	AllowedEntityTypes   = []string{"proprietorship", "partnership", "llp", "private_limited", "public_limited"}
	AllowedSectors       = []string{
		"it_software",
		"manufacturing",
		"agri_food",
		"healthcare",
		"education",
		"fintech",
		"clean_energy",
		"textiles",
		"logistics",
		"other",
	}
	AllowedPrimaryNeeds = []string{"grant", "loan", "subsidy", "mentorship", "market_access"}
)

// BusinessProfile holds the structured onboarding profile, one per account,
// keyed by the owner's email. PAN, GSTIN, Udyam and DPIIT numbers are
// globally unique across accounts (see IdentifierBinding).
type BusinessProfile struct {
	ID        uint           `gorm:"primarykey" json:"-"`
	Email     string         `gorm:"uniqueIndex;not null" json:"email"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	BusinessType    string `gorm:"type:varchar(20);not null" json:"businessType"` // startup | msme
	LegalEntityType string `gorm:"type:varchar(30);not null" json:"legalEntityType"`
	BusinessName    string `gorm:"not null" json:"businessName"`
	OwnerName       string `gorm:"not null" json:"ownerName"`
	Gender          string `gorm:"type:varchar(20)" json:"gender"`

	PAN     string `gorm:"column:pan;type:varchar(10);index" json:"pan"`
	Mobile  string `gorm:"type:varchar(10)" json:"mobile"`
	State   string `json:"state"`
	City    string `json:"city"`
	Pincode string `gorm:"type:varchar(6)" json:"pincode"`

	Sector      string `gorm:"type:varchar(30)" json:"sector"`
	PrimaryNeed string `gorm:"type:varchar(20)" json:"primaryNeed"`
	Website     string `json:"website"`

	YearOfIncorporation int     `json:"yearOfIncorporation"`
	EmployeeCount       int     `json:"employeeCount"`
	AnnualTurnoverLakhs float64 `json:"annualTurnoverLakhs"`
	FundingNeedLakhs    float64 `json:"fundingNeedLakhs"`
	FounderShareholding float64 `json:"founderShareholding"`

	HasGst      bool   `json:"hasGst"`
	GSTIN       string `gorm:"column:gstin;type:varchar(15);index" json:"gstin"`            // empty unless HasGst
	UdyamNumber string `gorm:"type:varchar(20);index" json:"udyamNumber"`                   // empty unless msme
	DpiitNumber string `gorm:"type:varchar(20);index" json:"dpiitNumber"`                   // empty unless startup

	WomenLed            bool `json:"womenLed"`
	ScstLed             bool `json:"scstLed"`
	DifferentlyAbledLed bool `json:"differentlyAbledLed"`
	ExportFocus         bool `json:"exportFocus"`
	HasIp               bool `json:"hasIp"`
}

func (BusinessProfile) TableName() string {
	return "business_profiles"
}
