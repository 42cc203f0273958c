package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validStartupInput() ProfileInput {
	return ProfileInput{
		BusinessType:        "startup",
		LegalEntityType:     "private_limited",
		BusinessName:        "Acme Innovations",
		OwnerName:           "Asha Verma",
		Gender:              "female",
		PAN:                 "ABCDE1234F",
		Mobile:              "9876543210",
		State:               "Karnataka",
		City:                "Bengaluru",
		Pincode:             "560001",
		Sector:              "it_software",
		PrimaryNeed:         "grant",
		Website:             "https://acme.example.com",
		YearOfIncorporation: FlexNumber{Value: 2021, Valid: true},
		EmployeeCount:       FlexNumber{Value: 8, Valid: true},
		AnnualTurnoverLakhs: FlexNumber{Value: 120, Valid: true},
		FundingNeedLakhs:    FlexNumber{Value: 25, Valid: true},
		FounderShareholding: FlexNumber{Value: 72, Valid: true},
		DpiitNumber:         "DPIIT123456",
	}
}

func validMSMEInput() ProfileInput {
	in := validStartupInput()
	in.BusinessType = "msme"
	in.DpiitNumber = ""
	in.UdyamNumber = "UDYAM-KA-03-1234567"
	return in
}

func TestValidateProfileInput_ValidStartup(t *testing.T) {
	violations, profile := ValidateProfileInput(validStartupInput())

	assert.Empty(t, violations)
	assert.Equal(t, "startup", profile.BusinessType)
	assert.Equal(t, "ABCDE1234F", profile.PAN)
	assert.Equal(t, "DPIIT123456", profile.DpiitNumber)
	assert.Equal(t, "", profile.UdyamNumber)
	assert.Equal(t, 2021, profile.YearOfIncorporation)
}

func TestValidateProfileInput_Normalization(t *testing.T) {
	in := validStartupInput()
	in.BusinessType = "  STARTUP "
	in.Gender = "Female"
	in.PAN = " abcde1234f "
	in.DpiitNumber = "dpiit123456"

	violations, profile := ValidateProfileInput(in)

	assert.Empty(t, violations)
	assert.Equal(t, "startup", profile.BusinessType)
	assert.Equal(t, "female", profile.Gender)
	assert.Equal(t, "ABCDE1234F", profile.PAN)
	assert.Equal(t, "DPIIT123456", profile.DpiitNumber)
}

func TestValidateProfileInput_AccumulatesAllViolations(t *testing.T) {
	in := ProfileInput{}
	violations, _ := ValidateProfileInput(in)

	assert.Contains(t, violations, "Business type must be Startup or MSME.")
	assert.Contains(t, violations, "Legal entity type is required.")
	assert.Contains(t, violations, "Business name is required (minimum 3 characters).")
	assert.Contains(t, violations, "Founder/Owner name is required (minimum 3 characters).")
	assert.Contains(t, violations, "Gender is required.")
	assert.Contains(t, violations, "PAN format is invalid. Use ABCDE1234F.")
	assert.Contains(t, violations, "Mobile must be a 10-digit number.")
	assert.Contains(t, violations, "State is required.")
	assert.Contains(t, violations, "City is required.")
	assert.Contains(t, violations, "Pincode must be 6 digits.")
	assert.Contains(t, violations, "Sector selection is required.")
	assert.Contains(t, violations, "Primary need selection is required.")
	assert.Contains(t, violations, "Year of incorporation is invalid.")
	assert.Contains(t, violations, "Employee count must be between 1 and 100000.")
	assert.Contains(t, violations, "Annual turnover (in lakhs) must be 0 or more.")
	assert.Contains(t, violations, "Funding requirement (in lakhs) must be 0 or more.")
	assert.Contains(t, violations, "Founder shareholding must be between 0 and 100.")
}

func TestValidateProfileInput_NameLengthCountsCharacters(t *testing.T) {
	in := validStartupInput()
	in.BusinessName = "本社"
	in.OwnerName = "明日香"

	violations, _ := ValidateProfileInput(in)

	assert.Contains(t, violations, "Business name is required (minimum 3 characters).")
	assert.NotContains(t, violations, "Founder/Owner name is required (minimum 3 characters).")
}

func TestValidateProfileInput_ConditionalIdentifiers(t *testing.T) {
	t.Run("GSTIN required only when GST flagged", func(t *testing.T) {
		in := validStartupInput()
		in.HasGst = true
		in.GSTIN = ""

		violations, _ := ValidateProfileInput(in)
		assert.Contains(t, violations, "GSTIN is required and must be valid when GST is applicable.")
	})

	t.Run("GSTIN cleared when GST not flagged", func(t *testing.T) {
		in := validStartupInput()
		in.HasGst = false
		in.GSTIN = "22AAAAA0000A1Z5"

		violations, profile := ValidateProfileInput(in)
		assert.Empty(t, violations)
		assert.Equal(t, "", profile.GSTIN)
	})

	t.Run("Udyam required for MSME", func(t *testing.T) {
		in := validMSMEInput()
		in.UdyamNumber = ""

		violations, _ := ValidateProfileInput(in)
		assert.Contains(t, violations, "Udyam number is required for MSME and must match UDYAM-XX-00-0000000.")
	})

	t.Run("Udyam cleared for startup", func(t *testing.T) {
		in := validStartupInput()
		in.UdyamNumber = "UDYAM-KA-03-1234567"

		violations, profile := ValidateProfileInput(in)
		assert.Empty(t, violations)
		assert.Equal(t, "", profile.UdyamNumber)
	})

	t.Run("DPIIT required for startup", func(t *testing.T) {
		in := validStartupInput()
		in.DpiitNumber = ""

		violations, _ := ValidateProfileInput(in)
		assert.Contains(t, violations, "DPIIT number is required for Startup and must match DPIIT123456.")
	})

	t.Run("DPIIT cleared for MSME", func(t *testing.T) {
		in := validMSMEInput()
		in.DpiitNumber = "DPIIT123456"

		violations, profile := ValidateProfileInput(in)
		assert.Empty(t, violations)
		assert.Equal(t, "", profile.DpiitNumber)
	})
}

func TestValidateProfileInput_NumericBounds(t *testing.T) {
	t.Run("Fractional year rejected", func(t *testing.T) {
		in := validStartupInput()
		in.YearOfIncorporation = FlexNumber{Value: 2021.5, Valid: true}

		violations, _ := ValidateProfileInput(in)
		assert.Contains(t, violations, "Year of incorporation is invalid.")
	})

	t.Run("Shareholding above 100 rejected", func(t *testing.T) {
		in := validStartupInput()
		in.FounderShareholding = FlexNumber{Value: 101, Valid: true}

		violations, _ := ValidateProfileInput(in)
		assert.Contains(t, violations, "Founder shareholding must be between 0 and 100.")
	})

	t.Run("Zero turnover and funding accepted", func(t *testing.T) {
		in := validStartupInput()
		in.AnnualTurnoverLakhs = FlexNumber{Value: 0, Valid: true}
		in.FundingNeedLakhs = FlexNumber{Value: 0, Valid: true}

		violations, _ := ValidateProfileInput(in)
		assert.Empty(t, violations)
	})
}

func TestFlexBoolAndFlexNumberDecoding(t *testing.T) {
	payload := `{
		"hasGst": "true",
		"womenLed": 1,
		"scstLed": "1",
		"exportFocus": false,
		"hasIp": "yes",
		"employeeCount": "42",
		"annualTurnoverLakhs": 120.5,
		"fundingNeedLakhs": "not-a-number"
	}`

	var in ProfileInput
	require.NoError(t, json.Unmarshal([]byte(payload), &in))

	assert.True(t, bool(in.HasGst))
	assert.True(t, bool(in.WomenLed))
	assert.True(t, bool(in.ScstLed))
	assert.False(t, bool(in.ExportFocus))
	assert.False(t, bool(in.HasIp))

	assert.True(t, in.EmployeeCount.IsInt())
	assert.Equal(t, float64(42), in.EmployeeCount.Value)
	assert.True(t, in.AnnualTurnoverLakhs.Valid)
	assert.False(t, in.AnnualTurnoverLakhs.IsInt())
	assert.False(t, in.FundingNeedLakhs.Valid)
}
