package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udyogsetu/udyogsetu-backend/internal/app/model"
)

func startupProfile() *model.BusinessProfile {
	return &model.BusinessProfile{
		BusinessType:        "startup",
		YearOfIncorporation: 2021,
		FundingNeedLakhs:    25,
		DpiitNumber:         "DPIIT123456",
	}
}

func TestClassifyMSMECategory(t *testing.T) {
	tests := []struct {
		name     string
		profile  model.BusinessProfile
		expected string
	}{
		{"Startup has no category", model.BusinessProfile{BusinessType: "startup"}, ""},
		{"Micro at both limits", model.BusinessProfile{BusinessType: "msme", EmployeeCount: 10, AnnualTurnoverLakhs: 500}, "micro"},
		{"Small when employees exceed micro", model.BusinessProfile{BusinessType: "msme", EmployeeCount: 11, AnnualTurnoverLakhs: 500}, "small"},
		{"Small at both limits", model.BusinessProfile{BusinessType: "msme", EmployeeCount: 50, AnnualTurnoverLakhs: 5000}, "small"},
		{"Medium above small", model.BusinessProfile{BusinessType: "msme", EmployeeCount: 51, AnnualTurnoverLakhs: 100}, "medium"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyMSMECategory(&tt.profile))
		})
	}
}

func TestBuildRecommendations_StartupWomenLedExport(t *testing.T) {
	profile := startupProfile()
	profile.WomenLed = true
	profile.ExportFocus = true

	recs := BuildRecommendations(profile)
	require.Len(t, recs, 4)

	assert.Equal(t, "startup_india_seed_fund", recs[0].ID)
	assert.Equal(t, "startup_india_benefits", recs[1].ID)
	assert.Equal(t, "stand_up_india", recs[2].ID)
	assert.Equal(t, "Stand-Up India (Women-led enterprises)", recs[2].SchemeName)
	assert.Equal(t, "export_promotion_support", recs[3].ID)
	assert.Equal(t, "medium", recs[3].Priority)

	businessAge := time.Now().Year() - profile.YearOfIncorporation
	assert.Contains(t, recs[0].WhyMatched, fmt.Sprintf("Business age appears to be %d years", businessAge))
	assert.Contains(t, recs[0].WhyMatched, "Funding requirement entered: INR 25 lakhs")
}

func TestBuildRecommendations_StandUpIndiaAppearsPerFlag(t *testing.T) {
	profile := startupProfile()
	profile.WomenLed = true
	profile.ScstLed = true

	recs := BuildRecommendations(profile)
	require.Len(t, recs, 4)

	assert.Equal(t, "stand_up_india", recs[2].ID)
	assert.Equal(t, "Stand-Up India (Women-led enterprises)", recs[2].SchemeName)
	assert.Equal(t, "stand_up_india", recs[3].ID)
	assert.Equal(t, "Stand-Up India (SC/ST entrepreneurs)", recs[3].SchemeName)
}

func TestBuildRecommendations_MSMEPriority(t *testing.T) {
	t.Run("High priority with funding need", func(t *testing.T) {
		profile := &model.BusinessProfile{
			BusinessType:        "msme",
			EmployeeCount:       8,
			AnnualTurnoverLakhs: 120,
			FundingNeedLakhs:    10,
		}
		recs := BuildRecommendations(profile)
		require.Len(t, recs, 1)
		assert.Equal(t, "cgtmse_credit_guarantee", recs[0].ID)
		assert.Equal(t, "high", recs[0].Priority)
		assert.Contains(t, recs[0].WhyMatched, "MSME size inferred as micro")
	})

	t.Run("Medium priority without funding need", func(t *testing.T) {
		profile := &model.BusinessProfile{
			BusinessType:        "msme",
			EmployeeCount:       60,
			AnnualTurnoverLakhs: 6000,
		}
		recs := BuildRecommendations(profile)
		require.Len(t, recs, 1)
		assert.Equal(t, "medium", recs[0].Priority)
		assert.Contains(t, recs[0].WhyMatched, "MSME size inferred as medium")
	})
}

func TestBuildRecommendations_Deterministic(t *testing.T) {
	profile := startupProfile()
	profile.WomenLed = true

	first := BuildRecommendations(profile)
	second := BuildRecommendations(profile)
	assert.Equal(t, first, second)
}

func TestBuildRecommendations_FractionalFunding(t *testing.T) {
	profile := startupProfile()
	profile.FundingNeedLakhs = 12.5

	recs := BuildRecommendations(profile)
	require.NotEmpty(t, recs)
	assert.Contains(t, recs[0].WhyMatched, "Funding requirement entered: INR 12.5 lakhs")
}
