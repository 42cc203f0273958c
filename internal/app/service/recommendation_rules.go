package service

import (
	"fmt"
	"strconv"
	"time"

	"github.com/udyogsetu/udyogsetu-backend/internal/app/model"
)

// Recommendation is one matched scheme with the reasoning behind the match.
type Recommendation struct {
	ID                    string   `json:"id"`
	SchemeName            string   `json:"schemeName"`
	Priority              string   `json:"priority"`
	WhyMatched            []string `json:"whyMatched"`
	KeyEligibilitySignals []string `json:"keyEligibilitySignals"`
}

// ClassifyMSMECategory buckets an MSME profile by headcount and turnover.
// Non-MSME profiles have no category.
func ClassifyMSMECategory(profile *model.BusinessProfile) string {
	if profile.BusinessType != "msme" {
		return ""
	}
	if profile.EmployeeCount <= 10 && profile.AnnualTurnoverLakhs <= 500 {
		return "micro"
	}
	if profile.EmployeeCount <= 50 && profile.AnnualTurnoverLakhs <= 5000 {
		return "small"
	}
	return "medium"
}

// formatLakhs renders a lakh amount without trailing zeros, so whole
// numbers stay whole in the matched-reason text.
func formatLakhs(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// BuildRecommendations evaluates every matching rule against the profile in
// a fixed order. The same input always produces the same list; Stand-Up
// India appears once per qualifying founder flag on purpose.
func BuildRecommendations(profile *model.BusinessProfile) []Recommendation {
	recommendations := []Recommendation{}
	businessAge := time.Now().Year() - profile.YearOfIncorporation
	msmeCategory := ClassifyMSMECategory(profile)

	if profile.BusinessType == "startup" {
		recommendations = append(recommendations, Recommendation{
			ID:         "startup_india_seed_fund",
			SchemeName: "Startup India Seed Fund Scheme (SISFS)",
			Priority:   "high",
			WhyMatched: []string{
				"Profile marked as Startup",
				fmt.Sprintf("Business age appears to be %d years", businessAge),
				fmt.Sprintf("Funding requirement entered: INR %s lakhs", formatLakhs(profile.FundingNeedLakhs)),
			},
			KeyEligibilitySignals: []string{"DPIIT number provided", "Innovation-led startup recommended"},
		})
		recommendations = append(recommendations, Recommendation{
			ID:                    "startup_india_benefits",
			SchemeName:            "Startup India Recognition Benefits",
			Priority:              "high",
			WhyMatched:            []string{"DPIIT-recognized startup profile", "Entity has structured compliance details"},
			KeyEligibilitySignals: []string{"DPIIT registration", "Incorporation details available"},
		})
	}

	if profile.BusinessType == "msme" {
		priority := "medium"
		if profile.FundingNeedLakhs > 0 {
			priority = "high"
		}
		recommendations = append(recommendations, Recommendation{
			ID:         "cgtmse_credit_guarantee",
			SchemeName: "CGTMSE Credit Guarantee Support",
			Priority:   priority,
			WhyMatched: []string{
				fmt.Sprintf("Funding need provided: INR %s lakhs", formatLakhs(profile.FundingNeedLakhs)),
				fmt.Sprintf("MSME size inferred as %s", msmeCategory),
			},
			KeyEligibilitySignals: []string{"Valid Udyam number available", "PAN and business compliance completed"},
		})
	}

	if profile.WomenLed {
		recommendations = append(recommendations, Recommendation{
			ID:                    "stand_up_india",
			SchemeName:            "Stand-Up India (Women-led enterprises)",
			Priority:              "high",
			WhyMatched:            []string{"Women-led ownership indicated in profile"},
			KeyEligibilitySignals: []string{"Founder demographic criteria captured"},
		})
	}

	if profile.ScstLed {
		recommendations = append(recommendations, Recommendation{
			ID:                    "stand_up_india",
			SchemeName:            "Stand-Up India (SC/ST entrepreneurs)",
			Priority:              "high",
			WhyMatched:            []string{"SC/ST founder flag enabled in profile"},
			KeyEligibilitySignals: []string{"Founder demographic criteria captured"},
		})
	}

	if profile.ExportFocus {
		recommendations = append(recommendations, Recommendation{
			ID:                    "export_promotion_support",
			SchemeName:            "Export Promotion and Market Access Support",
			Priority:              "medium",
			WhyMatched:            []string{"Export focus enabled in profile"},
			KeyEligibilitySignals: []string{"Market access selected as business objective"},
		})
	}

	return recommendations
}
