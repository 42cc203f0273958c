package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udyogsetu/udyogsetu-backend/internal/app/repository"
	"github.com/udyogsetu/udyogsetu-backend/internal/db"
)

func setupSchemeServiceTest(t *testing.T) (SchemeService, ProfileService) {
	testDB, err := db.SetupTestDB(t)
	require.NoError(t, err)

	profileRepo := repository.NewProfileRepository(testDB)
	return NewSchemeService(profileRepo), NewProfileService(profileRepo)
}

func TestSchemeService_MappedSchemes(t *testing.T) {
	schemeService, profileService := setupSchemeServiceTest(t)

	_, err := schemeService.MappedSchemes("a@example.com")
	assert.ErrorIs(t, err, ErrProfileNotFound)

	in := validStartupInput()
	in.WomenLed = true
	in.ExportFocus = true
	_, _, _, err = profileService.SaveProfile("a@example.com", in)
	require.NoError(t, err)

	schemes, err := schemeService.MappedSchemes("a@example.com")
	require.NoError(t, err)
	require.Len(t, schemes, 4)

	assert.Equal(t, "startup_india_seed_fund", schemes[0].ID)
	assert.Equal(t, "Startup India Seed Fund Scheme (SISFS)", schemes[0].SchemeName)
	assert.Equal(t, "high", schemes[0].Priority)
	assert.NotEmpty(t, schemes[0].Description)
	assert.NotEmpty(t, schemes[0].Eligibility)
	assert.NotEmpty(t, schemes[0].Benefits)

	assert.Equal(t, "startup_india_benefits", schemes[1].ID)
	assert.Equal(t, "stand_up_india", schemes[2].ID)
	assert.Equal(t, "export_promotion_support", schemes[3].ID)
}

func TestSchemeService_Assist(t *testing.T) {
	schemeService, profileService := setupSchemeServiceTest(t)

	_, err := schemeService.Assist("a@example.com", "startup_india_seed_fund", "", "")
	assert.ErrorIs(t, err, ErrProfileNotFound)

	_, _, _, err = profileService.SaveProfile("a@example.com", validStartupInput())
	require.NoError(t, err)

	_, err = schemeService.Assist("a@example.com", "no_such_scheme", "", "")
	assert.ErrorIs(t, err, ErrSchemeNotFound)

	guidance, err := schemeService.Assist("a@example.com", "startup_india_seed_fund", "", "")
	require.NoError(t, err)
	assert.Equal(t, "startup_india_seed_fund", guidance.Scheme["id"])
	assert.Equal(t, "Startup India Seed Fund Scheme (SISFS)", guidance.Scheme["schemeName"])
	assert.Len(t, guidance.GuideSteps, 4)
	assert.Contains(t, guidance.GuideSteps[0], "Startup India Seed Fund Scheme (SISFS)")
	assert.Len(t, guidance.Timeline, 3)
	assert.Equal(t, "Online preferred", guidance.Submission["mode"])
	require.Len(t, guidance.DocumentRequirements, 5)
	for _, requirement := range guidance.DocumentRequirements {
		assert.Equal(t, 5, requirement.MaxSizeMb)
		assert.NotEmpty(t, requirement.Label)
	}
	assert.Nil(t, guidance.MissingDocHelp)
	assert.Equal(t, "I can guide you step-by-step for this scheme and help with missing documents.", guidance.AssistantReply)
}

func TestSchemeService_AssistMissingDocumentHelp(t *testing.T) {
	schemeService, profileService := setupSchemeServiceTest(t)

	_, _, _, err := profileService.SaveProfile("a@example.com", validStartupInput())
	require.NoError(t, err)

	tests := []struct {
		name       string
		missingDoc string
		wantPortal string
	}{
		{"aadhar guidance", "aadhar_card", "https://uidai.gov.in/"},
		{"pan guidance", "pan_card", "https://www.onlineservices.nsdl.com/paam/endUserRegisterContact.html"},
		{"generic fallback", "shop_establishment_license", "Relevant department portal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guidance, err := schemeService.Assist("a@example.com", "startup_india_seed_fund", tt.missingDoc, "How do I apply?")
			require.NoError(t, err)
			require.NotNil(t, guidance.MissingDocHelp)
			assert.Equal(t, tt.missingDoc, guidance.MissingDocHelp.Document)
			assert.Equal(t, tt.wantPortal, guidance.MissingDocHelp.Portal)
			assert.Len(t, guidance.MissingDocHelp.Steps, 3)
			assert.Contains(t, guidance.AssistantReply, `"Startup India Seed Fund Scheme (SISFS)"`)
			assert.Contains(t, guidance.AssistantReply, "Missing "+tt.missingDoc+" can be resolved via the provided steps.")
		})
	}
}

func TestSchemeService_AssistReplyWithQuestionOnly(t *testing.T) {
	schemeService, profileService := setupSchemeServiceTest(t)

	_, _, _, err := profileService.SaveProfile("a@example.com", validStartupInput())
	require.NoError(t, err)

	guidance, err := schemeService.Assist("a@example.com", "startup_india_seed_fund", "", "What is the timeline?")
	require.NoError(t, err)
	assert.Nil(t, guidance.MissingDocHelp)
	assert.Contains(t, guidance.AssistantReply, "If any document is missing, tell me which one and I will guide you.")
}
