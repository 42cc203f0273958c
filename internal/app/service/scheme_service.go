package service

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/udyogsetu/udyogsetu-backend/internal/app/model"
	"github.com/udyogsetu/udyogsetu-backend/internal/app/repository"
)

var ErrSchemeNotFound = errors.New("scheme not found")

// MappedScheme joins a recommendation with its catalog entry for the
// schemes tab.
type MappedScheme struct {
	ID          string   `json:"id"`
	SchemeName  string   `json:"schemeName"`
	Description string   `json:"description"`
	Eligibility []string `json:"eligibility"`
	Benefits    []string `json:"benefits"`
	Priority    string   `json:"priority"`
}

// DocumentRequirement is a catalog document annotated for a scheme's
// application checklist.
type DocumentRequirement struct {
	DocType   string `json:"docType"`
	Label     string `json:"label"`
	Format    string `json:"format"`
	Why       string `json:"why"`
	MaxSizeMb int    `json:"maxSizeMb"`
}

// MissingDocGuidance tells the user how to obtain a document they are
// missing.
type MissingDocGuidance struct {
	Document string   `json:"document"`
	Portal   string   `json:"portal"`
	Fees     string   `json:"fees"`
	Eta      string   `json:"eta"`
	Steps    []string `json:"steps"`
}

// AssistantGuidance is the full scheme-assistant reply payload.
type AssistantGuidance struct {
	Scheme               map[string]string     `json:"scheme"`
	GuideSteps           []string              `json:"guideSteps"`
	Timeline             []string              `json:"timeline"`
	Submission           map[string]string     `json:"submission"`
	DocumentRequirements []DocumentRequirement `json:"documentRequirements"`
	MissingDocHelp       *MissingDocGuidance   `json:"missingDocHelp"`
	AssistantReply       string                `json:"assistantReply"`
}

type SchemeService interface {
	MappedSchemes(email string) ([]MappedScheme, error)
	Assist(email, schemeID, missingDocument, userQuestion string) (*AssistantGuidance, error)
}

type schemeService struct {
	profileRepo repository.ProfileRepository
}

func NewSchemeService(profileRepo repository.ProfileRepository) SchemeService {
	return &schemeService{profileRepo: profileRepo}
}

// MappedSchemes re-runs the recommendation rules and enriches each match
// with catalog details.
func (s *schemeService) MappedSchemes(email string) ([]MappedScheme, error) {
	profile, err := s.profileRepo.FindByEmail(NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	mapped := []MappedScheme{}
	for _, item := range BuildRecommendations(profile) {
		scheme := MappedScheme{
			ID:          item.ID,
			SchemeName:  item.SchemeName,
			Description: "Scheme guidance available.",
			Eligibility: []string{},
			Benefits:    []string{},
			Priority:    item.Priority,
		}
		if base := model.SchemeByID(item.ID); base != nil {
			scheme.Description = base.Description
			scheme.Eligibility = base.Eligibility
			scheme.Benefits = base.Benefits
		}
		mapped = append(mapped, scheme)
	}
	return mapped, nil
}

// documentGuidance returns how-to-obtain guidance for a document type, with
// a generic fallback for types without a dedicated entry.
func documentGuidance(docType string) MissingDocGuidance {
	switch docType {
	case "aadhar_card":
		return MissingDocGuidance{
			Document: docType,
			Portal:   "https://uidai.gov.in/",
			Fees:     "Usually free for standard update/enrolment requests",
			Eta:      "7 to 30 days",
			Steps:    []string{"Visit UIDAI portal", "Book/update request", "Track status and download e-Aadhar"},
		}
	case "pan_card":
		return MissingDocGuidance{
			Document: docType,
			Portal:   "https://www.onlineservices.nsdl.com/paam/endUserRegisterContact.html",
			Fees:     "Approx INR 107 (can vary)",
			Eta:      "7 to 15 days",
			Steps:    []string{"Apply through NSDL/UTI portal", "Upload KYC details", "Track acknowledgement"},
		}
	}
	return MissingDocGuidance{
		Document: docType,
		Portal:   "Relevant department portal",
		Fees:     "Depends on issuing authority",
		Eta:      "Varies",
		Steps:    []string{"Identify issuing authority", "Submit request with required details", "Track and download/collect"},
	}
}

// Assist builds the static application walkthrough for one scheme, plus
// targeted guidance when the user names a missing document.
func (s *schemeService) Assist(email, schemeID, missingDocument, userQuestion string) (*AssistantGuidance, error) {
	if _, err := s.profileRepo.FindByEmail(NormalizeEmail(email)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	scheme := model.SchemeByID(schemeID)
	if scheme == nil {
		return nil, ErrSchemeNotFound
	}

	guidance := &AssistantGuidance{
		Scheme: map[string]string{
			"id":          scheme.ID,
			"schemeName":  scheme.SchemeName,
			"description": scheme.Description,
		},
		GuideSteps: []string{
			fmt.Sprintf("Check eligibility for %s on the official portal.", scheme.SchemeName),
			"Prepare mandatory documents and ensure profile details match uploaded proofs.",
			"Submit application online with verified contact details and business data.",
			"Track application reference number and respond to clarifications if requested.",
		},
		Timeline: []string{"Document prep: 1-3 days", "Application submission: 1 day", "Review and approval: 2-8 weeks"},
		Submission: map[string]string{
			"mode":          "Online preferred",
			"portalUrl":     "https://www.myscheme.gov.in/",
			"offlineOption": "District Industries Centre (if scheme permits physical submission)",
		},
		DocumentRequirements: []DocumentRequirement{},
	}

	for _, docType := range scheme.Documents {
		requirement := DocumentRequirement{
			DocType:   docType,
			Label:     docType,
			Format:    "PDF/JPG/PNG",
			Why:       "Scheme requirement",
			MaxSizeMb: 5,
		}
		if meta, ok := model.DocumentCatalog[docType]; ok {
			requirement.Label = meta.Label
			requirement.Format = meta.Format
			requirement.Why = meta.Why
		}
		guidance.DocumentRequirements = append(guidance.DocumentRequirements, requirement)
	}

	if missingDocument != "" {
		help := documentGuidance(missingDocument)
		guidance.MissingDocHelp = &help
	}

	if question := strings.TrimSpace(userQuestion); question != "" {
		tail := "If any document is missing, tell me which one and I will guide you."
		if missingDocument != "" {
			tail = fmt.Sprintf("Missing %s can be resolved via the provided steps.", missingDocument)
		}
		guidance.AssistantReply = fmt.Sprintf("For %q, focus on eligibility and document readiness. %s", scheme.SchemeName, tail)
	} else {
		guidance.AssistantReply = "I can guide you step-by-step for this scheme and help with missing documents."
	}

	return guidance, nil
}
