package service

import (
	"math"
	"strings"

	"github.com/udyogsetu/udyogsetu-backend/internal/app/model"
)

// DocumentValidation is the outcome of the rule-based verification stub.
type DocumentValidation struct {
	Status   string
	Warnings []string
	Errors   []string
}

// ValidateDocumentForProfile runs the verification rules for one document
// against the owner's profile. The checks are heuristics over metadata
// only; no file content is inspected. Running the same inputs twice yields
// the same outcome, which is what makes revalidation safe.
func ValidateDocumentForProfile(docType string, profile *model.BusinessProfile, fileName string, sizeBytes int64) DocumentValidation {
	warnings := []string{}
	errs := []string{}
	lowerName := strings.ToLower(fileName)
	fileSizeKb := math.Round(float64(sizeBytes) / 1024)

	if fileSizeKb < 20 {
		warnings = append(warnings, "Document quality may be low. Upload a clearer scan if possible.")
	}
	if docType == "pan_card" && profile != nil {
		pan := strings.ToLower(profile.PAN)
		if len(pan) > 5 {
			pan = pan[:5]
		}
		if pan != "" && !strings.Contains(lowerName, pan) {
			warnings = append(warnings, "PAN not clearly identifiable from filename. Manual review may be needed.")
		}
	}
	if docType == "dpiit_certificate" && (profile == nil || profile.BusinessType != "startup") {
		warnings = append(warnings, "DPIIT certificate is usually for Startup classification.")
	}
	if docType == "udyam_certificate" && (profile == nil || profile.BusinessType != "msme") {
		warnings = append(warnings, "Udyam certificate is usually for MSME classification.")
	}

	status := model.DocumentStatusVerified
	if len(warnings) > 0 {
		status = model.DocumentStatusReview
	}
	if len(errs) > 0 {
		status = model.DocumentStatusRejected
	}

	return DocumentValidation{Status: status, Warnings: warnings, Errors: errs}
}
