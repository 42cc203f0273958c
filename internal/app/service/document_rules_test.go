package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udyogsetu/udyogsetu-backend/internal/app/model"
)

func TestValidateDocumentForProfile(t *testing.T) {
	startup := &model.BusinessProfile{BusinessType: "startup", PAN: "ABCDE1234F"}
	msme := &model.BusinessProfile{BusinessType: "msme", PAN: "ABCDE1234F"}

	const largeEnough = 40 * 1024

	tests := []struct {
		name         string
		docType      string
		profile      *model.BusinessProfile
		fileName     string
		sizeBytes    int64
		wantStatus   string
		wantWarnings []string
	}{
		{
			name:         "Clean upload verifies",
			docType:      "bank_statement",
			profile:      startup,
			fileName:     "statement.pdf",
			sizeBytes:    largeEnough,
			wantStatus:   model.DocumentStatusVerified,
			wantWarnings: []string{},
		},
		{
			name:       "Small file flags low quality",
			docType:    "bank_statement",
			profile:    startup,
			fileName:   "statement.pdf",
			sizeBytes:  10 * 1024,
			wantStatus: model.DocumentStatusReview,
			wantWarnings: []string{
				"Document quality may be low. Upload a clearer scan if possible.",
			},
		},
		{
			name:       "PAN filename mismatch flags review",
			docType:    "pan_card",
			profile:    startup,
			fileName:   "scan.pdf",
			sizeBytes:  largeEnough,
			wantStatus: model.DocumentStatusReview,
			wantWarnings: []string{
				"PAN not clearly identifiable from filename. Manual review may be needed.",
			},
		},
		{
			name:         "PAN filename match verifies",
			docType:      "pan_card",
			profile:      startup,
			fileName:     "abcde-pan-scan.pdf",
			sizeBytes:    largeEnough,
			wantStatus:   model.DocumentStatusVerified,
			wantWarnings: []string{},
		},
		{
			name:         "Short PAN compares against the whole value",
			docType:      "pan_card",
			profile:      &model.BusinessProfile{BusinessType: "startup", PAN: "AB"},
			fileName:     "ab-pan-scan.pdf",
			sizeBytes:    largeEnough,
			wantStatus:   model.DocumentStatusVerified,
			wantWarnings: []string{},
		},
		{
			name:       "Short PAN missing from filename flags review",
			docType:    "pan_card",
			profile:    &model.BusinessProfile{BusinessType: "startup", PAN: "AB"},
			fileName:   "scan.pdf",
			sizeBytes:  largeEnough,
			wantStatus: model.DocumentStatusReview,
			wantWarnings: []string{
				"PAN not clearly identifiable from filename. Manual review may be needed.",
			},
		},
		{
			name:       "DPIIT certificate for MSME flags mismatch",
			docType:    "dpiit_certificate",
			profile:    msme,
			fileName:   "dpiit.pdf",
			sizeBytes:  largeEnough,
			wantStatus: model.DocumentStatusReview,
			wantWarnings: []string{
				"DPIIT certificate is usually for Startup classification.",
			},
		},
		{
			name:       "Udyam certificate for startup flags mismatch",
			docType:    "udyam_certificate",
			profile:    startup,
			fileName:   "udyam.pdf",
			sizeBytes:  largeEnough,
			wantStatus: model.DocumentStatusReview,
			wantWarnings: []string{
				"Udyam certificate is usually for MSME classification.",
			},
		},
		{
			name:       "Warnings accumulate",
			docType:    "udyam_certificate",
			profile:    startup,
			fileName:   "udyam.pdf",
			sizeBytes:  5 * 1024,
			wantStatus: model.DocumentStatusReview,
			wantWarnings: []string{
				"Document quality may be low. Upload a clearer scan if possible.",
				"Udyam certificate is usually for MSME classification.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateDocumentForProfile(tt.docType, tt.profile, tt.fileName, tt.sizeBytes)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantWarnings, got.Warnings)
			assert.Empty(t, got.Errors)
		})
	}
}

func TestValidateDocumentForProfile_Idempotent(t *testing.T) {
	profile := &model.BusinessProfile{BusinessType: "startup", PAN: "ABCDE1234F"}

	first := ValidateDocumentForProfile("pan_card", profile, "scan.pdf", 10*1024)
	second := ValidateDocumentForProfile("pan_card", profile, "scan.pdf", 10*1024)
	assert.Equal(t, first, second)
}

func TestValidateDocumentForProfile_SizeRounding(t *testing.T) {
	profile := &model.BusinessProfile{BusinessType: "startup"}

	// 19.6 KB rounds to 20 and passes the quality threshold.
	got := ValidateDocumentForProfile("bank_statement", profile, "doc.pdf", 20070)
	assert.Equal(t, model.DocumentStatusVerified, got.Status)

	// 19.4 KB rounds to 19 and is flagged.
	got = ValidateDocumentForProfile("bank_statement", profile, "doc.pdf", 19865)
	assert.Equal(t, model.DocumentStatusReview, got.Status)
}
