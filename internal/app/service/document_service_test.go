package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udyogsetu/udyogsetu-backend/internal/app/model"
	"github.com/udyogsetu/udyogsetu-backend/internal/app/repository"
	"github.com/udyogsetu/udyogsetu-backend/internal/db"
)

func setupDocumentServiceTest(t *testing.T) (DocumentService, ProfileService) {
	testDB, err := db.SetupTestDB(t)
	require.NoError(t, err)

	profileRepo := repository.NewProfileRepository(testDB)
	docRepo := repository.NewDocumentRepository(testDB)

	documentService := NewDocumentService(docRepo, profileRepo, nil, 5*1024*1024)
	profileService := NewProfileService(profileRepo)
	return documentService, profileService
}

func largePayload() []byte {
	return bytes.Repeat([]byte("x"), 40*1024)
}

func TestDocumentService_UploadRequiresProfile(t *testing.T) {
	documentService, _ := setupDocumentServiceTest(t)

	_, err := documentService.Upload(context.Background(), "a@example.com", "pan_card", "scan.pdf", "application/pdf", largePayload())
	assert.ErrorIs(t, err, ErrProfileRequired)
}

func TestDocumentService_UploadValidation(t *testing.T) {
	documentService, profileService := setupDocumentServiceTest(t)
	_, _, _, err := profileService.SaveProfile("a@example.com", validStartupInput())
	require.NoError(t, err)

	t.Run("Missing document type", func(t *testing.T) {
		_, err := documentService.Upload(context.Background(), "a@example.com", "", "scan.pdf", "application/pdf", largePayload())
		assert.ErrorIs(t, err, ErrDocumentTypeMissing)
	})

	t.Run("Empty file", func(t *testing.T) {
		_, err := documentService.Upload(context.Background(), "a@example.com", "pan_card", "scan.pdf", "application/pdf", nil)
		assert.ErrorIs(t, err, ErrFileRequired)
	})

	t.Run("Unsupported mime type", func(t *testing.T) {
		_, err := documentService.Upload(context.Background(), "a@example.com", "pan_card", "scan.gif", "image/gif", largePayload())
		assert.ErrorIs(t, err, ErrUnsupportedFileType)
	})

	t.Run("Oversized file", func(t *testing.T) {
		_, err := documentService.Upload(context.Background(), "a@example.com", "pan_card", "scan.pdf", "application/pdf", bytes.Repeat([]byte("x"), 6*1024*1024))
		assert.ErrorIs(t, err, ErrFileTooLarge)
	})
}

func TestDocumentService_UploadAssignsSequentialIDs(t *testing.T) {
	documentService, profileService := setupDocumentServiceTest(t)
	_, _, _, err := profileService.SaveProfile("a@example.com", validStartupInput())
	require.NoError(t, err)

	first, err := documentService.Upload(context.Background(), "a@example.com", "bank_statement", "statement.pdf", "application/pdf", largePayload())
	require.NoError(t, err)
	assert.Equal(t, "DOC-1", first.DocID)
	assert.Equal(t, model.DocumentStatusVerified, first.Status)
	assert.Equal(t, model.VerificationMethodRuleStub, first.VerificationMethod)
	assert.False(t, first.UploadedAt.IsZero())

	second, err := documentService.Upload(context.Background(), "a@example.com", "pan_card", "unrelated.pdf", "application/pdf", largePayload())
	require.NoError(t, err)
	assert.Equal(t, "DOC-2", second.DocID)
	assert.Equal(t, model.DocumentStatusReview, second.Status)
	assert.Contains(t, second.Warnings, "PAN not clearly identifiable from filename. Manual review may be needed.")

	docs, err := documentService.ListDocuments("a@example.com")
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "DOC-1", docs[0].DocID)
	assert.Equal(t, "DOC-2", docs[1].DocID)
}

func TestDocumentService_ListScopedToOwner(t *testing.T) {
	documentService, profileService := setupDocumentServiceTest(t)
	_, _, _, err := profileService.SaveProfile("a@example.com", validStartupInput())
	require.NoError(t, err)

	_, err = documentService.Upload(context.Background(), "a@example.com", "bank_statement", "statement.pdf", "application/pdf", largePayload())
	require.NoError(t, err)

	docs, err := documentService.ListDocuments("b@example.com")
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestDocumentService_Revalidate(t *testing.T) {
	documentService, profileService := setupDocumentServiceTest(t)
	_, _, _, err := profileService.SaveProfile("a@example.com", validStartupInput())
	require.NoError(t, err)

	// Udyam certificate on a startup profile lands in review.
	doc, err := documentService.Upload(context.Background(), "a@example.com", "udyam_certificate", "udyam.pdf", "application/pdf", largePayload())
	require.NoError(t, err)
	require.Equal(t, model.DocumentStatusReview, doc.Status)

	// Switching the profile to MSME clears the mismatch on revalidation.
	in := validMSMEInput()
	_, _, _, err = profileService.SaveProfile("a@example.com", in)
	require.NoError(t, err)

	revalidated, err := documentService.Revalidate("a@example.com", doc.DocID)
	require.NoError(t, err)
	assert.Equal(t, model.DocumentStatusVerified, revalidated.Status)
	assert.Empty(t, revalidated.Warnings)
	assert.Equal(t, doc.DocID, revalidated.DocID)
	assert.Equal(t, doc.UploadedAt.Unix(), revalidated.UploadedAt.Unix())
	require.NotNil(t, revalidated.RevalidatedAt)
}

func TestDocumentService_RevalidateUnknownDocument(t *testing.T) {
	documentService, profileService := setupDocumentServiceTest(t)
	_, _, _, err := profileService.SaveProfile("a@example.com", validStartupInput())
	require.NoError(t, err)

	_, err = documentService.Revalidate("a@example.com", "DOC-99")
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}
