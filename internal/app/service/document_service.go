package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/udyogsetu/udyogsetu-backend/internal/app/model"
	"github.com/udyogsetu/udyogsetu-backend/internal/app/repository"
	"github.com/udyogsetu/udyogsetu-backend/pkg/logger"
)

var (
	ErrDocumentNotFound    = errors.New("document not found")
	ErrProfileRequired     = errors.New("create business profile before uploading documents")
	ErrDocumentTypeMissing = errors.New("documentType is required")
	ErrFileRequired        = errors.New("file is required")
	ErrFileTooLarge        = errors.New("file exceeds the maximum allowed size")
	ErrUnsupportedFileType = errors.New("only PDF, PNG and JPEG files are accepted")
)

// AllowedDocumentMimeTypes is the upload whitelist.
var AllowedDocumentMimeTypes = []string{"application/pdf", "image/png", "image/jpeg"}

func nowUTC() time.Time {
	return time.Now().UTC()
}

// DocumentStore persists raw document bytes out of band. The service
// tolerates a nil store: validation outcomes never depend on byte storage.
type DocumentStore interface {
	BuildKey(email, docType, fileName string) string
	PutDocument(ctx context.Context, key, contentType string, data []byte) error
}

type DocumentService interface {
	ListDocuments(email string) ([]model.Document, error)
	Upload(ctx context.Context, email, docType, fileName, mimeType string, data []byte) (*model.Document, error)
	Revalidate(email, docID string) (*model.Document, error)
}

type documentService struct {
	docRepo      repository.DocumentRepository
	profileRepo  repository.ProfileRepository
	store        DocumentStore
	maxSizeBytes int64
}

func NewDocumentService(
	docRepo repository.DocumentRepository,
	profileRepo repository.ProfileRepository,
	store DocumentStore,
	maxSizeBytes int64,
) DocumentService {
	return &documentService{
		docRepo:      docRepo,
		profileRepo:  profileRepo,
		store:        store,
		maxSizeBytes: maxSizeBytes,
	}
}

func (s *documentService) ListDocuments(email string) ([]model.Document, error) {
	return s.docRepo.ListByEmail(NormalizeEmail(email))
}

func (s *documentService) Upload(ctx context.Context, email, docType, fileName, mimeType string, data []byte) (*model.Document, error) {
	email = NormalizeEmail(email)

	if docType == "" {
		return nil, ErrDocumentTypeMissing
	}
	if len(data) == 0 {
		return nil, ErrFileRequired
	}
	if int64(len(data)) > s.maxSizeBytes {
		return nil, ErrFileTooLarge
	}
	if !containsString(AllowedDocumentMimeTypes, mimeType) {
		return nil, ErrUnsupportedFileType
	}

	profile, err := s.profileRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileRequired
		}
		return nil, err
	}

	validation := ValidateDocumentForProfile(docType, profile, fileName, int64(len(data)))

	storageKey := ""
	if s.store != nil {
		storageKey = s.store.BuildKey(email, docType, fileName)
		if err := s.store.PutDocument(ctx, storageKey, mimeType, data); err != nil {
			// Metadata and verification still proceed; storage is best effort.
			logger.Warn("Document byte storage failed", map[string]interface{}{
				"email":    email,
				"doc_type": docType,
				"error":    err.Error(),
			})
			storageKey = ""
		}
	}

	doc := &model.Document{
		Email:              email,
		DocType:            docType,
		FileName:           fileName,
		MimeType:           mimeType,
		SizeBytes:          int64(len(data)),
		StorageKey:         storageKey,
		Status:             validation.Status,
		Warnings:           validation.Warnings,
		Errors:             validation.Errors,
		VerificationMethod: model.VerificationMethodRuleStub,
		UploadedAt:         nowUTC(),
	}

	if err := s.docRepo.Create(doc); err != nil {
		logger.Error("Failed to record uploaded document", err, map[string]interface{}{
			"email":    email,
			"doc_type": docType,
		})
		return nil, err
	}

	logger.Info("Document uploaded and validated", map[string]interface{}{
		"email":    email,
		"doc_id":   doc.DocID,
		"doc_type": docType,
		"status":   doc.Status,
	})

	return doc, nil
}

// Revalidate reruns the verification rules against the document's stored
// metadata and the current profile. Identity and upload time are preserved.
func (s *documentService) Revalidate(email, docID string) (*model.Document, error) {
	email = NormalizeEmail(email)

	doc, err := s.docRepo.FindByDocID(email, docID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}

	profile, err := s.profileRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileRequired
		}
		return nil, err
	}

	validation := ValidateDocumentForProfile(doc.DocType, profile, doc.FileName, doc.SizeBytes)

	now := nowUTC()
	doc.Status = validation.Status
	doc.Warnings = validation.Warnings
	doc.Errors = validation.Errors
	doc.RevalidatedAt = &now

	if err := s.docRepo.Update(doc); err != nil {
		logger.Error("Failed to save revalidation result", err, map[string]interface{}{
			"email":  email,
			"doc_id": docID,
		})
		return nil, err
	}

	logger.Info("Document revalidated", map[string]interface{}{
		"email":  email,
		"doc_id": docID,
		"status": doc.Status,
	})

	return doc, nil
}
