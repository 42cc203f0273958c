package repository

import (
	"fmt"

	"github.com/udyogsetu/udyogsetu-backend/internal/app/model"
	"github.com/udyogsetu/udyogsetu-backend/pkg/logger"
	"gorm.io/gorm"
)

type DocumentRepository interface {
	// Create inserts the document and assigns its public DOC-<n> id from
	// the monotonic database sequence. Ids are never reused.
	Create(doc *model.Document) error
	ListByEmail(email string) ([]model.Document, error)
	FindByDocID(email, docID string) (*model.Document, error)
	Update(doc *model.Document) error
}

type documentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) Create(doc *model.Document) error {
	logger.Debug("Creating document record", map[string]interface{}{
		"email":    doc.Email,
		"doc_type": doc.DocType,
	})

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(doc).Error; err != nil {
			return err
		}
		doc.DocID = fmt.Sprintf("DOC-%d", doc.ID)
		return tx.Model(doc).Update("doc_id", doc.DocID).Error
	})
}

func (r *documentRepository) ListByEmail(email string) ([]model.Document, error) {
	var docs []model.Document
	if err := r.db.Where("email = ?", email).Order("id ASC").Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *documentRepository) FindByDocID(email, docID string) (*model.Document, error) {
	var doc model.Document
	if err := r.db.Where("email = ? AND doc_id = ?", email, docID).First(&doc).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *documentRepository) Update(doc *model.Document) error {
	if err := r.db.Save(doc).Error; err != nil {
		logger.Error("Failed to update document record", err, map[string]interface{}{
			"doc_id": doc.DocID,
		})
		return err
	}
	return nil
}
