package controller

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/udyogsetu/udyogsetu-backend/internal/app/service"
	apperrors "github.com/udyogsetu/udyogsetu-backend/internal/errors"
	"github.com/udyogsetu/udyogsetu-backend/internal/middleware"
)

type DocumentController struct {
	documentService service.DocumentService
}

func NewDocumentController(documentService service.DocumentService) *DocumentController {
	return &DocumentController{documentService: documentService}
}

// List returns all of the account's documents in upload order
// GET /api/v1/documents
func (ctrl *DocumentController) List(c *gin.Context) {
	email, ok := middleware.GetUserEmail(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	docs, err := ctrl.documentService.ListDocuments(email)
	if err != nil {
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "list documents")
		return
	}

	c.JSON(http.StatusOK, gin.H{"documents": docs})
}

// Upload accepts a multipart document and runs the verification rules
// POST /api/v1/documents/upload
func (ctrl *DocumentController) Upload(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	email, ok := middleware.GetUserEmail(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	docType := c.PostForm("documentType")
	fileHeader, err := c.FormFile("file")
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationRequired, "File is required.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		apperrors.BadRequest(c, apperrors.UploadFailed, "Could not read the uploaded file.")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		apperrors.BadRequest(c, apperrors.UploadFailed, "Could not read the uploaded file.")
		return
	}

	doc, err := ctrl.documentService.Upload(
		c.Request.Context(),
		email,
		docType,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		data,
	)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProfileRequired):
			apperrors.BadRequest(c, apperrors.ProfileRequired, "Create business profile before uploading documents.")
		case errors.Is(err, service.ErrDocumentTypeMissing):
			apperrors.BadRequest(c, apperrors.DocumentTypeRequired, "documentType is required.")
		case errors.Is(err, service.ErrFileRequired):
			apperrors.BadRequest(c, apperrors.ValidationRequired, "File is required.")
		case errors.Is(err, service.ErrFileTooLarge):
			apperrors.RespondWithError(c, http.StatusRequestEntityTooLarge, apperrors.UploadFileTooLarge, "File exceeds the maximum allowed size.")
		case errors.Is(err, service.ErrUnsupportedFileType):
			apperrors.BadRequest(c, apperrors.UploadInvalidFileType, "Only PDF, PNG and JPEG files are accepted.")
		default:
			log.Error("Document upload failed", err, map[string]interface{}{
				"email":    email,
				"doc_type": docType,
			})
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "upload document")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Document uploaded and validated.",
		"document": doc,
	})
}

// Revalidate reruns verification for one stored document
// POST /api/v1/documents/revalidate/:id
func (ctrl *DocumentController) Revalidate(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	email, ok := middleware.GetUserEmail(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	docID := c.Param("id")
	doc, err := ctrl.documentService.Revalidate(email, docID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDocumentNotFound):
			apperrors.NotFound(c, apperrors.DocumentNotFound, "Document not found.")
		case errors.Is(err, service.ErrProfileRequired):
			apperrors.BadRequest(c, apperrors.ProfileRequired, "Business profile missing.")
		default:
			log.Error("Revalidation failed", err, map[string]interface{}{
				"email":  email,
				"doc_id": docID,
			})
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "revalidate document")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Document revalidated.",
		"document": doc,
	})
}
