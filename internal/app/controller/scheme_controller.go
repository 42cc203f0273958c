package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/udyogsetu/udyogsetu-backend/internal/app/service"
	apperrors "github.com/udyogsetu/udyogsetu-backend/internal/errors"
	"github.com/udyogsetu/udyogsetu-backend/internal/middleware"
)

type SchemeController struct {
	schemeService service.SchemeService
}

func NewSchemeController(schemeService service.SchemeService) *SchemeController {
	return &SchemeController{schemeService: schemeService}
}

type AssistantRequest struct {
	SchemeID        string `json:"schemeId"`
	MissingDocument string `json:"missingDocument"`
	UserQuestion    string `json:"userQuestion"`
}

// List returns the schemes mapped to the account's profile
// GET /api/v1/schemes
func (ctrl *SchemeController) List(c *gin.Context) {
	email, ok := middleware.GetUserEmail(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	schemes, err := ctrl.schemeService.MappedSchemes(email)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"message": "Business profile not found. Complete profile to view mapped schemes.",
				"schemes": []interface{}{},
			})
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "list schemes")
		return
	}

	c.JSON(http.StatusOK, gin.H{"schemes": schemes})
}

// Assist returns the application walkthrough for one scheme
// POST /api/v1/chatbot/scheme-assistant
func (ctrl *SchemeController) Assist(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	email, ok := middleware.GetUserEmail(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	var req AssistantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Request body must be valid JSON.")
		return
	}

	guidance, err := ctrl.schemeService.Assist(email, req.SchemeID, req.MissingDocument, req.UserQuestion)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProfileNotFound):
			apperrors.NotFound(c, apperrors.ProfileNotFound, "Create business profile first.")
		case errors.Is(err, service.ErrSchemeNotFound):
			apperrors.NotFound(c, apperrors.SchemeNotFound, "Scheme not found.")
		default:
			log.Error("Scheme assistant failed", err, map[string]interface{}{
				"email":     email,
				"scheme_id": req.SchemeID,
			})
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "scheme assistant")
		}
		return
	}

	c.JSON(http.StatusOK, guidance)
}
