package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/udyogsetu/udyogsetu-backend/internal/app/repository"
	"github.com/udyogsetu/udyogsetu-backend/internal/app/service"
	apperrors "github.com/udyogsetu/udyogsetu-backend/internal/errors"
	"github.com/udyogsetu/udyogsetu-backend/internal/middleware"
)

type ProfileController struct {
	profileService service.ProfileService
	reportService  service.ReportService
}

func NewProfileController(profileService service.ProfileService, reportService service.ReportService) *ProfileController {
	return &ProfileController{
		profileService: profileService,
		reportService:  reportService,
	}
}

// Requirements returns the accepted enums and format rules
// GET /api/v1/business-profile/requirements
func (ctrl *ProfileController) Requirements(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.profileService.Requirements())
}

// GetProfile returns the account's profile, or exists=false
// GET /api/v1/business-profile
func (ctrl *ProfileController) GetProfile(c *gin.Context) {
	email, ok := middleware.GetUserEmail(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	profile, err := ctrl.profileService.GetProfile(email)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusOK, gin.H{"exists": false, "profile": nil})
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "get business profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{"exists": true, "profile": profile})
}

// SaveProfile validates and upserts the account's profile
// POST /api/v1/business-profile
func (ctrl *ProfileController) SaveProfile(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	email, ok := middleware.GetUserEmail(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	var input service.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		log.Warn("Malformed profile payload", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Request body must be valid JSON.")
		return
	}

	profile, recommendations, updated, err := ctrl.profileService.SaveProfile(email, input)
	if err != nil {
		var validation *service.ProfileValidationError
		var conflict *repository.IdentifierConflictError
		switch {
		case errors.As(err, &validation):
			apperrors.RespondWithValidationErrors(c, apperrors.ProfileValidationFailed, "Business profile validation failed.", validation.Violations)
		case errors.As(err, &conflict):
			apperrors.Conflict(c, apperrors.RegistryIdentifierExists, conflict.Error())
		default:
			log.Error("Failed to save business profile", err, map[string]interface{}{
				"email": email,
			})
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "save business profile")
		}
		return
	}

	message := "Business profile created. Recommendations ready."
	if updated {
		message = "Business profile updated. Recommendations refreshed."
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         message,
		"profile":         profile,
		"recommendations": recommendations,
	})
}

// Recommendations returns the profile summary and matched schemes
// GET /api/v1/business-profile/recommendations
func (ctrl *ProfileController) Recommendations(c *gin.Context) {
	email, ok := middleware.GetUserEmail(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	profile, recommendations, err := ctrl.profileService.GetRecommendations(email)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			apperrors.NotFound(c, apperrors.ProfileNotFound, "Business profile not found. Complete profile to get recommendations.")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "get recommendations")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profileSummary": gin.H{
			"businessType":        profile.BusinessType,
			"sector":              profile.Sector,
			"primaryNeed":         profile.PrimaryNeed,
			"annualTurnoverLakhs": profile.AnnualTurnoverLakhs,
			"fundingNeedLakhs":    profile.FundingNeedLakhs,
		},
		"recommendations": recommendations,
	})
}

// ExportRecommendations streams the recommendations as an XLSX workbook
// GET /api/v1/business-profile/recommendations/export
func (ctrl *ProfileController) ExportRecommendations(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	email, ok := middleware.GetUserEmail(c)
	if !ok {
		apperrors.Unauthorized(c, "")
		return
	}

	data, filename, err := ctrl.reportService.RecommendationWorkbook(email)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			apperrors.NotFound(c, apperrors.ProfileNotFound, "Business profile not found. Complete profile to get recommendations.")
			return
		}
		log.Error("Failed to build recommendation workbook", err, map[string]interface{}{
			"email": email,
		})
		apperrors.InternalError(c, "Could not generate the report. Please try again.")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
