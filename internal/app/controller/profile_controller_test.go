package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udyogsetu/udyogsetu-backend/internal/app/repository"
	"github.com/udyogsetu/udyogsetu-backend/internal/app/service"
	"github.com/udyogsetu/udyogsetu-backend/internal/db"
	"github.com/udyogsetu/udyogsetu-backend/internal/middleware"
)

func setupProfileControllerTest(t *testing.T) (*gin.Engine, string) {
	gin.SetMode(gin.TestMode)

	testDB, err := db.SetupTestDB(t)
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(testDB)
	profileRepo := repository.NewProfileRepository(testDB)
	authService := service.NewAuthService(userRepo, "test-secret", 15*time.Minute, 7*24*time.Hour)
	profileService := service.NewProfileService(profileRepo)
	reportService := service.NewReportService(profileService)

	ctrl := NewProfileController(profileService, reportService)
	authMiddleware := middleware.NewAuthMiddleware("test-secret")

	router := gin.New()
	router.GET("/business-profile/requirements", ctrl.Requirements)
	authed := router.Group("/", authMiddleware.Authenticate())
	authed.GET("/business-profile", ctrl.GetProfile)
	authed.POST("/business-profile", ctrl.SaveProfile)
	authed.GET("/business-profile/recommendations", ctrl.Recommendations)
	authed.GET("/business-profile/recommendations/export", ctrl.ExportRecommendations)

	_, tokens, err := authService.Register("owner@example.com", "Str0ng@Pass", "9876543210", "business")
	require.NoError(t, err)

	return router, tokens.AccessToken
}

func startupProfilePayload() map[string]interface{} {
	return map[string]interface{}{
		"businessType":        "startup",
		"legalEntityType":     "private_limited",
		"businessName":        "Acme Innovations",
		"ownerName":           "Asha Verma",
		"gender":              "female",
		"pan":                 "ABCDE1234F",
		"mobile":              "9876543210",
		"state":               "Karnataka",
		"city":                "Bengaluru",
		"pincode":             "560001",
		"sector":              "it_software",
		"primaryNeed":         "grant",
		"yearOfIncorporation": 2021,
		"employeeCount":       8,
		"annualTurnoverLakhs": 120,
		"fundingNeedLakhs":    25,
		"founderShareholding": 72,
		"dpiitNumber":         "DPIIT123456",
	}
}

func validProfileInput() service.ProfileInput {
	return service.ProfileInput{
		BusinessType:        "startup",
		LegalEntityType:     "private_limited",
		BusinessName:        "Acme Innovations",
		OwnerName:           "Asha Verma",
		Gender:              "female",
		PAN:                 "ABCDE1234F",
		Mobile:              "9876543210",
		State:               "Karnataka",
		City:                "Bengaluru",
		Pincode:             "560001",
		Sector:              "it_software",
		PrimaryNeed:         "grant",
		YearOfIncorporation: service.FlexNumber{Value: 2021, Valid: true},
		EmployeeCount:       service.FlexNumber{Value: 8, Valid: true},
		AnnualTurnoverLakhs: service.FlexNumber{Value: 120, Valid: true},
		FundingNeedLakhs:    service.FlexNumber{Value: 25, Valid: true},
		FounderShareholding: service.FlexNumber{Value: 72, Valid: true},
		DpiitNumber:         "DPIIT123456",
	}
}

func authedRequest(router *gin.Engine, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	var req *http.Request
	if payload != nil {
		body, _ := json.Marshal(payload)
		req = httptest.NewRequest(method, path, bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestProfileController_Requirements(t *testing.T) {
	router, _ := setupProfileControllerTest(t)

	req := httptest.NewRequest("GET", "/business-profile/requirements", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Format: ABCDE1234F")
	assert.Contains(t, w.Body.String(), "uniqueKeys")
}

func TestProfileController_GetProfile_NotCreated(t *testing.T) {
	router, token := setupProfileControllerTest(t)

	w := authedRequest(router, "GET", "/business-profile", token, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, false, response["exists"])
	assert.Nil(t, response["profile"])
}

func TestProfileController_SaveAndGetProfile(t *testing.T) {
	router, token := setupProfileControllerTest(t)

	w := authedRequest(router, "POST", "/business-profile", token, startupProfilePayload())
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, "Business profile created. Recommendations ready.", response["message"])
	assert.NotEmpty(t, response["recommendations"])

	w = authedRequest(router, "POST", "/business-profile", token, startupProfilePayload())
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Business profile updated. Recommendations refreshed.")

	w = authedRequest(router, "GET", "/business-profile", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	err = json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, true, response["exists"])

	profileMap := response["profile"].(map[string]interface{})
	assert.Equal(t, "Acme Innovations", profileMap["businessName"])
	assert.Equal(t, "ABCDE1234F", profileMap["pan"])
}

func TestProfileController_SaveProfile_ValidationErrors(t *testing.T) {
	router, token := setupProfileControllerTest(t)

	payload := startupProfilePayload()
	payload["pan"] = "BADPAN"
	payload["pincode"] = "12"

	w := authedRequest(router, "POST", "/business-profile", token, payload)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Business profile validation failed.")
	assert.Contains(t, w.Body.String(), "PAN format is invalid. Use ABCDE1234F.")
	assert.Contains(t, w.Body.String(), "Pincode must be 6 digits.")
}

func TestProfileController_Recommendations(t *testing.T) {
	router, token := setupProfileControllerTest(t)

	w := authedRequest(router, "GET", "/business-profile/recommendations", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Business profile not found. Complete profile to get recommendations.")

	w = authedRequest(router, "POST", "/business-profile", token, startupProfilePayload())
	require.Equal(t, http.StatusOK, w.Code)

	w = authedRequest(router, "GET", "/business-profile/recommendations", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	summary := response["profileSummary"].(map[string]interface{})
	assert.Equal(t, "startup", summary["businessType"])
	assert.Equal(t, float64(25), summary["fundingNeedLakhs"])

	recommendations := response["recommendations"].([]interface{})
	require.Len(t, recommendations, 2)
	first := recommendations[0].(map[string]interface{})
	assert.Equal(t, "startup_india_seed_fund", first["id"])
}

func TestProfileController_ExportRecommendations(t *testing.T) {
	router, token := setupProfileControllerTest(t)

	w := authedRequest(router, "POST", "/business-profile", token, startupProfilePayload())
	require.Equal(t, http.StatusOK, w.Code)

	w = authedRequest(router, "GET", "/business-profile/recommendations/export", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "scheme-recommendations-")
	assert.NotEmpty(t, w.Body.Bytes())
}
