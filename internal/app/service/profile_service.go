package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/udyogsetu/udyogsetu-backend/internal/app/model"
	"github.com/udyogsetu/udyogsetu-backend/internal/app/repository"
	"github.com/udyogsetu/udyogsetu-backend/pkg/logger"
)

var ErrProfileNotFound = errors.New("business profile not found")

// ProfileValidationError wraps the full rule-violation list from a rejected
// profile submission.
type ProfileValidationError struct {
	Violations []string
}

func (e *ProfileValidationError) Error() string {
	return "business profile validation failed"
}

type ProfileService interface {
	GetProfile(email string) (*model.BusinessProfile, error)
	SaveProfile(email string, input ProfileInput) (*model.BusinessProfile, []Recommendation, bool, error)
	GetRecommendations(email string) (*model.BusinessProfile, []Recommendation, error)
	Requirements() map[string]interface{}
}

type profileService struct {
	profileRepo repository.ProfileRepository
}

func NewProfileService(profileRepo repository.ProfileRepository) ProfileService {
	return &profileService{profileRepo: profileRepo}
}

func (s *profileService) GetProfile(email string) (*model.BusinessProfile, error) {
	profile, err := s.profileRepo.FindByEmail(NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

// SaveProfile validates, claims the compliance identifiers, and upserts the
// profile in one transaction. The boolean reports whether an existing
// profile was updated rather than created.
func (s *profileService) SaveProfile(email string, input ProfileInput) (*model.BusinessProfile, []Recommendation, bool, error) {
	email = NormalizeEmail(email)

	violations, normalized := ValidateProfileInput(input)
	if len(violations) > 0 {
		logger.Warn("Business profile validation failed", map[string]interface{}{
			"email":      email,
			"violations": len(violations),
		})
		return nil, nil, false, &ProfileValidationError{Violations: violations}
	}

	existing, err := s.profileRepo.FindByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, false, err
	}
	updated := existing != nil

	normalized.Email = email
	if _, err := s.profileRepo.Save(&normalized); err != nil {
		var conflict *repository.IdentifierConflictError
		if errors.As(err, &conflict) {
			logger.Warn("Identifier already claimed by another account", map[string]interface{}{
				"email": email,
				"kind":  conflict.Kind,
			})
		} else {
			logger.Error("Failed to save business profile", err, map[string]interface{}{
				"email": email,
			})
		}
		return nil, nil, false, err
	}

	logger.Info("Business profile saved", map[string]interface{}{
		"email":         email,
		"business_type": normalized.BusinessType,
		"updated":       updated,
	})

	return &normalized, BuildRecommendations(&normalized), updated, nil
}

func (s *profileService) GetRecommendations(email string) (*model.BusinessProfile, []Recommendation, error) {
	profile, err := s.GetProfile(email)
	if err != nil {
		return nil, nil, err
	}
	return profile, BuildRecommendations(profile), nil
}

func (s *profileService) Requirements() map[string]interface{} {
	return ProfileRequirements()
}
