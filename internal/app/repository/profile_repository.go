package repository

import (
	"errors"
	"fmt"

	"github.com/udyogsetu/udyogsetu-backend/internal/app/model"
	"github.com/udyogsetu/udyogsetu-backend/pkg/logger"
	"gorm.io/gorm"
)

// IdentifierConflictError reports that a compliance identifier is already
// bound to a different account.
type IdentifierConflictError struct {
	Kind model.IdentifierKind
}

func (e *IdentifierConflictError) Error() string {
	return fmt.Sprintf("%s already exists for another account.", e.Kind.Label())
}

type ProfileRepository interface {
	FindByEmail(email string) (*model.BusinessProfile, error)
	// Save validates all four identifier uniqueness constraints and, only
	// when every one passes, commits the profile together with the four
	// rebinds in a single transaction. On conflict nothing is written.
	Save(profile *model.BusinessProfile) (*model.BusinessProfile, error)
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) FindByEmail(email string) (*model.BusinessProfile, error) {
	var profile model.BusinessProfile
	if err := r.db.Where("email = ?", email).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// identifierValues lists each identifier kind with the value the profile
// carries for it. Empty values are valid and simply unbound.
func identifierValues(p *model.BusinessProfile) map[model.IdentifierKind]string {
	return map[model.IdentifierKind]string{
		model.IdentifierPAN:   p.PAN,
		model.IdentifierGSTIN: p.GSTIN,
		model.IdentifierUdyam: p.UdyamNumber,
		model.IdentifierDPIIT: p.DpiitNumber,
	}
}

func (r *profileRepository) Save(profile *model.BusinessProfile) (*model.BusinessProfile, error) {
	logger.Debug("Saving business profile", map[string]interface{}{
		"email":         profile.Email,
		"business_type": profile.BusinessType,
	})

	var saved *model.BusinessProfile
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing *model.BusinessProfile
		var current model.BusinessProfile
		if err := tx.Where("email = ?", profile.Email).First(&current).Error; err == nil {
			existing = &current
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		// Phase 1: every uniqueness constraint is checked before anything
		// is written, so a rejected save never leaves partial bindings.
		newValues := identifierValues(profile)
		for _, kind := range []model.IdentifierKind{
			model.IdentifierPAN, model.IdentifierGSTIN, model.IdentifierUdyam, model.IdentifierDPIIT,
		} {
			if err := ensureUnique(tx, kind, newValues[kind], profile.Email); err != nil {
				return err
			}
		}

		// Phase 2: commit the profile and rebind all four identifiers.
		if existing != nil {
			profile.ID = existing.ID
			profile.CreatedAt = existing.CreatedAt
		}
		if err := tx.Save(profile).Error; err != nil {
			return err
		}

		oldValues := map[model.IdentifierKind]string{}
		if existing != nil {
			oldValues = identifierValues(existing)
		}
		for kind, newValue := range newValues {
			if err := rebind(tx, kind, oldValues[kind], newValue, profile.Email); err != nil {
				return err
			}
		}

		saved = profile
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// ensureUnique fails when value is already bound to a different account.
// Empty values never conflict.
func ensureUnique(tx *gorm.DB, kind model.IdentifierKind, value, email string) error {
	if value == "" {
		return nil
	}
	var binding model.IdentifierBinding
	err := tx.Where("kind = ? AND value = ?", kind, value).First(&binding).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if binding.Email != email {
		return &IdentifierConflictError{Kind: kind}
	}
	return nil
}

// rebind drops the stale old binding and binds the new value to the owner.
// A re-bind of the owner's own unchanged value is a no-op overwrite.
func rebind(tx *gorm.DB, kind model.IdentifierKind, oldValue, newValue, email string) error {
	if oldValue != "" && oldValue != newValue {
		if err := tx.Where("kind = ? AND value = ?", kind, oldValue).
			Delete(&model.IdentifierBinding{}).Error; err != nil {
			return err
		}
	}
	if newValue == "" {
		return nil
	}

	var binding model.IdentifierBinding
	err := tx.Where("kind = ? AND value = ?", kind, newValue).First(&binding).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return tx.Create(&model.IdentifierBinding{Kind: kind, Value: newValue, Email: email}).Error
	}
	if err != nil {
		return err
	}
	if binding.Email != email {
		binding.Email = email
		return tx.Save(&binding).Error
	}
	return nil
}
