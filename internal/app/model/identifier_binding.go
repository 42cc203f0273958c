package model

import (
	"time"
)

// IdentifierKind names one of the four globally unique compliance identifiers.
type IdentifierKind string

const (
	IdentifierPAN   IdentifierKind = "pan"
	IdentifierGSTIN IdentifierKind = "gstin"
	IdentifierUdyam IdentifierKind = "udyam"
	IdentifierDPIIT IdentifierKind = "dpiit"
)

// Label returns the human-readable name used in conflict messages.
func (k IdentifierKind) Label() string {
	switch k {
	case IdentifierPAN:
		return "PAN"
	case IdentifierGSTIN:
		return "GSTIN"
	case IdentifierUdyam:
		return "Udyam number"
	case IdentifierDPIIT:
		return "DPIIT number"
	default:
		return string(k)
	}
}

// IdentifierBinding maps one identifier value to the single account that
// owns it. The composite unique index enforces global uniqueness at the
// database level as well.
type IdentifierBinding struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Kind      IdentifierKind `gorm:"type:varchar(10);not null;uniqueIndex:idx_identifier_kind_value" json:"kind"`
	Value     string         `gorm:"not null;uniqueIndex:idx_identifier_kind_value" json:"value"`
	Email     string         `gorm:"not null;index" json:"email"` // owning account
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (IdentifierBinding) TableName() string {
	return "identifier_bindings"
}
