package model

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Document verification statuses produced by the rule validator.
const (
	DocumentStatusVerified = "verified"
	DocumentStatusReview   = "review"
	DocumentStatusRejected = "rejected"
)

// VerificationMethodRuleStub marks outcomes produced by the metadata rule
// checks rather than a human or an external verifier.
const VerificationMethodRuleStub = "rule_based_stub"

// Document is one uploaded compliance document. Records are append-only per
// account; revalidation updates status, warnings, errors and revalidated_at
// only; DocID and UploadedAt never change.
type Document struct {
	ID        uint           `gorm:"primarykey" json:"-"`
	DocID     string         `gorm:"column:doc_id;uniqueIndex" json:"id"` // DOC-<n>, monotonic, never reused
	Email     string         `gorm:"not null;index" json:"-"`             // owning account
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	DocType   string `gorm:"type:varchar(40);not null" json:"docType"`
	FileName  string `gorm:"not null" json:"fileName"`
	MimeType  string `gorm:"type:varchar(60)" json:"mimeType"`
	SizeBytes int64  `json:"sizeBytes"`
	StorageKey string `json:"-"` // S3 object key when byte storage is configured

	Status   string         `gorm:"type:varchar(10);not null;index" json:"status"` // verified | review | rejected
	Warnings pq.StringArray `gorm:"type:text[]" json:"warnings"`
	Errors   pq.StringArray `gorm:"type:text[]" json:"errors"`

	VerificationMethod string     `gorm:"type:varchar(30)" json:"verificationMethod"`
	UploadedAt         time.Time  `json:"uploadedAt"`
	RevalidatedAt      *time.Time `json:"revalidatedAt,omitempty"`
}

func (Document) TableName() string {
	return "documents"
}
