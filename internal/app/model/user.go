package model

import (
	"time"

	"gorm.io/gorm"
)

type AccountType string

const (
	AccountTypeIndividual AccountType = "individual"
	AccountTypeBusiness   AccountType = "business"
)

// AllowedAccountTypes lists the account types accepted at registration.
var AllowedAccountTypes = []AccountType{AccountTypeIndividual, AccountTypeBusiness}

func IsAllowedAccountType(t string) bool {
	for _, allowed := range AllowedAccountTypes {
		if string(allowed) == t {
			return true
		}
	}
	return false
}

type User struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"` // stored lowercase
	PasswordHash string         `gorm:"not null" json:"-"`
	Phone        string         `gorm:"type:varchar(10);not null" json:"phone"` // 10 digits
	AccountType  AccountType    `gorm:"type:varchar(20);default:'individual'" json:"account_type"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}
