package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Account represents an account of the household, e.g. a bank account.
type Account struct {
	DefaultModel
	Household   Household `json:"-"`
	HouseholdID uuid.UUID `gorm:"uniqueIndex:account_name_household_id"`
	Name        string    `gorm:"uniqueIndex:account_name_household_id"`
	Note        string
	Archived    bool
}

// BeforeSave trims whitespace from all strings
func (a *Account) BeforeSave(_ *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)
	a.Note = strings.TrimSpace(a.Note)

	return nil
}

func (a *Account) BeforeCreate(tx *gorm.DB) error {
	_ = a.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Account)
	return a.checkIntegrity(tx, *toSave)
}

// BeforeUpdate verifies the state of the account before
// committing an update to the database.
func (a *Account) BeforeUpdate(tx *gorm.DB) error {
	toSave := tx.Statement.Dest.(Account)
	if tx.Statement.Changed("HouseholdID") {
		return a.checkIntegrity(tx, toSave)
	}

	return nil
}

// checkIntegrity verifies references to other resources
func (a *Account) checkIntegrity(tx *gorm.DB, toSave Account) error {
	return tx.First(&Household{}, toSave.HouseholdID).Error
}
