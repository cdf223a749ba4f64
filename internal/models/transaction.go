package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction represents a booking on an account.
//
// The amount is signed: expenses are negative, income is positive.
// Transfers between accounts of the same household are flagged so that
// they are not counted as spending.
type Transaction struct {
	DefaultModel
	Account    Account   `json:"-"`
	AccountID  uuid.UUID `gorm:"index"`
	Category   Category  `json:"-"`
	CategoryID uuid.UUID `gorm:"index"`
	Date       time.Time
	Amount     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Note       string
	IsTransfer bool
}

// BeforeSave sets the timezone of the date to UTC and trims strings.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	t.Note = strings.TrimSpace(t.Note)

	return nil
}

// AfterFind updates the date to use UTC as timezone, not +0000.
func (t *Transaction) AfterFind(_ *gorm.DB) error {
	t.Date = t.Date.In(time.UTC)
	return nil
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	_ = t.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Transaction)
	return t.checkIntegrity(tx, *toSave)
}

func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	toSave := tx.Statement.Dest.(Transaction)
	if tx.Statement.Changed("AccountID") || tx.Statement.Changed("CategoryID") {
		return t.checkIntegrity(tx, toSave)
	}

	return nil
}

// checkIntegrity verifies references to other resources
func (t *Transaction) checkIntegrity(tx *gorm.DB, toSave Transaction) error {
	err := tx.First(&Account{}, toSave.AccountID).Error
	if err != nil {
		return err
	}

	return tx.First(&Category{}, toSave.CategoryID).Error
}

func (t *Transaction) AfterSave(_ *gorm.DB) error {
	if t.Amount.IsZero() {
		return ErrTransactionAmountRequired
	}

	return nil
}
