package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/homeledger/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget is a named recurring spending plan for a household.
//
// The start date is informational only. Resolving the current period
// always snaps to calendar boundaries, see projection.CurrentPeriod.
type Budget struct {
	DefaultModel
	Household   Household `json:"-"`
	HouseholdID uuid.UUID `gorm:"index"`
	Name        string
	Period      types.Period
	StartDate   time.Time
	Buffer      decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Reserve subtracted from remaining before computing safe-to-spend
	AccountIDs  []uuid.UUID     `gorm:"serializer:json"`    // Optional allow-list of accounts that count toward spend
	Shared      bool
}

// BeforeSave trims whitespace and normalizes the start date to UTC.
func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Name = strings.TrimSpace(b.Name)

	if b.StartDate.IsZero() {
		b.StartDate = time.Now().In(time.UTC)
	} else {
		b.StartDate = b.StartDate.In(time.UTC)
	}

	return nil
}

func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	_ = b.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Budget)
	return b.checkIntegrity(tx, *toSave)
}

func (b *Budget) BeforeUpdate(tx *gorm.DB) error {
	toSave := tx.Statement.Dest.(Budget)
	if tx.Statement.Changed("HouseholdID") {
		return b.checkIntegrity(tx, toSave)
	}

	return nil
}

// checkIntegrity verifies references to other resources
func (b *Budget) checkIntegrity(tx *gorm.DB, toSave Budget) error {
	return tx.First(&Household{}, toSave.HouseholdID).Error
}

func (b *Budget) AfterSave(_ *gorm.DB) error {
	if !b.Period.Valid() {
		return ErrBudgetPeriodInvalid
	}

	if b.Buffer.IsNegative() {
		return ErrBudgetBufferNegative
	}

	return nil
}

// AfterDelete removes the lines of the budget. A budget line
// cannot exist without its budget.
func (b *Budget) AfterDelete(tx *gorm.DB) error {
	return tx.Where("budget_id = ?", b.ID).Delete(&BudgetLine{}).Error
}

// Lines returns all lines of the budget.
func (b Budget) Lines(db *gorm.DB) ([]BudgetLine, error) {
	var lines []BudgetLine
	err := db.
		Preload("Category").
		Where(&BudgetLine{BudgetID: b.ID}).
		Order("created_at ASC").
		Find(&lines).Error

	return lines, err
}

// BudgetLine is one category's allocation within a budget.
//
// The rollover flag is stored for forward compatibility. Unused
// allocations are not carried over into the next period.
type BudgetLine struct {
	DefaultModel
	Budget     Budget          `json:"-"`
	BudgetID   uuid.UUID       `gorm:"uniqueIndex:budget_line_budget_category"`
	Category   Category        `json:"-"`
	CategoryID uuid.UUID       `gorm:"uniqueIndex:budget_line_budget_category"`
	Amount     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Rollover   bool
}

func (l *BudgetLine) BeforeCreate(tx *gorm.DB) error {
	_ = l.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*BudgetLine)
	return l.checkIntegrity(tx, *toSave)
}

func (l *BudgetLine) BeforeUpdate(tx *gorm.DB) error {
	toSave := tx.Statement.Dest.(BudgetLine)
	if tx.Statement.Changed("BudgetID") || tx.Statement.Changed("CategoryID") {
		return l.checkIntegrity(tx, toSave)
	}

	return nil
}

// checkIntegrity verifies references to other resources
func (l *BudgetLine) checkIntegrity(tx *gorm.DB, toSave BudgetLine) error {
	err := tx.First(&Budget{}, toSave.BudgetID).Error
	if err != nil {
		return err
	}

	return tx.First(&Category{}, toSave.CategoryID).Error
}

func (l *BudgetLine) AfterSave(_ *gorm.DB) error {
	if l.Amount.IsNegative() {
		return ErrBudgetLineAmountNegative
	}

	return nil
}
