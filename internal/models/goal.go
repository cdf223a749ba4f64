package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Goal is a savings target tied to one account.
//
// The current amount is kept in sync by deposit tracking, this backend
// only reads it when computing projections.
type Goal struct {
	DefaultModel
	Household           Household `json:"-"`
	HouseholdID         uuid.UUID `gorm:"index"`
	Account             Account   `json:"-"`
	AccountID           uuid.UUID `gorm:"index"`
	Name                string
	Note                string
	TargetAmount        decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	TargetDate          time.Time
	CurrentAmount       decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	MonthlyContribution decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Archived            bool
	Tags                []string `gorm:"serializer:json"`
}

// BeforeSave trims whitespace and normalizes the target date to UTC.
func (g *Goal) BeforeSave(_ *gorm.DB) error {
	g.Name = strings.TrimSpace(g.Name)
	g.Note = strings.TrimSpace(g.Note)
	g.TargetDate = g.TargetDate.In(time.UTC)

	return nil
}

// AfterFind updates the target date to use UTC as timezone, not +0000.
func (g *Goal) AfterFind(_ *gorm.DB) error {
	g.TargetDate = g.TargetDate.In(time.UTC)
	return nil
}

func (g *Goal) BeforeCreate(tx *gorm.DB) error {
	_ = g.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Goal)
	return g.checkIntegrity(tx, *toSave)
}

func (g *Goal) BeforeUpdate(tx *gorm.DB) error {
	toSave := tx.Statement.Dest.(Goal)
	if tx.Statement.Changed("HouseholdID") || tx.Statement.Changed("AccountID") {
		return g.checkIntegrity(tx, toSave)
	}

	return nil
}

// checkIntegrity verifies references to other resources
func (g *Goal) checkIntegrity(tx *gorm.DB, toSave Goal) error {
	err := tx.First(&Household{}, toSave.HouseholdID).Error
	if err != nil {
		return err
	}

	return tx.First(&Account{}, toSave.AccountID).Error
}

func (g *Goal) AfterSave(_ *gorm.DB) error {
	if !g.TargetAmount.IsPositive() {
		return ErrGoalTargetNotPositive
	}

	if g.MonthlyContribution.IsNegative() {
		return ErrGoalContributionNegative
	}

	return nil
}
