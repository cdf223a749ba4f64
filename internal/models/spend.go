package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CategorySpend sums the expenses for one category of a household in
// the window [from, until).
//
// Only transactions with a negative amount count, income and transfers
// never do. Archived accounts are excluded, even when they are listed
// in the allow-list. If accountIDs is non-empty, only transactions on
// those accounts are counted.
//
// The returned amount is the absolute value of the summed expenses,
// zero when nothing matches.
func CategorySpend(db *gorm.DB, householdID, categoryID uuid.UUID, from, until time.Time, accountIDs []uuid.UUID) (decimal.Decimal, error) {
	q := db.
		Model(&Transaction{}).
		Joins("JOIN accounts ON accounts.id = transactions.account_id AND accounts.deleted_at IS NULL").
		Where("accounts.household_id = ?", householdID).
		Where("accounts.archived = ?", false).
		Where("transactions.category_id = ?", categoryID).
		Where("transactions.date >= ?", from).
		Where("transactions.date < ?", until).
		Where("transactions.is_transfer = ?", false).
		Where("transactions.amount < ?", decimal.Zero)

	if len(accountIDs) > 0 {
		q = q.Where("transactions.account_id IN (?)", accountIDs)
	}

	var spent decimal.NullDecimal
	err := q.
		Select("SUM(ABS(transactions.amount))").
		Scan(&spent).Error
	if err != nil {
		return decimal.Zero, err
	}

	if !spent.Valid {
		return decimal.Zero, nil
	}

	return spent.Decimal, nil
}
