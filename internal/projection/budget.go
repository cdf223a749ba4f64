package projection

import (
	"time"

	"github.com/google/uuid"
	"github.com/homeledger/backend/internal/models"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// SpendFunc returns the expense total for one category within a window.
//
// It abstracts the transaction store so that the rollup math itself
// stays free of database access.
type SpendFunc func(categoryID uuid.UUID, window Window) (decimal.Decimal, error)

// BudgetLineView is the computed state of one budget line for the
// current period.
type BudgetLineView struct {
	ID             uuid.UUID       `json:"id" example:"d44237bf-1668-4ee8-9fcd-43bfccb47e01"`           // ID of the budget line
	CategoryID     uuid.UUID       `json:"categoryId" example:"ca27fbd0-5b63-4bc7-b3a3-d3a5ff7e4d5e"`   // ID of the category the line allocates
	CategoryName   string          `json:"categoryName" example:"Groceries"`                            // Name of the category
	Amount         decimal.Decimal `json:"amount" example:"500"`                                        // Allocated amount for the period
	Spent          decimal.Decimal `json:"spent" example:"300"`                                         // Expenses against the category in the current period
	Remaining      decimal.Decimal `json:"remaining" example:"200"`                                     // Unspent allocation, never negative
	PercentageUsed decimal.Decimal `json:"percentageUsed" example:"60"`                                 // Share of the allocation that is spent
	Rollover       bool            `json:"rollover" example:"false"`                                    // Whether unused allocation is flagged to carry over
}

// BudgetView is the computed state of a budget for the current period.
type BudgetView struct {
	Window         Window           `json:"window"`                        // The resolved current period
	TotalBudget    decimal.Decimal  `json:"totalBudget" example:"500"`     // Sum of all line allocations
	TotalSpent     decimal.Decimal  `json:"totalSpent" example:"300"`      // Sum of all line expenses
	TotalRemaining decimal.Decimal  `json:"totalRemaining" example:"200"`  // TotalBudget minus TotalSpent
	SafeToSpend    decimal.Decimal  `json:"safeToSpend" example:"150"`     // TotalRemaining minus the buffer, never negative
	PercentageUsed decimal.Decimal  `json:"percentageUsed" example:"60"`   // Share of the total allocation that is spent
	Lines          []BudgetLineView `json:"lines"`                         // Per-line views
}

// newBudgetLineView derives the view of a single line from its
// allocation and the spent amount.
func newBudgetLineView(line models.BudgetLine, spent decimal.Decimal) BudgetLineView {
	remaining := line.Amount.Sub(spent)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	percentage := decimal.Zero
	if line.Amount.IsPositive() {
		percentage = spent.Div(line.Amount).Mul(hundred)
	}

	return BudgetLineView{
		ID:             line.ID,
		CategoryID:     line.CategoryID,
		CategoryName:   line.Category.Name,
		Amount:         line.Amount,
		Spent:          spent,
		Remaining:      remaining,
		PercentageUsed: percentage,
		Rollover:       line.Rollover,
	}
}

// NewBudgetView computes the budget view for the period containing now.
//
// The period is resolved once per budget, then the spend function is
// consulted once per line. Lines are expected to have their Category
// loaded so that the view can carry the category name.
func NewBudgetView(budget models.Budget, lines []models.BudgetLine, now time.Time, spend SpendFunc) (BudgetView, error) {
	window := CurrentPeriod(budget.Period, now)

	view := BudgetView{
		Window:         window,
		TotalBudget:    decimal.Zero,
		TotalSpent:     decimal.Zero,
		TotalRemaining: decimal.Zero,
		SafeToSpend:    decimal.Zero,
		PercentageUsed: decimal.Zero,
		Lines:          make([]BudgetLineView, 0, len(lines)),
	}

	for _, line := range lines {
		spent, err := spend(line.CategoryID, window)
		if err != nil {
			return BudgetView{}, err
		}

		lineView := newBudgetLineView(line, spent)
		view.Lines = append(view.Lines, lineView)

		view.TotalBudget = view.TotalBudget.Add(line.Amount)
		view.TotalSpent = view.TotalSpent.Add(spent)
	}

	view.TotalRemaining = view.TotalBudget.Sub(view.TotalSpent)

	view.SafeToSpend = view.TotalRemaining.Sub(budget.Buffer)
	if view.SafeToSpend.IsNegative() {
		view.SafeToSpend = decimal.Zero
	}

	if view.TotalBudget.IsPositive() {
		view.PercentageUsed = view.TotalSpent.Div(view.TotalBudget).Mul(hundred)
	}

	return view, nil
}
