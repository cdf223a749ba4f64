package models

import "errors"

// General errors
var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
	ErrAccessDenied     = errors.New("you do not have the permissions required for this")
)

// Resource-specific errors
var (
	ErrAccountNameNotUnique      = errors.New("the account name must be unique for the household")
	ErrCategoryNameNotUnique     = errors.New("the category name must be unique for the household")
	ErrBudgetLineCategoryInUse   = errors.New("the budget already has a line for this category")
	ErrBudgetPeriodInvalid       = errors.New("the budget period must be 'monthly' or 'yearly'")
	ErrBudgetBufferNegative      = errors.New("the budget buffer must not be negative")
	ErrBudgetLineAmountNegative  = errors.New("budget line amounts must not be negative")
	ErrGoalTargetNotPositive     = errors.New("goal target amounts must be larger than zero")
	ErrGoalContributionNegative  = errors.New("the monthly contribution must not be negative")
	ErrMembershipRoleInvalid     = errors.New("the membership role is invalid")
	ErrMembershipUserNotUnique   = errors.New("the user already is a member of this household")
	ErrTransactionAmountRequired = errors.New("transactions must have a non-zero amount")
)
